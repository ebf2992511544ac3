package converter

import (
	"seat-redeem/internal/domain/usage"
	sqlc "seat-redeem/internal/infra/sqlc/generated"
	"seat-redeem/internal/pkg/pgconv"
)

func UsageRecordToCreateParams(r *usage.Record) sqlc.CreateUsageRecordParams {
	return sqlc.CreateUsageRecordParams{
		Email:                r.Email,
		Code:                 r.Code,
		ResourceID:           r.ResourceID,
		ExternalAccountID:    r.ExternalAccountID,
		RedeemedAt:           pgconv.TimestamptzFromTime(r.RedeemedAt),
		IsWarrantyRedemption: r.IsWarrantyRedemption,
	}
}

func UsageRecordFromRow(row sqlc.UsageRecords) *usage.Record {
	return &usage.Record{
		ID:                   row.ID,
		Email:                row.Email,
		Code:                 row.Code,
		ResourceID:           row.ResourceID,
		ExternalAccountID:    row.ExternalAccountID,
		RedeemedAt:           pgconv.TimeFromPgtype(row.RedeemedAt),
		IsWarrantyRedemption: row.IsWarrantyRedemption,
	}
}
