package readstore

import (
	"context"

	"seat-redeem/internal/infra"
	sqlc "seat-redeem/internal/infra/sqlc/generated"
	"seat-redeem/internal/pkg/pgconv"
	"seat-redeem/internal/usecase/queries"
)

type UsageRecordReadQueries interface {
	ListUsageRecords(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUsageRecordsParams) ([]sqlc.UsageRecords, error)
}

type UsageRecordReadStore struct {
	queries UsageRecordReadQueries
	db      sqlc.DBTX
}

func NewUsageRecordReadStore(queries UsageRecordReadQueries, db sqlc.DBTX) *UsageRecordReadStore {
	return &UsageRecordReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UsageRecordReadStore) List(ctx context.Context, filters queries.UsageRecordFilters, page queries.Page) ([]*queries.UsageRecordView, error) {
	rows, err := r.queries.ListUsageRecords(ctx, r.db, sqlc.ListUsageRecordsParams{
		Email:      pgconv.TextFromPtr(filters.Email),
		Code:       pgconv.TextFromPtr(filters.Code),
		ResourceID: pgconv.Int8FromPtr(filters.ResourceID),
		RowLimit:   int32(page.Limit),  // #nosec G115 -- clamped by Page.Normalize
		RowOffset:  int32(page.Offset), // #nosec G115
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list usage records", err)
	}

	views := make([]*queries.UsageRecordView, len(rows))
	for i, row := range rows {
		views[i] = &queries.UsageRecordView{
			ID:                   row.ID,
			Email:                row.Email,
			Code:                 row.Code,
			ResourceID:           row.ResourceID,
			ExternalAccountID:    row.ExternalAccountID,
			RedeemedAt:           pgconv.TimeFromPgtype(row.RedeemedAt),
			IsWarrantyRedemption: row.IsWarrantyRedemption,
		}
	}
	return views, nil
}
