package converter

import (
	"seat-redeem/internal/domain/voucher"
	sqlc "seat-redeem/internal/infra/sqlc/generated"
	"seat-redeem/internal/pkg/pgconv"
)

func VoucherToCreateParams(v *voucher.Voucher) sqlc.CreateVoucherParams {
	return sqlc.CreateVoucherParams{
		Code:         v.Code().Value(),
		Status:       v.Status().String(),
		ExpiresAt:    pgconv.TimestamptzFromPtr(v.ExpiresAt()),
		HasWarranty:  v.HasWarranty(),
		WarrantyDays: int32(v.WarrantyDays()), // #nosec G115 -- bounded by the CHECK constraint
		CreatedAt:    pgconv.TimestamptzFromTime(v.CreatedAt()),
	}
}

func VoucherToUpdateParams(v *voucher.Voucher) sqlc.UpdateVoucherStateParams {
	return sqlc.UpdateVoucherStateParams{
		Code:              v.Code().Value(),
		Status:            v.Status().String(),
		WarrantyExpiresAt: pgconv.TimestamptzFromPtr(v.WarrantyExpiresAt()),
		UsedByEmail:       pgconv.TextFromPtr(v.UsedByEmail()),
		UsedResourceID:    pgconv.Int8FromPtr(v.UsedResourceID()),
		UsedAt:            pgconv.TimestamptzFromPtr(v.UsedAt()),
	}
}

func VoucherFromRow(row sqlc.Vouchers) (*voucher.Voucher, error) {
	return voucher.Reconstruct(voucher.ReconstructParams{
		Code:              row.Code,
		Status:            row.Status,
		ExpiresAt:         pgconv.TimePtrFromPgtype(row.ExpiresAt),
		HasWarranty:       row.HasWarranty,
		WarrantyDays:      int(row.WarrantyDays),
		WarrantyExpiresAt: pgconv.TimePtrFromPgtype(row.WarrantyExpiresAt),
		UsedByEmail:       pgconv.StringPtrFromPgtype(row.UsedByEmail),
		UsedResourceID:    pgconv.Int64PtrFromPgtype(row.UsedResourceID),
		UsedAt:            pgconv.TimePtrFromPgtype(row.UsedAt),
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
	})
}
