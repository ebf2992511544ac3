package readstore

import (
	"context"

	"seat-redeem/internal/infra"
	sqlc "seat-redeem/internal/infra/sqlc/generated"
	"seat-redeem/internal/pkg/pgconv"
	"seat-redeem/internal/usecase/queries"
)

type VoucherReadQueries interface {
	GetVoucherByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Vouchers, error)
	ListVouchers(ctx context.Context, db sqlc.DBTX, arg sqlc.ListVouchersParams) ([]sqlc.Vouchers, error)
	ListVouchersByStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.ListVouchersByStatusParams) ([]sqlc.Vouchers, error)
}

type VoucherReadStore struct {
	queries VoucherReadQueries
	db      sqlc.DBTX
}

func NewVoucherReadStore(queries VoucherReadQueries, db sqlc.DBTX) *VoucherReadStore {
	return &VoucherReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *VoucherReadStore) FindByCode(ctx context.Context, code string) (*queries.VoucherView, error) {
	row, err := r.queries.GetVoucherByCode(ctx, r.db, code)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("voucher not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find voucher", err)
	}
	return toVoucherView(row), nil
}

func (r *VoucherReadStore) List(ctx context.Context, status *string, page queries.Page) ([]*queries.VoucherView, error) {
	var (
		rows []sqlc.Vouchers
		err  error
	)
	if status != nil {
		rows, err = r.queries.ListVouchersByStatus(ctx, r.db, sqlc.ListVouchersByStatusParams{
			Status: *status,
			Limit:  int32(page.Limit),  // #nosec G115 -- clamped by Page.Normalize
			Offset: int32(page.Offset), // #nosec G115
		})
	} else {
		rows, err = r.queries.ListVouchers(ctx, r.db, sqlc.ListVouchersParams{
			Limit:  int32(page.Limit),  // #nosec G115 -- clamped by Page.Normalize
			Offset: int32(page.Offset), // #nosec G115
		})
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vouchers", err)
	}

	views := make([]*queries.VoucherView, len(rows))
	for i, row := range rows {
		views[i] = toVoucherView(row)
	}
	return views, nil
}

func toVoucherView(row sqlc.Vouchers) *queries.VoucherView {
	return &queries.VoucherView{
		Code:              row.Code,
		Status:            row.Status,
		ExpiresAt:         pgconv.TimePtrFromPgtype(row.ExpiresAt),
		HasWarranty:       row.HasWarranty,
		WarrantyDays:      row.WarrantyDays,
		WarrantyExpiresAt: pgconv.TimePtrFromPgtype(row.WarrantyExpiresAt),
		UsedByEmail:       pgconv.StringPtrFromPgtype(row.UsedByEmail),
		UsedResourceID:    pgconv.Int64PtrFromPgtype(row.UsedResourceID),
		UsedAt:            pgconv.TimePtrFromPgtype(row.UsedAt),
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
