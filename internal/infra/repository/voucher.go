package repository

import (
	"context"

	"seat-redeem/internal/domain/voucher"
	"seat-redeem/internal/infra"
	"seat-redeem/internal/infra/repository/converter"
	sqlc "seat-redeem/internal/infra/sqlc/generated"
)

type VoucherWriteQueries interface {
	GetVoucherByCodeForUpdate(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Vouchers, error)
	CreateVoucher(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateVoucherParams) (int64, error)
	UpdateVoucherState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateVoucherStateParams) (int64, error)
	DeleteVoucher(ctx context.Context, db sqlc.DBTX, code string) (int64, error)
}

type VoucherRepository struct {
	queries VoucherWriteQueries
	db      sqlc.DBTX
}

func NewVoucherRepository(queries VoucherWriteQueries, db sqlc.DBTX) *VoucherRepository {
	return &VoucherRepository{
		queries: queries,
		db:      db,
	}
}

func (r *VoucherRepository) FindByCodeForUpdate(ctx context.Context, code string) (*voucher.Voucher, error) {
	row, err := r.queries.GetVoucherByCodeForUpdate(ctx, r.db, code)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("voucher not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock voucher", err)
	}

	v, err := converter.VoucherFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt voucher row", err, infra.KindDBFailure)
	}
	return v, nil
}

func (r *VoucherRepository) Create(ctx context.Context, v *voucher.Voucher) (bool, error) {
	n, err := r.queries.CreateVoucher(ctx, r.db, converter.VoucherToCreateParams(v))
	if err != nil {
		return false, infra.WrapRepoErr("failed to create voucher", err)
	}
	return n == 1, nil
}

func (r *VoucherRepository) Save(ctx context.Context, v *voucher.Voucher) error {
	n, err := r.queries.UpdateVoucherState(ctx, r.db, converter.VoucherToUpdateParams(v))
	if err != nil {
		return infra.WrapRepoErr("failed to save voucher", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("voucher vanished during update", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VoucherRepository) Delete(ctx context.Context, code string) (bool, error) {
	n, err := r.queries.DeleteVoucher(ctx, r.db, code)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete voucher", err)
	}
	return n > 0, nil
}
