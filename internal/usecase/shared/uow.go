package shared

import (
	"context"

	"seat-redeem/internal/domain/resource"
	"seat-redeem/internal/domain/usage"
	"seat-redeem/internal/domain/voucher"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic. Nested calls are rejected.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to one open transaction.
type Tx interface {
	Vouchers() VoucherRepository
	Resources() ResourceRepository
	UsageRecords() UsageRecordRepository
}

type VoucherRepository interface {
	// FindByCodeForUpdate row-locks the voucher until the transaction ends.
	FindByCodeForUpdate(ctx context.Context, code string) (*voucher.Voucher, error)
	// Create reports false when the code is already taken.
	Create(ctx context.Context, v *voucher.Voucher) (bool, error)
	Save(ctx context.Context, v *voucher.Voucher) error
	Delete(ctx context.Context, code string) (bool, error)
}

type ResourceRepository interface {
	// SelectAvailableID is an unlocked read; callers must LockByID and re-check.
	SelectAvailableID(ctx context.Context, excluded []int64) (int64, error)
	LockByID(ctx context.Context, id int64) (*resource.Resource, error)
	FindByID(ctx context.Context, id int64) (*resource.Resource, error)
	Save(ctx context.Context, r *resource.Resource) error
}

type UsageRecordRepository interface {
	Insert(ctx context.Context, rec *usage.Record) (int64, error)
	LatestByCode(ctx context.Context, code string) (*usage.Record, error)
	CountWarrantyRedemptions(ctx context.Context, code string) (int64, error)
}
