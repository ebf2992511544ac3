package queries

import (
	"context"
	"strings"

	"seat-redeem/internal/domain/voucher"
	"seat-redeem/internal/infra"
	"seat-redeem/internal/pkg/errs"
)

var ErrVoucherNotFound = errs.New("voucher not found")

type VoucherReadStore interface {
	FindByCode(ctx context.Context, code string) (*VoucherView, error)
	List(ctx context.Context, status *string, page Page) ([]*VoucherView, error)
}

type VoucherQueries interface {
	GetByCode(ctx context.Context, code string) (*VoucherView, error)
	List(ctx context.Context, page Page) ([]*VoucherView, error)
	ListUnused(ctx context.Context, page Page) ([]*VoucherView, error)
}

type voucherQueriesImpl struct {
	readStore VoucherReadStore
}

func NewVoucherQueries(readStore VoucherReadStore) VoucherQueries {
	return &voucherQueriesImpl{
		readStore: readStore,
	}
}

func (q *voucherQueriesImpl) GetByCode(ctx context.Context, code string) (*VoucherView, error) {
	v, err := q.readStore.FindByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVoucherNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *voucherQueriesImpl) List(ctx context.Context, page Page) ([]*VoucherView, error) {
	return q.readStore.List(ctx, nil, page.Normalize())
}

// ListUnused shows unused vouchers as stored; lazy expiry only happens on redemption.
func (q *voucherQueriesImpl) ListUnused(ctx context.Context, page Page) ([]*VoucherView, error) {
	status := voucher.StatusUnused.String()
	return q.readStore.List(ctx, &status, page.Normalize())
}
