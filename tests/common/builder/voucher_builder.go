//go:build unit || e2e

package builder

import (
	"time"

	sqlc "seat-redeem/internal/infra/sqlc/generated"
	"seat-redeem/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type VoucherBuilder struct {
	Code              string
	Status            string
	ExpiresAt         *time.Time
	WarrantyDays      int32
	WarrantyExpiresAt *time.Time
	UsedByEmail       *string
	UsedResourceID    *int64
	UsedAt            *time.Time
}

func NewVoucherBuilder(code string) *VoucherBuilder {
	return &VoucherBuilder{
		Code:   code,
		Status: "unused",
	}
}

func (v *VoucherBuilder) With(mutate func(*VoucherBuilder)) *VoucherBuilder {
	mutate(v)
	return v
}

func (v *VoucherBuilder) ExpiringAt(t time.Time) *VoucherBuilder {
	v.ExpiresAt = &t
	return v
}

func (v *VoucherBuilder) WithWarranty(days int32) *VoucherBuilder {
	v.WarrantyDays = days
	return v
}

// UsedBy marks the voucher as consumed by email on resourceID. A voucher
// with warranty days gets an active warranty window starting at usedAt.
func (v *VoucherBuilder) UsedBy(email string, resourceID int64, usedAt time.Time) *VoucherBuilder {
	v.Status = "used"
	v.UsedByEmail = &email
	v.UsedResourceID = &resourceID
	v.UsedAt = &usedAt
	if v.WarrantyDays > 0 {
		v.Status = "warranty_active"
		until := usedAt.AddDate(0, 0, int(v.WarrantyDays))
		v.WarrantyExpiresAt = &until
	}
	return v
}

func (v *VoucherBuilder) BuildInfra() sqlc.Vouchers {
	return sqlc.Vouchers{
		Code:              v.Code,
		Status:            v.Status,
		ExpiresAt:         pgconv.TimestamptzFromPtr(v.ExpiresAt),
		HasWarranty:       v.WarrantyDays > 0,
		WarrantyDays:      v.WarrantyDays,
		WarrantyExpiresAt: pgconv.TimestamptzFromPtr(v.WarrantyExpiresAt),
		UsedByEmail:       pgconv.TextFromPtr(v.UsedByEmail),
		UsedResourceID:    pgconv.Int8FromPtr(v.UsedResourceID),
		UsedAt:            pgconv.TimestamptzFromPtr(v.UsedAt),
		CreatedAt:         pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
}
