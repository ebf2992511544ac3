package response

import (
	"time"

	"seat-redeem/internal/usecase/commands"
	"seat-redeem/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type VoucherResponse struct {
	Code              string     `json:"code"`
	Status            string     `json:"status"`
	ExpiresAt         *time.Time `json:"expires_at,omitempty"`
	HasWarranty       bool       `json:"has_warranty"`
	WarrantyDays      int        `json:"warranty_days"`
	WarrantyExpiresAt *time.Time `json:"warranty_expires_at,omitempty"`
	UsedByEmail       *string    `json:"used_by_email,omitempty"`
	UsedResourceID    *int64     `json:"used_resource_id,omitempty"`
	UsedAt            *time.Time `json:"used_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// FromGeneratedVoucher maps a freshly created voucher; status is always unused.
func FromGeneratedVoucher(v *commands.GeneratedVoucher) (*VoucherResponse, error) {
	res := &VoucherResponse{Status: "unused"}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	return res, nil
}

func FromGeneratedVouchers(vs []commands.GeneratedVoucher) ([]*VoucherResponse, error) {
	res := make([]*VoucherResponse, 0, len(vs))
	for i := range vs {
		r, err := FromGeneratedVoucher(&vs[i])
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}

func FromVoucherViews(vs []*queries.VoucherView) ([]*VoucherResponse, error) {
	res := make([]*VoucherResponse, 0, len(vs))
	if err := copier.Copy(&res, vs); err != nil {
		return nil, err
	}
	return res, nil
}

type UsageRecordResponse struct {
	ID                   int64     `json:"id"`
	Email                string    `json:"email"`
	Code                 string    `json:"code"`
	ResourceID           int64     `json:"resource_id"`
	ExternalAccountID    string    `json:"external_account_id"`
	RedeemedAt           time.Time `json:"redeemed_at"`
	IsWarrantyRedemption bool      `json:"is_warranty_redemption"`
}

func FromUsageRecordViews(vs []*queries.UsageRecordView) ([]*UsageRecordResponse, error) {
	res := make([]*UsageRecordResponse, 0, len(vs))
	if err := copier.Copy(&res, vs); err != nil {
		return nil, err
	}
	return res, nil
}

type ListResponse[T any] struct {
	Items  []T `json:"items"`
	Count  int `json:"count"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func NewListResponse[T any](items []T, page queries.Page) ListResponse[T] {
	page = page.Normalize()
	return ListResponse[T]{
		Items:  items,
		Count:  len(items),
		Limit:  page.Limit,
		Offset: page.Offset,
	}
}
