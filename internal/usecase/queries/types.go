package queries

import (
	"time"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

// VoucherView represents read-optimized voucher data
type VoucherView struct {
	Code              string     `json:"code"`
	Status            string     `json:"status"`
	ExpiresAt         *time.Time `json:"expires_at,omitempty"`
	HasWarranty       bool       `json:"has_warranty"`
	WarrantyDays      int32      `json:"warranty_days"`
	WarrantyExpiresAt *time.Time `json:"warranty_expires_at,omitempty"`
	UsedByEmail       *string    `json:"used_by_email,omitempty"`
	UsedResourceID    *int64     `json:"used_resource_id,omitempty"`
	UsedAt            *time.Time `json:"used_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// ResourceView is the admin view of a seat pool. Credentials never leave the store.
type ResourceView struct {
	ID                int64      `json:"id"`
	Name              string     `json:"name"`
	Status            string     `json:"status"`
	CurrentMembers    int32      `json:"current_members"`
	MaxMembers        int32      `json:"max_members"`
	ExpiresAt         *time.Time `json:"expires_at,omitempty"`
	ExternalAccountID string     `json:"external_account_id"`
	SubscriptionPlan  *string    `json:"subscription_plan,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// AvailableResourceView is what a requester may see before redeeming.
type AvailableResourceView struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	CurrentMembers   int32      `json:"current_members"`
	MaxMembers       int32      `json:"max_members"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty"`
	SubscriptionPlan *string    `json:"subscription_plan,omitempty"`
}

type UsageRecordView struct {
	ID                   int64     `json:"id"`
	Email                string    `json:"email"`
	Code                 string    `json:"code"`
	ResourceID           int64     `json:"resource_id"`
	ExternalAccountID    string    `json:"external_account_id"`
	RedeemedAt           time.Time `json:"redeemed_at"`
	IsWarrantyRedemption bool      `json:"is_warranty_redemption"`
}

type UsageRecordFilters struct {
	Email      *string
	Code       *string
	ResourceID *int64
}

type Page struct {
	Limit  int
	Offset int
}

// Normalize clamps the page to sane bounds.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultListLimit
	}
	if p.Limit > MaxListLimit {
		p.Limit = MaxListLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
