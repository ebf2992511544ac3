package voucher

import (
	"errors"
	"time"
)

var (
	ErrExpired       = errors.New("voucher expired")
	ErrAlreadyUsed   = errors.New("voucher already used")
	ErrReserved      = errors.New("voucher reserved")
	ErrNotRedeemable = errors.New("voucher not redeemable")
)

type Voucher struct {
	code              Code
	status            Status
	expiresAt         *time.Time
	hasWarranty       bool
	warrantyDays      int
	warrantyExpiresAt *time.Time
	usedByEmail       *string
	usedResourceID    *int64
	usedAt            *time.Time
	createdAt         time.Time
}

type Assignment struct {
	Email      string
	ResourceID int64
	At         time.Time
}

// New creates an unused voucher. expiryDays and warrantyDays of zero mean
// "never expires" and "no warranty".
func New(code Code, expiryDays, warrantyDays int, now time.Time) (*Voucher, error) {
	if expiryDays < 0 {
		return nil, ErrInvalidExpiryDays
	}
	if warrantyDays < 0 {
		return nil, ErrInvalidWarrantyDays
	}

	v := &Voucher{
		code:         code,
		status:       StatusUnused,
		hasWarranty:  warrantyDays > 0,
		warrantyDays: warrantyDays,
		createdAt:    now,
	}
	if expiryDays > 0 {
		exp := now.AddDate(0, 0, expiryDays)
		v.expiresAt = &exp
	}
	return v, nil
}

type ReconstructParams struct {
	Code              string
	Status            string
	ExpiresAt         *time.Time
	HasWarranty       bool
	WarrantyDays      int
	WarrantyExpiresAt *time.Time
	UsedByEmail       *string
	UsedResourceID    *int64
	UsedAt            *time.Time
	CreatedAt         time.Time
}

// Reconstruct rebuilds a voucher from storage without applying creation rules.
func Reconstruct(p ReconstructParams) (*Voucher, error) {
	status, err := NewStatus(p.Status)
	if err != nil {
		return nil, err
	}
	return &Voucher{
		code:              Code{value: p.Code},
		status:            status,
		expiresAt:         p.ExpiresAt,
		hasWarranty:       p.HasWarranty,
		warrantyDays:      p.WarrantyDays,
		warrantyExpiresAt: p.WarrantyExpiresAt,
		usedByEmail:       p.UsedByEmail,
		usedResourceID:    p.UsedResourceID,
		usedAt:            p.UsedAt,
		createdAt:         p.CreatedAt,
	}, nil
}

// CheckRedeemable reports whether the voucher may enter a redemption.
// An unused voucher past its expiry is moved to expired; the caller must
// persist it when expiredNow is true.
func (v *Voucher) CheckRedeemable(now time.Time) (expiredNow bool, err error) {
	switch v.status {
	case StatusUnused:
		if v.expiresAt != nil && v.expiresAt.Before(now) {
			v.status = StatusExpired
			return true, ErrExpired
		}
		return false, nil
	case StatusWarrantyActive:
		return false, nil
	case StatusExpired:
		return false, ErrExpired
	case StatusUsed:
		return false, ErrAlreadyUsed
	case StatusReserved:
		return false, ErrReserved
	default:
		return false, ErrNotRedeemable
	}
}

func (v *Voucher) IsUnused() bool {
	return v.status == StatusUnused
}

// IsWarrantyReusable is the structural half of the re-grant rule; the
// warranty policy decides the rest.
func (v *Voucher) IsWarrantyReusable() bool {
	return v.hasWarranty && v.status == StatusWarrantyActive
}

func (v *Voucher) WarrantyWindowOpen(now time.Time) bool {
	if !v.hasWarranty {
		return false
	}
	return v.warrantyExpiresAt == nil || v.warrantyExpiresAt.After(now)
}

// Assign records the grant intent. Warranty vouchers start their warranty
// window on first use and keep it on re-grants.
func (v *Voucher) Assign(a Assignment) {
	if v.hasWarranty {
		v.status = StatusWarrantyActive
		if v.warrantyExpiresAt == nil {
			exp := a.At.AddDate(0, 0, v.warrantyDays)
			v.warrantyExpiresAt = &exp
		}
	} else {
		v.status = StatusUsed
	}
	v.stamp(a)
}

// RestoreTo puts a warranty voucher back on its last successful grant.
func (v *Voucher) RestoreTo(a Assignment) {
	v.status = StatusWarrantyActive
	v.stamp(a)
}

func (v *Voucher) Revert() {
	v.status = StatusUnused
	v.usedByEmail = nil
	v.usedResourceID = nil
	v.usedAt = nil
	v.warrantyExpiresAt = nil
}

// HeldBy reports whether v is currently assigned exactly as a says. Times
// compare at the microsecond precision the store keeps.
func (v *Voucher) HeldBy(a Assignment) bool {
	switch v.status {
	case StatusReserved, StatusUsed, StatusWarrantyActive:
	default:
		return false
	}
	if v.usedByEmail == nil || v.usedResourceID == nil || v.usedAt == nil {
		return false
	}
	return *v.usedByEmail == a.Email &&
		*v.usedResourceID == a.ResourceID &&
		v.usedAt.Truncate(time.Microsecond).Equal(a.At.Truncate(time.Microsecond))
}

func (v *Voucher) stamp(a Assignment) {
	email := a.Email
	resourceID := a.ResourceID
	at := a.At
	v.usedByEmail = &email
	v.usedResourceID = &resourceID
	v.usedAt = &at
}

func (v *Voucher) Code() Code                    { return v.code }
func (v *Voucher) Status() Status                { return v.status }
func (v *Voucher) ExpiresAt() *time.Time         { return v.expiresAt }
func (v *Voucher) HasWarranty() bool             { return v.hasWarranty }
func (v *Voucher) WarrantyDays() int             { return v.warrantyDays }
func (v *Voucher) WarrantyExpiresAt() *time.Time { return v.warrantyExpiresAt }
func (v *Voucher) UsedByEmail() *string          { return v.usedByEmail }
func (v *Voucher) UsedResourceID() *int64        { return v.usedResourceID }
func (v *Voucher) UsedAt() *time.Time            { return v.usedAt }
func (v *Voucher) CreatedAt() time.Time          { return v.createdAt }
