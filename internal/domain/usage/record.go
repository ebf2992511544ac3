package usage

import "time"

// Record is the append-only proof that a grant succeeded.
type Record struct {
	ID                   int64
	Email                string
	Code                 string
	ResourceID           int64
	ExternalAccountID    string
	RedeemedAt           time.Time
	IsWarrantyRedemption bool
}

func NewRecord(email, code string, resourceID int64, externalAccountID string, warranty bool, now time.Time) *Record {
	return &Record{
		Email:                email,
		Code:                 code,
		ResourceID:           resourceID,
		ExternalAccountID:    externalAccountID,
		RedeemedAt:           now,
		IsWarrantyRedemption: warranty,
	}
}
