package commands

import (
	"context"

	"seat-redeem/internal/domain/grant"
	"seat-redeem/internal/usecase/shared"
)

type CredentialDecrypter interface {
	DecryptCredential(blob []byte) (string, error)
}

// GrantClient never returns a Go error: every outcome, including transport
// failures, is folded into the result.
type GrantClient interface {
	SendGrant(ctx context.Context, secret, externalAccountID, email string) grant.Result
}

type WarrantyDecision struct {
	CanReuse bool
	Reason   string
}

// WarrantyPolicy runs inside the reserve transaction, after the voucher row is locked.
type WarrantyPolicy interface {
	ValidateWarrantyReuse(ctx context.Context, tx shared.Tx, code, email string) (WarrantyDecision, error)
}
