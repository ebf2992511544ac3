package shared

import (
	"context"

	"seat-redeem/internal/pkg/errs"
)

var (
	ErrTransactionBegin   = errs.New("failed to begin transaction")
	ErrTransactionCommit  = errs.New("failed to commit transaction")
	ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")
	ErrNestedTransaction  = errs.New("transaction already open in this context")
)

type txMarkerKey struct{}

// WithTxMarker tags ctx as running inside a transaction scope.
func WithTxMarker(ctx context.Context) context.Context {
	return context.WithValue(ctx, txMarkerKey{}, true)
}

func InTx(ctx context.Context) bool {
	v, _ := ctx.Value(txMarkerKey{}).(bool)
	return v
}
