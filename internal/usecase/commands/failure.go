package commands

import (
	"errors"
	"fmt"
)

type FailureCode string

const (
	CodeVoucherNotFound    FailureCode = "voucher_not_found"
	CodeVoucherExpired     FailureCode = "voucher_expired"
	CodeVoucherUnavailable FailureCode = "voucher_unavailable"
	CodeVoucherAlreadyUsed FailureCode = "voucher_already_used"
	CodeWarrantyRejected   FailureCode = "warranty_rejected"
	CodeInvalidEmail       FailureCode = "invalid_email"

	CodeResourceNotFound    FailureCode = "resource_not_found"
	CodeResourceFull        FailureCode = "resource_full"
	CodeResourceInactive    FailureCode = "resource_inactive"
	CodeNoResourceAvailable FailureCode = "no_resource_available"

	CodeGrantRetryable FailureCode = "grant_retryable"

	CodeGrantFatal        FailureCode = "grant_fatal"
	CodeCredentialInvalid FailureCode = "credential_invalid"

	CodeSystemError FailureCode = "system_error"
)

type FailureClass int

const (
	ClassInputInvalid FailureClass = iota + 1
	ClassResourceUnavailable
	ClassTransientExternal
	ClassFatalExternal
	ClassSystem
)

func (c FailureCode) Class() FailureClass {
	switch c {
	case CodeVoucherNotFound, CodeVoucherExpired, CodeVoucherUnavailable, CodeVoucherAlreadyUsed, CodeWarrantyRejected, CodeInvalidEmail:
		return ClassInputInvalid
	case CodeResourceNotFound, CodeResourceFull, CodeResourceInactive, CodeNoResourceAvailable:
		return ClassResourceUnavailable
	case CodeGrantRetryable:
		return ClassTransientExternal
	case CodeGrantFatal, CodeCredentialInvalid:
		return ClassFatalExternal
	default:
		return ClassSystem
	}
}

// Failure is the typed error of the redemption flow. Reason is safe to show
// to the requester; cause is kept for logs only.
type Failure struct {
	Code   FailureCode
	Reason string
	cause  error
}

func newFailure(code FailureCode, reason string, cause error) *Failure {
	return &Failure{Code: code, Reason: reason, cause: cause}
}

func (f *Failure) Error() string {
	if f.cause != nil {
		return fmt.Sprintf("%s: %s: %v", f.Code, f.Reason, f.cause)
	}
	return fmt.Sprintf("%s: %s", f.Code, f.Reason)
}

func (f *Failure) Unwrap() error {
	return f.cause
}

func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

func systemFailure(err error) *Failure {
	return newFailure(CodeSystemError, "redemption failed due to an internal error", err)
}
