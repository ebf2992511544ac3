//go:build unit

package commands_test

import (
	"testing"

	"seat-redeem/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
)

func TestFailureCodeClass(t *testing.T) {
	cases := []struct {
		code commands.FailureCode
		want commands.FailureClass
	}{
		{code: commands.CodeVoucherNotFound, want: commands.ClassInputInvalid},
		{code: commands.CodeVoucherExpired, want: commands.ClassInputInvalid},
		{code: commands.CodeVoucherUnavailable, want: commands.ClassInputInvalid},
		{code: commands.CodeVoucherAlreadyUsed, want: commands.ClassInputInvalid},
		{code: commands.CodeWarrantyRejected, want: commands.ClassInputInvalid},
		{code: commands.CodeInvalidEmail, want: commands.ClassInputInvalid},
		{code: commands.CodeResourceNotFound, want: commands.ClassResourceUnavailable},
		{code: commands.CodeResourceFull, want: commands.ClassResourceUnavailable},
		{code: commands.CodeResourceInactive, want: commands.ClassResourceUnavailable},
		{code: commands.CodeNoResourceAvailable, want: commands.ClassResourceUnavailable},
		{code: commands.CodeGrantRetryable, want: commands.ClassTransientExternal},
		{code: commands.CodeGrantFatal, want: commands.ClassFatalExternal},
		{code: commands.CodeCredentialInvalid, want: commands.ClassFatalExternal},
		{code: commands.CodeSystemError, want: commands.ClassSystem},
		{code: commands.FailureCode("unheard_of"), want: commands.ClassSystem},
	}
	for _, tc := range cases {
		t.Run(string(tc.code), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.code.Class())
		})
	}
}
