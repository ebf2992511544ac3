//go:build unit

package user_test

import (
	"testing"

	"seat-redeem/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		want  string
		errIs error
	}{
		{name: "valid email", in: "someone@example.com", want: "someone@example.com"},
		{name: "trimmed and lower-cased", in: "  Some.One@Example.COM ", want: "some.one@example.com"},
		{name: "empty", in: "", errIs: user.ErrInvalidEmail},
		{name: "missing domain", in: "someone@", errIs: user.ErrInvalidEmail},
		{name: "missing tld", in: "someone@example", errIs: user.ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := user.NewEmail(tc.in)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Value())
		})
	}
}

func TestRole(t *testing.T) {
	role, err := user.NewRole("admin")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, role)

	_, err = user.NewRole("viewer")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestOperator(t *testing.T) {
	username, err := user.NewUsername(" admin ")
	require.NoError(t, err)

	op := user.NewOperator(username, "hash", user.RoleAdmin)
	assert.Equal(t, "admin", op.Username().Value())
	assert.Equal(t, "hash", op.PasswordHash())
	assert.Equal(t, user.RoleAdmin, op.Role())

	_, err = user.NewUsername("   ")
	assert.ErrorIs(t, err, user.ErrEmptyUsername)
}
