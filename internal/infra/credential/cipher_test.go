//go:build unit

package credential_test

import (
	"bytes"
	"testing"

	"seat-redeem/internal/infra/credential"
	"seat-redeem/internal/pkg/config"
	"seat-redeem/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCipher(t *testing.T) *credential.Cipher {
	t.Helper()
	c, err := credential.NewCipherFromConfig(config.NewTestConfig())
	require.NoError(t, err)
	return c
}

func TestCipherRoundTrip(t *testing.T) {
	c := newTestCipher(t)

	sealed, err := c.EncryptCredential("provider-token")
	require.NoError(t, err)
	assert.False(t, bytes.Contains(sealed, []byte("provider-token")))

	plain, err := c.DecryptCredential(sealed)
	require.NoError(t, err)
	assert.Equal(t, "provider-token", plain)

	again, err := c.EncryptCredential("provider-token")
	require.NoError(t, err)
	assert.NotEqual(t, sealed, again, "nonce must differ per seal")
}

func TestCipherRejectsTampering(t *testing.T) {
	c := newTestCipher(t)
	sealed, err := c.EncryptCredential("provider-token")
	require.NoError(t, err)

	tests := []struct {
		name string
		blob []byte
	}{
		{name: "empty", blob: nil},
		{name: "truncated", blob: sealed[:10]},
		{name: "flipped byte", blob: func() []byte {
			b := bytes.Clone(sealed)
			b[len(b)-1] ^= 0xff
			return b
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.DecryptCredential(tt.blob)
			assert.True(t, errs.Is(err, credential.ErrDecryptionFailed), "got %v", err)
		})
	}

	t.Run("other key", func(t *testing.T) {
		other, err := credential.NewCipher(bytes.Repeat([]byte{7}, 32))
		require.NoError(t, err)
		_, err = other.DecryptCredential(sealed)
		assert.True(t, errs.Is(err, credential.ErrDecryptionFailed))
	})
}

func TestNewCipherKeyValidation(t *testing.T) {
	_, err := credential.NewCipher([]byte("short"))
	assert.True(t, errs.Is(err, credential.ErrInvalidKey))

	cfg := config.NewTestConfig()
	cfg.Credential.Key = "not base64!"
	_, err = credential.NewCipherFromConfig(cfg)
	assert.True(t, errs.Is(err, credential.ErrInvalidKey))
}
