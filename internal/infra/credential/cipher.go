package credential

import (
	"crypto/rand"

	"seat-redeem/internal/pkg/config"
	"seat-redeem/internal/pkg/errs"

	"golang.org/x/crypto/chacha20poly1305"
)

var (
	ErrDecryptionFailed = errs.New("credential decryption failed")
	ErrInvalidKey       = errs.New("credential key must be 32 bytes")
)

// Cipher seals provider access tokens as nonce||ciphertext with XChaCha20-Poly1305.
type Cipher struct {
	key []byte
}

func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, ErrInvalidKey
	}
	return &Cipher{key: key}, nil
}

func NewCipherFromConfig(cfg config.Config) (*Cipher, error) {
	key, err := cfg.Credential.DecodeKey()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidKey)
	}
	return NewCipher(key)
}

func (c *Cipher) DecryptCredential(sealed []byte) (string, error) {
	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return "", errs.Mark(err, ErrDecryptionFailed)
	}
	if len(sealed) < aead.NonceSize()+aead.Overhead() {
		return "", ErrDecryptionFailed
	}

	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", errs.Mark(err, ErrDecryptionFailed)
	}
	return string(plain), nil
}

// EncryptCredential seals a token for storage in resources.credential_encrypted.
func (c *Cipher) EncryptCredential(secret string) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return nil, errs.Wrap(err, "init cipher")
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(secret)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, errs.Wrap(err, "generate nonce")
	}
	return aead.Seal(nonce, nonce, []byte(secret), nil), nil
}
