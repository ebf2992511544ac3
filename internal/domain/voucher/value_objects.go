package voucher

import (
	"crypto/rand"
	"errors"
	"math/big"
	"regexp"
	"strings"
)

var (
	ErrInvalidCode         = errors.New("invalid voucher code")
	ErrInvalidStatus       = errors.New("invalid voucher status")
	ErrInvalidExpiryDays   = errors.New("expiry days must be positive")
	ErrInvalidWarrantyDays = errors.New("warranty days must be positive")
)

// Generated codes avoid 0/O and 1/I.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	codeGroups    = 4
	codeGroupSize = 4
	maxCodeLength = 64
)

var customCodeRegex = regexp.MustCompile(`^[A-Z0-9][A-Z0-9\-]*$`)

type Code struct {
	value string
}

// NewCode accepts a caller-supplied code, normalised to upper case.
func NewCode(s string) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" || len(s) > maxCodeLength || !customCodeRegex.MatchString(s) {
		return Code{}, ErrInvalidCode
	}
	return Code{value: s}, nil
}

// GenerateCode returns a random XXXX-XXXX-XXXX-XXXX code.
func GenerateCode() (Code, error) {
	var b strings.Builder
	b.Grow(codeGroups*codeGroupSize + codeGroups - 1)
	limit := big.NewInt(int64(len(codeAlphabet)))

	for g := 0; g < codeGroups; g++ {
		if g > 0 {
			b.WriteByte('-')
		}
		for i := 0; i < codeGroupSize; i++ {
			n, err := rand.Int(rand.Reader, limit)
			if err != nil {
				return Code{}, err
			}
			b.WriteByte(codeAlphabet[n.Int64()])
		}
	}
	return Code{value: b.String()}, nil
}

func (c Code) Value() string {
	return c.value
}

func (c Code) String() string {
	return c.value
}
