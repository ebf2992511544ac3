package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrMalformedHash    = errors.New("not a bcrypt hash")
	ErrWeakHash         = errors.New("bcrypt cost below minimum")
)

const (
	DefaultCost = bcrypt.DefaultCost
	// hashes minted with bcrypt.MinCost are only acceptable in tests
	MinAcceptedCost = bcrypt.MinCost
)

func HashPassword(password string) (string, error) {
	return HashPasswordWithCost(password, DefaultCost)
}

func HashPasswordWithCost(password string, cost int) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

// ValidateHash checks a configured operator hash before the server accepts logins with it.
func ValidateHash(hashedPassword string) error {
	cost, err := bcrypt.Cost([]byte(hashedPassword))
	if err != nil {
		return ErrMalformedHash
	}
	if cost < MinAcceptedCost {
		return ErrWeakHash
	}
	return nil
}

func ComparePassword(hashedPassword, password string) error {
	if hashedPassword == "" || password == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}
