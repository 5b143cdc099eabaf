// Package password hashes and checks the admin dashboard password.
package password

import (
	"atlas-hotel/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

const (
	// MinLength applies to new passwords only; existing hashes are trusted.
	MinLength = 10
	Cost      = 12
)

var (
	ErrTooShort    = errs.New("admin password is too short")
	ErrMalformed   = errs.New("admin password hash is not a bcrypt hash")
	ErrMismatch    = errs.New("admin password does not match")
	ErrNotProvided = errs.New("admin password is empty")
)

// Hash produces the value operators put in ADMIN_PASSWORD_HASH.
func Hash(plain string) (string, error) {
	if len(plain) < MinLength {
		return "", ErrTooShort
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", errs.Wrap(err, "hash admin password")
	}
	return string(hashed), nil
}

// ValidateHash rejects configured values bcrypt cannot read, so a typo in
// ADMIN_PASSWORD_HASH fails at start instead of at the first login.
func ValidateHash(hash string) error {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return errs.Mark(errs.Wrap(err, "parse admin password hash"), ErrMalformed)
	}
	return nil
}

func Check(hash, plain string) error {
	if plain == "" {
		return ErrNotProvided
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errs.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return errs.Mark(errs.Wrap(err, "compare admin password"), ErrMalformed)
	}
}
