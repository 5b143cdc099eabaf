package customer

import (
	"regexp"
	"strings"

	"atlas-hotel/internal/pkg/errs"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail applies the loose shape check used by every public form.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

type Customer struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// New trims every field; a full name and a well-formed e-mail are required.
func New(fullName, email, phone string) (Customer, error) {
	c := Customer{
		FullName: strings.TrimSpace(fullName),
		Email:    strings.TrimSpace(email),
		Phone:    strings.TrimSpace(phone),
	}
	if c.FullName == "" || !ValidEmail(c.Email) {
		return Customer{}, errs.ErrInvalidCustomer
	}
	return c, nil
}
