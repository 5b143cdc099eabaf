//go:build unit

package customer_test

import (
	"testing"

	"atlas-hotel/internal/domain/customer"
	"atlas-hotel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidEmail(t *testing.T) {
	for email, want := range map[string]bool{
		"guest@example.com":   true,
		"a.b+c@hotel.fr":      true,
		"":                    false,
		"guest@example":       false,
		"guest example@x.com": false,
		"@example.com":        false,
		"guest@@example.com":  false,
	} {
		assert.Equal(t, want, customer.ValidEmail(email), email)
	}
}

func TestNew(t *testing.T) {
	t.Run("trims fields", func(t *testing.T) {
		c, err := customer.New("  Jeanne Martin ", " jeanne@example.com ", " +33 6 00 00 00 00 ")
		require.NoError(t, err)
		assert.Equal(t, customer.Customer{FullName: "Jeanne Martin", Email: "jeanne@example.com", Phone: "+33 6 00 00 00 00"}, c)
	})

	t.Run("phone is optional", func(t *testing.T) {
		_, err := customer.New("Jeanne", "jeanne@example.com", "")
		assert.NoError(t, err)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := customer.New("   ", "jeanne@example.com", "")
		assert.ErrorIs(t, err, errs.ErrInvalidCustomer)
	})

	t.Run("malformed email", func(t *testing.T) {
		_, err := customer.New("Jeanne", "jeanne.example.com", "")
		assert.ErrorIs(t, err, errs.ErrInvalidCustomer)
	})
}
