//go:build unit

package password_test

import (
	"testing"

	"atlas-hotel/internal/pkg/errs"
	"atlas-hotel/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheck(t *testing.T) {
	hash, err := password.Hash("reception-2026")
	require.NoError(t, err)
	require.NoError(t, password.ValidateHash(hash))

	assert.NoError(t, password.Check(hash, "reception-2026"))
	assert.ErrorIs(t, password.Check(hash, "reception-2025"), password.ErrMismatch)
	assert.ErrorIs(t, password.Check(hash, ""), password.ErrNotProvided)
}

func TestHash_TooShort(t *testing.T) {
	_, err := password.Hash("short")
	assert.ErrorIs(t, err, password.ErrTooShort)
}

func TestMalformedHash(t *testing.T) {
	// Marked errors are only visible to errs.Is.
	assert.True(t, errs.Is(password.ValidateHash("plain-text-secret"), password.ErrMalformed))
	assert.True(t, errs.Is(password.Check("plain-text-secret", "reception-2026"), password.ErrMalformed))
}
