//go:build unit

package ref_test

import (
	"regexp"
	"testing"

	"atlas-hotel/internal/pkg/ref"

	"github.com/stretchr/testify/assert"
)

func TestUUIDGenerator(t *testing.T) {
	gen := ref.NewUUIDGenerator()
	pattern := regexp.MustCompile(`^ATL-[0-9A-F]{8}$`)

	seen := map[string]bool{}
	for range 50 {
		id := gen.Next(ref.PrefixBooking)
		assert.Regexp(t, pattern, id)
		assert.False(t, seen[id], "duplicate reference %s", id)
		seen[id] = true
	}
}

func TestSequence(t *testing.T) {
	var seq ref.Sequence
	assert.Equal(t, "CNT-00000001", seq.Next(ref.PrefixContact))
	assert.Equal(t, "EVT-00000002", seq.Next(ref.PrefixEvent))
}
