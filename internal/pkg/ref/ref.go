// Package ref generates the short public references ("ATL-1A2B3C4D") that
// identify bookings, contact messages, newsletter sign-ups and events.
package ref

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	PrefixBooking    = "ATL"
	PrefixContact    = "CNT"
	PrefixNewsletter = "NWS"
	PrefixEvent      = "EVT"
)

type Generator interface {
	Next(prefix string) string
}

type UUIDGenerator struct{}

func NewUUIDGenerator() Generator {
	return UUIDGenerator{}
}

func (UUIDGenerator) Next(prefix string) string {
	id := uuid.New()
	return prefix + "-" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
}

// Sequence hands out predictable references for tests.
type Sequence struct {
	n int
}

func (s *Sequence) Next(prefix string) string {
	s.n++
	return fmt.Sprintf("%s-%08d", prefix, s.n)
}
