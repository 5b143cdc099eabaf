//go:build unit

package commands_test

import (
	"path/filepath"
	"testing"
	"time"

	"atlas-hotel/internal/domain/booking"
	"atlas-hotel/internal/domain/pricing"
	"atlas-hotel/internal/infra/filestore"
	"atlas-hotel/internal/pkg/clock"
	"atlas-hotel/internal/pkg/metrics"
	"atlas-hotel/internal/pkg/ref"
	"atlas-hotel/internal/usecase/commands"
	sharedmock "atlas-hotel/tests/mock/shared"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testRecipients = commands.Recipients{
	Booking:    "reservations@hotel-atlas.example",
	Contact:    "contact@hotel-atlas.example",
	Newsletter: "newsletter@hotel-atlas.example",
}

// fixture wires the commands against a JSON store in a temp dir and mocked
// integrations.
type fixture struct {
	store     *filestore.Store
	clock     *clock.MockClock
	refs      *ref.Sequence
	metrics   *metrics.Metrics
	mailer    *sharedmock.MockMailer
	gateway   *sharedmock.MockPaymentGateway
	publisher *sharedmock.MockEventPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store, err := filestore.Open(filepath.Join(t.TempDir(), "hotel-db.json"))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	return &fixture{
		store:     store,
		clock:     clock.NewMockClock(time.Date(2026, time.June, 1, 9, 30, 0, 0, time.UTC)),
		refs:      &ref.Sequence{},
		metrics:   metrics.New(),
		mailer:    sharedmock.NewMockMailer(ctrl),
		gateway:   sharedmock.NewMockPaymentGateway(ctrl),
		publisher: sharedmock.NewMockEventPublisher(ctrl),
	}
}

func (f *fixture) bookingCommands() commands.BookingCommands {
	factory := booking.NewFactory(f.clock, f.refs, pricing.NewDefaultCalculator())
	return commands.NewBookingCommands(f.store, factory, f.mailer, f.publisher, testRecipients, f.metrics, f.clock)
}

func (f *fixture) inquiryCommands() commands.InquiryCommands {
	return commands.NewInquiryCommands(f.store, f.refs, f.mailer, f.publisher, testRecipients, f.metrics, f.clock)
}

func (f *fixture) paymentCommands() commands.PaymentCommands {
	return commands.NewPaymentCommands(f.store, f.gateway, f.publisher, "https://hotel-atlas.example/", f.metrics, f.clock)
}

func weekendStay(roomType string) pricing.StayRequest {
	return pricing.StayRequest{
		CheckIn:  "2026-07-11",
		CheckOut: "2026-07-13",
		RoomType: roomType,
		Guests:   2,
		Addons:   []string{"breakfast"},
	}
}

func bookingRequest(roomType string) commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		FullName: " Jeanne Martin ",
		Email:    "jeanne@example.com",
		Phone:    "+33 6 12 34 56 78",
		Stay:     weekendStay(roomType),
	}
}
