//go:build unit

package filestore_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"atlas-hotel/internal/domain/booking"
	"atlas-hotel/internal/domain/contact"
	"atlas-hotel/internal/domain/customer"
	"atlas-hotel/internal/domain/pricing"
	"atlas-hotel/internal/infra"
	"atlas-hotel/internal/infra/filestore"
	"atlas-hotel/internal/pkg/caldate"
	"atlas-hotel/internal/pkg/clock"
	"atlas-hotel/internal/pkg/errs"
	"atlas-hotel/internal/pkg/ref"
	"atlas-hotel/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	ctx     context.Context
	path    string
	store   *filestore.Store
	factory *booking.Factory
	now     time.Time
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.path = filepath.Join(s.T().TempDir(), "data", "hotel-db.json")
	s.now = time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

	store, err := filestore.Open(s.path)
	s.Require().NoError(err)
	s.store = store
	s.factory = booking.NewFactory(clock.NewMockClock(s.now), ref.NewUUIDGenerator(), pricing.NewDefaultCalculator())
}

func (s *StoreTestSuite) newBooking(roomType, checkIn, checkOut string) *booking.Booking {
	cust := customer.Customer{FullName: "Jeanne Martin", Email: "jeanne@example.com"}
	b, err := s.factory.Create(cust, pricing.StayRequest{CheckIn: checkIn, CheckOut: checkOut, RoomType: roomType, Guests: 2}, nil)
	s.Require().NoError(err)
	return b
}

func (s *StoreTestSuite) save(b *booking.Booking) {
	err := s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().Create(ctx, b)
	})
	s.Require().NoError(err)
}

func (s *StoreTestSuite) TestOpenCreatesEmptyDocument() {
	raw, err := os.ReadFile(s.path)
	s.Require().NoError(err)
	s.JSONEq(`{"bookings":[],"contacts":[],"newsletter":[],"analytics":[]}`, string(raw))
}

func (s *StoreTestSuite) TestCreateAndRead() {
	b := s.newBooking("suite", "2026-07-11", "2026-07-13")
	s.save(b)

	got, err := s.store.Reads().BookingByID(s.ctx, b.ID())
	s.Require().NoError(err)
	s.Equal(b.ID(), got.ID())
	s.Equal(booking.StatusNew, got.Status())
	s.Equal(b.Customer(), got.Customer())
	s.Equal(b.Estimate().Total, got.Estimate().Total)
	s.Equal(b.Request().CheckIn, got.Request().CheckIn)
	s.True(b.CreatedAt().Equal(got.CreatedAt()))

	reopened, err := filestore.Open(s.path)
	s.Require().NoError(err)
	totals, err := reopened.Reads().Totals(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, totals.Bookings)
}

func (s *StoreTestSuite) TestDuplicateID() {
	b := s.newBooking("suite", "2026-07-11", "2026-07-13")
	s.save(b)

	err := s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().Create(ctx, b)
	})
	s.True(infra.IsKind(err, infra.KindDuplicateKey))
}

func (s *StoreTestSuite) TestFailedTransactionIsDiscarded() {
	b := s.newBooking("suite", "2026-07-11", "2026-07-13")
	err := s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return err
		}
		return errs.New("boom")
	})
	s.Error(err)

	_, err = s.store.Reads().BookingByID(s.ctx, b.ID())
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *StoreTestSuite) TestUpdate() {
	b := s.newBooking("deluxe", "2026-07-11", "2026-07-13")
	s.save(b)

	later := s.now.Add(time.Hour)
	err := s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		got, err := tx.Bookings().GetForUpdate(ctx, b.ID())
		if err != nil {
			return err
		}
		got.StartCheckout("cs_test_1", later)
		return tx.Bookings().Update(ctx, got)
	})
	s.Require().NoError(err)

	got, err := s.store.Reads().BookingByID(s.ctx, b.ID())
	s.Require().NoError(err)
	s.Equal(booking.PaymentPending, got.PaymentStatus())
	s.Equal("cs_test_1", got.CheckoutSessionID())
	s.True(later.Equal(got.UpdatedAt()))

	err = s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Bookings().GetForUpdate(ctx, "ATL-MISSING")
		return err
	})
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *StoreTestSuite) TestStaysOverlapOnly() {
	s.save(s.newBooking("suite", "2026-07-11", "2026-07-13"))
	s.save(s.newBooking("suite", "2026-07-13", "2026-07-15"))

	stays, err := s.store.Reads().Stays(s.ctx, caldate.MustParse("2026-07-12"), caldate.MustParse("2026-07-13"))
	s.Require().NoError(err)
	s.Len(stays, 1)
}

func (s *StoreTestSuite) TestSearchBookings() {
	first := s.newBooking("suite", "2026-07-11", "2026-07-13")
	s.save(first)
	second := s.newBooking("deluxe", "2026-08-01", "2026-08-03")
	s.save(second)

	all, matched, err := s.store.Reads().SearchBookings(s.ctx, shared.BookingFilter{}, 10)
	s.Require().NoError(err)
	s.Equal(2, matched)
	s.Equal(second.ID(), all[0].ID(), "newest first")

	byDate, matched, err := s.store.Reads().SearchBookings(s.ctx, shared.BookingFilter{Query: "2026-08-01"}, 10)
	s.Require().NoError(err)
	s.Equal(1, matched)
	s.Equal(second.ID(), byDate[0].ID())

	limited, matched, err := s.store.Reads().SearchBookings(s.ctx, shared.BookingFilter{}, 1)
	s.Require().NoError(err)
	s.Equal(2, matched)
	s.Len(limited, 1)

	none, matched, err := s.store.Reads().SearchBookings(s.ctx, shared.BookingFilter{Status: booking.StatusCancelled}, 10)
	s.Require().NoError(err)
	s.Zero(matched)
	s.Empty(none)
}

func (s *StoreTestSuite) TestCorruptFileReadsAsEmpty() {
	s.Require().NoError(os.WriteFile(s.path, []byte("{not json"), 0o600))
	totals, err := s.store.Reads().Totals(s.ctx)
	s.Require().NoError(err)
	s.Equal(shared.Totals{}, totals)
}

func TestCollectionCap(t *testing.T) {
	ctx := context.Background()
	store, err := filestore.Open(filepath.Join(t.TempDir(), "db.json"), filestore.WithLimit(3))
	require.NoError(t, err)

	now := time.Now()
	for i := range 5 {
		msg, err := contact.NewMessage(ref.PrefixContact+"-"+string(rune('A'+i)), "Paul", "paul@example.com", "hello", now)
		require.NoError(t, err)
		require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Inquiries().CreateContact(ctx, msg)
		}))
	}

	recent, err := store.Reads().RecentContacts(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "CNT-E", recent[0].ID)
	assert.Equal(t, "CNT-C", recent[2].ID)
}

func TestConcurrentWritesAreSerialized(t *testing.T) {
	ctx := context.Background()
	store, err := filestore.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)
	refs := ref.NewUUIDGenerator()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			msg, err := contact.NewMessage(refs.Next(ref.PrefixContact), "Paul", "paul@example.com", "hello", time.Now())
			if err != nil {
				return
			}
			_ = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				return tx.Inquiries().CreateContact(ctx, msg)
			})
		}()
	}
	wg.Wait()

	totals, err := store.Reads().Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, totals.Contacts)
}
