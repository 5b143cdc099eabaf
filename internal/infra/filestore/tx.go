package filestore

import (
	"context"

	"atlas-hotel/internal/domain/analytics"
	"atlas-hotel/internal/domain/availability"
	"atlas-hotel/internal/domain/booking"
	"atlas-hotel/internal/domain/contact"
	"atlas-hotel/internal/domain/newsletter"
	"atlas-hotel/internal/infra"
	"atlas-hotel/internal/infra/converter"
	"atlas-hotel/internal/pkg/caldate"
	"atlas-hotel/internal/usecase/shared"
)

type fileTx struct {
	doc   *document
	limit int
	dirty bool
}

func (t *fileTx) Bookings() shared.BookingRepository  { return &bookingRepo{tx: t} }
func (t *fileTx) Inquiries() shared.InquiryRepository { return &inquiryRepo{tx: t} }

type bookingRepo struct {
	tx *fileTx
}

// LockInventory is a no-op: Within already holds the store's write lock.
func (r *bookingRepo) LockInventory(context.Context) error {
	return nil
}

func (r *bookingRepo) Stays(_ context.Context, checkIn, checkOut caldate.Date) ([]availability.Stay, error) {
	return overlappingStays(r.tx.doc.Bookings, checkIn, checkOut), nil
}

func (r *bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if indexOf(r.tx.doc.Bookings, b.ID()) >= 0 {
		return infra.WrapRepoErr("booking "+b.ID()+" already exists", nil, infra.KindDuplicateKey)
	}
	r.tx.doc.Bookings = prepend(r.tx.doc.Bookings, converter.BookingToRecord(b), r.tx.limit)
	r.tx.dirty = true
	return nil
}

func (r *bookingRepo) GetForUpdate(_ context.Context, id string) (*booking.Booking, error) {
	i := indexOf(r.tx.doc.Bookings, id)
	if i < 0 {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return converter.RecordToBooking(r.tx.doc.Bookings[i]), nil
}

func (r *bookingRepo) Update(_ context.Context, b *booking.Booking) error {
	i := indexOf(r.tx.doc.Bookings, b.ID())
	if i < 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	r.tx.doc.Bookings[i] = converter.BookingToRecord(b)
	r.tx.dirty = true
	return nil
}

type inquiryRepo struct {
	tx *fileTx
}

func (r *inquiryRepo) CreateContact(_ context.Context, m contact.Message) error {
	r.tx.doc.Contacts = prepend(r.tx.doc.Contacts, m, r.tx.limit)
	r.tx.dirty = true
	return nil
}

func (r *inquiryRepo) CreateSubscription(_ context.Context, s newsletter.Subscription) error {
	r.tx.doc.Newsletter = prepend(r.tx.doc.Newsletter, s, r.tx.limit)
	r.tx.dirty = true
	return nil
}

func (r *inquiryRepo) CreateEvent(_ context.Context, e analytics.Event) error {
	r.tx.doc.Analytics = prepend(r.tx.doc.Analytics, e, r.tx.limit)
	r.tx.dirty = true
	return nil
}

func indexOf(records []converter.BookingRecord, id string) int {
	for i := range records {
		if records[i].ID == id {
			return i
		}
	}
	return -1
}

func overlappingStays(records []converter.BookingRecord, checkIn, checkOut caldate.Date) []availability.Stay {
	stays := make([]availability.Stay, 0)
	for _, rec := range records {
		stay := converter.RecordToBooking(rec).Stay()
		if stay.CheckIn.IsZero() || stay.CheckOut.IsZero() {
			continue
		}
		if availability.Overlaps(stay.CheckIn, stay.CheckOut, checkIn, checkOut) {
			stays = append(stays, stay)
		}
	}
	return stays
}
