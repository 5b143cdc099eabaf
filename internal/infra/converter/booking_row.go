package converter

import (
	"atlas-hotel/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// BookingColumns lists the bookings columns ScanBookingRecord expects, in order.
const BookingColumns = `id, created_at, updated_at, status, payment_status,
	stripe_checkout_session_id, payload, estimate`

// ScanBookingRecord reads one bookings row; payload and estimate are decoded
// from JSONB into the same structs the file store writes.
func ScanBookingRecord(row pgx.Row) (BookingRecord, error) {
	var (
		rec       BookingRecord
		updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&rec.ID,
		&rec.CreatedAt,
		&updatedAt,
		&rec.Status,
		&rec.PaymentStatus,
		&rec.StripeCheckoutSessionID,
		&rec.Payload,
		&rec.Estimate,
	)
	if err != nil {
		return BookingRecord{}, err
	}
	rec.UpdatedAt = pgconv.TimePtrFromTimestamptz(updatedAt)
	return rec, nil
}
