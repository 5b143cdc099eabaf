package repository

import (
	"context"

	"atlas-hotel/internal/domain/availability"
	"atlas-hotel/internal/domain/booking"
	"atlas-hotel/internal/infra"
	"atlas-hotel/internal/infra/converter"
	"atlas-hotel/internal/infra/db"
	"atlas-hotel/internal/pkg/caldate"
	"atlas-hotel/internal/pkg/pgconv"
)

const (
	lockInventorySQL = `SELECT pg_advisory_xact_lock(hashtext('atlas-hotel.inventory'))`

	overlappingBookingsSQL = `SELECT ` + converter.BookingColumns + `
FROM bookings
WHERE check_in < $2 AND check_out > $1`

	bookingForUpdateSQL = `SELECT ` + converter.BookingColumns + `
FROM bookings
WHERE id = $1
FOR UPDATE`

	insertBookingSQL = `INSERT INTO bookings (
	id, created_at, updated_at, status, payment_status, stripe_checkout_session_id,
	room_type, check_in, check_out, search_text, payload, estimate
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	updateBookingSQL = `UPDATE bookings SET
	updated_at = $2,
	status = $3,
	payment_status = $4,
	stripe_checkout_session_id = $5,
	search_text = $6,
	payload = $7,
	estimate = $8
WHERE id = $1`
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

// LockInventory takes a transaction-scoped advisory lock shared by every
// booking insert, so two requests cannot both see the last room as free.
func (r *BookingRepository) LockInventory(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, lockInventorySQL); err != nil {
		return infra.WrapRepoErr("failed to lock inventory", err)
	}
	return nil
}

func (r *BookingRepository) Stays(ctx context.Context, checkIn, checkOut caldate.Date) ([]availability.Stay, error) {
	return queryStays(ctx, r.db, checkIn, checkOut)
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	rec := converter.BookingToRecord(b)
	stay := b.Stay()

	_, err := r.db.Exec(ctx, insertBookingSQL,
		rec.ID,
		rec.CreatedAt,
		rec.UpdatedAt,
		rec.Status,
		rec.PaymentStatus,
		rec.StripeCheckoutSessionID,
		b.RoomType().String(),
		pgconv.DateFromCalendar(stay.CheckIn),
		pgconv.DateFromCalendar(stay.CheckOut),
		b.SearchText(),
		rec.Payload,
		rec.Estimate,
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("booking "+rec.ID+" already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	return nil
}

func (r *BookingRepository) GetForUpdate(ctx context.Context, id string) (*booking.Booking, error) {
	rec, err := converter.ScanBookingRecord(r.db.QueryRow(ctx, bookingForUpdateSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load booking for update", err)
	}
	return converter.RecordToBooking(rec), nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	rec := converter.BookingToRecord(b)

	tag, err := r.db.Exec(ctx, updateBookingSQL,
		rec.ID,
		rec.UpdatedAt,
		rec.Status,
		rec.PaymentStatus,
		rec.StripeCheckoutSessionID,
		b.SearchText(),
		rec.Payload,
		rec.Estimate,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func queryStays(ctx context.Context, dbtx db.DBTX, checkIn, checkOut caldate.Date) ([]availability.Stay, error) {
	rows, err := dbtx.Query(ctx, overlappingBookingsSQL,
		pgconv.DateFromCalendar(checkIn),
		pgconv.DateFromCalendar(checkOut),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query overlapping bookings", err)
	}
	defer rows.Close()

	stays := make([]availability.Stay, 0)
	for rows.Next() {
		rec, err := converter.ScanBookingRecord(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		stays = append(stays, converter.RecordToBooking(rec).Stay())
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return stays, nil
}
