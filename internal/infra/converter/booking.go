package converter

import (
	"time"

	"atlas-hotel/internal/domain/booking"
	"atlas-hotel/internal/domain/customer"
	"atlas-hotel/internal/domain/pricing"
)

// BookingPayload is the submitted form as persisted, customer included.
type BookingPayload struct {
	CheckIn   string   `json:"checkIn"`
	CheckOut  string   `json:"checkOut"`
	RoomType  string   `json:"roomType"`
	Guests    int      `json:"guests"`
	Addon     []string `json:"addon"`
	PromoCode string   `json:"promoCode"`
	FullName  string   `json:"fullName"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
}

// BookingRecord is the stored shape of a booking in the JSON document and
// the unit the Postgres repository maps columns from.
type BookingRecord struct {
	ID                      string           `json:"id"`
	CreatedAt               time.Time        `json:"createdAt"`
	UpdatedAt               *time.Time       `json:"updatedAt,omitempty"`
	Status                  string           `json:"status"`
	PaymentStatus           string           `json:"paymentStatus,omitempty"`
	StripeCheckoutSessionID string           `json:"stripeCheckoutSessionId,omitempty"`
	Payload                 BookingPayload   `json:"payload"`
	Estimate                pricing.Estimate `json:"estimate"`
}

func BookingToRecord(b *booking.Booking) BookingRecord {
	req := b.Request()
	cust := b.Customer()

	var updatedAt *time.Time
	if u := b.UpdatedAt(); !u.IsZero() && !u.Equal(b.CreatedAt()) {
		updatedAt = &u
	}
	addons := req.Addons
	if addons == nil {
		addons = []string{}
	}

	return BookingRecord{
		ID:                      b.ID(),
		CreatedAt:               b.CreatedAt(),
		UpdatedAt:               updatedAt,
		Status:                  b.Status().String(),
		PaymentStatus:           b.PaymentStatus().String(),
		StripeCheckoutSessionID: b.CheckoutSessionID(),
		Payload: BookingPayload{
			CheckIn:   req.CheckIn,
			CheckOut:  req.CheckOut,
			RoomType:  req.RoomType,
			Guests:    req.Guests,
			Addon:     addons,
			PromoCode: req.PromoCode,
			FullName:  cust.FullName,
			Email:     cust.Email,
			Phone:     cust.Phone,
		},
		Estimate: b.Estimate(),
	}
}

func RecordToBooking(r BookingRecord) *booking.Booking {
	updatedAt := r.CreatedAt
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}
	return booking.Reconstruct(
		r.ID,
		customer.Customer{FullName: r.Payload.FullName, Email: r.Payload.Email, Phone: r.Payload.Phone},
		pricing.StayRequest{
			CheckIn:   r.Payload.CheckIn,
			CheckOut:  r.Payload.CheckOut,
			RoomType:  r.Payload.RoomType,
			Guests:    r.Payload.Guests,
			Addons:    r.Payload.Addon,
			PromoCode: r.Payload.PromoCode,
		},
		r.Estimate,
		booking.Status(r.Status),
		booking.PaymentStatus(r.PaymentStatus),
		r.StripeCheckoutSessionID,
		r.CreatedAt,
		updatedAt,
	)
}
