package response

import (
	"time"

	"atlas-hotel/internal/domain/booking"
	"atlas-hotel/internal/domain/pricing"
	"atlas-hotel/internal/usecase/commands"
)

// EmailReport mirrors commands.Delivery on the wire.
type EmailReport struct {
	EmailAdminSent  bool   `json:"emailAdminSent"`
	EmailClientSent bool   `json:"emailClientSent"`
	EmailStatus     string `json:"emailStatus"`
}

func FromDelivery(d commands.Delivery) EmailReport {
	return EmailReport{
		EmailAdminSent:  d.AdminSent,
		EmailClientSent: d.ClientSent,
		EmailStatus:     d.Status(),
	}
}

type CreateBookingResponse struct {
	OK        bool             `json:"ok"`
	BookingID string           `json:"bookingId"`
	Estimate  pricing.Estimate `json:"estimate"`
	EmailReport
}

func FromCreateBooking(r *commands.CreateBookingResult) *CreateBookingResponse {
	return &CreateBookingResponse{
		OK:          true,
		BookingID:   r.Booking.ID(),
		Estimate:    r.Booking.Estimate(),
		EmailReport: FromDelivery(r.Delivery),
	}
}

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

type BookingResponse struct {
	ID                      string           `json:"id"`
	CreatedAt               time.Time        `json:"createdAt"`
	UpdatedAt               time.Time        `json:"updatedAt"`
	Status                  string           `json:"status"`
	PaymentStatus           string           `json:"paymentStatus,omitempty"`
	StripeCheckoutSessionID string           `json:"stripeCheckoutSessionId,omitempty"`
	Payload                 BookingPayload   `json:"payload"`
	Estimate                pricing.Estimate `json:"estimate"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	req := b.Request()
	cust := b.Customer()
	addons := req.Addons
	if addons == nil {
		addons = []string{}
	}
	return &BookingResponse{
		ID:                      b.ID(),
		CreatedAt:               b.CreatedAt(),
		UpdatedAt:               b.UpdatedAt(),
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

func FromBookings(items []*booking.Booking) []*BookingResponse {
	res := make([]*BookingResponse, len(items))
	for i, b := range items {
		res[i] = FromBooking(b)
	}
	return res
}

type BookingStatusResponse struct {
	OK      bool             `json:"ok"`
	Booking *BookingResponse `json:"booking"`
}
