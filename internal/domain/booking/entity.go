package booking

import (
	"strings"
	"time"

	"atlas-hotel/internal/domain/availability"
	"atlas-hotel/internal/domain/customer"
	"atlas-hotel/internal/domain/pricing"
	"atlas-hotel/internal/domain/room"
	"atlas-hotel/internal/pkg/caldate"
	"atlas-hotel/internal/pkg/errs"
)

// Booking is a stay request accepted by the funnel, priced at submission time.
type Booking struct {
	id                string
	customer          customer.Customer
	request           pricing.StayRequest
	estimate          pricing.Estimate
	status            Status
	paymentStatus     PaymentStatus
	checkoutSessionID string
	createdAt         time.Time
	updatedAt         time.Time
}

// New builds a booking in status new. The request is stored normalized: room
// type lower-cased and guests at least one.
func New(id string, cust customer.Customer, req pricing.StayRequest, est pricing.Estimate, now time.Time) (*Booking, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.New("booking id is required")
	}
	roomType, ok := room.Parse(req.RoomType)
	if !ok || est.Nights <= 0 {
		return nil, errs.ErrInvalidBooking
	}
	req.RoomType = roomType.String()
	req.Guests = est.Guests

	return &Booking{
		id:        id,
		customer:  cust,
		request:   req,
		estimate:  est,
		status:    StatusNew,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(
	id string,
	cust customer.Customer,
	req pricing.StayRequest,
	est pricing.Estimate,
	status Status,
	paymentStatus PaymentStatus,
	checkoutSessionID string,
	createdAt, updatedAt time.Time,
) *Booking {
	if status == "" {
		status = StatusNew
	}
	return &Booking{
		id:                id,
		customer:          cust,
		request:           req,
		estimate:          est,
		status:            status,
		paymentStatus:     paymentStatus,
		checkoutSessionID: checkoutSessionID,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (b *Booking) ChangeStatus(s Status, now time.Time) error {
	if !s.IsValid() {
		return errs.ErrInvalidStatus
	}
	b.status = s
	b.updatedAt = now
	return nil
}

func (b *Booking) StartCheckout(sessionID string, now time.Time) {
	b.paymentStatus = PaymentPending
	b.checkoutSessionID = sessionID
	b.updatedAt = now
}

// MarkPaid confirms the booking unless staff already cancelled it.
func (b *Booking) MarkPaid(sessionID string, now time.Time) {
	b.paymentStatus = PaymentPaid
	if b.status != StatusCancelled {
		b.status = StatusConfirmed
	}
	if sessionID != "" {
		b.checkoutSessionID = sessionID
	}
	b.updatedAt = now
}

func (b *Booking) MarkPaymentExpired(sessionID string, now time.Time) {
	b.paymentStatus = PaymentExpired
	if sessionID != "" {
		b.checkoutSessionID = sessionID
	}
	b.updatedAt = now
}

// AmountDue is the whole-euro amount charged at checkout.
func (b *Booking) AmountDue() int64 {
	return max(b.estimate.Total.RoundedEuros(), 0)
}

func (b *Booking) RoomType() room.Type {
	return room.Type(b.request.RoomType)
}

// Stay projects the booking onto the inventory it holds. Unparseable dates
// give zero dates, which availability ignores.
func (b *Booking) Stay() availability.Stay {
	in, _ := caldate.Parse(b.request.CheckIn)
	out, _ := caldate.Parse(b.request.CheckOut)
	return availability.Stay{
		RoomType:  b.RoomType(),
		CheckIn:   in,
		CheckOut:  out,
		Cancelled: b.status == StatusCancelled,
	}
}

// SearchText is the lower-cased haystack matched by the admin search box.
func (b *Booking) SearchText() string {
	return strings.ToLower(strings.Join([]string{
		b.id,
		b.customer.FullName,
		b.customer.Email,
		b.request.CheckIn,
		b.request.CheckOut,
	}, " "))
}

func (b *Booking) ID() string                   { return b.id }
func (b *Booking) Customer() customer.Customer  { return b.customer }
func (b *Booking) Request() pricing.StayRequest { return b.request }
func (b *Booking) Estimate() pricing.Estimate   { return b.estimate }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) CheckoutSessionID() string    { return b.checkoutSessionID }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }

// Stays projects bookings for the availability calculator.
func Stays(bookings []*Booking) []availability.Stay {
	stays := make([]availability.Stay, 0, len(bookings))
	for _, b := range bookings {
		stays = append(stays, b.Stay())
	}
	return stays
}
