package booking

import "strings"

type Status string

const (
	StatusNew       Status = "new"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

func ParseStatus(value string) (Status, bool) {
	s := Status(strings.TrimSpace(value))
	return s, s.IsValid()
}

// PaymentStatus is empty until a checkout session has been opened.
type PaymentStatus string

const (
	PaymentNone    PaymentStatus = ""
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentExpired PaymentStatus = "expired"
)

func (s PaymentStatus) String() string {
	return string(s)
}
