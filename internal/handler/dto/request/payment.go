package request

type CheckoutRequest struct {
	BookingID string `json:"bookingId"`
}

type ConfirmQuery struct {
	SessionID string `form:"session_id"`
	BookingID string `form:"bookingId"`
}
