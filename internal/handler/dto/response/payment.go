package response

type CheckoutResponse struct {
	OK        bool   `json:"ok"`
	URL       string `json:"url"`
	SessionID string `json:"sessionId"`
}

type ConfirmResponse struct {
	OK            bool   `json:"ok"`
	Paid          bool   `json:"paid"`
	PaymentStatus string `json:"paymentStatus"`
}
