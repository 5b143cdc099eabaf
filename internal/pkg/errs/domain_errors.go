package errs

// Sentinels shared by the use case layers and the HTTP error mapping.
var (
	// Booking funnel
	ErrSpamDetected    = New("spam detected")
	ErrInvalidCustomer = New("invalid customer")
	ErrInvalidBooking  = New("invalid booking")
	ErrRoomUnavailable = New("room unavailable")
	ErrInvalidDates    = New("invalid dates")
	ErrBookingNotFound = New("booking not found")
	ErrInvalidStatus   = New("invalid booking status")

	// Inquiries
	ErrInvalidPayload       = New("invalid payload")
	ErrInvalidEmail         = New("invalid email")
	ErrInvalidEvent         = New("invalid analytics event")
	ErrEmailDeliveryFailed  = New("email delivery failed")
	ErrEmailNotConfigured   = New("missing email config")
	ErrEmailProviderFailure = New("email provider error")

	// Payments
	ErrPaymentNotConfigured = New("stripe not configured")
	ErrPaymentInvalidKey    = New("stripe invalid key")
	ErrMissingBookingID     = New("missing booking id")
	ErrMissingParams        = New("missing params")
	ErrSessionMismatch      = New("checkout session belongs to another booking")
	ErrInvalidAmount        = New("invalid amount")
	ErrInvalidWebhook       = New("invalid webhook")

	// Admin
	ErrUnauthorized       = New("unauthorized")
	ErrInvalidCredentials = New("invalid credentials")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)
