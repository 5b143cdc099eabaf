package httperr

import (
	"net/http"

	"atlas-hotel/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	CodeServerError = "server_error"
	CodeRateLimited = "rate_limited"
	CodeNotFound    = "not_found"
)

type Response struct {
	Status  int    `json:"-"`
	OK      bool   `json:"ok"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Detail  any    `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, code string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{
		Status: status,
		Error:  code,
		Detail: detail,
	}
	if status < http.StatusInternalServerError {
		resp.Message = err.Error()
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	target error
	status int
	code   string
}

// Order matters: the first sentinel matched by errs.Is wins.
var mappings = []mapping{
	{errs.ErrSpamDetected, http.StatusBadRequest, "spam_detected"},
	{errs.ErrInvalidCustomer, http.StatusBadRequest, "invalid_customer"},
	{errs.ErrInvalidBooking, http.StatusBadRequest, "invalid_booking"},
	{errs.ErrRoomUnavailable, http.StatusConflict, "room_unavailable"},
	{errs.ErrInvalidDates, http.StatusBadRequest, "invalid_dates"},
	{errs.ErrBookingNotFound, http.StatusNotFound, "booking_not_found"},
	{errs.ErrInvalidStatus, http.StatusBadRequest, "invalid_status"},
	{errs.ErrInvalidPayload, http.StatusBadRequest, "invalid_payload"},
	{errs.ErrInvalidEmail, http.StatusBadRequest, "invalid_email"},
	{errs.ErrInvalidEvent, http.StatusBadRequest, "invalid_event"},
	{errs.ErrPaymentNotConfigured, http.StatusInternalServerError, "stripe_not_configured"},
	{errs.ErrPaymentInvalidKey, http.StatusInternalServerError, "stripe_invalid_key"},
	{errs.ErrMissingBookingID, http.StatusBadRequest, "missing_booking_id"},
	{errs.ErrMissingParams, http.StatusBadRequest, "missing_params"},
	{errs.ErrSessionMismatch, http.StatusBadRequest, "session_mismatch"},
	{errs.ErrInvalidAmount, http.StatusBadRequest, "invalid_amount"},
	{errs.ErrInvalidWebhook, http.StatusBadRequest, "invalid_webhook"},
	{errs.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
	{errs.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
}

// Classify returns the HTTP status and public code for err. Anything not
// mapped is a 500 server_error.
func Classify(err error) (int, string) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			return m.status, m.code
		}
	}
	return http.StatusInternalServerError, CodeServerError
}

// Abort classifies err and aborts the request with the matching response.
func Abort(c *gin.Context, err error) {
	status, code := Classify(err)
	AbortWithError(c, status, err, code, nil)
}
