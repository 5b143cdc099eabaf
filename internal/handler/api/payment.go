package api

import (
	"io"
	"net/http"

	reqdto "atlas-hotel/internal/handler/dto/request"
	resdto "atlas-hotel/internal/handler/dto/response"
	"atlas-hotel/internal/handler/httperr"
	"atlas-hotel/internal/pkg/errs"
	"atlas-hotel/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	stripeSignatureHeader = "Stripe-Signature"
	maxWebhookBytes       = 64 << 10
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
}

func NewPaymentHandler(cmds commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{cmds: cmds}
}

// @Summary Start checkout
// @Description Create a Stripe Checkout session for a stored booking
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Booking reference"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /payments/checkout [post]
func (h *PaymentHandler) Checkout(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "missing_booking_id", nil)
		return
	}
	result, err := h.cmds.Checkout(c.Request.Context(), req.BookingID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CheckoutResponse{OK: true, URL: result.URL, SessionID: result.SessionID})
}

// @Summary Confirm checkout
// @Description Check a returning session and mark the booking paid
// @Tags payments
// @Produce json
// @Param session_id query string true "Checkout session"
// @Param bookingId query string true "Booking reference"
// @Success 200 {object} resdto.ConfirmResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payments/confirm [get]
func (h *PaymentHandler) Confirm(c *gin.Context) {
	var q reqdto.ConfirmQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "missing_params", nil)
		return
	}
	result, err := h.cmds.Confirm(c.Request.Context(), q.SessionID, q.BookingID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ConfirmResponse{OK: true, Paid: result.Paid, PaymentStatus: result.PaymentStatus})
}

// @Summary Stripe webhook
// @Tags payments
// @Accept json
// @Produce plain
// @Success 200 {string} string "ok"
// @Failure 400 {string} string "invalid webhook"
// @Router /stripe/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBytes))
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusBadRequest, "invalid webhook")
		return
	}

	err = h.cmds.HandleWebhook(c.Request.Context(), payload, c.GetHeader(stripeSignatureHeader))
	switch {
	case err == nil:
		c.String(http.StatusOK, "ok")
	case errs.Is(err, errs.ErrInvalidWebhook):
		_ = c.Error(err)
		c.String(http.StatusBadRequest, "invalid webhook")
	default:
		httperr.Abort(c, err)
	}
}
