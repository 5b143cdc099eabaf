package api

import (
	"errors"
	"net/http"

	reqdto "atlas-hotel/internal/handler/dto/request"
	resdto "atlas-hotel/internal/handler/dto/response"
	"atlas-hotel/internal/handler/httperr"
	"atlas-hotel/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type InquiryHandler struct {
	cmds commands.InquiryCommands
}

func NewInquiryHandler(cmds commands.InquiryCommands) *InquiryHandler {
	return &InquiryHandler{cmds: cmds}
}

// @Summary Contact form
// @Tags inquiries
// @Accept json
// @Produce json
// @Param request body reqdto.ContactRequest true "Contact message"
// @Success 200 {object} resdto.InquiryResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /contact [post]
func (h *InquiryHandler) Contact(c *gin.Context) {
	var req reqdto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid_payload", nil)
		return
	}
	delivery, err := h.cmds.SubmitContact(c.Request.Context(), commands.ContactRequest{
		Website: req.Website,
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		var failed *commands.DeliveryFailedError
		if errors.As(err, &failed) {
			httperr.AbortWithError(c, http.StatusBadGateway, err, failed.Reason, nil)
			return
		}
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.InquiryResponse{OK: true, EmailReport: resdto.FromDelivery(*delivery)})
}

// @Summary Newsletter sign-up
// @Tags inquiries
// @Accept json
// @Produce json
// @Param request body reqdto.NewsletterRequest true "Subscriber"
// @Success 200 {object} resdto.InquiryResponse
// @Failure 400 {object} httperr.Response
// @Router /newsletter [post]
func (h *InquiryHandler) Newsletter(c *gin.Context) {
	var req reqdto.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid_email", nil)
		return
	}
	delivery, err := h.cmds.Subscribe(c.Request.Context(), commands.NewsletterRequest{
		Website: req.Website,
		Email:   req.Email,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.InquiryResponse{OK: true, EmailReport: resdto.FromDelivery(*delivery)})
}

// @Summary Track front-end event
// @Tags inquiries
// @Accept json
// @Produce json
// @Param request body reqdto.AnalyticsRequest true "Event"
// @Success 200 {object} resdto.AckResponse
// @Failure 400 {object} httperr.Response
// @Router /analytics [post]
func (h *InquiryHandler) Analytics(c *gin.Context) {
	var req reqdto.AnalyticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid_event", nil)
		return
	}
	err := h.cmds.TrackEvent(c.Request.Context(), commands.TrackEventRequest{
		Event: req.Event,
		Path:  req.Path,
		Label: req.Label,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.AckResponse{OK: true})
}
