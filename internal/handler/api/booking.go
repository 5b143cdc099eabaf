package api

import (
	"net/http"

	reqdto "atlas-hotel/internal/handler/dto/request"
	resdto "atlas-hotel/internal/handler/dto/response"
	"atlas-hotel/internal/handler/httperr"
	"atlas-hotel/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
}

func NewBookingHandler(cmds commands.BookingCommands) *BookingHandler {
	return &BookingHandler{cmds: cmds}
}

// @Summary Submit booking request
// @Description Validate, price and store a booking request, then notify the hotel and the guest
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking form"
// @Success 200 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /booking [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid_booking", nil)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), commands.CreateBookingRequest{
		Website:  req.Website,
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Stay:     req.ToStayRequest(),
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCreateBooking(result))
}
