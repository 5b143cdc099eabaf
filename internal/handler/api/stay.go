package api

import (
	"net/http"

	reqdto "atlas-hotel/internal/handler/dto/request"
	resdto "atlas-hotel/internal/handler/dto/response"
	"atlas-hotel/internal/handler/httperr"
	"atlas-hotel/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StayHandler struct {
	q queries.StayQueries
}

func NewStayHandler(q queries.StayQueries) *StayHandler {
	return &StayHandler{q: q}
}

// @Summary Room availability
// @Description Remaining rooms per type for a stay
// @Tags stay
// @Produce json
// @Param checkIn query string true "Check-in date (YYYY-MM-DD)"
// @Param checkOut query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /availability [get]
func (h *StayHandler) Availability(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid_dates", nil)
		return
	}
	result, err := h.q.Availability(c.Request.Context(), q.CheckIn, q.CheckOut)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.AvailabilityResponse{OK: true, Availability: result})
}

// @Summary Price estimate
// @Description Live estimate for the booking funnel
// @Tags stay
// @Accept json
// @Produce json
// @Param request body reqdto.EstimateRequest true "Stay"
// @Success 200 {object} resdto.EstimateResponse
// @Failure 400 {object} httperr.Response
// @Router /estimate [post]
func (h *StayHandler) Estimate(c *gin.Context) {
	var req reqdto.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid_booking", nil)
		return
	}
	est, err := h.q.Estimate(c.Request.Context(), req.ToStayRequest())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.EstimateResponse{OK: true, Estimate: est})
}

// @Summary Room catalogue
// @Tags stay
// @Produce json
// @Success 200 {object} resdto.RoomsResponse
// @Router /rooms [get]
func (h *StayHandler) Rooms(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.RoomsResponse{OK: true, Rooms: h.q.Rooms(c.Request.Context())})
}
