package api

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"
	"time"

	"atlas-hotel/internal/domain/booking"
	reqdto "atlas-hotel/internal/handler/dto/request"
	resdto "atlas-hotel/internal/handler/dto/response"
	"atlas-hotel/internal/handler/httperr"
	"atlas-hotel/internal/pkg/errs"
	"atlas-hotel/internal/usecase/commands"
	"atlas-hotel/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	exportFilename  = "bookings-export.csv"
	isoMillisFormat = "2006-01-02T15:04:05.000Z"
)

var exportHeader = []string{
	"id", "createdAt", "status", "fullName", "email", "phone",
	"checkIn", "checkOut", "roomType", "guests", "addon", "promoCode", "total",
}

type AdminHandler struct {
	cmds commands.AdminCommands
	q    queries.AdminQueries
}

func NewAdminHandler(cmds commands.AdminCommands, q queries.AdminQueries) *AdminHandler {
	return &AdminHandler{cmds: cmds, q: q}
}

// @Summary Admin dashboard
// @Description Collection totals and the most recent records, bookings filtered
// @Tags admin
// @Produce json
// @Security AdminToken
// @Param q query string false "Search over reference, name, e-mail and dates"
// @Param status query string false "all, new, confirmed or cancelled"
// @Param dateFrom query string false "Created on or after (YYYY-MM-DD)"
// @Param dateTo query string false "Created on or before (YYYY-MM-DD)"
// @Success 200 {object} resdto.DashboardResponse
// @Failure 401 {object} httperr.Response
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	var q reqdto.DashboardQuery
	_ = c.ShouldBindQuery(&q)

	dashboard, err := h.q.Dashboard(c.Request.Context(), q.ToFilter())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromDashboard(dashboard)
	if err != nil {
		httperr.Abort(c, errs.Wrap(err, "map dashboard"))
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get booking
// @Tags admin
// @Produce json
// @Security AdminToken
// @Param id path string true "Booking reference"
// @Success 200 {object} resdto.BookingStatusResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/bookings/{id} [get]
func (h *AdminHandler) Booking(c *gin.Context) {
	b, err := h.q.Booking(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortAdmin(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.BookingStatusResponse{OK: true, Booking: resdto.FromBooking(b)})
}

// @Summary Change booking status
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminToken
// @Param id path string true "Booking reference"
// @Param request body reqdto.ChangeStatusRequest true "New status"
// @Success 200 {object} resdto.BookingStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/bookings/{id}/status [patch]
func (h *AdminHandler) ChangeStatus(c *gin.Context) {
	var req reqdto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid_status", nil)
		return
	}
	b, err := h.cmds.ChangeBookingStatus(c.Request.Context(), c.Param("id"), strings.TrimSpace(req.Status))
	if err != nil {
		abortAdmin(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.BookingStatusResponse{OK: true, Booking: resdto.FromBooking(b)})
}

// @Summary Export bookings
// @Description CSV of the bookings the dashboard lists for the same filter
// @Tags admin
// @Produce text/csv
// @Security AdminToken
// @Param q query string false "Search"
// @Param status query string false "Status filter"
// @Param dateFrom query string false "Created on or after"
// @Param dateTo query string false "Created on or before"
// @Success 200 {string} string "CSV"
// @Failure 401 {object} httperr.Response
// @Router /admin/export [get]
func (h *AdminHandler) Export(c *gin.Context) {
	var q reqdto.DashboardQuery
	_ = c.ShouldBindQuery(&q)

	bookings, err := h.q.ExportBookings(c.Request.Context(), q.ToFilter())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", "attachment; filename="+exportFilename)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write(exportHeader)
	for _, b := range bookings {
		_ = w.Write(exportRow(b))
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = c.Error(errs.Wrap(err, "write csv export"))
	}
}

func exportRow(b *booking.Booking) []string {
	req := b.Request()
	cust := b.Customer()
	return []string{
		b.ID(),
		b.CreatedAt().UTC().Format(isoMillisFormat),
		b.Status().String(),
		cust.FullName,
		cust.Email,
		cust.Phone,
		req.CheckIn,
		req.CheckOut,
		req.RoomType,
		strconv.Itoa(req.Guests),
		strings.Join(req.Addons, ","),
		req.PromoCode,
		strconv.FormatInt(b.Estimate().Total.RoundedEuros(), 10),
	}
}

// abortAdmin reports a missing booking as not_found, the code the dashboard expects.
func abortAdmin(c *gin.Context, err error) {
	if errs.Is(err, errs.ErrBookingNotFound) {
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, nil)
		return
	}
	httperr.Abort(c, err)
}

func secondsToDuration(s int64) time.Duration {
	return time.Duration(s) * time.Second
}
