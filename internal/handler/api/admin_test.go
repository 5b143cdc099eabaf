//go:build unit

package api_test

import (
	"encoding/csv"
	"net/http"
	"strings"
	"testing"
	"time"

	"atlas-hotel/internal/domain/analytics"
	"atlas-hotel/internal/domain/booking"
	"atlas-hotel/internal/handler/api"
	resdto "atlas-hotel/internal/handler/dto/response"
	"atlas-hotel/internal/pkg/errs"
	"atlas-hotel/internal/usecase/queries"
	"atlas-hotel/internal/usecase/shared"
	"atlas-hotel/tests/common/builder"
	"atlas-hotel/tests/common/httptest"
	commandsmock "atlas-hotel/tests/mock/commands"
	queriesmock "atlas-hotel/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAdminCommands
	mockQueries  *queriesmock.MockAdminQueries
	handler      *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAdminCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAdminQueries(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/api/admin/dashboard", s.handler.Dashboard)
	s.router.GET("/api/admin/export", s.handler.Export)
	s.router.GET("/api/admin/bookings/:id", s.handler.Booking)
	s.router.PATCH("/api/admin/bookings/:id/status", s.handler.ChangeStatus)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestDashboard() {
	b := builder.NewBookingBuilder().Build(s.T())

	s.Run("success: forwards the filter and returns totals", func() {
		s.mockQueries.EXPECT().Dashboard(gomock.Any(), queries.DashboardFilter{
			Query: "jeanne", Status: "new", DateFrom: "2026-06-01", DateTo: "2026-06-30",
		}).Return(&queries.Dashboard{
			Totals: queries.DashboardTotals{
				Totals:           shared.Totals{Bookings: 1, Contacts: 0, Newsletter: 0, Analytics: 1},
				FilteredBookings: 1,
			},
			Bookings:  []*booking.Booking{b},
			Analytics: []analytics.Event{{Event: "cta_click", Path: "/", CreatedAt: time.Now()}},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/admin/dashboard?q=jeanne&status=new&dateFrom=2026-06-01&dateTo=2026-06-30", nil, "")

		var body resdto.DashboardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.OK)
		s.Equal(1, body.Totals.FilteredBookings)
		s.Require().Len(body.Bookings, 1)
		s.Equal(b.ID(), body.Bookings[0].ID)
		s.Equal("Jeanne Martin", body.Bookings[0].Payload.FullName)
		s.Len(body.Analytics, 1)
	})

	s.Run("error: store failure is a 500", func() {
		s.mockQueries.EXPECT().Dashboard(gomock.Any(), gomock.Any()).Return(nil, errs.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/dashboard", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "server_error")
	})
}

func (s *AdminHandlerTestSuite) TestExport() {
	first := builder.NewBookingBuilder().WithID("ATL-00000001").Build(s.T())
	second := builder.NewBookingBuilder().
		WithID("ATL-00000002").
		WithCustomer("Martin, Jeanne", "jm@example.com").
		WithStatus(booking.StatusConfirmed).
		Build(s.T())

	s.mockQueries.EXPECT().ExportBookings(gomock.Any(), queries.DashboardFilter{Status: "all"}).
		Return([]*booking.Booking{first, second}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/export?status=all", nil, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	httptest.AssertAttachment(s.T(), rec, "text/csv; charset=utf-8", "bookings-export.csv")

	rows, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	s.Require().NoError(err)
	s.Require().Len(rows, 3)
	s.Equal([]string{
		"id", "createdAt", "status", "fullName", "email", "phone",
		"checkIn", "checkOut", "roomType", "guests", "addon", "promoCode", "total",
	}, rows[0])
	s.Equal("ATL-00000001", rows[1][0])
	s.Equal("2026-06-01T09:30:00.000Z", rows[1][1])
	s.Equal("new", rows[1][2])
	s.Equal("breakfast", rows[1][10])
	s.Equal("Martin, Jeanne", rows[2][3])
	s.Equal("confirmed", rows[2][2])
	s.Contains(rec.Body.String(), `"Martin, Jeanne"`)
}

func (s *AdminHandlerTestSuite) TestBooking() {
	s.Run("success", func() {
		b := builder.NewBookingBuilder().Build(s.T())
		s.mockQueries.EXPECT().Booking(gomock.Any(), b.ID()).Return(b, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/bookings/"+b.ID(), nil, "")

		var body resdto.BookingStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(b.ID(), body.Booking.ID)
	})

	s.Run("error: 404 not_found", func() {
		s.mockQueries.EXPECT().Booking(gomock.Any(), "ATL-MISSING").Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/bookings/ATL-MISSING", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not_found")
	})
}

func (s *AdminHandlerTestSuite) TestChangeStatus() {
	s.Run("success: returns the updated booking", func() {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled).Build(s.T())
		s.mockCommands.EXPECT().ChangeBookingStatus(gomock.Any(), b.ID(), "cancelled").Return(b, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/api/admin/bookings/"+b.ID()+"/status", map[string]string{"status": " cancelled "}, "")

		var body resdto.BookingStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Booking.Status)
	})

	s.Run("error: 400 invalid_status", func() {
		s.mockCommands.EXPECT().ChangeBookingStatus(gomock.Any(), "ATL-1", "archived").Return(nil, errs.ErrInvalidStatus).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/api/admin/bookings/ATL-1/status", map[string]string{"status": "archived"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid_status")
	})

	s.Run("error: 404 not_found", func() {
		s.mockCommands.EXPECT().ChangeBookingStatus(gomock.Any(), "ATL-404", "confirmed").Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/api/admin/bookings/ATL-404/status", map[string]string{"status": "confirmed"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not_found")
	})
}
