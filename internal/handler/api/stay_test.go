//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"atlas-hotel/internal/domain/availability"
	"atlas-hotel/internal/domain/pricing"
	"atlas-hotel/internal/domain/room"
	"atlas-hotel/internal/handler/api"
	resdto "atlas-hotel/internal/handler/dto/response"
	"atlas-hotel/internal/pkg/errs"
	"atlas-hotel/internal/usecase/queries"
	"atlas-hotel/tests/common/httptest"
	queriesmock "atlas-hotel/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StayHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockStayQueries
	handler     *api.StayHandler
}

func (s *StayHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockStayQueries(s.mockCtrl)
	s.handler = api.NewStayHandler(s.mockQueries)

	s.router.GET("/api/availability", s.handler.Availability)
	s.router.POST("/api/estimate", s.handler.Estimate)
	s.router.GET("/api/rooms", s.handler.Rooms)
}

func (s *StayHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStayHandlerSuite(t *testing.T) {
	suite.Run(t, new(StayHandlerTestSuite))
}

func (s *StayHandlerTestSuite) TestAvailability() {
	s.Run("success: remaining rooms per type", func() {
		want := availability.Availability{room.Classic: 14, room.Deluxe: 3, room.Suite: 0}
		s.mockQueries.EXPECT().Availability(gomock.Any(), "2026-07-11", "2026-07-13").Return(want, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/availability?checkIn=2026-07-11&checkOut=2026-07-13", nil, "")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.OK)
		if diff := cmp.Diff(want, body.Availability); diff != "" {
			s.Failf("availability mismatch", "(-want +got):\n%s", diff)
		}
	})

	s.Run("error: 400 invalid_dates", func() {
		s.mockQueries.EXPECT().Availability(gomock.Any(), "2026-07-13", "2026-07-11").
			Return(nil, errs.ErrInvalidDates).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/availability?checkIn=2026-07-13&checkOut=2026-07-11", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid_dates")
	})
}

func (s *StayHandlerTestSuite) TestEstimate() {
	s.Run("success: returns the estimate", func() {
		est, ok := pricing.CalculateEstimate(pricing.StayRequest{
			CheckIn: "2026-07-11", CheckOut: "2026-07-13", RoomType: "classic", Guests: 2,
		})
		s.Require().True(ok)

		s.mockQueries.EXPECT().Estimate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req pricing.StayRequest) (*pricing.Estimate, error) {
				s.Equal("classic", req.RoomType)
				s.Equal("SUMMER", req.PromoCode)
				return &est, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/estimate", map[string]any{
			"checkIn": "2026-07-11", "checkOut": "2026-07-13", "roomType": " classic ", "guests": 2, "promo": "SUMMER",
		}, "")

		var body resdto.EstimateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.OK)
		s.Require().NotNil(body.Estimate)
		s.Equal(est.Total, body.Estimate.Total)
		s.Equal(2, body.Estimate.Nights)
	})

	s.Run("error: 400 invalid_booking when the stay cannot be priced", func() {
		s.mockQueries.EXPECT().Estimate(gomock.Any(), gomock.Any()).Return(nil, errs.ErrInvalidBooking).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/estimate",
			map[string]any{"roomType": "penthouse"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid_booking")
	})

	s.Run("error: 400 invalid_booking on a malformed body", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/api/estimate",
			[]byte(`{"guests":`), map[string]string{"Content-Type": "application/json"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid_booking")
	})
}

func (s *StayHandlerTestSuite) TestRooms() {
	rooms := []queries.RoomView{
		{Type: room.Classic, BasePrice: 120, Inventory: 14, MaxGuests: 4},
		{Type: room.Suite, BasePrice: 260, Inventory: 6, MaxGuests: 4},
	}
	s.mockQueries.EXPECT().Rooms(gomock.Any()).Return(rooms).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms", nil, "")

	var body resdto.RoomsResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(rooms, body.Rooms)
}
