//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"atlas-hotel/internal/handler/api"
	resdto "atlas-hotel/internal/handler/dto/response"
	"atlas-hotel/internal/pkg/errs"
	"atlas-hotel/internal/usecase/commands"
	"atlas-hotel/tests/common/builder"
	"atlas-hotel/tests/common/httptest"
	"atlas-hotel/tests/common/testutil"
	commandsmock "atlas-hotel/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands)

	s.router.POST("/api/booking", s.handler.Create)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/api/booking"
	b := builder.NewBookingBuilder()
	reqBody := b.BuildDTO()
	created := b.Build(s.T())
	result := &commands.CreateBookingResult{
		Booking:  created,
		Delivery: commands.Delivery{AdminSent: true, ClientSent: true},
	}

	s.Run("success: returns the reference, the estimate and the e-mail report", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req commands.CreateBookingRequest) (*commands.CreateBookingResult, error) {
				s.Equal("Jeanne Martin", req.FullName)
				s.Equal("suite", req.Stay.RoomType)
				s.Equal([]string{"breakfast"}, req.Stay.Addons)
				return result, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.OK)
		s.Equal(created.ID(), body.BookingID)
		s.Equal(created.Estimate().Total, body.Estimate.Total)
		s.True(body.EmailAdminSent)
		s.True(body.EmailClientSent)
		s.Equal(commands.ReasonSent, body.EmailStatus)
	})

	s.Run("success: a single addon string is accepted", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req commands.CreateBookingRequest) (*commands.CreateBookingResult, error) {
				s.Equal([]string{"parking"}, req.Stay.Addons)
				return result, nil
			}).Times(1)

		requestMap := testutil.Payload(s.T(), reqBody, testutil.Set("addons", " parking "))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("success: missing guests default to one", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req commands.CreateBookingRequest) (*commands.CreateBookingResult, error) {
				s.Equal(1, req.Stay.Guests)
				return result, nil
			}).Times(1)

		requestMap := testutil.Payload(s.T(), reqBody, testutil.Drop("guests"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("error: 400 invalid_booking on malformed input", func() {
		cases := []testCaseBooking{
			{name: "guests above capacity", mutate: testutil.Set("guests", 5), expectCode: http.StatusBadRequest},
			{name: "negative guests", mutate: testutil.Set("guests", -1), expectCode: http.StatusBadRequest},
			{name: "addons of the wrong type", mutate: testutil.Set("addons", 42), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.Payload(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "invalid_booking")
			})
		}
	})

	s.Run("error: domain failures map to their public codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectErr  string
		}{
			{"honeypot filled", errs.ErrSpamDetected, http.StatusBadRequest, "spam_detected"},
			{"bad customer", errs.ErrInvalidCustomer, http.StatusBadRequest, "invalid_customer"},
			{"unpriceable stay", errs.ErrInvalidBooking, http.StatusBadRequest, "invalid_booking"},
			{"sold out", errs.ErrRoomUnavailable, http.StatusConflict, "room_unavailable"},
			{"store down", errs.New("connection refused"), http.StatusInternalServerError, "server_error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectErr)
			})
		}
	})

	s.Run("error: server errors hide the message", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errs.New("secret dsn")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusInternalServerError, rec.Code)
		s.NotContains(rec.Body.String(), "secret dsn")
	})
}
