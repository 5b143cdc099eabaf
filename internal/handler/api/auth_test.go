//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"atlas-hotel/internal/handler/api"
	resdto "atlas-hotel/internal/handler/dto/response"
	"atlas-hotel/internal/pkg/config"
	"atlas-hotel/internal/pkg/cookie"
	"atlas-hotel/internal/pkg/errs"
	"atlas-hotel/internal/usecase/commands"
	"atlas-hotel/tests/common/httptest"
	commandsmock "atlas-hotel/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAdminCommands
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAdminCommands(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, config.NewTestConfig().Cookie)

	s.router.POST("/api/admin/login", s.handler.Login)
	s.router.POST("/api/admin/logout", s.handler.Logout)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/api/admin/login"

	s.Run("success: sets the session cookie", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), "correct horse").
			Return(&commands.LoginResult{AccessToken: "jwt-token", ExpiresIn: 3600}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{"password": "correct horse"}, "")

		var body resdto.AdminLoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.OK)
		s.Equal("jwt-token", body.AccessToken)
		s.Equal(int64(3600), body.ExpiresIn)

		session := httptest.ExtractCookie(rec, cookie.AdminSessionCookieName)
		s.Require().NotNil(session)
		s.Equal("jwt-token", session.Value)
		s.Equal(3600, session.MaxAge)
		s.True(session.HttpOnly)
	})

	s.Run("error: 401 invalid_credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), "wrong").Return(nil, errs.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{"password": "wrong"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "invalid_credentials")
		s.Nil(httptest.ExtractCookie(rec, cookie.AdminSessionCookieName))
	})

	s.Run("error: 400 invalid_payload without a password", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid_payload")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/logout", nil, "")

	var body resdto.AckResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.True(body.OK)

	session := httptest.ExtractCookie(rec, cookie.AdminSessionCookieName)
	s.Require().NotNil(session)
	s.Empty(session.Value)
	s.Less(session.MaxAge, 0)
}
