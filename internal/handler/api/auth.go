package api

import (
	"net/http"

	reqdto "atlas-hotel/internal/handler/dto/request"
	resdto "atlas-hotel/internal/handler/dto/response"
	"atlas-hotel/internal/handler/httperr"
	"atlas-hotel/internal/pkg/config"
	"atlas-hotel/internal/pkg/cookie"
	"atlas-hotel/internal/pkg/errs"
	"atlas-hotel/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AdminCommands
	cookieCfg config.CookieConfig
}

func NewAuthHandler(cmds commands.AdminCommands, cookieCfg config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		cookieCfg: cookieCfg,
	}
}

// @Summary Admin login
// @Description Exchange the admin password for a session cookie
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.AdminLoginRequest true "Login request"
// @Success 200 {object} resdto.AdminLoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrInvalidPayload), "invalid_payload", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.Password)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	cookie.SetAdminSession(c, h.cookieCfg, result.AccessToken, secondsToDuration(result.ExpiresIn))
	c.JSON(http.StatusOK, resdto.AdminLoginResponse{
		OK:          true,
		AccessToken: result.AccessToken,
		ExpiresIn:   result.ExpiresIn,
	})
}

// @Summary Admin logout
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.AckResponse
// @Router /admin/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAdminSession(c, h.cookieCfg)
	c.JSON(http.StatusOK, resdto.AckResponse{OK: true})
}
