package api

import (
	"net/http"
	"time"

	reqdto "seat-redeem/internal/handler/dto/request"
	resdto "seat-redeem/internal/handler/dto/response"
	"seat-redeem/internal/pkg/clock"
	"seat-redeem/internal/pkg/config"
	"seat-redeem/internal/pkg/cookie"
	"seat-redeem/internal/pkg/errs"
	"seat-redeem/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	cookieCfg    config.CookieConfig
	clock        clock.Clock
}

func NewAuthHandler(authCommands commands.AuthCommands, cfg config.Config, clk clock.Clock) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		cookieCfg:    cfg.Cookie,
		clock:        clk,
	}
}

// @Summary Admin login
// @Description Login with the operator username and password
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidCredentials), errs.Is(err, commands.ErrAuthenticationFailed):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid username or password",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, result.AccessToken, result.ExpiresAt.Sub(h.clock.Now()).Truncate(time.Second))
	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Admin logout
// @Description Clear the admin session cookie
// @Tags admin
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /api/admin/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// tokens are stateless; clients holding a bearer token simply discard it
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}
