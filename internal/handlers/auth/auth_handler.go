package auth

import (
	"net/http"

	"zabudowy-service/internal/domain/user"
	"zabudowy-service/internal/middleware"
	"zabudowy-service/internal/pkg/response"
	service "zabudowy-service/internal/service/auth"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
	cookieTTL   int
	secure      bool
}

func NewAuthHandler(authService *service.AuthService, cookieTTLSeconds int, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookieTTL:   cookieTTLSeconds,
		secure:      secureCookies,
	}
}

// Login authenticates an admin and sets the session cookie. The token is
// also returned in the body for API clients.
func (h *AuthHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	token, u, err := h.authService.Login(c.Request.Context(), req.Email, req.Password, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		response.FromError(c, err, "invalid email or password")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, h.cookieTTL, "/", "", h.secure, true)

	response.Success(c, http.StatusOK, "logged in", user.LoginResponse{
		Token: token,
		User:  *u,
	})
}

// Logout invalidates the current session and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	jti, _ := middleware.GetJTI(c)

	if userID != "" && jti != "" {
		if err := h.authService.Logout(c.Request.Context(), userID, jti); err != nil {
			response.FromError(c, err, "failed to log out")
			return
		}
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.secure, true)
	response.Success(c, http.StatusOK, "logged out", nil)
}

// Me returns the authenticated admin's account.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	u, err := h.authService.Me(c.Request.Context(), userID)
	if err != nil {
		response.FromError(c, err, "account not found")
		return
	}

	response.Success(c, http.StatusOK, "account retrieved", u)
}
