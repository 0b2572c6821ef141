package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillbridge-bd/institute-backend/internal/middleware"
	"github.com/skillbridge-bd/institute-backend/internal/model"
	"github.com/skillbridge-bd/institute-backend/internal/response"
	"github.com/skillbridge-bd/institute-backend/internal/service"
	"github.com/skillbridge-bd/institute-backend/internal/validator"
)

// AuthHandler handles admin session endpoints.
type AuthHandler struct {
	credentials  *service.CredentialService
	authService  *service.AuthService
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(credentials *service.CredentialService, authService *service.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		credentials:  credentials,
		authService:  authService,
		cookieSecure: cookieSecure,
	}
}

// Login godoc
// POST /api/auth/login
// Creates the default admin on an empty store, then issues a token in the
// body and in the token cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrMissingCredentials, fields)
		return
	}

	token, _, err := h.credentials.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
			return
		}
		failInternal(c, http.StatusInternalServerError, response.ErrInternal, err)
		return
	}

	setTokenCookie(c, token, int(h.authService.TokenTTL().Seconds()), h.cookieSecure)
	response.Success(c, http.StatusOK, gin.H{"token": token, "message": "Login successful"})
}

// Logout godoc
// POST /api/auth/logout
// Clears the token cookie. Issued tokens stay valid until they expire.
func (h *AuthHandler) Logout(c *gin.Context) {
	clearTokenCookie(c, h.cookieSecure)
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}

// Me godoc
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	admin := middleware.GetAdmin(c)
	if admin == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"admin": gin.H{
			"id":       admin.ID,
			"username": admin.Username,
		},
	})
}

func setTokenCookie(c *gin.Context, token string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, token, maxAge, "/", "", secure, true)
}

func clearTokenCookie(c *gin.Context, secure bool) {
	setTokenCookie(c, "", -1, secure)
}
