package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillbridge-bd/institute-backend/internal/middleware"
	"github.com/skillbridge-bd/institute-backend/internal/model"
	"github.com/skillbridge-bd/institute-backend/internal/repository"
	"github.com/skillbridge-bd/institute-backend/internal/response"
	"github.com/skillbridge-bd/institute-backend/internal/service"
	"github.com/skillbridge-bd/institute-backend/internal/validator"
)

// CredentialHandler rotates the admin username and password.
type CredentialHandler struct {
	credentials  *service.CredentialService
	cookieSecure bool
}

// NewCredentialHandler creates a new CredentialHandler.
func NewCredentialHandler(credentials *service.CredentialService, cookieSecure bool) *CredentialHandler {
	return &CredentialHandler{credentials: credentials, cookieSecure: cookieSecure}
}

// Update godoc
// PUT /api/credentials
// Requires the current username and password of the token owner. Every token
// issued before the rotation stops working, so the cookie is cleared too.
func (h *CredentialHandler) Update(c *gin.Context) {
	admin := middleware.GetAdmin(c)
	if admin == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.UpdateCredentialsRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrRequiredFields, fields)
		return
	}

	if _, err := h.credentials.ChangeCredentials(c.Request.Context(), admin.ID, req); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCurrentCredentials):
			response.Fail(c, http.StatusUnauthorized, response.ErrCurrentCredentials)
		case errors.Is(err, repository.ErrConflict):
			response.Fail(c, http.StatusConflict, response.ErrConflict)
		case errors.Is(err, repository.ErrNotFound):
			response.Fail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
		default:
			failInternal(c, http.StatusInternalServerError, response.ErrUpdateFailed, err)
		}
		return
	}

	clearTokenCookie(c, h.cookieSecure)
	response.Success(c, http.StatusOK, gin.H{"message": "Credentials updated successfully"})
}
