package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/skillbridge-bd/institute-backend/internal/model"
	"github.com/skillbridge-bd/institute-backend/internal/response"
	"github.com/skillbridge-bd/institute-backend/internal/service"
)

const (
	// ContextKeyClaims is the Gin context key for JWT claims.
	ContextKeyClaims = "claims"
	// ContextKeyAdmin is the Gin context key for the authenticated admin.
	ContextKeyAdmin = "admin"
	// TokenCookie is the cookie set on login and read as a header fallback.
	TokenCookie = "token"
)

// Authenticator resolves a raw token to its admin.
type Authenticator interface {
	Authenticate(ctx context.Context, tokenStr string) (*service.Claims, *model.Admin, error)
}

// RequireAdmin accepts a token from "Authorization: Bearer" or, failing that,
// from the token cookie. Every failure is a 401.
func RequireAdmin(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ExtractToken(c)
		if tokenStr == "" {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		claims, admin, err := auth.Authenticate(c.Request.Context(), tokenStr)
		if err != nil {
			code := response.ErrTokenInvalid
			switch {
			case errors.Is(err, service.ErrTokenExpired):
				code = response.ErrTokenExpired
			case errors.Is(err, service.ErrTokenMalformed), errors.Is(err, service.ErrTokenRevoked):
			default:
				_ = c.Error(err)
			}
			response.AbortFail(c, http.StatusUnauthorized, code)
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Set(ContextKeyAdmin, admin)
		c.Next()
	}
}

// ExtractToken returns the bearer token, else the token cookie, else "".
func ExtractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			if tok := strings.TrimSpace(parts[1]); tok != "" {
				return tok
			}
		}
	}

	if tok, err := c.Cookie(TokenCookie); err == nil {
		return tok
	}
	return ""
}

// GetClaims retrieves the JWT claims from the Gin context.
func GetClaims(c *gin.Context) *service.Claims {
	val, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil
	}
	claims, ok := val.(*service.Claims)
	if !ok {
		return nil
	}
	return claims
}

// GetAdmin retrieves the admin loaded by RequireAdmin.
func GetAdmin(c *gin.Context) *model.Admin {
	val, exists := c.Get(ContextKeyAdmin)
	if !exists {
		return nil
	}
	admin, _ := val.(*model.Admin)
	return admin
}
