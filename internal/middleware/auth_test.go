package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/skillbridge-bd/institute-backend/internal/model"
	"github.com/skillbridge-bd/institute-backend/internal/response"
	"github.com/skillbridge-bd/institute-backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubAuth accepts "good" and fails every other token with err.
type stubAuth struct {
	err  error
	seen string
}

func (s *stubAuth) Authenticate(_ context.Context, tokenStr string) (*service.Claims, *model.Admin, error) {
	s.seen = tokenStr
	if tokenStr != "good" {
		return nil, nil, s.err
	}
	return &service.Claims{CredentialVersion: 1}, &model.Admin{ID: uuid.New(), Username: "admin"}, nil
}

func guarded(auth Authenticator) *gin.Engine {
	r := gin.New()
	r.GET("/private", RequireAdmin(auth), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": GetAdmin(c).Username, "claims": GetClaims(c) != nil})
	})
	return r
}

func TestRequireAdmin_TokenSources(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		cookie string
		want   string
	}{
		{name: "bearer header", header: "Bearer good", want: "good"},
		{name: "lowercase scheme", header: "bearer good", want: "good"},
		{name: "cookie fallback", cookie: "good", want: "good"},
		{name: "header wins over cookie", header: "Bearer good", cookie: "stale", want: "good"},
		{name: "non-bearer header falls back to cookie", header: "Basic Zm9v", cookie: "good", want: "good"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			auth := &stubAuth{err: service.ErrTokenMalformed}
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: TokenCookie, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			guarded(auth).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, tt.want, auth.seen)
			assert.Contains(t, rec.Body.String(), `"username":"admin"`)
		})
	}
}

func TestRequireAdmin_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		err    error
		code   response.ErrCode
	}{
		{name: "no token", code: response.ErrTokenRequired},
		{name: "empty bearer", header: "Bearer   ", code: response.ErrTokenRequired},
		{name: "malformed", header: "Bearer bad", err: service.ErrTokenMalformed, code: response.ErrTokenInvalid},
		{name: "expired", header: "Bearer bad", err: service.ErrTokenExpired, code: response.ErrTokenExpired},
		{name: "revoked", header: "Bearer bad", err: service.ErrTokenRevoked, code: response.ErrTokenInvalid},
		{name: "store failure", header: "Bearer bad", err: errors.New("db down"), code: response.ErrTokenInvalid},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			guarded(&stubAuth{err: tt.err}).ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			var body response.ErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, "Unauthorized", body.Error)
			assert.Equal(t, tt.code, body.Code)
		})
	}
}

func TestGetters_OutsideGuard(t *testing.T) {
	t.Parallel()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, GetClaims(c))
	assert.Nil(t, GetAdmin(c))
}
