package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/skillbridge-bd/institute-backend/internal/config"
	"github.com/skillbridge-bd/institute-backend/internal/model"
	"golang.org/x/crypto/bcrypt"
)

// Token and password errors. Guards treat every token error as unauthenticated;
// the distinction only shows up in the response code.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenMalformed     = errors.New("token malformed")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenRevoked       = errors.New("token no longer matches stored credentials")
)

// Claims extends JWT standard claims with the admin identity.
// Subject carries the admin id.
type Claims struct {
	jwt.RegisteredClaims
	Username          string `json:"username"`
	CredentialVersion int    `json:"credential_version"`
}

// AdminID parses the subject claim.
func (c *Claims) AdminID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// AuthService issues and verifies bearer tokens and hashes passwords.
type AuthService struct {
	secret     []byte
	expiry     time.Duration
	bcryptCost int
	now        func() time.Time
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{
		secret:     []byte(cfg.JWTSecret),
		expiry:     cfg.JWTExpiry,
		bcryptCost: cfg.BcryptCost,
		now:        time.Now,
	}
}

// TokenTTL is how long issued tokens (and the login cookie) stay valid.
func (s *AuthService) TokenTTL() time.Duration {
	return s.expiry
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// IssueToken signs an HS256 token for the admin.
func (s *AuthService) IssueToken(admin *model.Admin) (string, error) {
	now := s.now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   admin.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
		Username:          admin.Username,
		CredentialVersion: admin.CredentialVersion,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken checks signature and expiry. The returned error wraps
// ErrTokenExpired or ErrTokenMalformed.
func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenMalformed
	}
	if _, err := claims.AdminID(); err != nil {
		return nil, fmt.Errorf("%w: bad subject", ErrTokenMalformed)
	}

	return claims, nil
}
