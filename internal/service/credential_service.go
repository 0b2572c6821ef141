package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/skillbridge-bd/institute-backend/internal/config"
	"github.com/skillbridge-bd/institute-backend/internal/model"
	"github.com/skillbridge-bd/institute-backend/internal/repository"
)

// ErrInvalidCurrentCredentials is returned when a rotation request does not
// prove knowledge of the current username and password.
var ErrInvalidCurrentCredentials = errors.New("invalid current credentials")

// AdminStore is the credential store backing CredentialService.
type AdminStore interface {
	Exists(ctx context.Context) (bool, error)
	CreateIfEmpty(ctx context.Context, username, passwordHash string) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Admin, error)
	GetByUsername(ctx context.Context, username string) (*model.Admin, error)
	First(ctx context.Context) (*model.Admin, error)
	Rotate(ctx context.Context, id uuid.UUID, username, passwordHash string) (*model.Admin, error)
}

// CredentialService owns the admin identity: bootstrap, login, per-request
// authentication and credential rotation.
type CredentialService struct {
	admins          AdminStore
	auth            *AuthService
	defaultUsername string
	defaultPassword string
	log             zerolog.Logger
}

// NewCredentialService creates a new CredentialService.
func NewCredentialService(admins AdminStore, auth *AuthService, cfg *config.Config, log zerolog.Logger) *CredentialService {
	return &CredentialService{
		admins:          admins,
		auth:            auth,
		defaultUsername: cfg.DefaultAdminUsername,
		defaultPassword: cfg.DefaultAdminPassword,
		log:             log.With().Str("component", "credential_service").Logger(),
	}
}

// EnsureDefaultIdentity inserts the default admin when the store is empty.
// Safe to call on every login attempt.
func (s *CredentialService) EnsureDefaultIdentity(ctx context.Context) error {
	exists, err := s.admins.Exists(ctx)
	if err != nil {
		return fmt.Errorf("check admins: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := s.auth.HashPassword(s.defaultPassword)
	if err != nil {
		return fmt.Errorf("hash default password: %w", err)
	}

	created, err := s.admins.CreateIfEmpty(ctx, s.defaultUsername, hash)
	if err != nil {
		return fmt.Errorf("create default admin: %w", err)
	}
	if created {
		s.log.Warn().Str("username", s.defaultUsername).Msg("Default admin created, rotate its credentials")
	}
	return nil
}

// Login verifies username and password and returns a signed token.
func (s *CredentialService) Login(ctx context.Context, username, password string) (string, *model.Admin, error) {
	if err := s.EnsureDefaultIdentity(ctx); err != nil {
		return "", nil, err
	}

	admin, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("load admin: %w", err)
	}

	if err := s.auth.CheckPassword(admin.PasswordHash, password); err != nil {
		return "", nil, err
	}

	token, err := s.auth.IssueToken(admin)
	if err != nil {
		return "", nil, err
	}
	return token, admin, nil
}

// Authenticate validates the token and checks that it still names an existing
// admin with the same credential version. Runs on every protected request.
func (s *CredentialService) Authenticate(ctx context.Context, tokenStr string) (*Claims, *model.Admin, error) {
	claims, err := s.auth.ValidateToken(tokenStr)
	if err != nil {
		return nil, nil, err
	}

	id, _ := claims.AdminID()
	admin, err := s.admins.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrTokenRevoked
		}
		return nil, nil, fmt.Errorf("load admin: %w", err)
	}
	if admin.CredentialVersion != claims.CredentialVersion {
		return nil, nil, ErrTokenRevoked
	}
	return claims, admin, nil
}

// ChangeCredentials rotates the credentials of the authenticated admin after
// re-checking the current username and password.
func (s *CredentialService) ChangeCredentials(ctx context.Context, adminID uuid.UUID, req model.UpdateCredentialsRequest) (*model.Admin, error) {
	admin, err := s.admins.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}

	if req.CurrentUsername != admin.Username {
		return nil, ErrInvalidCurrentCredentials
	}
	if err := s.auth.CheckPassword(admin.PasswordHash, req.CurrentPassword); err != nil {
		return nil, ErrInvalidCurrentCredentials
	}

	return s.rotate(ctx, admin.ID, req.NewUsername, req.NewPassword)
}

// ResetCredentials overwrites the oldest admin's credentials without checking
// the current ones. Used by the offline reset-admin command.
func (s *CredentialService) ResetCredentials(ctx context.Context, username, password string) (*model.Admin, error) {
	if err := s.EnsureDefaultIdentity(ctx); err != nil {
		return nil, err
	}
	admin, err := s.admins.First(ctx)
	if err != nil {
		return nil, fmt.Errorf("load admin: %w", err)
	}
	return s.rotate(ctx, admin.ID, username, password)
}

func (s *CredentialService) rotate(ctx context.Context, id uuid.UUID, username, password string) (*model.Admin, error) {
	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	updated, err := s.admins.Rotate(ctx, id, username, hash)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("admin_id", updated.ID.String()).
		Str("username", updated.Username).
		Int("credential_version", updated.CredentialVersion).
		Msg("Admin credentials rotated")
	return updated, nil
}
