package service

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/skillbridge-bd/institute-backend/internal/model"
	"github.com/skillbridge-bd/institute-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCredentials() (*CredentialService, *memAdmins) {
	store := &memAdmins{}
	cfg := testConfig()
	return NewCredentialService(store, NewAuthService(cfg), cfg, zerolog.Nop()), store
}

func TestCredentialService_EnsureDefaultIdentity_Idempotent(t *testing.T) {
	t.Parallel()

	svc, store := newTestCredentials()
	ctx := context.Background()

	require.NoError(t, svc.EnsureDefaultIdentity(ctx))
	require.NoError(t, svc.EnsureDefaultIdentity(ctx))
	assert.Equal(t, 1, store.count())

	admin, err := store.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, 1, admin.CredentialVersion)
}

func TestCredentialService_EnsureDefaultIdentity_Concurrent(t *testing.T) {
	t.Parallel()

	svc, store := newTestCredentials()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, svc.EnsureDefaultIdentity(context.Background()))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, store.count())
}

func TestCredentialService_Login(t *testing.T) {
	t.Parallel()

	svc, _ := newTestCredentials()
	ctx := context.Background()

	token, admin, err := svc.Login(ctx, "admin", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "admin", admin.Username)

	claims, authed, err := svc.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, authed.ID)
	assert.Equal(t, "admin", claims.Username)

	_, _, err = svc.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody", "admin")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCredentialService_RotationRevokesOldTokens(t *testing.T) {
	t.Parallel()

	svc, _ := newTestCredentials()
	ctx := context.Background()

	oldToken, admin, err := svc.Login(ctx, "admin", "admin")
	require.NoError(t, err)

	_, err = svc.ChangeCredentials(ctx, admin.ID, model.UpdateCredentialsRequest{
		CurrentUsername: "admin",
		CurrentPassword: "admin",
		NewUsername:     "principal",
		NewPassword:     "n3w-pass",
	})
	require.NoError(t, err)

	_, _, err = svc.Authenticate(ctx, oldToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)

	_, _, err = svc.Login(ctx, "admin", "admin")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	newToken, _, err := svc.Login(ctx, "principal", "n3w-pass")
	require.NoError(t, err)
	_, _, err = svc.Authenticate(ctx, newToken)
	assert.NoError(t, err)
}

func TestCredentialService_ChangeCredentials_RejectsWrongCurrent(t *testing.T) {
	t.Parallel()

	svc, _ := newTestCredentials()
	ctx := context.Background()

	_, admin, err := svc.Login(ctx, "admin", "admin")
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong username", username: "root", password: "admin"},
		{name: "wrong password", username: "admin", password: "guess"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ChangeCredentials(ctx, admin.ID, model.UpdateCredentialsRequest{
				CurrentUsername: tt.username,
				CurrentPassword: tt.password,
				NewUsername:     "x",
				NewPassword:     "y",
			})
			assert.ErrorIs(t, err, ErrInvalidCurrentCredentials)
		})
	}

	_, _, err = svc.Login(ctx, "admin", "admin")
	assert.NoError(t, err, "failed rotations must leave credentials untouched")
}

func TestCredentialService_ResetCredentials(t *testing.T) {
	t.Parallel()

	svc, store := newTestCredentials()
	ctx := context.Background()

	admin, err := svc.ResetCredentials(ctx, "owner", "recovered")
	require.NoError(t, err)
	assert.Equal(t, "owner", admin.Username)
	assert.Equal(t, 2, admin.CredentialVersion)
	assert.Equal(t, 1, store.count())

	_, _, err = svc.Login(ctx, "owner", "recovered")
	assert.NoError(t, err)
}

func TestCredentialService_Authenticate_UnknownAdmin(t *testing.T) {
	t.Parallel()

	svc, _ := newTestCredentials()
	token, err := svc.auth.IssueToken(testAdmin())
	require.NoError(t, err)

	_, _, err = svc.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, ErrTokenRevoked)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
}
