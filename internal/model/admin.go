package model

import (
	"time"

	"github.com/google/uuid"
)

// Admin is a back-office identity. CredentialVersion is bumped on every
// credential rotation and embedded in issued tokens.
type Admin struct {
	ID                uuid.UUID `json:"id"`
	Username          string    `json:"username"`
	PasswordHash      string    `json:"-"`
	CredentialVersion int       `json:"-"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// LoginRequest is the payload for admin authentication.
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=255"`
	Password string `json:"password" binding:"required,max=128"`
}

// UpdateCredentialsRequest is the payload for rotating the admin credentials.
type UpdateCredentialsRequest struct {
	CurrentUsername string `json:"currentUsername" binding:"required,max=255"`
	CurrentPassword string `json:"currentPassword" binding:"required,max=128"`
	NewUsername     string `json:"newUsername" binding:"required,max=255"`
	NewPassword     string `json:"newPassword" binding:"required,max=128"`
}
