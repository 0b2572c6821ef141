package model

import (
	"mime/multipart"
	"time"

	"github.com/google/uuid"
)

// EnrollmentStatus is the review state of an enrollment. No endpoint moves
// an enrollment out of pending yet.
type EnrollmentStatus string

const (
	EnrollmentPending  EnrollmentStatus = "pending"
	EnrollmentApproved EnrollmentStatus = "approved"
	EnrollmentRejected EnrollmentStatus = "rejected"
)

// Enrollment is a public course enrollment submission.
type Enrollment struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Email     *string
	Photo     string
	NIDPhoto  string
	Status    EnrollmentStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EnrollmentView is the client-facing shape of an Enrollment.
type EnrollmentView struct {
	ID        string           `json:"id"`
	LegacyID  string           `json:"_id"`
	Name      string           `json:"name"`
	Phone     string           `json:"phone"`
	Email     string           `json:"email,omitempty"`
	Photo     string           `json:"photo"`
	NIDPhoto  string           `json:"nidPhoto"`
	Status    EnrollmentStatus `json:"status"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// View maps the stored enrollment to its wire shape.
func (e *Enrollment) View() EnrollmentView {
	id := e.ID.String()
	return EnrollmentView{
		ID:        id,
		LegacyID:  id,
		Name:      e.Name,
		Phone:     e.Phone,
		Email:     deref(e.Email),
		Photo:     e.Photo,
		NIDPhoto:  e.NIDPhoto,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// CreateEnrollmentForm is the multipart payload of a public enrollment.
type CreateEnrollmentForm struct {
	Name     string                `form:"name" binding:"required,max=200"`
	Phone    string                `form:"phone" binding:"required,max=32"`
	Email    string                `form:"email" binding:"omitempty,email,max=255"`
	Photo    *multipart.FileHeader `form:"photo" binding:"required"`
	NIDPhoto *multipart.FileHeader `form:"nidPhoto" binding:"required"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Optional returns nil for an empty string.
func Optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
