package model

import (
	"mime/multipart"
	"time"

	"github.com/google/uuid"
)

// Certificate is an issued course certificate.
type Certificate struct {
	ID                  uuid.UUID
	Name                string
	RegistrationNumber  string
	Roll                string
	StudentImageURL     *string
	CertificateImageURL string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// CertificateView is the client-facing shape of a Certificate.
type CertificateView struct {
	ID                  string    `json:"id"`
	LegacyID            string    `json:"_id"`
	Name                string    `json:"name"`
	RegistrationNumber  string    `json:"registrationNumber"`
	Roll                string    `json:"roll"`
	StudentImageURL     string    `json:"studentImageUrl,omitempty"`
	CertificateImageURL string    `json:"certificateImageUrl"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// View maps a certificate to its client representation.
func (c *Certificate) View() CertificateView {
	id := c.ID.String()
	return CertificateView{
		ID:                  id,
		LegacyID:            id,
		Name:                c.Name,
		RegistrationNumber:  c.RegistrationNumber,
		Roll:                c.Roll,
		StudentImageURL:     deref(c.StudentImageURL),
		CertificateImageURL: c.CertificateImageURL,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

// CertificateFields are the text fields shared by create and update.
// StudentImageURL keeps an already hosted student photo when no new file is sent.
type CertificateFields struct {
	Name               string `form:"name" binding:"required,max=200"`
	RegistrationNumber string `form:"registrationNumber" binding:"required,max=64"`
	Roll               string `form:"roll" binding:"required,max=64"`
	StudentImageURL    string `form:"studentImageUrl" binding:"omitempty,max=2048"`
}

// CreateCertificateForm is the multipart payload for POST /api/certificates.
type CreateCertificateForm struct {
	CertificateFields
	StudentImage *multipart.FileHeader `form:"studentImage"`
	Certificate  *multipart.FileHeader `form:"certificate" binding:"required"`
}

// UpdateCertificateForm is the multipart payload for PUT /api/certificates.
type UpdateCertificateForm struct {
	ID string `form:"id" binding:"required"`
	CertificateFields
	StudentImage *multipart.FileHeader `form:"studentImage"`
	Certificate  *multipart.FileHeader `form:"certificate"`
}
