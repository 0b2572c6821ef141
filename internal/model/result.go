package model

import (
	"time"

	"github.com/google/uuid"
)

// Result is a published exam result, looked up publicly by roll number.
type Result struct {
	ID             uuid.UUID
	Name           string
	Roll           string
	Result         string
	CertificateURL *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ResultView is the client-facing shape of a Result.
type ResultView struct {
	ID             string    `json:"id"`
	LegacyID       string    `json:"_id"`
	Name           string    `json:"name"`
	Roll           string    `json:"roll"`
	Result         string    `json:"result"`
	CertificateURL string    `json:"certificateUrl,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// View maps a result to its client representation.
func (r *Result) View() ResultView {
	id := r.ID.String()
	return ResultView{
		ID:             id,
		LegacyID:       id,
		Name:           r.Name,
		Roll:           r.Roll,
		Result:         r.Result,
		CertificateURL: deref(r.CertificateURL),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// ResultFields holds the writable fields of a Result.
// The admin UI historically sent certificate_url, so both spellings are read.
type ResultFields struct {
	Name                 string `json:"name" binding:"required,max=200"`
	Roll                 string `json:"roll" binding:"required,max=64"`
	Result               string `json:"result" binding:"required,max=200"`
	CertificateURL       string `json:"certificateUrl" binding:"omitempty,max=2048"`
	LegacyCertificateURL string `json:"certificate_url" binding:"omitempty,max=2048"`
}

// CertificateLink returns the supplied certificate URL, or "" when none was sent.
func (f ResultFields) CertificateLink() string {
	if f.CertificateURL != "" {
		return f.CertificateURL
	}
	return f.LegacyCertificateURL
}

// CreateResultRequest is the payload for POST /api/results.
type CreateResultRequest struct {
	ResultFields
}

// UpdateResultRequest is the payload for PUT /api/results.
type UpdateResultRequest struct {
	ID string `json:"id" binding:"required"`
	ResultFields
}

// NewResult builds a Result from the request fields.
func NewResult(f ResultFields) *Result {
	return &Result{
		Name:           f.Name,
		Roll:           f.Roll,
		Result:         f.Result,
		CertificateURL: Optional(f.CertificateLink()),
	}
}
