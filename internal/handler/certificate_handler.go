package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillbridge-bd/institute-backend/internal/model"
	"github.com/skillbridge-bd/institute-backend/internal/repository"
	"github.com/skillbridge-bd/institute-backend/internal/response"
	"github.com/skillbridge-bd/institute-backend/internal/service"
	"github.com/skillbridge-bd/institute-backend/internal/validator"
)

const certificateNotFound = "Certificate not found"

// CertificateHandler handles certificate endpoints.
type CertificateHandler struct {
	certificates *service.CertificateService
}

// NewCertificateHandler creates a new CertificateHandler.
func NewCertificateHandler(certificates *service.CertificateService) *CertificateHandler {
	return &CertificateHandler{certificates: certificates}
}

// List godoc
// GET /api/certificates
// Public certificate verification list, newest first.
func (h *CertificateHandler) List(c *gin.Context) {
	certificates, err := h.certificates.List(c.Request.Context())
	if err != nil {
		failInternal(c, http.StatusInternalServerError, response.ErrInternal, err)
		return
	}

	views := make([]model.CertificateView, 0, len(certificates))
	for i := range certificates {
		views = append(views, certificates[i].View())
	}
	response.Success(c, http.StatusOK, gin.H{"certificates": views})
}

// Create godoc
// POST /api/certificates (multipart)
// Requires a certificate image and a student image file or URL.
func (h *CertificateHandler) Create(c *gin.Context) {
	var form model.CreateCertificateForm
	if fields := validator.BindForm(c, &form); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrRequiredFields, fields)
		return
	}

	cert, err := h.certificates.Create(c.Request.Context(), certificateInput(form.CertificateFields, form.StudentImage, form.Certificate))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"certificate": cert.View()})
}

// Update godoc
// PUT /api/certificates (multipart)
// New files replace the stored images; omitted files keep them.
func (h *CertificateHandler) Update(c *gin.Context) {
	var form model.UpdateCertificateForm
	if fields := validator.BindForm(c, &form); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrRequiredFields, fields)
		return
	}

	id, ok := parseRecordID(c, form.ID, certificateNotFound)
	if !ok {
		return
	}

	cert, err := h.certificates.Update(c.Request.Context(), id, certificateInput(form.CertificateFields, form.StudentImage, form.Certificate))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"certificate": cert.View()})
}

// Delete godoc
// DELETE /api/certificates?id=
func (h *CertificateHandler) Delete(c *gin.Context) {
	id, ok := queryID(c, "id", certificateNotFound)
	if !ok {
		return
	}

	if err := h.certificates.Delete(c.Request.Context(), id); err != nil {
		failStore(c, err, certificateNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Certificate deleted successfully"})
}

func (h *CertificateHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStudentImageRequired):
		response.Fail(c, http.StatusBadRequest, response.ErrStudentImageRequired)
	case errors.Is(err, service.ErrCertificateImageRequired):
		response.Fail(c, http.StatusBadRequest, response.ErrRequiredFields)
	case errors.Is(err, repository.ErrNotFound):
		response.FailWithMessage(c, http.StatusNotFound, response.ErrNotFound, certificateNotFound)
	default:
		failMedia(c, err)
	}
}

func certificateInput(f model.CertificateFields, student, certificate *multipart.FileHeader) service.CertificateInput {
	return service.CertificateInput{
		Name:               f.Name,
		RegistrationNumber: f.RegistrationNumber,
		Roll:               f.Roll,
		StudentImageURL:    f.StudentImageURL,
		StudentImage:       service.UploadFromHeader(student),
		Certificate:        service.UploadFromHeader(certificate),
	}
}
