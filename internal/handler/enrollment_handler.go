package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillbridge-bd/institute-backend/internal/model"
	"github.com/skillbridge-bd/institute-backend/internal/response"
	"github.com/skillbridge-bd/institute-backend/internal/service"
	"github.com/skillbridge-bd/institute-backend/internal/validator"
)

const enrollmentNotFound = "Enrollment not found"

// EnrollmentHandler handles course enrollment endpoints.
type EnrollmentHandler struct {
	enrollments *service.EnrollmentService
}

// NewEnrollmentHandler creates a new EnrollmentHandler.
func NewEnrollmentHandler(enrollments *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments}
}

// List godoc
// GET /api/enrollments
// Lists enrollments, newest first.
func (h *EnrollmentHandler) List(c *gin.Context) {
	enrollments, err := h.enrollments.List(c.Request.Context())
	if err != nil {
		failInternal(c, http.StatusInternalServerError, response.ErrInternal, err)
		return
	}

	views := make([]model.EnrollmentView, 0, len(enrollments))
	for i := range enrollments {
		views = append(views, enrollments[i].View())
	}
	response.Success(c, http.StatusOK, gin.H{"enrollments": views})
}

// Create godoc
// POST /api/enrollments (multipart)
// Public enrollment form. Both photos are uploaded before anything is stored.
func (h *EnrollmentHandler) Create(c *gin.Context) {
	var form model.CreateEnrollmentForm
	if fields := validator.BindForm(c, &form); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrRequiredFields, fields)
		return
	}

	enrollment, err := h.enrollments.Create(c.Request.Context(), service.NewEnrollment{
		Name:     form.Name,
		Phone:    form.Phone,
		Email:    form.Email,
		Photo:    service.UploadFromHeader(form.Photo),
		NIDPhoto: service.UploadFromHeader(form.NIDPhoto),
	})
	if err != nil {
		failMedia(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":    "আপনার তথ্য সফলভাবে জমা হয়েছে! আমরা শীঘ্রই আপনার সাথে যোগাযোগ করব।",
		"enrollment": enrollment.View(),
	})
}

// Delete godoc
// DELETE /api/enrollments?_id=
func (h *EnrollmentHandler) Delete(c *gin.Context) {
	id, ok := queryID(c, "_id", enrollmentNotFound)
	if !ok {
		return
	}

	if err := h.enrollments.Delete(c.Request.Context(), id); err != nil {
		failStore(c, err, enrollmentNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Enrollment deleted successfully"})
}
