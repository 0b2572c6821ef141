package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillbridge-bd/institute-backend/internal/model"
	"github.com/skillbridge-bd/institute-backend/internal/response"
	"github.com/skillbridge-bd/institute-backend/internal/service"
	"github.com/skillbridge-bd/institute-backend/internal/validator"
)

// SeminarHandler handles the free seminar schedule.
type SeminarHandler struct {
	seminars *service.SeminarService
}

// NewSeminarHandler creates a new SeminarHandler.
func NewSeminarHandler(seminars *service.SeminarService) *SeminarHandler {
	return &SeminarHandler{seminars: seminars}
}

// List godoc
// GET /api/seminars
func (h *SeminarHandler) List(c *gin.Context) {
	sets, err := h.seminars.List(c.Request.Context())
	if err != nil {
		failInternal(c, http.StatusInternalServerError, response.ErrInternal, err)
		return
	}

	views := make([]model.SeminarSetView, 0, len(sets))
	for i := range sets {
		views = append(views, sets[i].View())
	}
	response.Success(c, http.StatusOK, gin.H{"data": views})
}

// Save godoc
// POST /api/seminars?id=
// Replaces the seminars of an existing set, or creates a set when the id is
// absent or unknown.
func (h *SeminarHandler) Save(c *gin.Context) {
	var req model.SaveSeminarsRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidPayload, fields)
		return
	}

	set, err := h.seminars.Save(c.Request.Context(), c.Query("id"), req.Seminars)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSeminarCount):
			response.Fail(c, http.StatusBadRequest, response.ErrSeminarCount)
		case errors.Is(err, service.ErrInvalidSeminar):
			response.Fail(c, http.StatusBadRequest, response.ErrRequiredFields)
		default:
			failInternal(c, http.StatusInternalServerError, response.ErrInternal, err)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"seminar": set.View()})
}
