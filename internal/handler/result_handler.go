package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillbridge-bd/institute-backend/internal/model"
	"github.com/skillbridge-bd/institute-backend/internal/response"
	"github.com/skillbridge-bd/institute-backend/internal/service"
	"github.com/skillbridge-bd/institute-backend/internal/validator"
)

const resultNotFound = "Result not found"

// ResultHandler handles exam result endpoints.
type ResultHandler struct {
	results *service.ResultService
}

// NewResultHandler creates a new ResultHandler.
func NewResultHandler(results *service.ResultService) *ResultHandler {
	return &ResultHandler{results: results}
}

// List godoc
// GET /api/results
// Public result lookup, newest first.
func (h *ResultHandler) List(c *gin.Context) {
	results, err := h.results.List(c.Request.Context())
	if err != nil {
		failInternal(c, http.StatusInternalServerError, response.ErrInternal, err)
		return
	}

	views := make([]model.ResultView, 0, len(results))
	for i := range results {
		views = append(views, results[i].View())
	}
	response.Success(c, http.StatusOK, gin.H{"results": views})
}

// Create godoc
// POST /api/results
func (h *ResultHandler) Create(c *gin.Context) {
	var req model.CreateResultRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrRequiredFields, fields)
		return
	}

	result, err := h.results.Create(c.Request.Context(), req.ResultFields)
	if err != nil {
		failStore(c, err, resultNotFound)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"result": result.View()})
}

// Update godoc
// PUT /api/results
// The id travels in the body. An empty certificate URL keeps the stored one.
func (h *ResultHandler) Update(c *gin.Context) {
	var req model.UpdateResultRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrRequiredFields, fields)
		return
	}

	id, ok := parseRecordID(c, req.ID, resultNotFound)
	if !ok {
		return
	}

	result, err := h.results.Update(c.Request.Context(), id, req.ResultFields)
	if err != nil {
		failStore(c, err, resultNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"result": result.View()})
}

// Delete godoc
// DELETE /api/results?id=
func (h *ResultHandler) Delete(c *gin.Context) {
	id, ok := queryID(c, "id", resultNotFound)
	if !ok {
		return
	}

	if err := h.results.Delete(c.Request.Context(), id); err != nil {
		failStore(c, err, resultNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Result deleted successfully"})
}
