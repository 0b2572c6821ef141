package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/skillbridge-bd/institute-backend/internal/repository"
	"github.com/skillbridge-bd/institute-backend/internal/response"
	"github.com/skillbridge-bd/institute-backend/internal/service"
	"github.com/skillbridge-bd/institute-backend/internal/storage"
)

// queryID reads a record id from the query string. A missing id is a 400; an
// id that cannot name any record is reported as not found.
func queryID(c *gin.Context, key, notFoundMsg string) (uuid.UUID, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return uuid.Nil, false
	}
	return parseRecordID(c, raw, notFoundMsg)
}

func parseRecordID(c *gin.Context, raw, notFoundMsg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		response.FailWithMessage(c, http.StatusNotFound, response.ErrNotFound, notFoundMsg)
		return uuid.Nil, false
	}
	return id, true
}

// failMedia writes the response for an upload pipeline error.
func failMedia(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnsupportedFileType):
		response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
	case errors.Is(err, service.ErrFileTooLarge):
		response.Fail(c, http.StatusBadRequest, response.ErrFileTooLarge)
	case errors.Is(err, service.ErrCertificateImageUpload):
		failInternal(c, http.StatusInternalServerError, response.ErrCertificateUpload, err)
	case errors.Is(err, service.ErrStudentImageUpload):
		failInternal(c, http.StatusInternalServerError, response.ErrStudentImageUpload, err)
	case errors.Is(err, storage.ErrUploadFailed):
		failInternal(c, http.StatusInternalServerError, response.ErrUploadFailed, err)
	default:
		failInternal(c, http.StatusInternalServerError, response.ErrInternal, err)
	}
}

// failStore maps repository errors; anything unknown is a 500.
func failStore(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.FailWithMessage(c, http.StatusNotFound, response.ErrNotFound, notFoundMsg)
	case errors.Is(err, repository.ErrConflict):
		response.Fail(c, http.StatusConflict, response.ErrConflict)
	default:
		failInternal(c, http.StatusInternalServerError, response.ErrInternal, err)
	}
}

// failInternal attaches err for the request logger and sends a generic body.
func failInternal(c *gin.Context, status int, code response.ErrCode, err error) {
	_ = c.Error(err)
	response.Fail(c, status, code)
}
