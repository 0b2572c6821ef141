package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the failure envelope: {success:false, error, code, fields?}.
type ErrorBody struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Code    ErrCode           `json:"code"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ────────────────────────────────────────────────────────────────────────────
// Helper builders
// ────────────────────────────────────────────────────────────────────────────

// Success sends {success:true, ...payload} with the given status code.
func Success(c *gin.Context, statusCode int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		if k == "success" {
			continue
		}
		body[k] = v
	}
	c.JSON(statusCode, body)
}

// Fail sends an error response whose message is derived from the code.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, ErrorBody{Error: GetMessage(code), Code: code})
}

// FailWithMessage sends an error response with a resource-specific message.
func FailWithMessage(c *gin.Context, statusCode int, code ErrCode, message string) {
	c.JSON(statusCode, ErrorBody{Error: message, Code: code})
}

// FailWithFields sends an error response with field-level validation details.
func FailWithFields(c *gin.Context, statusCode int, code ErrCode, fields map[string]string) {
	c.JSON(statusCode, ErrorBody{Error: GetMessage(code), Code: code, Fields: fields})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, ErrorBody{Error: GetMessage(code), Code: code})
}
