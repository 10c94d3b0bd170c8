package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bgibson72/employee-schedule-manager/pkg/core/services"
)

// ErrorInfo is the tagged failure shape returned to callers
type ErrorInfo struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// ErrorBody wraps an ErrorInfo in the response envelope
type ErrorBody struct {
	Error ErrorInfo `json:"error"`
}

// statusForKind maps the workflow error taxonomy onto HTTP status codes
func statusForKind(kind services.Kind) int {
	switch kind {
	case services.KindInvalidArgument:
		return http.StatusBadRequest
	case services.KindUnauthenticated:
		return http.StatusUnauthorized
	case services.KindPermissionDenied:
		return http.StatusForbidden
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindFailedPrecondition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error writes a workflow failure as a tagged error response. Internal
// failures hide the underlying message from the caller.
func Error(c *gin.Context, err error) {
	kind := services.KindOf(err)
	message := "internal error"
	var wfErr *services.WorkflowError
	if errors.As(err, &wfErr) && kind != services.KindInternal {
		message = wfErr.Message
	}

	c.JSON(statusForKind(kind), ErrorBody{Error: ErrorInfo{
		Kind:    string(kind),
		Message: message,
	}})
}

// BadRequest writes an invalid-argument error with the given message
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: ErrorInfo{
		Kind:    string(services.KindInvalidArgument),
		Message: message,
	}})
}

// Unauthenticated writes an unauthenticated error with the given message
func Unauthenticated(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, ErrorBody{Error: ErrorInfo{
		Kind:    string(services.KindUnauthenticated),
		Message: message,
	}})
}
