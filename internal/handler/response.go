package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	if kind, ok := domain.FlowErrorKindOf(err); ok {
		switch kind {
		case domain.FlowErrConfigurationMissing:
			return http.StatusServiceUnavailable, "AI_NOT_CONFIGURED", "the AI provider is not configured"
		case domain.FlowErrTransportFailure:
			return http.StatusBadGateway, "AI_UNREACHABLE", "the AI provider could not be reached"
		case domain.FlowErrNonSuccessStatus:
			return http.StatusBadGateway, "AI_UPSTREAM_ERROR", "the AI provider rejected the request"
		case domain.FlowErrMalformedJSON, domain.FlowErrSchemaViolation:
			return http.StatusBadGateway, "AI_RESPONSE_INVALID", "the AI response could not be interpreted"
		}
	}

	switch {
	case errors.Is(err, domain.ErrCaseNotFound):
		return http.StatusNotFound, "CASE_NOT_FOUND", "case not found"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrEmptyMessage):
		return http.StatusBadRequest, "EMPTY_MESSAGE", "message text is required"
	case errors.Is(err, domain.ErrInvalidSnapshot):
		return http.StatusBadRequest, "INVALID_SNAPSHOT_KIND", "invalid analysis snapshot kind"
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, "INVALID_ROLE", "invalid message role"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
