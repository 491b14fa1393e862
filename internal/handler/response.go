package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"imglabeler/internal/domain"
)

// APIResponse is the envelope for error responses from the invoke server.
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

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrNoRecords):
		return http.StatusBadRequest, "NO_RECORDS", "upload notification has no records"
	case errors.Is(err, domain.ErrMissingBucket):
		return http.StatusBadRequest, "MISSING_BUCKET", "upload notification is missing the bucket name"
	case errors.Is(err, domain.ErrMissingKey):
		return http.StatusBadRequest, "MISSING_KEY", "upload notification is missing the object key"
	case errors.Is(err, domain.ErrInvalidKey):
		return http.StatusBadRequest, "INVALID_KEY", "object key is not a valid url-encoded string"
	case errors.Is(err, domain.ErrObjectNotFound):
		return http.StatusNotFound, "OBJECT_NOT_FOUND", "referenced object does not exist"
	case errors.Is(err, domain.ErrDetectionFailed):
		return http.StatusBadGateway, "DETECTION_FAILED", "label detection failed"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Error().Err(err).Interface("request_id", requestID).Msg("invoke failed")
	}
	RespondError(c, status, code, msg)
}
