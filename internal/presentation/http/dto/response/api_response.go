package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/supamart/pos-api/pkg/apperror"
	"github.com/supamart/pos-api/pkg/pagination"
)

// APIResponse is the uniform envelope for every endpoint. Status is the
// discriminator clients switch on: "success" or "error".
type APIResponse struct {
	Status  string                `json:"status"`
	Message string                `json:"message,omitempty"`
	Data    interface{}           `json:"data,omitempty"`
	Errors  []apperror.FieldError `json:"errors,omitempty"`
	Meta    *Meta                 `json:"meta,omitempty"`
}

// Meta carries response metadata
type Meta struct {
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}

func newMeta(c *gin.Context) *Meta {
	return &Meta{
		Timestamp: time.Now().UTC(),
		RequestID: c.GetString("request_id"),
	}
}

// OK sends a 200 success response
func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
		Meta:    newMeta(c),
	})
}

// Created sends a 201 success response
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
		Meta:    newMeta(c),
	})
}

// NoContent sends a 204 response
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// SuccessWithPagination sends a 200 response with a paginated payload
func SuccessWithPagination[T any](c *gin.Context, message string, items []T, p *pagination.Pagination) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Message: message,
		Data:    pagination.NewPaginatedResult(items, p),
		Meta:    newMeta(c),
	})
}

// Error maps any error to the envelope. AppErrors keep their status code
// and message; everything else becomes a 500 with a generic message so
// internals never leak.
func Error(c *gin.Context, err error) {
	appErr := apperror.GetAppError(err)

	message := appErr.Message
	if appErr.Code >= http.StatusInternalServerError {
		message = "Something went wrong"
	}

	c.JSON(appErr.Code, APIResponse{
		Status:  "error",
		Message: message,
		Errors:  appErr.Errors,
		Meta:    newMeta(c),
	})
}

// BadRequest sends a 400 error response
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Status:  "error",
		Message: message,
		Meta:    newMeta(c),
	})
}

// Unauthorized sends a 401 error response
func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, APIResponse{
		Status:  "error",
		Message: message,
		Meta:    newMeta(c),
	})
}

// Forbidden sends a 403 error response
func Forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, APIResponse{
		Status:  "error",
		Message: message,
		Meta:    newMeta(c),
	})
}

// NotFound sends a 404 error response
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, APIResponse{
		Status:  "error",
		Message: message,
		Meta:    newMeta(c),
	})
}

// ValidationError sends a 422 response for request binding failures
func ValidationError(c *gin.Context, fieldErrors []apperror.FieldError) {
	c.JSON(http.StatusUnprocessableEntity, APIResponse{
		Status:  "error",
		Message: "Validation failed",
		Errors:  fieldErrors,
		Meta:    newMeta(c),
	})
}
