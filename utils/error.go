package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// AppError is an expected failure that maps onto an HTTP status.
type AppError struct {
	Code    string
	Message string
	Status  int
}

func (e *AppError) Error() string {
	return e.Message
}

func newAppError(status int, code, msg string) error {
	return &AppError{Code: code, Message: msg, Status: status}
}

func NewBadRequestError(msg string) error {
	return newAppError(http.StatusBadRequest, "badRequest", msg)
}

func NewUnauthorizedError(msg string) error {
	return newAppError(http.StatusUnauthorized, "unauthorized", msg)
}

func NewForbiddenError(msg string) error {
	return newAppError(http.StatusForbidden, "forbidden", msg)
}

func NewNotFoundError(msg string) error {
	return newAppError(http.StatusNotFound, "notFound", msg)
}

func NewConflictError(msg string) error {
	return newAppError(http.StatusConflict, "conflict", msg)
}

func NewUnprocessableError(msg string) error {
	return newAppError(http.StatusUnprocessableEntity, "invalidState", msg)
}

func NewUnavailableError(msg string) error {
	return newAppError(http.StatusServiceUnavailable, "unavailable", msg)
}

// StatusOf returns the HTTP status carried by err, or 500.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err), zap.String("path", c.Request.URL.Path))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// RespondError writes err to the response. AppErrors keep their status and
// message; anything else is logged and reported as a 500.
func RespondError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{"error": appErr.Message, "code": appErr.Code})
		return
	}
	GetLogger().Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
}
