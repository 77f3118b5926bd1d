// Package response defines the JSON envelope shared by every REST
// endpoint: a success flag, a data payload on success, and a stable
// error code plus human-readable message on failure.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the wire shape of every API response.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError carries a machine-readable code and a message for humans.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorCodes maps HTTP status to the stable code clients switch on.
// Statuses outside the map fall back to INTERNAL_ERROR.
var errorCodes = map[int]string{
	http.StatusBadRequest:          "BAD_REQUEST",
	http.StatusUnauthorized:        "UNAUTHORIZED",
	http.StatusForbidden:           "FORBIDDEN",
	http.StatusNotFound:            "NOT_FOUND",
	http.StatusConflict:            "CONFLICT",
	http.StatusInternalServerError: "INTERNAL_ERROR",
}

// Success sends a 200 response wrapping data.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// Created sends a 201 response wrapping data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

// Fail sends an error response for the given status.
func Fail(c *gin.Context, status int, message string) {
	code, ok := errorCodes[status]
	if !ok {
		code = errorCodes[http.StatusInternalServerError]
	}
	c.JSON(status, Envelope{
		Success: false,
		Error:   &APIError{Code: code, Message: message},
	})
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 error response.
func Unauthorized(c *gin.Context, message string) {
	Fail(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 error response.
func Forbidden(c *gin.Context, message string) {
	Fail(c, http.StatusForbidden, message)
}

// NotFound sends a 404 error response.
func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, message)
}

// Conflict sends a 409 error response.
func Conflict(c *gin.Context, message string) {
	Fail(c, http.StatusConflict, message)
}

// InternalError sends a 500 error response.
func InternalError(c *gin.Context, message string) {
	Fail(c, http.StatusInternalServerError, message)
}
