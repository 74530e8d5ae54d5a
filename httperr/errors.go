// Package httperr defines the API error taxonomy and the single Fiber error
// handler that maps every failure to the uniform response envelope.
package httperr

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is a typed API failure. Handlers return these; the app-level
// ErrorHandler turns them into HTTP responses.
type Error struct {
	Status  int          `json:"-"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"errors,omitempty"`
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func Validation(message string, fields ...FieldError) *Error {
	return &Error{Status: fiber.StatusBadRequest, Message: message, Fields: fields}
}

func Unauthorized(message string) *Error {
	return &Error{Status: fiber.StatusUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Status: fiber.StatusForbidden, Message: message}
}

// NotFound covers both genuine absence and cross-tenant access. The wording
// must not reveal which one it was.
func NotFound(message string) *Error {
	return &Error{Status: fiber.StatusNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Status: fiber.StatusConflict, Message: message}
}

// InvalidTransition is a 409: the request is well-formed but conflicts with
// the sale's current status.
func InvalidTransition(message string) *Error {
	return &Error{Status: fiber.StatusConflict, Message: message}
}

func Internal(cause error) *Error {
	return &Error{Status: fiber.StatusInternalServerError, Message: "Internal server error", cause: cause}
}

type envelope struct {
	Status    int          `json:"status"`
	Message   string       `json:"message"`
	Errors    []FieldError `json:"errors,omitempty"`
	Timestamp string       `json:"timestamp"`
}

// ErrorHandler is installed as the Fiber app ErrorHandler. Unexpected errors
// are logged in full and surfaced to the client as a generic message.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		if apiErr.Status == fiber.StatusInternalServerError {
			log.Printf("internal error on %s %s: %v", c.Method(), c.Path(), apiErr.Unwrap())
		}
		return c.Status(apiErr.Status).JSON(envelope{
			Status:    apiErr.Status,
			Message:   apiErr.Message,
			Errors:    apiErr.Fields,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(envelope{
			Status:    fiberErr.Code,
			Message:   fiberErr.Message,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}

	log.Printf("unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(envelope{
		Status:    fiber.StatusInternalServerError,
		Message:   "Internal server error",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
