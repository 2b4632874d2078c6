package response

import (
	"encoding/json"
	"net/http"
)

// Error classes returned to clients. Validation, not-found and forbidden
// errors are terminal and never retried by the server.
const (
	ClassValidation      = "VALIDATION_ERROR"
	ClassNotFound        = "NOT_FOUND"
	ClassForbidden       = "FORBIDDEN"
	ClassUnauthenticated = "UNAUTHENTICATED"
	ClassConflict        = "CONFLICT"
	ClassDependency      = "DEPENDENCY_ERROR"
	ClassInternal        = "INTERNAL_ERROR"
)

type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    interface{}  `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail is the structured error payload: class, human message and an
// optional field→message list for validation failures.
type ErrorDetail struct {
	Class   string            `json:"class"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	JSON(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Error(w http.ResponseWriter, statusCode int, class, message string) {
	JSON(w, statusCode, Response{
		Success: false,
		Message: message,
		Error:   &ErrorDetail{Class: class, Message: message},
	})
}

func ValidationError(w http.ResponseWriter, fields map[string]string) {
	JSON(w, http.StatusBadRequest, Response{
		Success: false,
		Message: "Validation failed",
		Error: &ErrorDetail{
			Class:   ClassValidation,
			Message: "Validation failed",
			Fields:  fields,
		},
	})
}

func BadRequest(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Bad request"
	}
	Error(w, http.StatusBadRequest, ClassValidation, message)
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Error(w, http.StatusUnauthorized, ClassUnauthenticated, message)
}

func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Forbidden"
	}
	Error(w, http.StatusForbidden, ClassForbidden, message)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, http.StatusNotFound, ClassNotFound, message)
}

func Conflict(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Conflict"
	}
	Error(w, http.StatusConflict, ClassConflict, message)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, ClassInternal, message)
}
