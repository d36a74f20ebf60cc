package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies the error class independently of the HTTP status.
type ErrorCode string

// AppError is the application error carried from services up to the HTTP
// boundary. HTTPCode decides the response status, Code and Message end up
// in the response body.
type AppError struct {
	Code     ErrorCode `json:"code"`
	Message  string    `json:"message"`
	Err      error     `json:"-"`
	HTTPCode int       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

// Is wraps the standard errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As wraps the standard errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predefined errors.
var (
	// Authentication. Invalid credentials deliberately carries one message
	// for both an unknown username and a wrong password.
	ErrInvalidCredentials = New(CodeInvalidCredentials, "invalid username or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "authentication required", http.StatusUnauthorized)
	ErrInvalidToken       = New(CodeInvalidToken, "invalid or expired token", http.StatusUnauthorized)

	// Validation.
	ErrValidationFailed  = New(CodeValidationFailed, "validation failed", http.StatusUnprocessableEntity)
	ErrInvalidDataFormat = New(CodeValidationFailed, "invalid data format", http.StatusUnprocessableEntity)
	ErrInvalidFileType   = New(CodeInvalidFileType, "file type not allowed", http.StatusUnprocessableEntity)
	ErrFileTooLarge      = New(CodeFileTooLarge, "file too large", http.StatusUnprocessableEntity)

	// Resources.
	ErrUserNotFound    = New(CodeUserNotFound, "user not found", http.StatusNotFound)
	ErrPesananNotFound = New(CodePesananNotFound, "pesanan not found", http.StatusNotFound)
)

func ValidationError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusUnprocessableEntity)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "internal server error", http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}
