package utils

import (
	"errors"
	"net/http"
)

// ErrorKind classifies an error so the responder can pick a status code.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindPaymentProvider
	KindPersistence
)

// AppError is the domain error carried from services up to the HTTP layer.
// Fields holds per-field validation messages when the kind is KindValidation.
type AppError struct {
	Kind    ErrorKind
	Message string
	Fields  map[string]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "internal error"
}

func (e *AppError) Unwrap() error { return e.Err }

func ValidationError(msg string) *AppError {
	return &AppError{Kind: KindValidation, Message: msg}
}

func FieldValidationError(fields map[string]string) *AppError {
	return &AppError{Kind: KindValidation, Message: "validation failed", Fields: fields}
}

func UnauthorizedError(msg string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: msg}
}

func ForbiddenError(msg string) *AppError {
	return &AppError{Kind: KindForbidden, Message: msg}
}

func NotFoundError(msg string) *AppError {
	return &AppError{Kind: KindNotFound, Message: msg}
}

func PaymentProviderError(msg string, err error) *AppError {
	return &AppError{Kind: KindPaymentProvider, Message: msg, Err: err}
}

func PersistenceError(err error) *AppError {
	return &AppError{Kind: KindPersistence, Message: "database operation failed", Err: err}
}

// StatusOf maps an error to its HTTP status. Unclassified errors are treated
// as persistence failures.
func StatusOf(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindPaymentProvider:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
