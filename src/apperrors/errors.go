package apperrors

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Kind classifies a business error so controllers can pick the right
// HTTP status without inspecting message text.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindState
	KindConflict
	KindQuotaExceeded
	KindInsufficientFunds
	KindPersistence
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Validationf(format string, args ...interface{}) *Error {
	return newError(KindValidation, format, args...)
}

func NotFoundf(format string, args ...interface{}) *Error {
	return newError(KindNotFound, format, args...)
}

func Statef(format string, args ...interface{}) *Error {
	return newError(KindState, format, args...)
}

func Conflictf(format string, args ...interface{}) *Error {
	return newError(KindConflict, format, args...)
}

func QuotaExceededf(format string, args ...interface{}) *Error {
	return newError(KindQuotaExceeded, format, args...)
}

func InsufficientFundsf(format string, args ...interface{}) *Error {
	return newError(KindInsufficientFunds, format, args...)
}

// Wrap marks err as a persistence failure, keeping the store's own error
// in the chain for diagnostics.
func Wrap(err error, message string) *Error {
	return &Error{Kind: KindPersistence, Message: message, Err: errors.Wrap(err, message)}
}

// KindOf reports the kind of err if it is (or wraps) an *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// HTTPStatus maps an error to the status class the API answers with:
// 400 validation, 404 not found, 409 business-rule rejection, 500 otherwise.
func HTTPStatus(err error) int {
	kind, ok := KindOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindState, KindConflict, KindQuotaExceeded, KindInsufficientFunds:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
