package apperr

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"github.com/huynhanx03/go-pqueue/pkg/datastructs/pqueue"
)

// Application error codes. The first three digits are the HTTP status.
const (
	CodeParamInvalid     = 40001
	CodeValidationFailed = 40002
	CodeNotFound         = 40400
	CodeQueueEmpty       = 40900
	CodeInvalidPriority  = 42200
	CodeInternalServer   = 50000
)

// AppError is an error carrying a stable code and the HTTP status it maps to.
type AppError struct {
	Code       int
	Message    string
	HTTPStatus int
	Err        error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error { return e.Err }

// New creates an AppError.
func New(code int, msg string, httpStatus int, cause error) *AppError {
	return &AppError{Code: code, Message: msg, HTTPStatus: httpStatus, Err: cause}
}

// Wrap wraps err, returning nil when err is nil.
func Wrap(err error, code int, msg string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return New(code, msg, httpStatus, err)
}

// As returns the AppError in err's chain, if any.
func As(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// FromQueueError maps priority queue errors to their HTTP form.
// Unknown errors become internal server errors.
func FromQueueError(op string, err error) *AppError {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pqueue.ErrElementNotFound):
		return MapError(op, err, CodeNotFound, MsgNotFound, http.StatusNotFound)
	case errors.Is(err, pqueue.ErrEmptyQueue):
		return MapError(op, err, CodeQueueEmpty, MsgQueueEmpty, http.StatusConflict)
	case errors.Is(err, pqueue.ErrInvalidPriority):
		return MapError(op, err, CodeInvalidPriority, MsgInvalidPriority, http.StatusUnprocessableEntity)
	default:
		return MapError(op, err, CodeInternalServer, MsgProcessFailed, http.StatusInternalServerError)
	}
}
