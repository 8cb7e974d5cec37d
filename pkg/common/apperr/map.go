package apperr

import (
	"fmt"
)

// Generic Action Messages
const (
	MsgInsertFailed    = "failed to insert"
	MsgExtractFailed   = "failed to extract"
	MsgGetFailed       = "failed to get"
	MsgUpdateFailed    = "failed to update"
	MsgProcessFailed   = "failed to process"
	MsgNotFound        = "element not found"
	MsgQueueEmpty      = "queue is empty"
	MsgInvalidPriority = "invalid priority"
)

// MapError wraps an error with a standardized message
func MapError(op string, err error, code int, msg string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}

	formattedMsg := fmt.Sprintf("%s: %s", op, msg)
	return Wrap(err, code, formattedMsg, httpStatus)
}

// NewError creates a new AppError with standardized message format
func NewError(op string, code int, msg string, httpStatus int, cause error) *AppError {
	formattedMsg := fmt.Sprintf("%s: %s", op, msg)
	return New(code, formattedMsg, httpStatus, cause)
}
