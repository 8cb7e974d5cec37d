package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huynhanx03/go-pqueue/pkg/common/apperr"
)

const (
	CodeSuccess          = 20000
	CodeCreated          = 20100
	CodeParamInvalid     = apperr.CodeParamInvalid
	CodeValidationFailed = apperr.CodeValidationFailed
	CodeInternalServer   = apperr.CodeInternalServer
)

var messages = map[int]string{
	CodeSuccess:          "success",
	CodeCreated:          "created",
	CodeParamInvalid:     "invalid parameters",
	CodeValidationFailed: "validation failed",
	CodeInternalServer:   "internal server error",
}

// Response is the JSON envelope of every API reply.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// StatusOf returns the HTTP status encoded in the first three digits of code.
func StatusOf(code int) int {
	status := code / 100
	if status < 100 || status > 599 {
		return http.StatusInternalServerError
	}
	return status
}

func message(code int) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return http.StatusText(StatusOf(code))
}

// SuccessResponse writes data with the status derived from code.
func SuccessResponse(c *gin.Context, code int, data any) {
	c.JSON(StatusOf(code), Response{Code: code, Message: message(code), Data: data})
}

// ErrorResponse aborts the request with err.
// An *apperr.AppError in err's chain overrides code and supplies the status.
func ErrorResponse(c *gin.Context, code int, err error) {
	status := StatusOf(code)
	resp := Response{Code: code, Message: message(code)}
	if ae, ok := apperr.As(err); ok {
		resp.Code, resp.Message = ae.Code, ae.Message
		if ae.HTTPStatus != 0 {
			status = ae.HTTPStatus
		}
		if ae.Err != nil {
			resp.Error = ae.Err.Error()
		}
	} else if err != nil {
		resp.Error = err.Error()
	}
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, resp)
}
