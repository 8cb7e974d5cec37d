package request

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/huynhanx03/go-pqueue/pkg/common/apperr"
	"github.com/huynhanx03/go-pqueue/pkg/common/http/validation"
)

// ParseRequest binds path parameters and, when present, the JSON body into a
// new T and validates it.
func ParseRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if len(c.Params) > 0 {
		if err := c.ShouldBindUri(&req); err != nil {
			return nil, apperr.Wrap(err, apperr.CodeParamInvalid, "invalid path parameters", http.StatusBadRequest)
		}
	}

	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, apperr.Wrap(err, apperr.CodeParamInvalid, "invalid request body", http.StatusBadRequest)
		}
	}

	if ok, msg := validation.IsRequestValid(&req); !ok {
		return nil, apperr.New(apperr.CodeValidationFailed, "validation failed", http.StatusBadRequest, errors.New(msg))
	}

	return &req, nil
}
