package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// IsRequestValid validates req against its `validate` tags and returns a
// readable description of every failed field.
func IsRequestValid(req any) (bool, string) {
	err := validate.Struct(req)
	if err == nil {
		return true, ""
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false, err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
		}
	}
	return false, strings.Join(msgs, "; ")
}
