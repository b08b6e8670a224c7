package serverutils

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation on a request DTO and converts
// the first failure into a client-facing validation error.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return NewValidationError(fmt.Sprintf("field %s failed on the %s rule", f.Field(), f.Tag()))
		}
		return NewValidationError(err.Error())
	}
	return nil
}
