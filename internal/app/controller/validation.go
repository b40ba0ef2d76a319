package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validationFields flattens binding failures into a field -> reason map for
// the validation error response. Non-validator errors (malformed JSON, bad
// types) produce a nil map and the generic message is used alone.
func validationFields(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[name] = "this field is required"
		case "email":
			fields[name] = "must be a valid email address"
		case "min":
			fields[name] = "must be at least " + fe.Param()
		case "max":
			fields[name] = "must be at most " + fe.Param()
		case "gt":
			fields[name] = "must be greater than " + fe.Param()
		case "gte":
			fields[name] = "must be at least " + fe.Param()
		default:
			fields[name] = "failed on " + fe.Tag() + " validation"
		}
	}
	return fields
}
