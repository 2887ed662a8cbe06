// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules (like
// required fields or email formats) defined in struct tags
// and extracts validation errors into a format the client can
// understand
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every payload type. validator caches struct
// metadata per instance, so a single one is kept for the process.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name so errors match what the client sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	return v
}

// Struct validates s against its `validate` tags.
//
// Payload types call it from their Validate method.
func Struct(s any) error {
	return validate.Struct(s)
}
