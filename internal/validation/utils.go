package validation

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/deppfellow/nettoyage-lausanne/internal/errs"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
// - Define a request struct with validator tags (`validate:"required,email"`)
// - Implement Validate() error that calls validation.Struct(req)
// - Return validator.ValidationErrors
type Validatable interface {
	Validate() error
}

// Defaulter is implemented by payloads that fill in optional fields
// after binding and before validation.
type Defaulter interface {
	ApplyDefaults()
}

// BindAndValidate binds request data into payload, applies defaults and validates it.
//
// Flow:
// 1) c.Bind(payload) populates request struct from the incoming request body.
// 2) payload.ApplyDefaults() when the payload is a Defaulter.
// 3) payload.Validate() applies validation rules.
//
// Any failure, including a malformed body, is a 422 *errs.HTTPError with
// field-level errors where they can be attributed.
//
// NOTE: c.Bind expects a pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	// A body sent without Content-Type is read as JSON.
	if req := c.Request(); req.Header.Get(echo.HeaderContentType) == "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	if err := c.Bind(payload); err != nil {
		return bindError(err)
	}

	if d, ok := payload.(Defaulter); ok {
		d.ApplyDefaults()
	}

	if fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewUnprocessableEntityError("", fieldErrors)
	}

	return nil
}

// bindError turns a binder failure into a 422.
//
// Echo wraps the decoder error as the internal error of an *echo.HTTPError,
// which is where the field and type information lives.
func bindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return errs.NewUnprocessableEntityError("", []errs.FieldError{{
			Field: typeErr.Field,
			Error: fmt.Sprintf("must be of type %s", typeErr.Type),
		}})
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return errs.NewUnprocessableEntityError(
			fmt.Sprintf("body: malformed JSON at offset %d", syntaxErr.Offset), nil)
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			return errs.NewUnprocessableEntityError("body: "+msg, nil)
		}
	}

	return errs.NewUnprocessableEntityError("body: "+err.Error(), nil)
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) []errs.FieldError {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return nil
}

func extractValidationError(err error) []errs.FieldError {
	var fieldErrors []errs.FieldError

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a field problem at all; still report something actionable.
		return []errs.FieldError{{Field: "body", Error: err.Error()}}
	}

	for _, err := range validationErrors {
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "min":
			if err.Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max":
			if err.Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		case "email":
			msg = "must be a valid email address"

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", err.Field(), err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", err.Field(), err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: err.Field(),
			Error: msg,
		})
	}

	return fieldErrors
}
