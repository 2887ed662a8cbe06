package errs

import (
	"net/http"
	"strings"
)

// StorageErrorPrefix is the visitor-facing prefix of every persistence failure.
// The website is French-speaking, so the message is too.
const StorageErrorPrefix = "Erreur lors de l'enregistrement: "

// ValidationFailedMessage is the summary carried by every 422 response.
const ValidationFailedMessage = "Validation failed"

// statusCode derives the default machine code from the HTTP status text,
// e.g. 422 -> "UNPROCESSABLE_ENTITY".
func statusCode(status int) string {
	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := statusCode(http.StatusNotFound)
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewUnprocessableEntityError creates a 422 HTTPError for requests whose body
// does not satisfy a schema.
//
// Detail is built from the field errors ("email: must be a valid email address; ...")
// unless an explicit description is given, e.g. for malformed JSON.
func NewUnprocessableEntityError(description string, fieldErrors []FieldError) *HTTPError {
	if description == "" {
		description = DescribeFieldErrors(fieldErrors)
	}

	return &HTTPError{
		Code:     statusCode(http.StatusUnprocessableEntity),
		Message:  ValidationFailedMessage,
		Status:   http.StatusUnprocessableEntity,
		Override: true,
		Errors:   fieldErrors,
		Detail:   description,
	}
}

// NewStorageError creates a 500 HTTPError for a failed write to the document store.
//
// Unlike NewInternalServerError the underlying error text is exposed in Detail;
// the website shows it so the visitor knows the submission was not recorded.
func NewStorageError(code string, err error) *HTTPError {
	if code == "" {
		code = statusCode(http.StatusInternalServerError)
	}

	detail := StorageErrorPrefix
	if err != nil {
		detail += err.Error()
	}

	return &HTTPError{
		Code:     code,
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
		Action: &Action{
			Type:    ActionTypeRetry,
			Message: "The submission was not saved, it can be sent again.",
		},
		Detail: detail,
	}
}

// NewInternalServerError creates a generic 500 Internal Server Error HTTPError.
//
// The message is the status text, not the real internal error message.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     statusCode(http.StatusInternalServerError),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}

// DescribeFieldErrors joins field errors into "field: error; field: error".
func DescribeFieldErrors(fieldErrors []FieldError) string {
	if len(fieldErrors) == 0 {
		return ValidationFailedMessage
	}

	parts := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		parts = append(parts, fe.Field+": "+fe.Error)
	}
	return strings.Join(parts, "; ")
}
