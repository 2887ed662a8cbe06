// Package errs define custom error types and utilities.
//
// Its purpose is to create specific error structures
// (e.g. FieldErrors for forms or HTTPError for API responses)
// so the website receives meaningful, actionable, and consistent
// error messages.
//
// - Return consistent error shapes to API clients (JSON).
// - Support field-level validation errors for forms.
// - Provide errors that play nicely with Go's standard errors package.
package errs

import "strings"

// FieldError represents a field-level validation error (typical for forms).
// Example:
//
//	{ "field": "email", "error": "must be a valid email address" }
type FieldError struct {
	// Field is the JSON name of the offending field (e.g. "email").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// ActionType is a string-based enum describing what the client should do.
type ActionType string

const (
	// ActionTypeRetry tells the client the same request may succeed later.
	ActionTypeRetry ActionType = "retry"
)

// Action describes an optional "what the client should do next" instruction.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface via Error() and is serialized
// directly to JSON by the global error handler.
// Fields:
//   - Code: machine-friendly error code (e.g. "UNPROCESSABLE_ENTITY").
//   - Message: human-friendly summary.
//   - Status: HTTP status code.
//   - Override: whether the frontend may show Message verbatim.
//   - Errors: list of per-field errors (validation).
//   - Action: client instruction (optional).
//   - Detail: full description of what went wrong, read by the website forms.
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	// Errors holds field-level validation errors, typically for form inputs.
	Errors []FieldError `json:"errors"`

	// Action is an optional client instruction.
	Action *Action `json:"action"`

	// Detail is omitted from the payload when empty.
	Detail string `json:"detail,omitempty"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
//
// Detail wins over Message because it carries the more specific text.
func (e *HTTPError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Message
}

// Is customizes how errors.Is(...) treats HTTPError.
//
// It only checks whether the other error is also a *HTTPError,
// it does NOT compare Code/Status/etc.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithDetail returns a *copy* of this HTTPError with Detail replaced.
func (e *HTTPError) WithDetail(detail string) *HTTPError {
	cp := *e
	cp.Detail = detail
	return &cp
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Unprocessable Entity" -> "UNPROCESSABLE_ENTITY"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
