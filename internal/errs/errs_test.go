package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUnprocessableEntityError_DescribesFields(t *testing.T) {
	err := NewUnprocessableEntityError("", []FieldError{
		{Field: "email", Error: "must be a valid email address"},
		{Field: "name", Error: "is required"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, err.Status)
	assert.Equal(t, "UNPROCESSABLE_ENTITY", err.Code)
	assert.Equal(t, ValidationFailedMessage, err.Message)
	assert.Equal(t, "email: must be a valid email address; name: is required", err.Detail)
	assert.Equal(t, err.Detail, err.Error())
}

func TestNewUnprocessableEntityError_ExplicitDescription(t *testing.T) {
	err := NewUnprocessableEntityError("malformed JSON body", nil)
	assert.Equal(t, "malformed JSON body", err.Detail)
	assert.Empty(t, err.Errors)
}

func TestNewStorageError(t *testing.T) {
	err := NewStorageError("LEAD_TIMEOUT", errors.New("context deadline exceeded"))

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, "LEAD_TIMEOUT", err.Code)
	assert.Equal(t, "Erreur lors de l'enregistrement: context deadline exceeded", err.Detail)
	assert.NotNil(t, err.Action)

	assert.Equal(t, "INTERNAL_SERVER_ERROR", NewStorageError("", nil).Code)
}

func TestHTTPError_IsAndCopies(t *testing.T) {
	base := NewNotFoundError("Route not found", false, nil)
	wrapped := fmt.Errorf("lookup: %w", base)

	assert.True(t, errors.Is(wrapped, &HTTPError{}))

	changed := base.WithDetail("nothing here")
	assert.Equal(t, "Route not found", changed.Message)
	assert.Equal(t, "nothing here", changed.Detail)
	assert.Empty(t, base.Detail)
}

func TestDescribeFieldErrors_Empty(t *testing.T) {
	assert.Equal(t, ValidationFailedMessage, DescribeFieldErrors(nil))
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "SERVICE_UNAVAILABLE", MakeUpperCaseWithUnderscores("Service Unavailable"))
}
