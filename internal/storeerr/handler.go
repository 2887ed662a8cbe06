package storeerr

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/deppfellow/nettoyage-lausanne/internal/errs"
)

// generateErrorCode creates consistent application error codes from store errors.
//
// Output format:
//
//	<COLLECTION>_<CODE>
//
// Example:
//
//	lead + DuplicateKey => LEAD_DUPLICATE_KEY
//
// A missing connection is not specific to a collection and is always
// reported as STORE_UNAVAILABLE.
func generateErrorCode(collection string, code Code) string {
	if code == Unavailable {
		return "STORE_UNAVAILABLE"
	}

	domain := strings.ToUpper(collection)
	if domain == "" {
		domain = "RECORD"
	}

	return domain + "_" + string(code)
}

// HandleError converts a store error into an application-level error.
//
// Output:
//   - *errs.HTTPError: returned unchanged
//   - *Error: a 500 storage error whose detail carries the driver text
//   - anything else: a generic 500
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var storeErr *Error
	if errors.As(err, &storeErr) {
		return errs.NewStorageError(generateErrorCode(storeErr.Collection, storeErr.Code), storeErr)
	}

	return errs.NewInternalServerError()
}
