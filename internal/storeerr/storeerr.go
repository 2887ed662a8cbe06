// Package storeerr specifically handles document store errors.
//
// It classifies MongoDB driver failures (duplicate keys, timeouts,
// network errors, a missing connection) and converts them into
// API errors with stable machine codes.
package storeerr

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/deppfellow/nettoyage-lausanne/internal/database"
)

// Code is the category of a store failure.
type Code string

const (
	// Unavailable means there is no usable connection at all.
	Unavailable  Code = "UNAVAILABLE"
	DuplicateKey Code = "DUPLICATE_KEY"
	Timeout      Code = "TIMEOUT"
	Network      Code = "NETWORK_ERROR"
	Other        Code = "ERROR"
)

// Error is a store failure annotated with where it happened.
//
// Error() returns the driver's text untouched so the visitor-facing detail
// reads exactly like the underlying failure.
type Error struct {
	Code       Code
	Operation  string
	Collection string

	driverErr error
}

func (e *Error) Error() string {
	return e.driverErr.Error()
}

// Unwrap exposes the driver error to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.driverErr
}

// Wrap classifies err and records the operation and collection.
// A nil err stays nil.
func Wrap(operation, collection string, err error) error {
	if err == nil {
		return nil
	}

	return &Error{
		Code:       Classify(err),
		Operation:  operation,
		Collection: collection,
		driverErr:  errors.WithStack(err),
	}
}

// Classify maps a raw error onto a Code.
func Classify(err error) Code {
	switch {
	case errors.Is(err, database.ErrNotConfigured), errors.Is(err, mongo.ErrClientDisconnected):
		return Unavailable
	case mongo.IsDuplicateKeyError(err):
		return DuplicateKey
	case errors.Is(err, context.DeadlineExceeded), mongo.IsTimeout(err):
		return Timeout
	case mongo.IsNetworkError(err):
		return Network
	default:
		return Other
	}
}

// ErrCode reports the Code of err, or Other when err is not a store error.
func ErrCode(err error) Code {
	var storeErr *Error
	if errors.As(err, &storeErr) {
		return storeErr.Code
	}
	return Other
}
