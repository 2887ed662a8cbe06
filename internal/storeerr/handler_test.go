package storeerr

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/deppfellow/nettoyage-lausanne/internal/database"
	"github.com/deppfellow/nettoyage-lausanne/internal/errs"
)

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, Wrap("insert", "lead", nil))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"not configured", database.ErrNotConfigured, Unavailable},
		{"disconnected", mongo.ErrClientDisconnected, Unavailable},
		{"deadline", context.DeadlineExceeded, Timeout},
		{"wrapped deadline", fmt.Errorf("insert: %w", context.DeadlineExceeded), Timeout},
		{"duplicate key", mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key"}}}, DuplicateKey},
		{"other", errors.New("boom"), Other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestWrap_KeepsDriverText(t *testing.T) {
	err := Wrap("insert", "lead", database.ErrNotConfigured)

	assert.Equal(t, database.ErrNotConfigured.Error(), err.Error())
	assert.ErrorIs(t, err, database.ErrNotConfigured)
	assert.Equal(t, Unavailable, ErrCode(err))
	assert.Equal(t, Other, ErrCode(errors.New("plain")))
}

func TestHandleError_StoreError(t *testing.T) {
	err := HandleError(Wrap("insert", "contactmessage", context.DeadlineExceeded))

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "CONTACTMESSAGE_TIMEOUT", httpErr.Code)
	assert.Equal(t, errs.StorageErrorPrefix+context.DeadlineExceeded.Error(), httpErr.Detail)
}

func TestHandleError_Unavailable(t *testing.T) {
	err := HandleError(Wrap("insert", "lead", database.ErrNotConfigured))

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "STORE_UNAVAILABLE", httpErr.Code)
	assert.Contains(t, httpErr.Detail, "Erreur lors de l'enregistrement: Database not available")
}

func TestHandleError_PassThroughAndFallback(t *testing.T) {
	notFound := errs.NewNotFoundError("Route not found", false, nil)
	assert.Same(t, notFound, HandleError(notFound))

	var httpErr *errs.HTTPError
	require.True(t, errors.As(HandleError(errors.New("boom")), &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Empty(t, httpErr.Detail)
}

func TestGenerateErrorCode(t *testing.T) {
	assert.Equal(t, "LEAD_DUPLICATE_KEY", generateErrorCode("lead", DuplicateKey))
	assert.Equal(t, "RECORD_ERROR", generateErrorCode("", Other))
	assert.Equal(t, "STORE_UNAVAILABLE", generateErrorCode("lead", Unavailable))
}
