package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deppfellow/nettoyage-lausanne/internal/metrics"
	"github.com/deppfellow/nettoyage-lausanne/internal/model"
	"github.com/deppfellow/nettoyage-lausanne/internal/repository"
	"github.com/deppfellow/nettoyage-lausanne/internal/server"
	"github.com/deppfellow/nettoyage-lausanne/internal/storeerr"
)

// record is a validated form submission bound to its collection.
type record interface {
	Collection() string
}

// SubmissionService persists the website forms.
type SubmissionService struct {
	server    *server.Server
	documents *repository.DocumentRepository
}

func NewSubmissionService(s *server.Server, documents *repository.DocumentRepository) *SubmissionService {
	return &SubmissionService{
		server:    s,
		documents: documents,
	}
}

// CreateLead stores a quote request.
func (s *SubmissionService) CreateLead(ctx context.Context, lead *model.Lead) (*model.SubmissionResponse, error) {
	return s.submit(ctx, lead)
}

// CreateContactMessage stores a contact form message.
func (s *SubmissionService) CreateContactMessage(ctx context.Context, msg *model.ContactMessage) (*model.SubmissionResponse, error) {
	return s.submit(ctx, msg)
}

func (s *SubmissionService) submit(ctx context.Context, rec record) (*model.SubmissionResponse, error) {
	collection := rec.Collection()

	id, err := s.documents.CreateDocument(ctx, collection, rec)
	if err != nil {
		outcome := metrics.OutcomeStoreError
		if storeerr.ErrCode(err) == storeerr.Unavailable {
			outcome = metrics.OutcomeUnavailable
		}
		s.server.Metrics.ObserveSubmission(collection, outcome)

		loggerFor(ctx, s.server.Logger).Error().
			Err(err).
			Str("collection", collection).
			Str("store_error", string(storeerr.ErrCode(err))).
			Msg("failed to store submission")
		return nil, err
	}

	s.server.Metrics.ObserveSubmission(collection, metrics.OutcomeStored)
	loggerFor(ctx, s.server.Logger).Info().
		Str("collection", collection).
		Str("id", id).
		Msg("submission stored")

	return &model.SubmissionResponse{Success: true, ID: id}, nil
}

// loggerFor prefers the request-scoped logger carried by ctx.
func loggerFor(ctx context.Context, fallback *zerolog.Logger) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return fallback
}
