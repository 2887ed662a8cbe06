package service

import (
	"context"

	"github.com/deppfellow/nettoyage-lausanne/internal/model"
	"github.com/deppfellow/nettoyage-lausanne/internal/repository"
	"github.com/deppfellow/nettoyage-lausanne/internal/server"
)

const (
	maxReportedCollections = 10
	maxReportedErrorRunes  = 50
)

// DiagnosticsService reports whether the backend can reach its store.
type DiagnosticsService struct {
	server    *server.Server
	documents *repository.DocumentRepository
}

func NewDiagnosticsService(s *server.Server, documents *repository.DocumentRepository) *DiagnosticsService {
	return &DiagnosticsService{
		server:    s,
		documents: documents,
	}
}

// Report never fails. A listing error ends up, shortened, in the
// database field of the report.
func (s *DiagnosticsService) Report(ctx context.Context) *model.DiagnosticReport {
	report := &model.DiagnosticReport{
		Backend:          model.DiagnosticRunning,
		Database:         model.DiagnosticNotInitialized,
		DatabaseURL:      setOrNot(s.server.Config.Database.URL),
		DatabaseName:     setOrNot(s.server.Config.Database.Name),
		ConnectionStatus: model.DiagnosticNotConnected,
		Collections:      []string{},
	}

	if !s.server.HasStore() {
		return report
	}

	report.ConnectionStatus = model.DiagnosticConnected

	names, err := s.documents.CollectionNames(ctx)
	if err != nil {
		loggerFor(ctx, s.server.Logger).Warn().Err(err).Msg("listing collections failed")
		report.Database = model.DiagnosticErrorPrefix + truncate(err.Error(), maxReportedErrorRunes)
		return report
	}

	if len(names) > maxReportedCollections {
		names = names[:maxReportedCollections]
	}
	report.Collections = names
	report.Database = model.DiagnosticWorking

	return report
}

func setOrNot(value string) string {
	if value != "" {
		return model.DiagnosticSet
	}
	return model.DiagnosticNotSet
}

// truncate keeps the first n characters of s.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
