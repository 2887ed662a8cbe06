package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/nettoyage-lausanne/internal/model"
	"github.com/deppfellow/nettoyage-lausanne/internal/server"
	"github.com/deppfellow/nettoyage-lausanne/internal/service"
)

// SubmissionHandler accepts the quote and contact forms.
type SubmissionHandler struct {
	Handler
	submissions *service.SubmissionService
}

func NewSubmissionHandler(s *server.Server, submissions *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		Handler:     NewHandler(s),
		submissions: submissions,
	}
}

func (h *SubmissionHandler) CreateLead(c echo.Context, req *model.Lead) (*model.SubmissionResponse, error) {
	return h.submissions.CreateLead(c.Request().Context(), req)
}

func (h *SubmissionHandler) CreateContactMessage(c echo.Context, req *model.ContactMessage) (*model.SubmissionResponse, error) {
	return h.submissions.CreateContactMessage(c.Request().Context(), req)
}
