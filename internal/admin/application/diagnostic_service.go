package application

import (
	"context"
	"time"

	admindomain "github.com/solvia-mx/solvia-services/api/internal/admin/domain"
)

type diagnosticService struct {
	repo DiagnosticRepository
}

func NewDiagnosticService(repo DiagnosticRepository) DiagnosticService {
	return &diagnosticService{repo: repo}
}

func (s *diagnosticService) List(ctx context.Context, filter DiagnosticFilter, paging Paging) ([]admindomain.Diagnostic, error) {
	return s.repo.Find(ctx, filter, paging)
}

func (s *diagnosticService) Detail(ctx context.Context, id string) (*admindomain.Diagnostic, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateLead moves a lead along the follow-up workflow. Notes are replaced
// only when the command carries them.
func (s *diagnosticService) UpdateLead(ctx context.Context, id string, cmd UpdateLeadCommand) (*admindomain.Diagnostic, error) {
	diagnostic, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if cmd.LeadStatus != "" {
		status, err := admindomain.NewLeadStatus(cmd.LeadStatus)
		if err != nil {
			return nil, err
		}
		diagnostic.LeadStatus = status
	}
	if cmd.AdminNotes != nil {
		diagnostic.AdminNotes = *cmd.AdminNotes
	}
	diagnostic.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateLead(ctx, diagnostic); err != nil {
		return nil, err
	}
	return diagnostic, nil
}
