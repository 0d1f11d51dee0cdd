package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/solvia-mx/solvia-services/api/internal/public/domain"
)

// DiagnosticRepository abstracts persistence of quiz submissions for the
// public context.
type DiagnosticRepository interface {
	Create(ctx context.Context, diagnostic *domain.Diagnostic) error
	FindByToken(ctx context.Context, token string) (*domain.Diagnostic, error)
}

// SubmitDiagnosticCommand captures one quiz submission.
type SubmitDiagnosticCommand struct {
	ContactName  string
	ContactEmail string
	Answers      domain.Answers
}

// DiagnosticCommandService handles the quiz write use-case.
type DiagnosticCommandService interface {
	Submit(ctx context.Context, cmd SubmitDiagnosticCommand) (*domain.Diagnostic, error)
}

// DiagnosticQueryService serves the result page.
type DiagnosticQueryService interface {
	ByToken(ctx context.Context, token string) (*domain.Diagnostic, error)
}

// NewDiagnosticCommandService returns the production command service.
func NewDiagnosticCommandService(repo DiagnosticRepository) DiagnosticCommandService {
	return &diagnosticCommandService{repo: repo}
}

type diagnosticCommandService struct {
	repo DiagnosticRepository
}

// Submit runs the diagnostic engine over the answers, mints the public
// token and persists the whole record. The engine is pure, so the stored
// result is exactly what the caller receives.
func (s *diagnosticCommandService) Submit(ctx context.Context, cmd SubmitDiagnosticCommand) (*domain.Diagnostic, error) {
	diagnostic := &domain.Diagnostic{
		PublicToken:  uuid.NewString(),
		ContactName:  cmd.ContactName,
		ContactEmail: cmd.ContactEmail,
		Answers:      cmd.Answers,
		Result:       domain.Assemble(cmd.Answers),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, diagnostic); err != nil {
		return nil, err
	}
	return diagnostic, nil
}

// NewDiagnosticQueryService returns the production query service.
func NewDiagnosticQueryService(repo DiagnosticRepository) DiagnosticQueryService {
	return &diagnosticQueryService{repo: repo}
}

type diagnosticQueryService struct {
	repo DiagnosticRepository
}

func (s *diagnosticQueryService) ByToken(ctx context.Context, token string) (*domain.Diagnostic, error) {
	return s.repo.FindByToken(ctx, token)
}
