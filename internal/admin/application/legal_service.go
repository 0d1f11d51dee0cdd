package application

import (
	"context"
	"errors"
	"strings"
	"time"

	admindomain "github.com/solvia-mx/solvia-services/api/internal/admin/domain"
)

type legalService struct {
	repo LegalTemplateRepository
}

func NewLegalService(repo LegalTemplateRepository) LegalService {
	return &legalService{repo: repo}
}

func (s *legalService) List(ctx context.Context, filter LegalTemplateFilter, paging Paging) ([]admindomain.LegalTemplate, error) {
	return s.repo.Find(ctx, filter, paging)
}

func (s *legalService) Detail(ctx context.Context, id string) (*admindomain.LegalTemplate, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *legalService) Create(ctx context.Context, cmd UpsertLegalTemplateCommand) (*admindomain.LegalTemplate, error) {
	template, err := buildLegalTemplateFromCommand("", cmd)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	template.CreatedAt = now
	template.UpdatedAt = now
	if err := s.repo.Create(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

func (s *legalService) Update(ctx context.Context, id string, cmd UpsertLegalTemplateCommand) (*admindomain.LegalTemplate, error) {
	template, err := buildLegalTemplateFromCommand(id, cmd)
	if err != nil {
		return nil, err
	}
	template.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

// Render fills a stored template with caller-provided values, for the
// back-office preview screen.
func (s *legalService) Render(ctx context.Context, id string, vars map[string]string) (string, error) {
	template, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	return template.Render(vars), nil
}

func buildLegalTemplateFromCommand(id string, cmd UpsertLegalTemplateCommand) (*admindomain.LegalTemplate, error) {
	key := strings.TrimSpace(cmd.Key)
	if key == "" {
		return nil, errors.New("legal template key is required")
	}
	title := strings.TrimSpace(cmd.Title)
	if title == "" {
		return nil, errors.New("legal template title is required")
	}
	body := strings.TrimSpace(cmd.Body)
	if body == "" {
		return nil, errors.New("legal template body is required")
	}

	return &admindomain.LegalTemplate{
		ID:    id,
		Key:   key,
		Title: title,
		Body:  body,
	}, nil
}
