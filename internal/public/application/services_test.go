package application

import (
	"context"
	"errors"
	"testing"

	"github.com/solvia-mx/solvia-services/api/internal/public/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDiagnosticRepository struct {
	created *domain.Diagnostic
	saveErr error
	byToken map[string]*domain.Diagnostic
}

func (f *fakeDiagnosticRepository) Create(_ context.Context, diagnostic *domain.Diagnostic) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	diagnostic.ID = "diag-1"
	f.created = diagnostic
	return nil
}

func (f *fakeDiagnosticRepository) FindByToken(_ context.Context, token string) (*domain.Diagnostic, error) {
	if d, ok := f.byToken[token]; ok {
		return d, nil
	}
	return nil, errors.New("not found")
}

func TestSubmitRunsEngineAndPersists(t *testing.T) {
	repo := &fakeDiagnosticRepository{}
	service := NewDiagnosticCommandService(repo)

	diagnostic, err := service.Submit(context.Background(), SubmitDiagnosticCommand{
		ContactName:  "Laura Méndez",
		ContactEmail: "laura@example.com",
		Answers: domain.Answers{
			BusinessType:    domain.BusinessRestaurant,
			DigitalMaturity: domain.MaturityNone,
			Goals:           []domain.Goal{domain.GoalOrganize},
			CompanySize:     domain.SizeMicro,
		},
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created)

	assert.Equal(t, "diag-1", diagnostic.ID)
	assert.NotEmpty(t, diagnostic.PublicToken)
	assert.Equal(t, domain.SolutionRestaurant, diagnostic.Result.Primary.ID)
	assert.True(t, diagnostic.Result.Qualifies)
	assert.False(t, diagnostic.CreatedAt.IsZero())
}

func TestSubmitTokensAreUnique(t *testing.T) {
	repo := &fakeDiagnosticRepository{}
	service := NewDiagnosticCommandService(repo)
	cmd := SubmitDiagnosticCommand{Answers: domain.Answers{BusinessType: domain.BusinessOther}}

	first, err := service.Submit(context.Background(), cmd)
	require.NoError(t, err)
	second, err := service.Submit(context.Background(), cmd)
	require.NoError(t, err)

	assert.NotEqual(t, first.PublicToken, second.PublicToken)
}

func TestSubmitPropagatesRepositoryError(t *testing.T) {
	repo := &fakeDiagnosticRepository{saveErr: errors.New("mongo down")}
	service := NewDiagnosticCommandService(repo)

	_, err := service.Submit(context.Background(), SubmitDiagnosticCommand{})
	assert.Error(t, err)
}

func TestByTokenDelegatesToRepository(t *testing.T) {
	stored := &domain.Diagnostic{ID: "diag-2", PublicToken: "tok"}
	repo := &fakeDiagnosticRepository{byToken: map[string]*domain.Diagnostic{"tok": stored}}
	service := NewDiagnosticQueryService(repo)

	found, err := service.ByToken(context.Background(), "tok")
	require.NoError(t, err)
	assert.Same(t, stored, found)

	_, err = service.ByToken(context.Background(), "missing")
	assert.Error(t, err)
}
