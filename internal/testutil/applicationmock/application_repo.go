package applicationmock

import (
	"context"

	domain "whitecoat-backend/internal/domain/application"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                      func(ctx context.Context, a *domain.FundingApplication) error
	GetByApplicationIDFn          func(ctx context.Context, applicationID string) (*domain.FundingApplication, error)
	GetByApplicationIDForUpdateFn func(ctx context.Context, applicationID string) (*domain.FundingApplication, error)
	ListByPhysicianFn             func(ctx context.Context, physicianID string) ([]domain.FundingApplication, error)
	SaveFn                        func(ctx context.Context, a *domain.FundingApplication) error
	SaveProposalsFn               func(ctx context.Context, proposals []domain.Proposal) error
}

func (m *Repo) Create(ctx context.Context, a *domain.FundingApplication) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByApplicationID(ctx context.Context, applicationID string) (*domain.FundingApplication, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*domain.FundingApplication, error) {
	if m.GetByApplicationIDForUpdateFn != nil {
		return m.GetByApplicationIDForUpdateFn(ctx, applicationID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListByPhysician(ctx context.Context, physicianID string) ([]domain.FundingApplication, error) {
	if m.ListByPhysicianFn != nil {
		return m.ListByPhysicianFn(ctx, physicianID)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, a *domain.FundingApplication) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) SaveProposals(ctx context.Context, proposals []domain.Proposal) error {
	if m.SaveProposalsFn != nil {
		return m.SaveProposalsFn(ctx, proposals)
	}
	return nil
}
