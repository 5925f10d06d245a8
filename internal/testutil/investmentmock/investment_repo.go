package investmentmock

import (
	"context"

	"gorm.io/gorm"

	domain "whitecoat-backend/internal/domain/investment"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn               func(ctx context.Context, inv *domain.Investment) error
	SaveFn                 func(ctx context.Context, inv *domain.Investment) error
	GetByInvestmentIDFn    func(ctx context.Context, investmentID string) (*domain.Investment, error)
	GetByInvestorAndDealFn func(ctx context.Context, investorID string, dealRef uint64) (*domain.Investment, error)
	ListByInvestorFn       func(ctx context.Context, investorID string) ([]domain.Investment, error)
	CountByDealFn          func(ctx context.Context, dealRef uint64) (int64, error)
}

func (m *Repo) Create(ctx context.Context, inv *domain.Investment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, inv)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, inv *domain.Investment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, inv)
	}
	return nil
}

func (m *Repo) GetByInvestmentID(ctx context.Context, investmentID string) (*domain.Investment, error) {
	if m.GetByInvestmentIDFn != nil {
		return m.GetByInvestmentIDFn(ctx, investmentID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByInvestorAndDeal(ctx context.Context, investorID string, dealRef uint64) (*domain.Investment, error) {
	if m.GetByInvestorAndDealFn != nil {
		return m.GetByInvestorAndDealFn(ctx, investorID, dealRef)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListByInvestor(ctx context.Context, investorID string) ([]domain.Investment, error) {
	if m.ListByInvestorFn != nil {
		return m.ListByInvestorFn(ctx, investorID)
	}
	return nil, nil
}

func (m *Repo) CountByDeal(ctx context.Context, dealRef uint64) (int64, error) {
	if m.CountByDealFn != nil {
		return m.CountByDealFn(ctx, dealRef)
	}
	return 0, nil
}
