package investment

import "context"

type Repository interface {
	Create(ctx context.Context, inv *Investment) error
	Save(ctx context.Context, inv *Investment) error
	GetByInvestmentID(ctx context.Context, investmentID string) (*Investment, error)
	// GetByInvestorAndDeal returns the existing position for a top-up
	// check; gorm.ErrRecordNotFound when the investor has none.
	GetByInvestorAndDeal(ctx context.Context, investorID string, dealRef uint64) (*Investment, error)
	// ListByInvestor preloads Deal and Distributions, newest first.
	ListByInvestor(ctx context.Context, investorID string) ([]Investment, error)
	CountByDeal(ctx context.Context, dealRef uint64) (int64, error)
}
