package postgres

import (
	"context"

	"gorm.io/gorm"

	invDomain "whitecoat-backend/internal/domain/investment"
)

type InvestmentRepository struct{ db *gorm.DB }

func NewInvestmentRepository(db *gorm.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

func (r *InvestmentRepository) Create(ctx context.Context, inv *invDomain.Investment) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *InvestmentRepository) Save(ctx context.Context, inv *invDomain.Investment) error {
	return r.db.WithContext(ctx).Save(inv).Error
}

func (r *InvestmentRepository) GetByInvestmentID(ctx context.Context, investmentID string) (*invDomain.Investment, error) {
	var out invDomain.Investment
	res := r.db.WithContext(ctx).Where("investment_id = ?", investmentID).First(&out)
	return &out, res.Error
}

func (r *InvestmentRepository) GetByInvestorAndDeal(ctx context.Context, investorID string, dealRef uint64) (*invDomain.Investment, error) {
	var out invDomain.Investment
	res := r.db.WithContext(ctx).
		Where("investor_id = ? AND deal_ref = ?", investorID, dealRef).
		First(&out)
	return &out, res.Error
}

func (r *InvestmentRepository) ListByInvestor(ctx context.Context, investorID string) ([]invDomain.Investment, error) {
	var out []invDomain.Investment
	res := r.db.WithContext(ctx).
		Preload("Deal").
		Preload("Distributions", func(db *gorm.DB) *gorm.DB {
			return db.Order("paid_at DESC")
		}).
		Where("investor_id = ?", investorID).
		Order("invested_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *InvestmentRepository) CountByDeal(ctx context.Context, dealRef uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&invDomain.Investment{}).
		Where("deal_ref = ?", dealRef).
		Count(&n)
	return n, res.Error
}
