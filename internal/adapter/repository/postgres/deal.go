package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dealDomain "whitecoat-backend/internal/domain/deal"
)

type DealRepository struct{ db *gorm.DB }

func NewDealRepository(db *gorm.DB) *DealRepository { return &DealRepository{db: db} }

func (r *DealRepository) Create(ctx context.Context, d *dealDomain.Deal) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DealRepository) Save(ctx context.Context, d *dealDomain.Deal) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DealRepository) GetByDealID(ctx context.Context, dealID string) (*dealDomain.Deal, error) {
	var out dealDomain.Deal
	res := r.db.WithContext(ctx).Where("deal_id = ?", dealID).First(&out)
	return &out, res.Error
}

// GetByDealIDForUpdate takes a row lock so concurrent commitments to the
// same deal serialize on CurrentAmount.
func (r *DealRepository) GetByDealIDForUpdate(ctx context.Context, dealID string) (*dealDomain.Deal, error) {
	var out dealDomain.Deal
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("deal_id = ?", dealID).
		First(&out)
	return &out, res.Error
}

func (r *DealRepository) ListVisible(ctx context.Context) ([]dealDomain.Deal, error) {
	var out []dealDomain.Deal
	res := r.db.WithContext(ctx).
		Where("status IN ?", []dealDomain.Status{dealDomain.StatusOpen, dealDomain.StatusFullyFunded}).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
