package postgres

import (
	"context"

	"gorm.io/gorm"

	"whitecoat-backend/internal/domain/deal"
	"whitecoat-backend/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func repos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Users:        &UserRepository{db: tx},
		Applications: &ApplicationRepository{db: tx},
		Deals:        &DealRepository{db: tx},
		Investments:  &InvestmentRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(repos(tx))
	})
}

func (u *GormUoW) WithinDealTx(ctx context.Context, dealID string, fn func(r uow.Repos, d *deal.Deal) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := repos(tx)
		// lock the deal row up-front to prevent races on the running total
		d, err := r.Deals.GetByDealIDForUpdate(ctx, dealID)
		if err != nil {
			return err
		}
		return fn(r, d)
	})
}
