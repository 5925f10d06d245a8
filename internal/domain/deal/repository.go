package deal

import "context"

type Repository interface {
	Create(ctx context.Context, d *Deal) error
	GetByDealID(ctx context.Context, dealID string) (*Deal, error)
	// GetByDealIDForUpdate locks the deal row (SELECT ... FOR UPDATE) so the
	// read-increment-write on CurrentAmount is serialized per deal.
	GetByDealIDForUpdate(ctx context.Context, dealID string) (*Deal, error)
	// ListVisible returns OPEN and FULLY_FUNDED deals, newest first.
	ListVisible(ctx context.Context) ([]Deal, error)
	Save(ctx context.Context, d *Deal) error
}
