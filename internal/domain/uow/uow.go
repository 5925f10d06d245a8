package uow

import (
	"context"

	"whitecoat-backend/internal/domain/application"
	"whitecoat-backend/internal/domain/deal"
	"whitecoat-backend/internal/domain/investment"
	"whitecoat-backend/internal/domain/user"
)

// Repos bundles the repositories bound to one transaction.
type Repos struct {
	Users        user.Repository
	Applications application.Repository
	Deals        deal.Repository
	Investments  investment.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the deal row first, then pass it in. This is the
	// serialization boundary for all writes to a deal's running total;
	// concurrent commitments to the same deal queue on the row lock while
	// different deals proceed in parallel.
	WithinDealTx(ctx context.Context, dealID string, fn func(r Repos, d *deal.Deal) error) error
}
