package usermock

import (
	"context"

	domain "whitecoat-backend/internal/domain/user"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetByUserIDFn            func(ctx context.Context, userID string) (*domain.User, error)
	UpsertPhysicianProfileFn func(ctx context.Context, p *domain.PhysicianProfile) error
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) UpsertPhysicianProfile(ctx context.Context, p *domain.PhysicianProfile) error {
	if m.UpsertPhysicianProfileFn != nil {
		return m.UpsertPhysicianProfileFn(ctx, p)
	}
	return nil
}
