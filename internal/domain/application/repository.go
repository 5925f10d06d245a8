package application

import "context"

type Repository interface {
	// Create persists the application and its three proposals together.
	Create(ctx context.Context, a *FundingApplication) error
	GetByApplicationID(ctx context.Context, applicationID string) (*FundingApplication, error)
	// GetByApplicationIDForUpdate locks the application row for the
	// proposal-selection transition.
	GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*FundingApplication, error)
	// ListByPhysician preloads proposals, newest application first.
	ListByPhysician(ctx context.Context, physicianID string) ([]FundingApplication, error)
	Save(ctx context.Context, a *FundingApplication) error
	SaveProposals(ctx context.Context, proposals []Proposal) error
}
