package dashboard

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domainApplication "whitecoat-backend/internal/domain/application"
	domainInvestment "whitecoat-backend/internal/domain/investment"
	domainUser "whitecoat-backend/internal/domain/user"
)

type Usecase struct {
	users        domainUser.Repository
	applications domainApplication.Repository
	investments  domainInvestment.Repository
}

func NewUsecase(users domainUser.Repository, applications domainApplication.Repository, investments domainInvestment.Repository) *Usecase {
	return &Usecase{users: users, applications: applications, investments: investments}
}

type OverviewDTO struct {
	Role string `json:"role"`

	// physician view
	Physician          *PhysicianMetrics `json:"physician_metrics,omitempty"`
	LatestApplication  *string           `json:"latest_application_id,omitempty"`
	SelectedProposalID *string           `json:"selected_proposal_id,omitempty"`

	// investor view
	Investor    *InvestorMetrics            `json:"investor_metrics,omitempty"`
	BySpecialty map[string]SpecialtyMetrics `json:"by_specialty,omitempty"`
}

// Overview resolves the caller's role and returns the matching aggregate
// view. Admins and unknown roles get a bare role echo.
func (u *Usecase) Overview(ctx context.Context, userID string) (*OverviewDTO, error) {
	usr, err := u.users.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainUser.ErrNotFound
		}
		return nil, err
	}

	out := &OverviewDTO{Role: string(usr.Role)}
	switch usr.Role {
	case domainUser.RolePhysician:
		apps, err := u.applications.ListByPhysician(ctx, usr.UserID)
		if err != nil {
			return nil, err
		}
		metrics, latest, selected := AggregatePhysician(apps)
		out.Physician = &metrics
		if latest != nil {
			out.LatestApplication = &latest.ApplicationID
		}
		if selected != nil {
			out.SelectedProposalID = &selected.ProposalID
		}
	case domainUser.RoleInvestor:
		invs, err := u.investments.ListByInvestor(ctx, usr.UserID)
		if err != nil {
			return nil, err
		}
		metrics, bySpecialty := AggregateInvestor(invs)
		out.Investor = &metrics
		out.BySpecialty = bySpecialty
	}
	return out, nil
}
