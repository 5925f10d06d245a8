package deal

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	domainDeal "whitecoat-backend/internal/domain/deal"
	domainInvestment "whitecoat-backend/internal/domain/investment"
	domainUser "whitecoat-backend/internal/domain/user"
	"whitecoat-backend/pkg/id"
)

var ErrForbidden = errors.New("only admins can create deals")

type CreateInput struct {
	AdminID               string
	Name                  string
	Description           string
	Specialty             *string
	DealType              string
	TargetAmount          decimal.Decimal
	MinimumInvestment     decimal.Decimal
	TargetIRR             *decimal.Decimal
	TargetMOIC            *decimal.Decimal
	TermMonths            int
	DistributionFrequency string
}

type DealDTO struct {
	DealID                string           `json:"deal_id"`
	Name                  string           `json:"name"`
	Description           string           `json:"description"`
	Specialty             *string          `json:"specialty"`
	DealType              string           `json:"deal_type"`
	TargetAmount          decimal.Decimal  `json:"target_amount"`
	MinimumInvestment     decimal.Decimal  `json:"minimum_investment"`
	CurrentAmount         decimal.Decimal  `json:"current_amount"`
	TargetIRR             *decimal.Decimal `json:"target_irr"`
	TargetMOIC            *decimal.Decimal `json:"target_moic"`
	TermMonths            int              `json:"term_months"`
	DistributionFrequency string           `json:"distribution_frequency"`
	Status                string           `json:"status"`
	InvestorCount         int64            `json:"investor_count"`
	OpenedAt              *time.Time       `json:"opened_at"`
	CreatedAt             time.Time        `json:"created_at"`
}

type Usecase struct {
	deals       domainDeal.Repository
	investments domainInvestment.Repository
	users       domainUser.Repository
}

func NewUsecase(deals domainDeal.Repository, investments domainInvestment.Repository, users domainUser.Repository) *Usecase {
	return &Usecase{deals: deals, investments: investments, users: users}
}

// Create opens a new funding pool. Admin-only.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*DealDTO, error) {
	usr, err := u.users.GetByUserID(ctx, in.AdminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainUser.ErrNotFound
		}
		return nil, err
	}
	if usr.Role != domainUser.RoleAdmin {
		return nil, ErrForbidden
	}

	if !in.TargetAmount.IsPositive() || in.MinimumInvestment.IsNegative() {
		return nil, errors.New("invalid deal amounts")
	}

	now := time.Now().UTC()
	d := &domainDeal.Deal{
		DealID:                id.NewID32(),
		Name:                  in.Name,
		Description:           in.Description,
		Specialty:             in.Specialty,
		DealType:              in.DealType,
		TargetAmount:          in.TargetAmount,
		MinimumInvestment:     in.MinimumInvestment,
		CurrentAmount:         decimal.Zero,
		TargetIRR:             in.TargetIRR,
		TargetMOIC:            in.TargetMOIC,
		TermMonths:            in.TermMonths,
		DistributionFrequency: in.DistributionFrequency,
		Status:                domainDeal.StatusOpen,
		OpenedAt:              &now,
	}
	if err := u.deals.Create(ctx, d); err != nil {
		return nil, err
	}
	return toDTO(d, 0), nil
}

// List returns the deals visible to investors (open and fully funded) with
// their accumulated totals and investor counts.
func (u *Usecase) List(ctx context.Context) ([]DealDTO, error) {
	deals, err := u.deals.ListVisible(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]DealDTO, 0, len(deals))
	for i := range deals {
		n, err := u.investments.CountByDeal(ctx, deals[i].ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *toDTO(&deals[i], n))
	}
	return out, nil
}

func toDTO(d *domainDeal.Deal, investorCount int64) *DealDTO {
	return &DealDTO{
		DealID:                d.DealID,
		Name:                  d.Name,
		Description:           d.Description,
		Specialty:             d.Specialty,
		DealType:              d.DealType,
		TargetAmount:          d.TargetAmount,
		MinimumInvestment:     d.MinimumInvestment,
		CurrentAmount:         d.CurrentAmount,
		TargetIRR:             d.TargetIRR,
		TargetMOIC:            d.TargetMOIC,
		TermMonths:            d.TermMonths,
		DistributionFrequency: d.DistributionFrequency,
		Status:                string(d.Status),
		InvestorCount:         investorCount,
		OpenedAt:              d.OpenedAt,
		CreatedAt:             d.CreatedAt,
	}
}
