package investment

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	domainDeal "whitecoat-backend/internal/domain/deal"
	domainInvestment "whitecoat-backend/internal/domain/investment"
	domainUser "whitecoat-backend/internal/domain/user"
	"whitecoat-backend/internal/domain/uow"
	"whitecoat-backend/internal/mailer"
	"whitecoat-backend/internal/metrics"
	"whitecoat-backend/pkg/id"
)

type Usecase struct {
	investments domainInvestment.Repository
	uow         uow.UnitOfWork
	mail        mailer.Mailer
	log         *zap.Logger
}

func NewUsecase(investments domainInvestment.Repository, tx uow.UnitOfWork, mail mailer.Mailer, log *zap.Logger) *Usecase {
	return &Usecase{investments: investments, uow: tx, mail: mail, log: log}
}

// Invest records a commitment against a deal as one atomic unit: the deal
// row stays locked for the duration of the transaction, so the status
// check, the top-up lookup and the running-total increment cannot
// interleave with a concurrent commitment to the same deal.
func (u *Usecase) Invest(ctx context.Context, in InvestInput) (*InvestmentDTO, error) {
	if u.uow == nil {
		return nil, domainDeal.ErrNotFound
	}

	var (
		dto      *InvestmentDTO
		investor *domainUser.User
		dealName string
	)

	err := u.uow.WithinDealTx(ctx, in.DealID, func(r uow.Repos, d *domainDeal.Deal) error {
		usr, err := r.Users.GetByUserID(ctx, in.InvestorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainUser.ErrNotFound
			}
			return err
		}
		if usr.Role != domainUser.RoleInvestor {
			return ErrOnlyInvestors
		}
		investor = usr

		// Validates status and minimum, bumps the running total, and
		// reports the OPEN -> FULLY_FUNDED transition off the
		// post-increment amount.
		fullyFunded, err := d.Commit(in.Amount)
		if err != nil {
			return err
		}

		inv, err := r.Investments.GetByInvestorAndDeal(ctx, in.InvestorID, d.ID)
		topUp := false
		switch {
		case err == nil:
			// Same investor, same deal: merge into the existing position.
			inv.TopUp(in.Amount)
			if err := r.Investments.Save(ctx, inv); err != nil {
				return err
			}
			topUp = true
		case errors.Is(err, gorm.ErrRecordNotFound):
			inv = &domainInvestment.Investment{
				InvestmentID: id.NewID32(),
				InvestorID:   in.InvestorID,
				DealRef:      d.ID,
				Amount:       in.Amount,
				CurrentValue: in.Amount,
				InvestedAt:   time.Now().UTC(),
			}
			if err := r.Investments.Create(ctx, inv); err != nil {
				return err
			}
		default:
			return err
		}

		if err := r.Deals.Save(ctx, d); err != nil {
			return err
		}

		dealName = d.Name
		dto = &InvestmentDTO{
			InvestmentID: inv.InvestmentID,
			DealID:       d.DealID,
			DealName:     d.Name,
			Amount:       inv.Amount,
			CurrentValue: inv.CurrentValue,
			InvestedAt:   inv.InvestedAt,
			TopUp:        topUp,
			FullyFunded:  fullyFunded,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordInvestment(dto.TopUp)
	if dto.FullyFunded {
		metrics.RecordDealFullyFunded()
	}

	// Confirmation email must not fail the recorded investment.
	if mailErr := u.mail.SendInvestmentConfirmation(ctx, investor.Email, investor.Name, dealName, in.Amount); mailErr != nil {
		u.log.Warn("investment confirmation email failed",
			zap.String("deal_id", in.DealID),
			zap.Error(mailErr))
		metrics.RecordEmail("investment_confirmation", mailErr)
	} else {
		metrics.RecordEmail("investment_confirmation", nil)
	}

	return dto, nil
}

// List returns the investor's positions with their distributions plus the
// running portfolio totals.
func (u *Usecase) List(ctx context.Context, investorID string) (*ListDTO, error) {
	invs, err := u.investments.ListByInvestor(ctx, investorID)
	if err != nil {
		return nil, err
	}

	out := &ListDTO{
		Investments: make([]PositionDTO, 0, len(invs)),
		Totals: PortfolioTotals{
			TotalInvested:      decimal.Zero,
			CurrentValue:       decimal.Zero,
			TotalDistributions: decimal.Zero,
		},
	}
	for _, inv := range invs {
		pos := PositionDTO{
			InvestmentID:  inv.InvestmentID,
			Amount:        inv.Amount,
			CurrentValue:  inv.CurrentValue,
			InvestedAt:    inv.InvestedAt,
			Distributions: make([]DistributionDTO, 0, len(inv.Distributions)),
		}
		if inv.Deal != nil {
			pos.DealID = inv.Deal.DealID
			pos.DealName = inv.Deal.Name
			pos.Specialty = inv.Deal.Specialty
		}
		for _, dist := range inv.Distributions {
			pos.Distributions = append(pos.Distributions, DistributionDTO{
				DistributionID: dist.DistributionID,
				Amount:         dist.Amount,
				PaidAt:         dist.PaidAt,
			})
			out.Totals.TotalDistributions = out.Totals.TotalDistributions.Add(dist.Amount)
		}
		out.Totals.TotalInvested = out.Totals.TotalInvested.Add(inv.Amount)
		out.Totals.CurrentValue = out.Totals.CurrentValue.Add(inv.CurrentValue)
		out.Investments = append(out.Investments, pos)
	}
	return out, nil
}
