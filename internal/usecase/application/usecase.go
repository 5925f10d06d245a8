package application

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	domainApplication "whitecoat-backend/internal/domain/application"
	domainUser "whitecoat-backend/internal/domain/user"
	"whitecoat-backend/internal/domain/uow"
	"whitecoat-backend/internal/finance"
	"whitecoat-backend/internal/mailer"
	"whitecoat-backend/internal/metrics"
	"whitecoat-backend/pkg/id"
)

// defaultFundingAmount backs an intake that arrives without a usable
// funding figure, matching product behavior.
var defaultFundingAmount = decimal.NewFromInt(100000)

type Usecase struct {
	applications domainApplication.Repository
	uow          uow.UnitOfWork
	mail         mailer.Mailer
	log          *zap.Logger
}

func NewUsecase(applications domainApplication.Repository, tx uow.UnitOfWork, mail mailer.Mailer, log *zap.Logger) *Usecase {
	return &Usecase{applications: applications, uow: tx, mail: mail, log: log}
}

// Submit persists the intake, its three generated proposals, and the
// refreshed physician profile in one transaction. The proposal set is
// deterministic for a given funding amount.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*ApplicationDTO, error) {
	amount := in.FundingNeeded
	if !amount.IsPositive() {
		amount = defaultFundingAmount
	}
	terms, err := finance.GenerateProposals(amount)
	if err != nil {
		return nil, err
	}

	var (
		dto       *ApplicationDTO
		applicant *domainUser.User
	)
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		usr, err := r.Users.GetByUserID(ctx, in.PhysicianID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainUser.ErrNotFound
			}
			return err
		}
		applicant = usr

		now := time.Now().UTC()
		app := &domainApplication.FundingApplication{
			ApplicationID:   id.NewID32(),
			PhysicianID:     in.PhysicianID,
			FullName:        in.FullName,
			Degree:          in.Degree,
			Specialty:       in.Specialty,
			YearsInPractice: in.YearsInPractice,
			EstimatedIncome: in.EstimatedIncome,
			MedicalDebt:     in.MedicalDebt,
			FundingNeeded:   amount,
			FundingTimeline: in.FundingTimeline,
			CareerGoals:     in.CareerGoals,
			UseOfFunds:      in.UseOfFunds,
			Status:          domainApplication.StatusSubmitted,
			SubmittedAt:     &now,
		}
		for _, t := range terms {
			app.Proposals = append(app.Proposals, domainApplication.Proposal{
				ProposalID:     id.NewID32(),
				Name:           t.Name,
				Description:    t.Description,
				Amount:         t.Amount,
				InterestRate:   t.InterestRate,
				TermMonths:     t.TermMonths,
				MonthlyPayment: t.MonthlyPayment,
				BetterOffScore: t.BetterOffScore,
				Status:         domainApplication.ProposalPending,
			})
		}
		if err := r.Applications.Create(ctx, app); err != nil {
			return err
		}

		if err := r.Users.UpsertPhysicianProfile(ctx, &domainUser.PhysicianProfile{
			UserRef:           usr.ID,
			Degree:            in.Degree,
			Specialty:         in.Specialty,
			YearsInPractice:   in.YearsInPractice,
			EstimatedIncome:   in.EstimatedIncome,
			MedicalSchoolDebt: in.MedicalDebt,
		}); err != nil {
			return err
		}

		dto = toDTO(app)
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordApplicationSubmitted(len(dto.Proposals))

	name := in.FullName
	if name == "" {
		name = applicant.Name
	}
	if mailErr := u.mail.SendApplicationSubmitted(ctx, applicant.Email, name, dto.ApplicationID); mailErr != nil {
		u.log.Warn("application submitted email failed",
			zap.String("application_id", dto.ApplicationID),
			zap.Error(mailErr))
		metrics.RecordEmail("application_submitted", mailErr)
	} else {
		metrics.RecordEmail("application_submitted", nil)
	}

	return dto, nil
}

// Select applies the proposal acceptance transition: the chosen proposal
// becomes ACCEPTED and both siblings REJECTED, in the same transaction that
// stamps the application APPROVED. Re-selecting the same proposal is
// idempotent.
func (u *Usecase) Select(ctx context.Context, in SelectInput) (*ApplicationDTO, error) {
	var dto *ApplicationDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		app, err := r.Applications.GetByApplicationIDForUpdate(ctx, in.ApplicationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainApplication.ErrNotFound
			}
			return err
		}
		if app.PhysicianID != in.PhysicianID {
			return domainApplication.ErrNotFound
		}

		if err := domainApplication.SelectProposal(app.Proposals, in.ProposalID); err != nil {
			return err
		}
		app.SelectedProposalID = &in.ProposalID
		app.Status = domainApplication.StatusApproved

		if err := r.Applications.SaveProposals(ctx, app.Proposals); err != nil {
			return err
		}
		if err := r.Applications.Save(ctx, app); err != nil {
			return err
		}
		dto = toDTO(app)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, physicianID, applicationID string) (*ApplicationDTO, error) {
	app, err := u.applications.GetByApplicationID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainApplication.ErrNotFound
		}
		return nil, err
	}
	if app.PhysicianID != physicianID {
		return nil, domainApplication.ErrNotFound
	}
	return toDTO(app), nil
}

func (u *Usecase) List(ctx context.Context, physicianID string) ([]ApplicationDTO, error) {
	apps, err := u.applications.ListByPhysician(ctx, physicianID)
	if err != nil {
		return nil, err
	}
	out := make([]ApplicationDTO, 0, len(apps))
	for i := range apps {
		out = append(out, *toDTO(&apps[i]))
	}
	return out, nil
}

func toDTO(app *domainApplication.FundingApplication) *ApplicationDTO {
	dto := &ApplicationDTO{
		ApplicationID:      app.ApplicationID,
		FullName:           app.FullName,
		Degree:             app.Degree,
		Specialty:          app.Specialty,
		FundingNeeded:      app.FundingNeeded,
		FundingTimeline:    app.FundingTimeline,
		Status:             string(app.Status),
		SelectedProposalID: app.SelectedProposalID,
		SubmittedAt:        app.SubmittedAt,
		CreatedAt:          app.CreatedAt,
		Proposals:          make([]ProposalDTO, 0, len(app.Proposals)),
	}
	for _, p := range app.Proposals {
		dto.Proposals = append(dto.Proposals, ProposalDTO{
			ProposalID:     p.ProposalID,
			Name:           p.Name,
			Description:    p.Description,
			Amount:         p.Amount,
			InterestRate:   p.InterestRate,
			TermMonths:     p.TermMonths,
			MonthlyPayment: p.MonthlyPayment,
			BetterOffScore: p.BetterOffScore,
			Status:         string(p.Status),
		})
	}
	return dto
}
