package application

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	domainApplication "whitecoat-backend/internal/domain/application"
	domainUser "whitecoat-backend/internal/domain/user"
	"whitecoat-backend/internal/domain/uow"
	"whitecoat-backend/internal/finance"
	"whitecoat-backend/internal/mailer"
	"whitecoat-backend/internal/testutil/applicationmock"
	"whitecoat-backend/internal/testutil/uowmock"
	"whitecoat-backend/internal/testutil/usermock"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

const physicianID = "11111111111111111111111111111111"

func physicianUser() *domainUser.User {
	return &domainUser.User{
		ID:     3,
		UserID: physicianID,
		Name:   "Dr. Alex Reyes",
		Email:  "alex@example.com",
		Role:   domainUser.RolePhysician,
	}
}

// txUoW hands the given repos straight to the transaction body.
func txUoW(repos uow.Repos) *uowmock.UoW {
	return &uowmock.UoW{
		WithinTxFn: func(ctx context.Context, fn func(uow.Repos) error) error {
			return fn(repos)
		},
	}
}

func TestSubmit_CreatesApplicationWithThreeProposals(t *testing.T) {
	var created *domainApplication.FundingApplication
	var profile *domainUser.PhysicianProfile
	appRepo := &applicationmock.Repo{
		CreateFn: func(ctx context.Context, a *domainApplication.FundingApplication) error {
			created = a
			return nil
		},
	}
	repos := uow.Repos{
		Users: &usermock.Repo{
			GetByUserIDFn:            func(ctx context.Context, id string) (*domainUser.User, error) { return physicianUser(), nil },
			UpsertPhysicianProfileFn: func(ctx context.Context, p *domainUser.PhysicianProfile) error { profile = p; return nil },
		},
		Applications: appRepo,
	}

	uc := NewUsecase(appRepo, txUoW(repos), mailer.Noop{}, zap.NewNop())
	years := 6
	dto, err := uc.Submit(context.Background(), SubmitInput{
		PhysicianID:     physicianID,
		FullName:        "Dr. Alex Reyes",
		Degree:          "MD",
		Specialty:       "Cardiology",
		YearsInPractice: &years,
		FundingNeeded:   dec("250000"),
		FundingTimeline: "3-6 months",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if created == nil {
		t.Fatal("application was not created")
	}
	if len(created.ApplicationID) != 32 {
		t.Fatalf("ApplicationID = %q, want 32-char id", created.ApplicationID)
	}
	if created.Status != domainApplication.StatusSubmitted {
		t.Fatalf("status = %s, want SUBMITTED", created.Status)
	}
	if created.SubmittedAt == nil {
		t.Fatal("SubmittedAt not stamped")
	}
	if len(created.Proposals) != 3 {
		t.Fatalf("proposals = %d, want 3", len(created.Proposals))
	}
	seen := map[string]bool{}
	for _, p := range created.Proposals {
		if len(p.ProposalID) != 32 {
			t.Fatalf("ProposalID = %q", p.ProposalID)
		}
		if seen[p.ProposalID] {
			t.Fatalf("duplicate proposal id %s", p.ProposalID)
		}
		seen[p.ProposalID] = true
		if p.Status != domainApplication.ProposalPending {
			t.Fatalf("proposal status = %s, want PENDING", p.Status)
		}
		if !p.Amount.Equal(dec("250000")) {
			t.Fatalf("proposal amount = %s, want 250000", p.Amount)
		}
	}
	if created.Proposals[0].Name != finance.VariantGrowthAccelerator {
		t.Fatalf("first proposal = %q", created.Proposals[0].Name)
	}

	if profile == nil {
		t.Fatal("physician profile not upserted")
	}
	if profile.UserRef != 3 || profile.Specialty != "Cardiology" {
		t.Fatalf("profile = %+v", profile)
	}

	if len(dto.Proposals) != 3 || dto.Status != "SUBMITTED" {
		t.Fatalf("dto = %+v", dto)
	}
}

func TestSubmit_NonPositiveAmountDefaults(t *testing.T) {
	var created *domainApplication.FundingApplication
	appRepo := &applicationmock.Repo{
		CreateFn: func(ctx context.Context, a *domainApplication.FundingApplication) error { created = a; return nil },
	}
	repos := uow.Repos{
		Users: &usermock.Repo{
			GetByUserIDFn: func(ctx context.Context, id string) (*domainUser.User, error) { return physicianUser(), nil },
		},
		Applications: appRepo,
	}

	uc := NewUsecase(appRepo, txUoW(repos), mailer.Noop{}, zap.NewNop())
	_, err := uc.Submit(context.Background(), SubmitInput{
		PhysicianID:   physicianID,
		FullName:      "Dr. Alex Reyes",
		FundingNeeded: decimal.Zero,
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !created.FundingNeeded.Equal(dec("100000")) {
		t.Fatalf("FundingNeeded = %s, want default 100000", created.FundingNeeded)
	}
	for _, p := range created.Proposals {
		if !p.Amount.Equal(dec("100000")) {
			t.Fatalf("proposal amount = %s, want 100000", p.Amount)
		}
	}
}

func TestSubmit_UnknownPhysician(t *testing.T) {
	appRepo := &applicationmock.Repo{}
	repos := uow.Repos{
		Users:        &usermock.Repo{},
		Applications: appRepo,
	}
	uc := NewUsecase(appRepo, txUoW(repos), mailer.Noop{}, zap.NewNop())
	_, err := uc.Submit(context.Background(), SubmitInput{PhysicianID: physicianID, FundingNeeded: dec("1000")})
	if !errors.Is(err, domainUser.ErrNotFound) {
		t.Fatalf("want user ErrNotFound, got %v", err)
	}
}

func submittedApplication() *domainApplication.FundingApplication {
	return &domainApplication.FundingApplication{
		ID:            10,
		ApplicationID: "22222222222222222222222222222222",
		PhysicianID:   physicianID,
		Status:        domainApplication.StatusSubmitted,
		Proposals: []domainApplication.Proposal{
			{ProposalID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Status: domainApplication.ProposalPending},
			{ProposalID: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", Status: domainApplication.ProposalPending},
			{ProposalID: "cccccccccccccccccccccccccccccccc", Status: domainApplication.ProposalPending},
		},
	}
}

func TestSelect_AcceptsOneRejectsSiblings(t *testing.T) {
	app := submittedApplication()
	var savedProposals []domainApplication.Proposal
	var savedApp *domainApplication.FundingApplication
	appRepo := &applicationmock.Repo{
		GetByApplicationIDForUpdateFn: func(ctx context.Context, id string) (*domainApplication.FundingApplication, error) {
			return app, nil
		},
		SaveProposalsFn: func(ctx context.Context, ps []domainApplication.Proposal) error {
			savedProposals = ps
			return nil
		},
		SaveFn: func(ctx context.Context, a *domainApplication.FundingApplication) error { savedApp = a; return nil },
	}
	repos := uow.Repos{Applications: appRepo}

	uc := NewUsecase(appRepo, txUoW(repos), mailer.Noop{}, zap.NewNop())
	dto, err := uc.Select(context.Background(), SelectInput{
		PhysicianID:   physicianID,
		ApplicationID: app.ApplicationID,
		ProposalID:    "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
	})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}

	if savedApp == nil || savedApp.Status != domainApplication.StatusApproved {
		t.Fatalf("application not approved: %+v", savedApp)
	}
	if savedApp.SelectedProposalID == nil || *savedApp.SelectedProposalID != "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb" {
		t.Fatalf("SelectedProposalID = %v", savedApp.SelectedProposalID)
	}
	accepted := 0
	for _, p := range savedProposals {
		if p.Status == domainApplication.ProposalAccepted {
			accepted++
		} else if p.Status != domainApplication.ProposalRejected {
			t.Fatalf("proposal %s left %s", p.ProposalID, p.Status)
		}
	}
	if accepted != 1 {
		t.Fatalf("accepted = %d, want 1", accepted)
	}
	if dto.Status != "APPROVED" {
		t.Fatalf("dto status = %s", dto.Status)
	}
}

func TestSelect_UnknownProposal(t *testing.T) {
	app := submittedApplication()
	appRepo := &applicationmock.Repo{
		GetByApplicationIDForUpdateFn: func(ctx context.Context, id string) (*domainApplication.FundingApplication, error) {
			return app, nil
		},
	}
	uc := NewUsecase(appRepo, txUoW(uow.Repos{Applications: appRepo}), mailer.Noop{}, zap.NewNop())
	_, err := uc.Select(context.Background(), SelectInput{
		PhysicianID:   physicianID,
		ApplicationID: app.ApplicationID,
		ProposalID:    "dddddddddddddddddddddddddddddddd",
	})
	if !errors.Is(err, domainApplication.ErrProposalNotFound) {
		t.Fatalf("want ErrProposalNotFound, got %v", err)
	}
}

func TestSelect_MissingApplicationIsNotFound(t *testing.T) {
	appRepo := &applicationmock.Repo{
		GetByApplicationIDForUpdateFn: func(ctx context.Context, id string) (*domainApplication.FundingApplication, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(appRepo, txUoW(uow.Repos{Applications: appRepo}), mailer.Noop{}, zap.NewNop())
	_, err := uc.Select(context.Background(), SelectInput{
		PhysicianID:   physicianID,
		ApplicationID: "cccccccccccccccccccccccccccccccc",
		ProposalID:    "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
	})
	if !errors.Is(err, domainApplication.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestSelect_StoreFailurePropagates(t *testing.T) {
	dbDown := errors.New("connection refused")
	appRepo := &applicationmock.Repo{
		GetByApplicationIDForUpdateFn: func(ctx context.Context, id string) (*domainApplication.FundingApplication, error) {
			return nil, dbDown
		},
	}
	uc := NewUsecase(appRepo, txUoW(uow.Repos{Applications: appRepo}), mailer.Noop{}, zap.NewNop())
	_, err := uc.Select(context.Background(), SelectInput{
		PhysicianID:   physicianID,
		ApplicationID: "cccccccccccccccccccccccccccccccc",
		ProposalID:    "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
	})
	if !errors.Is(err, dbDown) {
		t.Fatalf("store failure must surface as-is, got %v", err)
	}
	if errors.Is(err, domainApplication.ErrNotFound) {
		t.Fatal("store failure must not be reported as not-found")
	}
}

func TestSelect_OtherPhysiciansApplicationHidden(t *testing.T) {
	app := submittedApplication()
	app.PhysicianID = "99999999999999999999999999999999"
	appRepo := &applicationmock.Repo{
		GetByApplicationIDForUpdateFn: func(ctx context.Context, id string) (*domainApplication.FundingApplication, error) {
			return app, nil
		},
	}
	uc := NewUsecase(appRepo, txUoW(uow.Repos{Applications: appRepo}), mailer.Noop{}, zap.NewNop())
	_, err := uc.Select(context.Background(), SelectInput{
		PhysicianID:   physicianID,
		ApplicationID: app.ApplicationID,
		ProposalID:    "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
	})
	if !errors.Is(err, domainApplication.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestGet_OwnershipEnforced(t *testing.T) {
	app := submittedApplication()
	appRepo := &applicationmock.Repo{
		GetByApplicationIDFn: func(ctx context.Context, id string) (*domainApplication.FundingApplication, error) {
			return app, nil
		},
	}
	uc := NewUsecase(appRepo, uowmock.New(), mailer.Noop{}, zap.NewNop())

	got, err := uc.Get(context.Background(), physicianID, app.ApplicationID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ApplicationID != app.ApplicationID || len(got.Proposals) != 3 {
		t.Fatalf("dto = %+v", got)
	}

	if _, err := uc.Get(context.Background(), "99999999999999999999999999999999", app.ApplicationID); !errors.Is(err, domainApplication.ErrNotFound) {
		t.Fatalf("foreign physician: want ErrNotFound, got %v", err)
	}
}

func TestList_MapsAll(t *testing.T) {
	appRepo := &applicationmock.Repo{
		ListByPhysicianFn: func(ctx context.Context, id string) ([]domainApplication.FundingApplication, error) {
			return []domainApplication.FundingApplication{*submittedApplication(), *submittedApplication()}, nil
		},
	}
	uc := NewUsecase(appRepo, uowmock.New(), mailer.Noop{}, zap.NewNop())
	got, err := uc.List(context.Background(), physicianID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
}
