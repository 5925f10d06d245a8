package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	domainApplication "whitecoat-backend/internal/domain/application"
	domainUser "whitecoat-backend/internal/domain/user"
	"whitecoat-backend/internal/domain/uow"
	"whitecoat-backend/internal/mailer"
	"whitecoat-backend/internal/testutil/applicationmock"
	"whitecoat-backend/internal/testutil/uowmock"
	"whitecoat-backend/internal/testutil/usermock"
	ucApplication "whitecoat-backend/internal/usecase/application"
)

const testApplicationID = "44444444444444444444444444444444"

func applicationHandler(appRepo *applicationmock.Repo) *ApplicationHandler {
	repos := uow.Repos{
		Users: &usermock.Repo{
			GetByUserIDFn: func(ctx context.Context, id string) (*domainUser.User, error) {
				return &domainUser.User{ID: 3, UserID: testUserID, Name: "Dr. Alex Reyes", Email: "alex@example.com", Role: domainUser.RolePhysician}, nil
			},
		},
		Applications: appRepo,
	}
	m := &uowmock.UoW{
		WithinTxFn: func(ctx context.Context, fn func(uow.Repos) error) error { return fn(repos) },
	}
	uc := ucApplication.NewUsecase(appRepo, m, mailer.Noop{}, zap.NewNop())
	return NewApplicationHandler(uc)
}

func TestSubmitApplication_Created(t *testing.T) {
	var created *domainApplication.FundingApplication
	h := applicationHandler(&applicationmock.Repo{
		CreateFn: func(ctx context.Context, a *domainApplication.FundingApplication) error { created = a; return nil },
	})

	e := newEcho()
	body := `{"full_name":"Dr. Alex Reyes","degree":"MD","specialty":"Cardiology","funding_needed":250000}`
	req := withCaller(jsonRequest(http.MethodPost, "/applications", body), testUserID)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if created == nil || len(created.Proposals) != 3 {
		t.Fatalf("created = %+v", created)
	}
	var dto ucApplication.ApplicationDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if dto.Status != "SUBMITTED" || len(dto.Proposals) != 3 {
		t.Fatalf("dto = %+v", dto)
	}
}

func TestSubmitApplication_MissingFullName422(t *testing.T) {
	h := applicationHandler(&applicationmock.Repo{})
	e := newEcho()
	req := withCaller(jsonRequest(http.MethodPost, "/applications", `{"funding_needed":1000}`), testUserID)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if !containsFieldMsg(resp.Details, "FullName", "required") {
		t.Fatalf("details = %+v", resp.Details)
	}
}

func TestSubmitApplication_Unauthorized(t *testing.T) {
	h := applicationHandler(&applicationmock.Repo{})
	e := newEcho()
	req := jsonRequest(http.MethodPost, "/applications", `{"full_name":"x"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
}

func storedApplication() *domainApplication.FundingApplication {
	return &domainApplication.FundingApplication{
		ID:            10,
		ApplicationID: testApplicationID,
		PhysicianID:   testUserID,
		Status:        domainApplication.StatusSubmitted,
		Proposals: []domainApplication.Proposal{
			{ProposalID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Status: domainApplication.ProposalPending},
			{ProposalID: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", Status: domainApplication.ProposalPending},
			{ProposalID: "cccccccccccccccccccccccccccccccc", Status: domainApplication.ProposalPending},
		},
	}
}

func TestSelectProposal_OK(t *testing.T) {
	app := storedApplication()
	h := applicationHandler(&applicationmock.Repo{
		GetByApplicationIDForUpdateFn: func(ctx context.Context, id string) (*domainApplication.FundingApplication, error) {
			return app, nil
		},
	})

	e := newEcho()
	body := `{"selected_proposal_id":"bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"}`
	req := withCaller(jsonRequest(http.MethodPost, "/applications/"+testApplicationID+"/select-proposal", body), testUserID)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("application_id")
	c.SetParamValues(testApplicationID)
	if err := h.SelectProposal(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var dto ucApplication.ApplicationDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if dto.Status != "APPROVED" {
		t.Fatalf("dto status = %s", dto.Status)
	}
	if dto.SelectedProposalID == nil || *dto.SelectedProposalID != "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb" {
		t.Fatalf("SelectedProposalID = %v", dto.SelectedProposalID)
	}
}

func TestSelectProposal_UnknownProposal404(t *testing.T) {
	app := storedApplication()
	h := applicationHandler(&applicationmock.Repo{
		GetByApplicationIDForUpdateFn: func(ctx context.Context, id string) (*domainApplication.FundingApplication, error) {
			return app, nil
		},
	})

	e := newEcho()
	body := `{"selected_proposal_id":"dddddddddddddddddddddddddddddddd"}`
	req := withCaller(jsonRequest(http.MethodPost, "/applications/"+testApplicationID+"/select-proposal", body), testUserID)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("application_id")
	c.SetParamValues(testApplicationID)
	if err := h.SelectProposal(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestSelectProposal_BadProposalID422(t *testing.T) {
	h := applicationHandler(&applicationmock.Repo{})
	e := newEcho()
	req := withCaller(jsonRequest(http.MethodPost, "/applications/"+testApplicationID+"/select-proposal", `{"selected_proposal_id":"nope"}`), testUserID)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("application_id")
	c.SetParamValues(testApplicationID)
	if err := h.SelectProposal(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestGetApplication_NotFoundForForeignPhysician(t *testing.T) {
	app := storedApplication()
	app.PhysicianID = "99999999999999999999999999999999"
	h := applicationHandler(&applicationmock.Repo{
		GetByApplicationIDFn: func(ctx context.Context, id string) (*domainApplication.FundingApplication, error) {
			return app, nil
		},
	})

	e := newEcho()
	req := withCaller(jsonRequest(http.MethodGet, "/applications/"+testApplicationID, ""), testUserID)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("application_id")
	c.SetParamValues(testApplicationID)
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestListApplications_OK(t *testing.T) {
	h := applicationHandler(&applicationmock.Repo{
		ListByPhysicianFn: func(ctx context.Context, id string) ([]domainApplication.FundingApplication, error) {
			return []domainApplication.FundingApplication{*storedApplication()}, nil
		},
	})

	e := newEcho()
	req := withCaller(jsonRequest(http.MethodGet, "/applications", ""), testUserID)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var dtos []ucApplication.ApplicationDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dtos); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(dtos) != 1 {
		t.Fatalf("len = %d", len(dtos))
	}
}
