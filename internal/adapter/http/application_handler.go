package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"whitecoat-backend/internal/usecase/application"
)

type ApplicationHandler struct{ uc *application.Usecase }

func NewApplicationHandler(uc *application.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type submitApplicationReq struct {
	FullName        string           `json:"full_name" validate:"required"`
	Degree          string           `json:"degree"`
	Specialty       string           `json:"specialty"`
	YearsInPractice *int             `json:"years_in_practice" validate:"omitempty,gte=0"`
	EstimatedIncome *decimal.Decimal `json:"estimated_income"`
	MedicalDebt     *decimal.Decimal `json:"medical_debt"`
	FundingNeeded   decimal.Decimal  `json:"funding_needed" validate:"dec2"`
	FundingTimeline string           `json:"funding_timeline"`
	CareerGoals     string           `json:"career_goals"`
	UseOfFunds      string           `json:"use_of_funds"`
}

func (h *ApplicationHandler) Submit(c echo.Context) error {
	physicianID, ok := callerID(c)
	if !ok {
		return unauthorized(c)
	}

	var req submitApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Submit(c.Request().Context(), application.SubmitInput{
		PhysicianID:     physicianID,
		FullName:        req.FullName,
		Degree:          req.Degree,
		Specialty:       req.Specialty,
		YearsInPractice: req.YearsInPractice,
		EstimatedIncome: req.EstimatedIncome,
		MedicalDebt:     req.MedicalDebt,
		FundingNeeded:   req.FundingNeeded,
		FundingTimeline: req.FundingTimeline,
		CareerGoals:     req.CareerGoals,
		UseOfFunds:      req.UseOfFunds,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ApplicationHandler) List(c echo.Context) error {
	physicianID, ok := callerID(c)
	if !ok {
		return unauthorized(c)
	}
	dtos, err := h.uc.List(c.Request().Context(), physicianID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *ApplicationHandler) Get(c echo.Context) error {
	physicianID, ok := callerID(c)
	if !ok {
		return unauthorized(c)
	}
	applicationID := c.Param("application_id")
	if applicationID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing application_id path param"})
	}
	dto, err := h.uc.Get(c.Request().Context(), physicianID, applicationID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type selectProposalReq struct {
	SelectedProposalID string `json:"selected_proposal_id" validate:"required,hex32"`
}

func (h *ApplicationHandler) SelectProposal(c echo.Context) error {
	physicianID, ok := callerID(c)
	if !ok {
		return unauthorized(c)
	}
	applicationID := c.Param("application_id")
	if applicationID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing application_id path param"})
	}

	var req selectProposalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Select(c.Request().Context(), application.SelectInput{
		PhysicianID:   physicianID,
		ApplicationID: applicationID,
		ProposalID:    req.SelectedProposalID,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
