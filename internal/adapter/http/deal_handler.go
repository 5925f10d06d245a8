package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"whitecoat-backend/internal/usecase/deal"
)

type DealHandler struct{ uc *deal.Usecase }

func NewDealHandler(uc *deal.Usecase) *DealHandler { return &DealHandler{uc: uc} }

func (h *DealHandler) List(c echo.Context) error {
	if _, ok := callerID(c); !ok {
		return unauthorized(c)
	}
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

type createDealReq struct {
	Name                  string           `json:"name" validate:"required"`
	Description           string           `json:"description"`
	Specialty             *string          `json:"specialty"`
	DealType              string           `json:"deal_type" validate:"required"`
	TargetAmount          decimal.Decimal  `json:"target_amount" validate:"dec2"`
	MinimumInvestment     decimal.Decimal  `json:"minimum_investment" validate:"dec2"`
	TargetIRR             *decimal.Decimal `json:"target_irr"`
	TargetMOIC            *decimal.Decimal `json:"target_moic"`
	TermMonths            int              `json:"term_months" validate:"gte=1"`
	DistributionFrequency string           `json:"distribution_frequency"`
}

func (h *DealHandler) Create(c echo.Context) error {
	adminID, ok := callerID(c)
	if !ok {
		return unauthorized(c)
	}

	var req createDealReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	if !req.TargetAmount.IsPositive() {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: []FieldError{{Field: "target_amount", Message: "must be greater than 0"}},
		})
	}

	dto, err := h.uc.Create(c.Request().Context(), deal.CreateInput{
		AdminID:               adminID,
		Name:                  req.Name,
		Description:           req.Description,
		Specialty:             req.Specialty,
		DealType:              req.DealType,
		TargetAmount:          req.TargetAmount,
		MinimumInvestment:     req.MinimumInvestment,
		TargetIRR:             req.TargetIRR,
		TargetMOIC:            req.TargetMOIC,
		TermMonths:            req.TermMonths,
		DistributionFrequency: req.DistributionFrequency,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}
