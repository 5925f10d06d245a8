package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"whitecoat-backend/internal/usecase/investment"
)

type InvestmentHandler struct{ uc *investment.Usecase }

func NewInvestmentHandler(uc *investment.Usecase) *InvestmentHandler {
	return &InvestmentHandler{uc: uc}
}

type investReq struct {
	DealID string `json:"deal_id" validate:"required,hex32"`
	// Amount binds JSON numbers or strings; currency stays decimal all the
	// way down.
	Amount decimal.Decimal `json:"amount" validate:"dec2"`
}

func (h *InvestmentHandler) Invest(c echo.Context) error {
	investorID, ok := callerID(c)
	if !ok {
		return unauthorized(c)
	}

	var req investReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	if !req.Amount.IsPositive() {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: []FieldError{{Field: "amount", Message: "must be greater than 0"}},
		})
	}
	dto, err := h.uc.Invest(c.Request().Context(), investment.InvestInput{
		InvestorID: investorID,
		DealID:     req.DealID,
		Amount:     req.Amount,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *InvestmentHandler) List(c echo.Context) error {
	investorID, ok := callerID(c)
	if !ok {
		return unauthorized(c)
	}
	dto, err := h.uc.List(c.Request().Context(), investorID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
