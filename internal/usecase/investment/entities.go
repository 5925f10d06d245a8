package investment

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrOnlyInvestors = errors.New("only investors can make investments")

type InvestInput struct {
	InvestorID string
	DealID     string
	Amount     decimal.Decimal
}

type InvestmentDTO struct {
	InvestmentID string          `json:"investment_id"`
	DealID       string          `json:"deal_id"`
	DealName     string          `json:"deal_name"`
	Amount       decimal.Decimal `json:"amount"`
	CurrentValue decimal.Decimal `json:"current_value"`
	InvestedAt   time.Time       `json:"invested_at"`
	// TopUp is true when this commitment was merged into an existing
	// position rather than opening a new one.
	TopUp bool `json:"top_up"`
	// FullyFunded is true when this commitment moved the deal to
	// FULLY_FUNDED.
	FullyFunded bool `json:"fully_funded"`
}

type PositionDTO struct {
	InvestmentID  string            `json:"investment_id"`
	DealID        string            `json:"deal_id"`
	DealName      string            `json:"deal_name"`
	Specialty     *string           `json:"specialty"`
	Amount        decimal.Decimal   `json:"amount"`
	CurrentValue  decimal.Decimal   `json:"current_value"`
	InvestedAt    time.Time         `json:"invested_at"`
	Distributions []DistributionDTO `json:"distributions"`
}

type DistributionDTO struct {
	DistributionID string          `json:"distribution_id"`
	Amount         decimal.Decimal `json:"amount"`
	PaidAt         time.Time       `json:"paid_at"`
}

type PortfolioTotals struct {
	TotalInvested      decimal.Decimal `json:"total_invested"`
	CurrentValue       decimal.Decimal `json:"current_value"`
	TotalDistributions decimal.Decimal `json:"total_distributions"`
}

type ListDTO struct {
	Investments []PositionDTO   `json:"investments"`
	Totals      PortfolioTotals `json:"totals"`
}
