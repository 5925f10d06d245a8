package application

import (
	"time"

	"github.com/shopspring/decimal"
)

type SubmitInput struct {
	PhysicianID     string
	FullName        string
	Degree          string
	Specialty       string
	YearsInPractice *int
	EstimatedIncome *decimal.Decimal
	MedicalDebt     *decimal.Decimal
	FundingNeeded   decimal.Decimal
	FundingTimeline string
	CareerGoals     string
	UseOfFunds      string
}

type SelectInput struct {
	PhysicianID   string
	ApplicationID string
	ProposalID    string
}

type ProposalDTO struct {
	ProposalID     string          `json:"proposal_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	InterestRate   decimal.Decimal `json:"interest_rate"`
	TermMonths     int             `json:"term_months"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	BetterOffScore int             `json:"better_off_score"`
	Status         string          `json:"status"`
}

type ApplicationDTO struct {
	ApplicationID      string          `json:"application_id"`
	FullName           string          `json:"full_name"`
	Degree             string          `json:"degree"`
	Specialty          string          `json:"specialty"`
	FundingNeeded      decimal.Decimal `json:"funding_needed"`
	FundingTimeline    string          `json:"funding_timeline"`
	Status             string          `json:"status"`
	SelectedProposalID *string         `json:"selected_proposal_id"`
	SubmittedAt        *time.Time      `json:"submitted_at"`
	CreatedAt          time.Time       `json:"created_at"`
	Proposals          []ProposalDTO   `json:"proposals"`
}
