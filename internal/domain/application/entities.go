package application

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusSubmitted Status = "SUBMITTED"
	StatusApproved  Status = "APPROVED"
)

type ProposalStatus string

const (
	ProposalPending  ProposalStatus = "PENDING"
	ProposalAccepted ProposalStatus = "ACCEPTED"
	ProposalRejected ProposalStatus = "REJECTED"
)

var (
	ErrNotFound         = errors.New("application not found")
	ErrProposalNotFound = errors.New("proposal not found on application")
)

// FundingApplication is a physician's funding request. Intake fields are
// immutable after submission; the only later mutation is proposal selection.
type FundingApplication struct {
	ID            uint64 `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID string `gorm:"size:32;uniqueIndex:ux_applications_application_id" json:"application_id"`
	PhysicianID   string `gorm:"size:32;index" json:"physician_id"`

	FullName        string           `gorm:"size:255" json:"full_name"`
	Degree          string           `gorm:"size:32" json:"degree"`
	Specialty       string           `gorm:"size:128" json:"specialty"`
	YearsInPractice *int             `json:"years_in_practice"`
	EstimatedIncome *decimal.Decimal `gorm:"type:decimal(18,2)" json:"estimated_income"`
	MedicalDebt     *decimal.Decimal `gorm:"type:decimal(18,2)" json:"medical_debt"`
	FundingNeeded   decimal.Decimal  `gorm:"type:decimal(18,2)" json:"funding_needed"`
	FundingTimeline string           `gorm:"size:64" json:"funding_timeline"`
	CareerGoals     string           `gorm:"type:text" json:"career_goals"`
	UseOfFunds      string           `gorm:"type:text" json:"use_of_funds"`

	Status             Status     `gorm:"size:32;default:'DRAFT'" json:"status"`
	SelectedProposalID *string    `gorm:"size:32" json:"selected_proposal_id"`
	SubmittedAt        *time.Time `json:"submitted_at"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Proposals []Proposal `gorm:"foreignKey:ApplicationRef" json:"proposals,omitempty"`
}

func (FundingApplication) TableName() string { return "funding_applications" }

// Proposal is one of the three generated repayment offers. All three are
// created with the application; after that the only mutation is the
// accept/reject transition in SelectProposal.
type Proposal struct {
	ID             uint64 `gorm:"primaryKey;column:id" json:"-"`
	ProposalID     string `gorm:"size:32;uniqueIndex:ux_proposals_proposal_id" json:"proposal_id"`
	ApplicationRef uint64 `gorm:"column:application_ref;index" json:"-"`

	Name           string          `gorm:"size:64" json:"name"`
	Description    string          `gorm:"type:text" json:"description"`
	Amount         decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	InterestRate   decimal.Decimal `gorm:"type:decimal(6,2)" json:"interest_rate"`
	TermMonths     int             `json:"term_months"`
	MonthlyPayment decimal.Decimal `gorm:"type:decimal(18,2)" json:"monthly_payment"`
	BetterOffScore int             `json:"better_off_score"`

	Status ProposalStatus `gorm:"size:32;default:'PENDING'" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Proposal) TableName() string { return "proposals" }

// SelectProposal marks the chosen proposal ACCEPTED and every sibling
// REJECTED, in place. The whole set transitions together so exactly one
// proposal ends up accepted; re-selecting an already-decided set is
// idempotent. Returns ErrProposalNotFound when proposalID is not in the set.
func SelectProposal(proposals []Proposal, proposalID string) error {
	found := false
	for i := range proposals {
		if proposals[i].ProposalID == proposalID {
			found = true
			break
		}
	}
	if !found {
		return ErrProposalNotFound
	}
	for i := range proposals {
		if proposals[i].ProposalID == proposalID {
			proposals[i].Status = ProposalAccepted
		} else {
			proposals[i].Status = ProposalRejected
		}
	}
	return nil
}
