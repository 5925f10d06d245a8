package deal

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Status string

const (
	StatusOpen        Status = "OPEN"
	StatusFullyFunded Status = "FULLY_FUNDED"
	StatusClosed      Status = "CLOSED"
)

var (
	ErrNotFound = errors.New("deal not found")
	ErrNotOpen  = errors.New("deal is not open for investment")
)

// BelowMinimumError carries the deal's minimum so handlers can surface it.
type BelowMinimumError struct {
	Required decimal.Decimal
}

func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("minimum investment is %s", e.Required)
}

type Deal struct {
	ID          uint64  `gorm:"primaryKey;column:id" json:"-"`
	DealID      string  `gorm:"size:32;uniqueIndex:ux_deals_deal_id_active" json:"deal_id"`
	Name        string  `gorm:"size:255" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Specialty   *string `gorm:"size:128" json:"specialty"`
	DealType    string  `gorm:"size:64" json:"deal_type"`

	TargetAmount      decimal.Decimal `gorm:"type:decimal(18,2)" json:"target_amount"`
	MinimumInvestment decimal.Decimal `gorm:"type:decimal(18,2)" json:"minimum_investment"`
	// CurrentAmount is the sum of all committed investment amounts. It is
	// only ever updated with the deal row locked; see uow.WithinDealTx.
	CurrentAmount decimal.Decimal `gorm:"type:decimal(18,2)" json:"current_amount"`

	TargetIRR             *decimal.Decimal `gorm:"type:decimal(6,2)" json:"target_irr"`
	TargetMOIC            *decimal.Decimal `gorm:"type:decimal(6,2)" json:"target_moic"`
	TermMonths            int              `json:"term_months"`
	DistributionFrequency string           `gorm:"size:32" json:"distribution_frequency"`

	Status   Status     `gorm:"size:32;default:'OPEN'" json:"status"`
	OpenedAt *time.Time `json:"opened_at"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Deal) TableName() string { return "deals" }

// Commit validates an incoming commitment and applies it to the running
// total. It returns true when this commitment moves the deal from OPEN to
// FULLY_FUNDED. The check uses the post-increment total, so a commitment
// that exactly reaches or overshoots the target triggers the transition
// here; overshoot is accepted rather than capped. The transition never
// reverts.
func (d *Deal) Commit(amount decimal.Decimal) (bool, error) {
	if d.Status != StatusOpen {
		return false, ErrNotOpen
	}
	if amount.LessThan(d.MinimumInvestment) {
		return false, &BelowMinimumError{Required: d.MinimumInvestment}
	}

	d.CurrentAmount = d.CurrentAmount.Add(amount)
	if d.CurrentAmount.GreaterThanOrEqual(d.TargetAmount) {
		d.Status = StatusFullyFunded
		return true, nil
	}
	return false, nil
}
