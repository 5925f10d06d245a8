package investment

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"whitecoat-backend/internal/domain/deal"
)

var ErrNotFound = errors.New("investment not found")

// Investment is an investor's position in a deal. There is at most one row
// per (investor, deal); a repeat funding action tops up the existing row.
type Investment struct {
	ID           uint64 `gorm:"primaryKey;column:id" json:"-"`
	InvestmentID string `gorm:"size:32;uniqueIndex:ux_investments_investment_id" json:"investment_id"`
	InvestorID   string `gorm:"size:32;uniqueIndex:ux_investments_investor_deal,priority:1;index" json:"investor_id"`
	DealRef      uint64 `gorm:"column:deal_ref;uniqueIndex:ux_investments_investor_deal,priority:2" json:"-"`

	Amount decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	// CurrentValue starts equal to Amount and appreciates outside this
	// service; a top-up bumps it 1:1 with the added amount.
	CurrentValue decimal.Decimal `gorm:"type:decimal(18,2)" json:"current_value"`

	InvestedAt time.Time      `gorm:"autoCreateTime" json:"invested_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Deal          *deal.Deal     `gorm:"foreignKey:DealRef" json:"deal,omitempty"`
	Distributions []Distribution `gorm:"foreignKey:InvestmentRef" json:"distributions,omitempty"`
}

func (Investment) TableName() string { return "investments" }

// TopUp merges an additional commitment into the position.
func (i *Investment) TopUp(amount decimal.Decimal) {
	i.Amount = i.Amount.Add(amount)
	i.CurrentValue = i.CurrentValue.Add(amount)
}

// Distribution is a payout against an investment. Rows are append-only.
type Distribution struct {
	ID             uint64          `gorm:"primaryKey;column:id" json:"-"`
	DistributionID string          `gorm:"size:32;uniqueIndex:ux_distributions_distribution_id" json:"distribution_id"`
	InvestmentRef  uint64          `gorm:"column:investment_ref;index" json:"-"`
	Amount         decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	PaidAt         time.Time       `json:"paid_at"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Distribution) TableName() string { return "distributions" }
