package dashboard

import (
	"github.com/shopspring/decimal"

	domainApplication "whitecoat-backend/internal/domain/application"
	domainInvestment "whitecoat-backend/internal/domain/investment"
)

var (
	hundred = decimal.NewFromInt(100)
	// irrMultiplier approximates an annualized IRR from the YTD return.
	// This is a product heuristic, not an IRR solve; changing it changes
	// reported numbers, so it stays as-is pending product sign-off.
	irrMultiplier = decimal.NewFromFloat(1.2)
	// appreciationMultiplier produces the illustrative physician-side
	// portfolio value from the active funding amount. Same caveat.
	appreciationMultiplier = decimal.NewFromFloat(1.15)
)

type InvestorMetrics struct {
	TotalInvested      decimal.Decimal `json:"total_invested"`
	CurrentValue       decimal.Decimal `json:"current_value"`
	TotalDistributions decimal.Decimal `json:"total_distributions"`
	YTDReturn          decimal.Decimal `json:"ytd_return"`
	PortfolioIRR       decimal.Decimal `json:"portfolio_irr"`
	InvestmentCount    int             `json:"investment_count"`
}

type SpecialtyMetrics struct {
	Invested     decimal.Decimal `json:"invested"`
	CurrentValue decimal.Decimal `json:"current_value"`
	Count        int             `json:"count"`
}

// AggregateInvestor folds an investor's positions into portfolio metrics
// and a per-specialty breakdown. Investments whose deal has no specialty
// group under "Other".
func AggregateInvestor(invs []domainInvestment.Investment) (InvestorMetrics, map[string]SpecialtyMetrics) {
	m := InvestorMetrics{
		TotalInvested:      decimal.Zero,
		CurrentValue:       decimal.Zero,
		TotalDistributions: decimal.Zero,
		YTDReturn:          decimal.Zero,
		PortfolioIRR:       decimal.Zero,
		InvestmentCount:    len(invs),
	}
	bySpecialty := make(map[string]SpecialtyMetrics)

	for _, inv := range invs {
		m.TotalInvested = m.TotalInvested.Add(inv.Amount)
		m.CurrentValue = m.CurrentValue.Add(inv.CurrentValue)
		for _, d := range inv.Distributions {
			m.TotalDistributions = m.TotalDistributions.Add(d.Amount)
		}

		specialty := "Other"
		if inv.Deal != nil && inv.Deal.Specialty != nil && *inv.Deal.Specialty != "" {
			specialty = *inv.Deal.Specialty
		}
		s := bySpecialty[specialty]
		s.Invested = s.Invested.Add(inv.Amount)
		s.CurrentValue = s.CurrentValue.Add(inv.CurrentValue)
		s.Count++
		bySpecialty[specialty] = s
	}

	if m.TotalInvested.IsPositive() {
		m.YTDReturn = m.CurrentValue.Sub(m.TotalInvested).
			Div(m.TotalInvested).
			Mul(hundred)
		m.PortfolioIRR = m.YTDReturn.Mul(irrMultiplier)
	}
	return m, bySpecialty
}

type PhysicianMetrics struct {
	ActiveFunding  decimal.Decimal `json:"active_funding"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	InterestRate   decimal.Decimal `json:"interest_rate"`
	PortfolioValue decimal.Decimal `json:"portfolio_value"`
}

// AggregatePhysician derives dashboard figures from the most recently
// created application and its selected proposal. All figures are zero when
// no proposal has been selected yet.
func AggregatePhysician(apps []domainApplication.FundingApplication) (PhysicianMetrics, *domainApplication.FundingApplication, *domainApplication.Proposal) {
	m := PhysicianMetrics{
		ActiveFunding:  decimal.Zero,
		MonthlyPayment: decimal.Zero,
		InterestRate:   decimal.Zero,
		PortfolioValue: decimal.Zero,
	}
	if len(apps) == 0 {
		return m, nil, nil
	}

	latest := &apps[0]
	for i := 1; i < len(apps); i++ {
		if apps[i].CreatedAt.After(latest.CreatedAt) {
			latest = &apps[i]
		}
	}

	var selected *domainApplication.Proposal
	if latest.SelectedProposalID != nil {
		for i := range latest.Proposals {
			if latest.Proposals[i].ProposalID == *latest.SelectedProposalID {
				selected = &latest.Proposals[i]
				break
			}
		}
	}
	if selected != nil {
		m.ActiveFunding = selected.Amount
		m.MonthlyPayment = selected.MonthlyPayment
		m.InterestRate = selected.InterestRate
		m.PortfolioValue = selected.Amount.Mul(appreciationMultiplier)
	}
	return m, latest, selected
}
