package finance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Proposal variant names. Generation order is fixed.
const (
	VariantGrowthAccelerator = "Growth Accelerator"
	VariantBalancedGrowth    = "Balanced Growth"
	VariantWealthBuilder     = "Wealth Builder"
)

// ProposalTerms is one generated repayment offer. Rate, term and score are
// fixed per variant; only the principal and the derived payment vary with
// the requested amount. Real underwriting is intentionally out of scope.
type ProposalTerms struct {
	Name           string
	Description    string
	Amount         decimal.Decimal
	InterestRate   decimal.Decimal // annual, percent
	TermMonths     int
	MonthlyPayment decimal.Decimal
	BetterOffScore int
}

type variant struct {
	name        string
	description string
	rate        decimal.Decimal
	termMonths  int
	score       int
}

var variants = []variant{
	{
		name:        VariantGrowthAccelerator,
		description: "Lower monthly payments, maximize cash flow during residency/early career",
		rate:        decimal.NewFromFloat(4.5),
		termMonths:  120,
		score:       92,
	},
	{
		name:        VariantBalancedGrowth,
		description: "Balanced approach with moderate payments and competitive rate",
		rate:        decimal.NewFromFloat(5.5),
		termMonths:  84,
		score:       88,
	},
	{
		name:        VariantWealthBuilder,
		description: "Higher payments, build equity faster, lowest total interest",
		rate:        decimal.NewFromFloat(6.5),
		termMonths:  60,
		score:       85,
	},
}

// GenerateProposals produces the three repayment variants for a funding
// amount, in fixed order: Growth Accelerator, Balanced Growth, Wealth
// Builder. Generation is deterministic; calling twice with the same amount
// yields identical terms.
func GenerateProposals(amount decimal.Decimal) ([]ProposalTerms, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: funding amount must be positive, got %s", ErrInvalidInput, amount)
	}

	out := make([]ProposalTerms, 0, len(variants))
	for _, v := range variants {
		payment, err := MonthlyPayment(amount, v.rate, v.termMonths)
		if err != nil {
			return nil, err
		}
		out = append(out, ProposalTerms{
			Name:           v.name,
			Description:    v.description,
			Amount:         amount,
			InterestRate:   v.rate,
			TermMonths:     v.termMonths,
			MonthlyPayment: payment,
			BetterOffScore: v.score,
		})
	}
	return out, nil
}
