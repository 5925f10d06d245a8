// Package finance holds the pure loan-math used by proposal generation and
// the planning calculators. All currency values are decimals; callers own
// any rounding for display.
package finance

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidInput = errors.New("invalid input")

var (
	one = decimal.NewFromInt(1)
	// months per year x 100 (percent → monthly fraction in one division)
	rateDivisor = decimal.NewFromInt(1200)
)

// monthlyRate converts an annual percentage rate to a monthly fraction.
func monthlyRate(annualRatePct decimal.Decimal) decimal.Decimal {
	return annualRatePct.Div(rateDivisor)
}

// MonthlyPayment computes the fixed monthly payment for a standard
// amortizing loan. A zero rate falls back to straight-line principal/term.
func MonthlyPayment(principal, annualRatePct decimal.Decimal, termMonths int) (decimal.Decimal, error) {
	if !principal.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: principal must be positive, got %s", ErrInvalidInput, principal)
	}
	if termMonths < 1 {
		return decimal.Zero, fmt.Errorf("%w: term must be at least 1 month, got %d", ErrInvalidInput, termMonths)
	}
	if annualRatePct.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: rate must not be negative, got %s", ErrInvalidInput, annualRatePct)
	}

	r := monthlyRate(annualRatePct)
	if r.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(termMonths))), nil
	}

	// principal * r * (1+r)^n / ((1+r)^n - 1)
	compound := one.Add(r).Pow(decimal.NewFromInt(int64(termMonths)))
	return principal.Mul(r).Mul(compound).Div(compound.Sub(one)), nil
}

// PayoffSchedule is the result of simulating a loan with extra monthly
// payments on top of the standard amortizing payment.
type PayoffSchedule struct {
	StandardPayment decimal.Decimal
	MonthsToPayoff  int
	TotalPaid       decimal.Decimal
	TotalInterest   decimal.Decimal
	MonthsSaved     int
	InterestSaved   decimal.Decimal
	// PaidOff is false when the simulation hit its iteration cap with a
	// balance still outstanding (extra payment zero or negative).
	PaidOff bool
}

// PayoffWithExtra simulates month-by-month amortization paying
// standard+extra each period. The loop is capped at 2x the original term so
// it terminates regardless of the extra payment; when the cap is hit the
// saved figures are reported as zero.
func PayoffWithExtra(principal, annualRatePct decimal.Decimal, termMonths int, extra decimal.Decimal) (PayoffSchedule, error) {
	standard, err := MonthlyPayment(principal, annualRatePct, termMonths)
	if err != nil {
		return PayoffSchedule{}, err
	}

	r := monthlyRate(annualRatePct)
	term := decimal.NewFromInt(int64(termMonths))
	standardInterest := standard.Mul(term).Sub(principal)

	payment := standard.Add(extra)
	balance := principal
	totalPaid := decimal.Zero
	totalInterest := decimal.Zero
	months := 0
	for balance.IsPositive() && months < 2*termMonths {
		interest := balance.Mul(r)
		principalPortion := payment.Sub(interest)
		if principalPortion.GreaterThan(balance) {
			principalPortion = balance
		}
		balance = balance.Sub(principalPortion)
		totalPaid = totalPaid.Add(principalPortion).Add(interest)
		totalInterest = totalInterest.Add(interest)
		months++
	}

	out := PayoffSchedule{
		StandardPayment: standard,
		MonthsToPayoff:  months,
		TotalPaid:       totalPaid,
		// accumulated, not totalPaid-principal: on the cap path the
		// balance is still outstanding and the subtraction would lie
		TotalInterest: totalInterest,
		PaidOff:       !balance.IsPositive(),
	}
	if saved := termMonths - months; saved > 0 {
		out.MonthsSaved = saved
	}
	if saved := standardInterest.Sub(out.TotalInterest); out.PaidOff && saved.IsPositive() {
		out.InterestSaved = saved
	} else {
		out.InterestSaved = decimal.Zero
	}
	return out, nil
}

// FutureValue computes the compound-interest future value of an initial sum
// plus a fixed monthly contribution.
func FutureValue(initial, monthlyContribution, annualRatePct decimal.Decimal, months int) (decimal.Decimal, error) {
	if initial.IsNegative() || monthlyContribution.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amounts must not be negative", ErrInvalidInput)
	}
	if months < 1 {
		return decimal.Zero, fmt.Errorf("%w: months must be at least 1, got %d", ErrInvalidInput, months)
	}
	if annualRatePct.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: rate must not be negative, got %s", ErrInvalidInput, annualRatePct)
	}

	n := decimal.NewFromInt(int64(months))
	r := monthlyRate(annualRatePct)
	if r.IsZero() {
		return initial.Add(monthlyContribution.Mul(n)), nil
	}

	compound := one.Add(r).Pow(n)
	fromInitial := initial.Mul(compound)
	fromContributions := monthlyContribution.Mul(compound.Sub(one).Div(r))
	return fromInitial.Add(fromContributions), nil
}
