// Package mailer sends the transactional notifications fired after a
// successful proposal generation or investment. Sends are fire-and-forget:
// callers log failures and never fail the request on them.
package mailer

import (
	"context"

	"github.com/shopspring/decimal"
)

type Mailer interface {
	SendApplicationSubmitted(ctx context.Context, to, name, applicationID string) error
	SendInvestmentConfirmation(ctx context.Context, to, name, dealName string, amount decimal.Decimal) error
}

// Noop satisfies Mailer when email is disabled (local dev, tests).
type Noop struct{}

func (Noop) SendApplicationSubmitted(context.Context, string, string, string) error { return nil }
func (Noop) SendInvestmentConfirmation(context.Context, string, string, string, decimal.Decimal) error {
	return nil
}
