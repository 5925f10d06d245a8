package mailer

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/shopspring/decimal"
)

type SESMailer struct {
	client *ses.Client
	from   string
}

func NewSESMailer(ctx context.Context, region, from string) (*SESMailer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &SESMailer{client: ses.NewFromConfig(cfg), from: from}, nil
}

func (m *SESMailer) send(ctx context.Context, to, subject, html string) error {
	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: &m.from,
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: &subject},
			Body: &types.Body{
				Html: &types.Content{Data: &html},
			},
		},
	})
	return err
}

func (m *SESMailer) SendApplicationSubmitted(ctx context.Context, to, name, applicationID string) error {
	subject := "Application Received - White Coat Capital"
	html := wrap(fmt.Sprintf(`
      <h2 style="color: #1a1a1a; font-size: 24px; margin: 0 0 16px;">We received your application</h2>
      <p style="color: #666; font-size: 16px; line-height: 1.6; margin: 0 0 24px;">
        Hi %s, thanks for applying for funding. Your application (ref %s) is in review
        and your three personalized repayment proposals are ready in your dashboard.
      </p>`, name, applicationID))
	return m.send(ctx, to, subject, html)
}

func (m *SESMailer) SendInvestmentConfirmation(ctx context.Context, to, name, dealName string, amount decimal.Decimal) error {
	subject := "Investment Confirmed - White Coat Capital"
	html := wrap(fmt.Sprintf(`
      <h2 style="color: #1a1a1a; font-size: 24px; margin: 0 0 16px;">Investment confirmed</h2>
      <p style="color: #666; font-size: 16px; line-height: 1.6; margin: 0 0 24px;">
        Hi %s, your investment of $%s in %s has been recorded.
        You can track its performance from your portfolio dashboard.
      </p>`, name, amount.StringFixed(2), dealName))
	return m.send(ctx, to, subject, html)
}

func wrap(body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
  <body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; margin: 0; padding: 0; background-color: #f5f5f5;">
    <div style="max-width: 600px; margin: 0 auto; padding: 40px 20px;">
      <div style="background: white; border-radius: 12px; padding: 40px;">
        <div style="text-align: center; margin-bottom: 32px;">
          <h1 style="color: #166534; margin: 0; font-size: 28px;">White Coat Capital</h1>
        </div>
        %s
        <hr style="border: none; border-top: 1px solid #eee; margin: 32px 0;">
        <p style="color: #999; font-size: 12px; margin: 0; text-align: center;">
          White Coat Capital - Investing in Healthcare Professionals
        </p>
      </div>
    </div>
  </body>
</html>`, body)
}
