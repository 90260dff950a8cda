package email

import (
	"context"
	"fmt"
	"log"
	"strings"

	"quotekit/internal/domain/entities"
	"quotekit/internal/domain/pricing"
	"quotekit/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const defaultSender = "no-reply@quotekit.app"

// SESMailer delivers the "new lead" email through Amazon SES.
type SESMailer struct {
	client *ses.Client
	sender string
}

var _ interfaces.ILeadNotifier = (*SESMailer)(nil)

func NewSESMailer(ctx context.Context, sender string) (*SESMailer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	if strings.TrimSpace(sender) == "" {
		sender = defaultSender
	}
	return &SESMailer{client: ses.NewFromConfig(cfg), sender: sender}, nil
}

func (m *SESMailer) NotifyNewLead(ctx context.Context, company entities.Company, lead entities.Lead) error {
	recipient := strings.TrimSpace(company.Settings.NotifyEmail)
	if recipient == "" {
		recipient = company.Email
	}

	subject, body := renderNewLeadMail(company, lead)

	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(m.sender),
		Destination: &types.Destination{
			ToAddresses: []string{recipient},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject), Charset: aws.String("UTF-8")},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body), Charset: aws.String("UTF-8")},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("ses send email: %w", err)
	}
	log.Printf("[email][ses] new-lead mail sent company_id=%s lead_id=%s to=%s", company.ID, lead.ID, recipient)
	return nil
}

func renderNewLeadMail(company entities.Company, lead entities.Lead) (subject, body string) {
	low := pricing.FormatMoney(lead.EstimatedPriceLow, company.Locale)
	high := pricing.FormatMoney(lead.EstimatedPriceHigh, company.Locale)

	subject = fmt.Sprintf("New lead: %s (%s–%s %s)", lead.Name, low, high, lead.Currency)

	var b strings.Builder
	fmt.Fprintf(&b, "You have a new lead.\n\n")
	fmt.Fprintf(&b, "Name:  %s\n", lead.Name)
	fmt.Fprintf(&b, "Email: %s\n", lead.Email)
	if lead.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", lead.Phone)
	}
	fmt.Fprintf(&b, "Estimate: %s – %s %s\n", low, high, lead.Currency)
	fmt.Fprintf(&b, "Value: %s\n", lead.Value)
	body = b.String()
	return subject, body
}

// LogNotifier replaces SES for local runs: it just logs the mail it would
// have sent.
type LogNotifier struct{}

var _ interfaces.ILeadNotifier = (*LogNotifier)(nil)

func (LogNotifier) NotifyNewLead(_ context.Context, company entities.Company, lead entities.Lead) error {
	subject, _ := renderNewLeadMail(company, lead)
	log.Printf("[email][log] %s (company_id=%s lead_id=%s)", subject, company.ID, lead.ID)
	return nil
}
