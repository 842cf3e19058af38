package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendInvoiceIssuedEmail(ctx context.Context, toEmail, toName string, inv *domain.Invoice) error {
	subject := fmt.Sprintf("Invoice %s from %s", inv.Number, inv.SellerName)
	htmlBody := buildInvoiceHTML(toName, inv)
	textBody := fmt.Sprintf(
		"Hi %s,\n\n%s has issued invoice %s dated %s.\n\nTaxable value: %.2f\nGST: %.2f\nGrand total: %.2f\n(%s)\n\n%s",
		toName, inv.SellerName, inv.Number, inv.IssueDate.Format("02 Jan 2006"),
		inv.TotalTaxableValue, inv.TotalGSTAmount, inv.GrandTotal, inv.AmountInWords, inv.SellerName)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildInvoiceHTML(name string, inv *domain.Invoice) string {
	taxRow := fmt.Sprintf(`<tr><td style="padding: 4px 12px 4px 0;">CGST</td><td align="right">%.2f</td></tr>
    <tr><td style="padding: 4px 12px 4px 0;">SGST</td><td align="right">%.2f</td></tr>`, inv.CGSTAmount, inv.SGSTAmount)
	if inv.IGSTAmount > 0 {
		taxRow = fmt.Sprintf(`<tr><td style="padding: 4px 12px 4px 0;">IGST</td><td align="right">%.2f</td></tr>`, inv.IGSTAmount)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Invoice %s</h2>
  <p>Hi %s,</p>
  <p>%s has issued an invoice to you, dated %s.</p>
  <table style="border-collapse: collapse; margin: 20px 0;">
    <tr><td style="padding: 4px 12px 4px 0;">Taxable value</td><td align="right">%.2f</td></tr>
    %s
    <tr><td style="padding: 4px 12px 4px 0;"><strong>Grand total</strong></td><td align="right"><strong>%.2f</strong></td></tr>
  </table>
  <p style="color: #666;">%s</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">%s</p>
</body>
</html>`,
		inv.Number, name, inv.SellerName, inv.IssueDate.Format("02 Jan 2006"),
		inv.TotalTaxableValue, taxRow, inv.GrandTotal, inv.AmountInWords, inv.SellerName)
}
