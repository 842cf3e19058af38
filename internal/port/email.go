package port

import (
	"context"

	"gstbill/internal/domain"
)

// EmailSender defines the contract for sending invoice notifications.
type EmailSender interface {
	SendInvoiceIssuedEmail(ctx context.Context, toEmail, toName string, inv *domain.Invoice) error
}
