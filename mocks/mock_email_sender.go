package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gstbill/internal/domain"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendInvoiceIssuedEmail(ctx context.Context, toEmail, toName string, inv *domain.Invoice) error {
	args := m.Called(ctx, toEmail, toName, inv)
	return args.Error(0)
}
