package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gstbill/internal/domain"
	"gstbill/internal/service"
)

// MockInvoiceService is a mock implementation of service.InvoiceService.
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) Preview(ctx context.Context, req *service.InvoiceRequest) (*domain.InvoiceComputation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceComputation), args.Error(1)
}

func (m *MockInvoiceService) Issue(ctx context.Context, req *service.InvoiceRequest) (*domain.Invoice, *domain.InvoiceComputation, error) {
	args := m.Called(ctx, req)
	var inv *domain.Invoice
	if args.Get(0) != nil {
		inv = args.Get(0).(*domain.Invoice)
	}
	var comp *domain.InvoiceComputation
	if args.Get(1) != nil {
		comp = args.Get(1).(*domain.InvoiceComputation)
	}
	return inv, comp, args.Error(2)
}

func (m *MockInvoiceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Invoice), args.Int(1), args.Error(2)
}

func (m *MockInvoiceService) ListAll(ctx context.Context) ([]domain.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}
