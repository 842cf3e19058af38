package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gstbill/internal/domain"
)

// MockStateCodeService is a mock implementation of service.StateCodeService.
type MockStateCodeService struct {
	mock.Mock
}

func (m *MockStateCodeService) List(ctx context.Context) ([]domain.StateCode, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StateCode), args.Error(1)
}
