package service

import (
	"context"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

// StateCodeService exposes the GST state-code master.
type StateCodeService interface {
	List(ctx context.Context) ([]domain.StateCode, error)
}

type stateCodeService struct {
	stateRepo port.StateCodeRepository
}

// NewStateCodeService creates a new StateCodeService implementation.
func NewStateCodeService(stateRepo port.StateCodeRepository) StateCodeService {
	return &stateCodeService{stateRepo: stateRepo}
}

func (s *stateCodeService) List(ctx context.Context) ([]domain.StateCode, error) {
	return s.stateRepo.LoadAll(ctx)
}
