package port

import (
	"context"

	"gstbill/internal/domain"
)

// StateCodeRepository defines the contract for GST state-code master data.
type StateCodeRepository interface {
	LookupByName(ctx context.Context, name string) (*domain.StateCode, error)
	LoadAll(ctx context.Context) ([]domain.StateCode, error)
}
