package port

import (
	"context"

	"github.com/google/uuid"

	"gstbill/internal/domain"
)

// InvoiceRepository defines the contract for issued-invoice persistence.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error)
	ListAll(ctx context.Context) ([]domain.Invoice, error)
	// NextSeq atomically allocates the next sequence number for a series.
	NextSeq(ctx context.Context, series string) (int64, error)
}
