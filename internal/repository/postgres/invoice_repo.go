package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) Create(ctx context.Context, inv *domain.Invoice) error {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	inv.CreatedAt = time.Now().UTC()

	query := `INSERT INTO invoices (
			id, series, seq, number, issue_date,
			seller_name, seller_gstin, seller_state, seller_state_code,
			buyer_name, buyer_state, buyer_state_code, pricing_mode,
			sub_total, total_taxable_value, total_gst_amount,
			igst_amount, cgst_amount, sgst_amount,
			discount_amount, grand_total, amount_in_words, created_at
		) VALUES (
			:id, :series, :seq, :number, :issue_date,
			:seller_name, :seller_gstin, :seller_state, :seller_state_code,
			:buyer_name, :buyer_state, :buyer_state_code, :pricing_mode,
			:sub_total, :total_taxable_value, :total_gst_amount,
			:igst_amount, :cgst_amount, :sgst_amount,
			:discount_amount, :grand_total, :amount_in_words, :created_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, inv)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateInvoice
		}
		return fmt.Errorf("invoiceRepo.Create: %w", err)
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.db.GetContext(ctx, &inv, "SELECT * FROM invoices WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}
	return &inv, nil
}

func (r *invoiceRepo) List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM invoices")
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List count: %w", err)
	}

	var invoices []domain.Invoice
	err = r.db.SelectContext(ctx, &invoices,
		"SELECT * FROM invoices ORDER BY created_at DESC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List: %w", err)
	}
	return invoices, total, nil
}

func (r *invoiceRepo) ListAll(ctx context.Context) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.db.SelectContext(ctx, &invoices,
		"SELECT * FROM invoices ORDER BY series, seq")
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListAll: %w", err)
	}
	return invoices, nil
}

func (r *invoiceRepo) NextSeq(ctx context.Context, series string) (int64, error) {
	if strings.TrimSpace(series) == "" {
		return 0, domain.ErrEmptySeries
	}

	var seq int64
	err := r.db.GetContext(ctx, &seq,
		`INSERT INTO invoice_sequences (series, last_value)
		 VALUES ($1, 1)
		 ON CONFLICT (series) DO UPDATE SET last_value = invoice_sequences.last_value + 1
		 RETURNING last_value`, series)
	if err != nil {
		return 0, fmt.Errorf("invoiceRepo.NextSeq: %w", err)
	}
	return seq, nil
}
