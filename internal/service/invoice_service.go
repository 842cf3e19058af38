package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"gstbill/internal/billing"
	"gstbill/internal/config"
	"gstbill/internal/domain"
	"gstbill/internal/port"
)

// InvoiceRequest is the invoicing input: the order to compute plus the
// seller and customer profiles. Orders are not persisted; only the issued
// invoice record is.
type InvoiceRequest struct {
	Order    domain.Order           `json:"order"`
	Seller   domain.SellerProfile   `json:"seller"`
	Customer domain.CustomerProfile `json:"customer"`
}

// InvoiceService computes invoices and issues numbered invoice records.
type InvoiceService interface {
	Preview(ctx context.Context, req *InvoiceRequest) (*domain.InvoiceComputation, error)
	Issue(ctx context.Context, req *InvoiceRequest) (*domain.Invoice, *domain.InvoiceComputation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error)
	ListAll(ctx context.Context) ([]domain.Invoice, error)
}

type invoiceService struct {
	invoiceRepo port.InvoiceRepository
	stateRepo   port.StateCodeRepository
	emailSender port.EmailSender
	cfg         config.InvoiceConfig
}

// NewInvoiceService creates a new InvoiceService implementation.
// emailSender may be nil to disable issue notifications.
func NewInvoiceService(
	invoiceRepo port.InvoiceRepository,
	stateRepo port.StateCodeRepository,
	emailSender port.EmailSender,
	cfg config.InvoiceConfig,
) InvoiceService {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		stateRepo:   stateRepo,
		emailSender: emailSender,
		cfg:         cfg,
	}
}

// compute resolves percent adjustments against the pre-adjustment sub-total
// and runs the tax engine. The engine itself only sees absolute values.
func (s *invoiceService) compute(req *InvoiceRequest) (*domain.InvoiceComputation, error) {
	mode := domain.ParsePricingMode(string(req.Seller.PricingMode))
	order := req.Order
	order.Adjustments = billing.ResolveAdjustments(&req.Order, mode)
	return billing.Compute(&order, &req.Seller, &req.Customer)
}

func (s *invoiceService) Preview(_ context.Context, req *InvoiceRequest) (*domain.InvoiceComputation, error) {
	return s.compute(req)
}

func (s *invoiceService) Issue(ctx context.Context, req *InvoiceRequest) (*domain.Invoice, *domain.InvoiceComputation, error) {
	comp, err := s.compute(req)
	if err != nil {
		return nil, nil, err
	}

	seq, err := s.invoiceRepo.NextSeq(ctx, s.cfg.Series)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	inv := &domain.Invoice{
		ID:                uuid.New(),
		Series:            s.cfg.Series,
		Seq:               seq,
		Number:            fmt.Sprintf("%s-%0*d", s.cfg.Series, s.cfg.NumberPad, seq),
		IssueDate:         now,
		SellerName:        req.Seller.Name,
		SellerGSTIN:       req.Seller.GSTIN,
		SellerState:       req.Seller.State,
		SellerStateCode:   s.resolveStateCode(ctx, req.Seller.State),
		BuyerName:         req.Customer.Name,
		BuyerState:        req.Customer.State,
		BuyerStateCode:    s.resolveStateCode(ctx, req.Customer.State),
		PricingMode:       domain.ParsePricingMode(string(req.Seller.PricingMode)),
		SubTotal:          comp.SubTotal,
		TotalTaxableValue: comp.TotalTaxableValue,
		TotalGSTAmount:    comp.TotalGSTAmount,
		IGSTAmount:        comp.IGSTAmount,
		CGSTAmount:        comp.CGSTAmount,
		SGSTAmount:        comp.SGSTAmount,
		DiscountAmount:    comp.DiscountAmount,
		GrandTotal:        comp.GrandTotal,
		AmountInWords:     comp.AmountInWords,
	}

	if err := s.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, nil, err
	}

	// Notification failure must not roll back an issued invoice.
	if s.emailSender != nil && req.Customer.Email != "" {
		if err := s.emailSender.SendInvoiceIssuedEmail(ctx, req.Customer.Email, req.Customer.Name, inv); err != nil {
			log.Printf("invoice %s: sending issue notification: %v", inv.Number, err)
		}
	}

	return inv, comp, nil
}

// resolveStateCode maps a state name to its GST state code for display on
// the issued record. Unknown states are tolerated and left blank.
func (s *invoiceService) resolveStateCode(ctx context.Context, state string) string {
	if s.stateRepo == nil || state == "" {
		return ""
	}
	sc, err := s.stateRepo.LookupByName(ctx, state)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Printf("state code lookup for %q: %v", state, err)
		}
		return ""
	}
	return sc.Code
}

func (s *invoiceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return s.invoiceRepo.GetByID(ctx, id)
}

func (s *invoiceService) List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error) {
	return s.invoiceRepo.List(ctx, offset, limit)
}

func (s *invoiceService) ListAll(ctx context.Context) ([]domain.Invoice, error) {
	return s.invoiceRepo.ListAll(ctx)
}
