package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gstbill/internal/csvexport"
	"gstbill/internal/service"
)

// InvoiceHandler handles invoice computation and issuing endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// IssueResponse pairs the persisted invoice record with its full computation.
type IssueResponse struct {
	Invoice     interface{} `json:"invoice"`
	Computation interface{} `json:"computation"`
}

// Preview handles POST /api/v1/invoices/preview
// @Summary Compute an invoice without issuing it
// @Description Runs the tax engine over an order and party profiles and returns per-item and aggregate figures. Nothing is persisted.
// @Tags invoices
// @Accept json
// @Produce json
// @Success 200 {object} APIResponse{data=domain.InvoiceComputation}
// @Failure 400 {object} APIResponse "Invalid body or validation failure"
// @Router /invoices/preview [post]
func (h *InvoiceHandler) Preview(c *gin.Context) {
	var req service.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
		return
	}

	comp, err := h.invoiceService.Preview(c.Request.Context(), &req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, comp)
}

// Issue handles POST /api/v1/invoices
// @Summary Issue an invoice
// @Description Computes the invoice, allocates the next number in the configured series, and persists the issued record.
// @Tags invoices
// @Accept json
// @Produce json
// @Success 201 {object} APIResponse{data=IssueResponse}
// @Failure 400 {object} APIResponse "Invalid body or validation failure"
// @Router /invoices [post]
func (h *InvoiceHandler) Issue(c *gin.Context) {
	var req service.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
		return
	}

	inv, comp, err := h.invoiceService.Issue(c.Request.Context(), &req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, IssueResponse{Invoice: inv, Computation: comp})
}

// GetByID handles GET /api/v1/invoices/:id
// @Summary Get an issued invoice by ID
// @Tags invoices
// @Produce json
// @Success 200 {object} APIResponse{data=domain.Invoice}
// @Failure 404 {object} APIResponse "Invoice not found"
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invoice id must be a valid UUID")
		return
	}

	inv, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, inv)
}

// List handles GET /api/v1/invoices
// @Summary List issued invoices
// @Tags invoices
// @Produce json
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Page size (max 100)" default(20)
// @Success 200 {object} APIResponse{data=[]domain.Invoice}
// @Router /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if offset < 0 {
		offset = 0
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	invoices, total, err := h.invoiceService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, invoices, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// ExportCSV handles GET /api/v1/invoices/export
// @Summary Export the invoice register as CSV
// @Tags invoices
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Router /invoices/export [get]
func (h *InvoiceHandler) ExportCSV(c *gin.Context) {
	invoices, err := h.invoiceService.ListAll(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := csvexport.BuildFilename("invoice_register")
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	// BOM first so Excel detects UTF-8.
	if _, err := c.Writer.Write(csvexport.BOM); err != nil {
		return
	}

	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	if err := w.WriteInvoices(invoices); err != nil {
		return
	}
	w.Flush()
}
