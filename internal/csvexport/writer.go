package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gstbill/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row of the invoice register.
var columns = []string{
	"Invoice Number",
	"Issue Date",
	"Series",
	"Seq",
	"Seller Name",
	"Seller GSTIN",
	"Seller State",
	"Seller State Code",
	"Buyer Name",
	"Buyer State",
	"Buyer State Code",
	"Pricing Mode",
	"Sub Total",
	"Taxable Value",
	"CGST",
	"SGST",
	"IGST",
	"Total GST",
	"Discount",
	"Grand Total",
	"Amount In Words",
	"Created At",
}

// Writer wraps csv.Writer for exporting the invoice register as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteInvoices converts a batch of issued invoices to CSV rows and writes them.
func (w *Writer) WriteInvoices(invoices []domain.Invoice) error {
	for i := range invoices {
		row := invoiceToRow(&invoices[i])
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func invoiceToRow(inv *domain.Invoice) []string {
	row := make([]string, len(columns))
	row[0] = inv.Number
	row[1] = inv.IssueDate.Format("2006-01-02")
	row[2] = inv.Series
	row[3] = strconv.FormatInt(inv.Seq, 10)
	row[4] = inv.SellerName
	row[5] = inv.SellerGSTIN
	row[6] = inv.SellerState
	row[7] = inv.SellerStateCode
	row[8] = inv.BuyerName
	row[9] = inv.BuyerState
	row[10] = inv.BuyerStateCode
	row[11] = string(inv.PricingMode)
	row[12] = formatMoney(inv.SubTotal)
	row[13] = formatMoney(inv.TotalTaxableValue)
	row[14] = formatMoney(inv.CGSTAmount)
	row[15] = formatMoney(inv.SGSTAmount)
	row[16] = formatMoney(inv.IGSTAmount)
	row[17] = formatMoney(inv.TotalGSTAmount)
	row[18] = formatMoney(inv.DiscountAmount)
	row[19] = formatMoney(inv.GrandTotal)
	row[20] = inv.AmountInWords
	row[21] = inv.CreatedAt.Format(time.RFC3339)
	return row
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for the Content-Disposition header.
// Format: {sanitized_name}_{YYYY-MM-DD}.csv
func BuildFilename(name string) string {
	sanitized := SanitizeFilename(name)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.csv", sanitized, date)
}
