package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderItem is a single product line on an order awaiting invoicing.
// Whether UnitPrice already contains GST depends on the seller's PricingMode.
type OrderItem struct {
	ProductID      string  `json:"product_id"`
	Name           string  `json:"name"`
	HSNCode        string  `json:"hsn_code,omitempty"`
	Quantity       float64 `json:"quantity"`
	UnitPrice      float64 `json:"price"`
	GSTRatePercent float64 `json:"gst_rate"`
}

// Adjustment is an order-level addition or deduction. Value carries the
// absolute currency amount unless ValueType is percent, in which case it is
// resolved against the pre-adjustment sub-total before computation.
type Adjustment struct {
	Label                     string          `json:"label"`
	Kind                      AdjustmentKind  `json:"kind"`
	Value                     float64         `json:"value"`
	ValueType                 AdjustmentValue `json:"value_type,omitempty"`
	GSTRatePercent            float64         `json:"gst_rate"`
	IncludedInAssessableValue bool            `json:"included_in_assessable_value"`
}

// Order is the invoicing input: line items plus optional adjustments and a
// flat, tax-settled discount applied last.
type Order struct {
	Items          []OrderItem  `json:"items"`
	Adjustments    []Adjustment `json:"adjustments,omitempty"`
	DiscountAmount float64      `json:"discount_amount,omitempty"`
}

// SellerProfile is the invoicing client: the party issuing the invoice.
type SellerProfile struct {
	Name        string      `json:"client_name"`
	Address     string      `json:"client_address,omitempty"`
	GSTIN       string      `json:"gst_no,omitempty"`
	State       string      `json:"state"`
	PricingMode PricingMode `json:"gst_method"`
	Phone       string      `json:"phone,omitempty"`
	Email       string      `json:"email,omitempty"`
}

// CustomerProfile is the buying party. Only State participates in the
// CGST/SGST vs IGST decision; the rest is carried onto the issued record.
type CustomerProfile struct {
	Name  string `json:"name,omitempty"`
	State string `json:"state"`
	Email string `json:"email,omitempty"`
}

// ItemTax holds the resolved tax figures for one order item.
type ItemTax struct {
	TaxableValue float64 `json:"taxable_value"`
	GSTAmount    float64 `json:"gst_amount"`
}

// AdjustmentTax holds the resolved tax figures for one adjustment.
// FinalTotal is the absolute amount the adjustment moves the invoice by.
type AdjustmentTax struct {
	Label        string         `json:"label"`
	Kind         AdjustmentKind `json:"kind"`
	TaxableValue float64        `json:"taxable_value"`
	GSTAmount    float64        `json:"gst_amount"`
	FinalTotal   float64        `json:"final_total"`
}

// InvoiceComputation is the complete output of the tax engine for one order.
// All currency fields are rounded to two decimal places; it is never mutated
// after creation.
type InvoiceComputation struct {
	Items             []ItemTax       `json:"items"`
	Adjustments       []AdjustmentTax `json:"adjustments"`
	SubTotal          float64         `json:"sub_total"`
	TotalTaxableValue float64         `json:"total_taxable_value"`
	TotalGSTAmount    float64         `json:"total_gst_amount"`
	IGSTAmount        float64         `json:"igst_amount"`
	CGSTAmount        float64         `json:"cgst_amount"`
	SGSTAmount        float64         `json:"sgst_amount"`
	DiscountAmount    float64         `json:"discount_amount"`
	GrandTotal        float64         `json:"grand_total"`
	AmountInWords     string          `json:"amount_in_words"`
}

// Invoice is the persisted record of an issued invoice: the allocated number
// plus a snapshot of the parties and computed aggregates.
type Invoice struct {
	ID                uuid.UUID   `db:"id" json:"id"`
	Series            string      `db:"series" json:"series"`
	Seq               int64       `db:"seq" json:"seq"`
	Number            string      `db:"number" json:"number"`
	IssueDate         time.Time   `db:"issue_date" json:"issue_date"`
	SellerName        string      `db:"seller_name" json:"seller_name"`
	SellerGSTIN       string      `db:"seller_gstin" json:"seller_gstin"`
	SellerState       string      `db:"seller_state" json:"seller_state"`
	SellerStateCode   string      `db:"seller_state_code" json:"seller_state_code"`
	BuyerName         string      `db:"buyer_name" json:"buyer_name"`
	BuyerState        string      `db:"buyer_state" json:"buyer_state"`
	BuyerStateCode    string      `db:"buyer_state_code" json:"buyer_state_code"`
	PricingMode       PricingMode `db:"pricing_mode" json:"pricing_mode"`
	SubTotal          float64     `db:"sub_total" json:"sub_total"`
	TotalTaxableValue float64     `db:"total_taxable_value" json:"total_taxable_value"`
	TotalGSTAmount    float64     `db:"total_gst_amount" json:"total_gst_amount"`
	IGSTAmount        float64     `db:"igst_amount" json:"igst_amount"`
	CGSTAmount        float64     `db:"cgst_amount" json:"cgst_amount"`
	SGSTAmount        float64     `db:"sgst_amount" json:"sgst_amount"`
	DiscountAmount    float64     `db:"discount_amount" json:"discount_amount"`
	GrandTotal        float64     `db:"grand_total" json:"grand_total"`
	AmountInWords     string      `db:"amount_in_words" json:"amount_in_words"`
	CreatedAt         time.Time   `db:"created_at" json:"created_at"`
}

// StateCode is one entry of the GST state-code master (e.g. 29 = Karnataka).
type StateCode struct {
	Code string `db:"code" json:"code"`
	Name string `db:"name" json:"name"`
}
