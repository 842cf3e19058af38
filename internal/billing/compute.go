package billing

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"gstbill/internal/domain"
)

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
)

// num converts a possibly sloppy numeric field into a decimal. NaN and ±Inf
// are treated as zero so a degenerate line never aborts the whole computation.
func num(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

// lineTax resolves a gross amount into taxable value and GST amount under the
// given pricing mode. Inclusive pricing backs the tax out of the gross;
// exclusive pricing adds tax on top. The division is skipped at rate zero to
// avoid needless floating noise.
func lineTax(gross, ratePercent decimal.Decimal, mode domain.PricingMode) (taxable, gst decimal.Decimal) {
	if mode == domain.PricingInclusive {
		if ratePercent.IsPositive() {
			taxable = gross.Div(decimal.NewFromInt(1).Add(ratePercent.Div(hundred)))
			gst = gross.Sub(taxable)
			return taxable, gst
		}
		return gross, decimal.Zero
	}
	taxable = gross
	gst = taxable.Mul(ratePercent).Div(hundred)
	return taxable, gst
}

// validate rejects contract violations: negative quantities, prices, rates,
// adjustment values, or discount. Missing or zero fields are tolerated.
func validate(order *domain.Order) error {
	for i := range order.Items {
		item := &order.Items[i]
		if item.Quantity < 0 {
			return domain.NewValidationError(fmt.Sprintf("items[%d].quantity", i), "must not be negative")
		}
		if item.UnitPrice < 0 {
			return domain.NewValidationError(fmt.Sprintf("items[%d].price", i), "must not be negative")
		}
		if item.GSTRatePercent < 0 {
			return domain.NewValidationError(fmt.Sprintf("items[%d].gst_rate", i), "must not be negative")
		}
	}
	for i := range order.Adjustments {
		adj := &order.Adjustments[i]
		if adj.Value < 0 {
			return domain.NewValidationError(fmt.Sprintf("adjustments[%d].value", i), "must not be negative")
		}
		if adj.GSTRatePercent < 0 {
			return domain.NewValidationError(fmt.Sprintf("adjustments[%d].gst_rate", i), "must not be negative")
		}
	}
	if order.DiscountAmount < 0 {
		return domain.NewValidationError("discount_amount", "must not be negative")
	}
	return nil
}

// SubTotal returns the pre-adjustment taxable value of the order under the
// given pricing mode, rounded to two decimal places.
func SubTotal(items []domain.OrderItem, mode domain.PricingMode) float64 {
	sum := decimal.Zero
	for i := range items {
		item := &items[i]
		qty := num(item.Quantity)
		if !qty.IsPositive() {
			continue
		}
		taxable, _ := lineTax(qty.Mul(num(item.UnitPrice)), num(item.GSTRatePercent), mode)
		sum = sum.Add(taxable)
	}
	return round2(sum)
}

// ResolveAdjustments returns a copy of the order's adjustments with
// percent-mode values converted to absolute amounts against the
// pre-adjustment sub-total. The computation engine itself only accepts
// absolute values; callers resolve first.
func ResolveAdjustments(order *domain.Order, mode domain.PricingMode) []domain.Adjustment {
	if len(order.Adjustments) == 0 {
		return nil
	}
	base := decimal.NewFromFloat(SubTotal(order.Items, mode))
	resolved := make([]domain.Adjustment, len(order.Adjustments))
	for i, adj := range order.Adjustments {
		if adj.ValueType == domain.AdjustmentPercent {
			adj.Value = round2(base.Mul(num(adj.Value)).Div(hundred))
			adj.ValueType = domain.AdjustmentAbsolute
		}
		resolved[i] = adj
	}
	return resolved
}

// Compute runs the full invoice computation for an order: per-item tax
// resolution, adjustment resolution, assessable-value redistribution,
// CGST/SGST vs IGST allocation, grand total assembly, and amount-in-words.
// Adjustment values must already be absolute (see ResolveAdjustments).
//
// The function is pure: identical input yields identical output, no state is
// shared across calls, and it is safe to invoke concurrently.
func Compute(order *domain.Order, seller *domain.SellerProfile, customer *domain.CustomerProfile) (*domain.InvoiceComputation, error) {
	if err := validate(order); err != nil {
		return nil, err
	}
	mode := domain.ParsePricingMode(string(seller.PricingMode))

	// Per-item tax resolution. Zero-quantity items contribute zero rather
	// than aborting the computation.
	n := len(order.Items)
	gross := make([]decimal.Decimal, n)
	taxable := make([]decimal.Decimal, n)
	gst := make([]decimal.Decimal, n)
	rates := make([]decimal.Decimal, n)
	subTotal := decimal.Zero
	for i := range order.Items {
		item := &order.Items[i]
		qty := num(item.Quantity)
		if !qty.IsPositive() {
			continue
		}
		rates[i] = num(item.GSTRatePercent)
		gross[i] = qty.Mul(num(item.UnitPrice))
		taxable[i], gst[i] = lineTax(gross[i], rates[i], mode)
		subTotal = subTotal.Add(taxable[i])
	}

	// Adjustment tax resolution. Adjustments flagged as included in the
	// assessable value do not appear in the running adjustment totals;
	// their net effect is redistributed across line items below.
	adjustments := make([]domain.AdjustmentTax, 0, len(order.Adjustments))
	totalAdjustments := decimal.Zero
	adjustmentsGST := decimal.Zero
	inclAdditions := decimal.Zero
	inclDeductions := decimal.Zero
	for i := range order.Adjustments {
		adj := &order.Adjustments[i]
		value := num(adj.Value)
		adjTaxable, adjGST := lineTax(value, num(adj.GSTRatePercent), mode)
		adjustments = append(adjustments, domain.AdjustmentTax{
			Label:        adj.Label,
			Kind:         adj.Kind,
			TaxableValue: round2(adjTaxable),
			GSTAmount:    round2(adjGST),
			FinalTotal:   round2(value),
		})
		if adj.IncludedInAssessableValue {
			if adj.Kind == domain.AdjustmentDeduction {
				inclDeductions = inclDeductions.Add(value)
			} else {
				inclAdditions = inclAdditions.Add(value)
			}
			continue
		}
		if adj.Kind == domain.AdjustmentDeduction {
			totalAdjustments = totalAdjustments.Sub(adjTaxable)
			adjustmentsGST = adjustmentsGST.Sub(adjGST)
		} else {
			totalAdjustments = totalAdjustments.Add(adjTaxable)
			adjustmentsGST = adjustmentsGST.Add(adjGST)
		}
	}

	// Assessable-value redistribution: shrink or grow every line item's
	// taxable base proportionally. Skipped when there is nothing to
	// redistribute or the pre-adjustment taxable total is zero (an
	// all-free order keeps its zero bases).
	totalTaxable := subTotal
	totalGST := decimal.Zero
	for i := range gst {
		totalGST = totalGST.Add(gst[i])
	}
	if (!inclAdditions.IsZero() || !inclDeductions.IsZero()) && subTotal.IsPositive() {
		net := inclAdditions.Sub(inclDeductions)
		newTaxable := decimal.Zero
		newGST := decimal.Zero
		for i := range order.Items {
			if gross[i].IsZero() && taxable[i].IsZero() {
				continue
			}
			proportion := taxable[i].Div(subTotal)
			taxable[i] = taxable[i].Add(net.Mul(proportion))
			if mode == domain.PricingInclusive {
				// Gross price stays fixed; the tax amount absorbs the shift.
				gst[i] = gross[i].Sub(taxable[i])
			} else {
				gst[i] = taxable[i].Mul(rates[i]).Div(hundred)
			}
			newTaxable = newTaxable.Add(taxable[i])
			newGST = newGST.Add(gst[i])
		}
		totalTaxable = newTaxable
		totalGST = newGST
	}

	items := make([]domain.ItemTax, n)
	for i := range items {
		items[i] = domain.ItemTax{TaxableValue: round2(taxable[i]), GSTAmount: round2(gst[i])}
	}

	// Intra-state supplies split the GST total evenly into CGST and SGST;
	// inter-state supplies allocate it all to IGST. An unknown state on
	// either side falls back to the intra-state split.
	totalGSTWithAdjustments := totalGST.Add(adjustmentsGST)
	igst, cgst, sgst := decimal.Zero, decimal.Zero, decimal.Zero
	sellerState := strings.TrimSpace(seller.State)
	buyerState := strings.TrimSpace(customer.State)
	if sellerState != "" && buyerState != "" && !strings.EqualFold(sellerState, buyerState) {
		igst = totalGSTWithAdjustments
	} else {
		cgst = totalGSTWithAdjustments.Div(two)
		sgst = totalGSTWithAdjustments.Div(two)
	}

	discount := num(order.DiscountAmount)
	grandTotal := totalTaxable.Add(totalAdjustments).Add(totalGSTWithAdjustments).Sub(discount)

	return &domain.InvoiceComputation{
		Items:             items,
		Adjustments:       adjustments,
		SubTotal:          round2(subTotal),
		TotalTaxableValue: round2(totalTaxable),
		TotalGSTAmount:    round2(totalGSTWithAdjustments),
		IGSTAmount:        round2(igst),
		CGSTAmount:        round2(cgst),
		SGSTAmount:        round2(sgst),
		DiscountAmount:    round2(discount),
		GrandTotal:        round2(grandTotal),
		AmountInWords:     AmountInWords(round2(grandTotal)),
	}, nil
}
