package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbill/internal/billing"
	"gstbill/internal/domain"
)

func inclusiveSeller(state string) *domain.SellerProfile {
	return &domain.SellerProfile{
		Name:        "Acme Traders",
		GSTIN:       "29ABCDE1234F1Z5",
		State:       state,
		PricingMode: domain.PricingInclusive,
	}
}

func exclusiveSeller(state string) *domain.SellerProfile {
	s := inclusiveSeller(state)
	s.PricingMode = domain.PricingExclusive
	return s
}

func buyer(state string) *domain.CustomerProfile {
	return &domain.CustomerProfile{Name: "Retail Mart", State: state}
}

func TestCompute_InclusiveWorkedExample(t *testing.T) {
	// qty=2, unit price=100 inclusive of 18% GST, same state.
	order := &domain.Order{Items: []domain.OrderItem{
		{Name: "Widget", Quantity: 2, UnitPrice: 100, GSTRatePercent: 18},
	}}

	comp, err := billing.Compute(order, inclusiveSeller("Karnataka"), buyer("Karnataka"))
	require.NoError(t, err)

	require.Len(t, comp.Items, 1)
	assert.Equal(t, 169.49, comp.Items[0].TaxableValue)
	assert.Equal(t, 30.51, comp.Items[0].GSTAmount)
	assert.Equal(t, 169.49, comp.SubTotal)
	assert.Equal(t, 30.51, comp.TotalGSTAmount)
	assert.Equal(t, 200.00, comp.GrandTotal)
	assert.Equal(t, 15.25, comp.CGSTAmount)
	assert.Equal(t, 15.25, comp.SGSTAmount)
	assert.Equal(t, 0.00, comp.IGSTAmount)
}

func TestCompute_IGSTWhenStatesDiffer(t *testing.T) {
	order := &domain.Order{Items: []domain.OrderItem{
		{Name: "Widget", Quantity: 2, UnitPrice: 100, GSTRatePercent: 18},
	}}

	comp, err := billing.Compute(order, inclusiveSeller("Karnataka"), buyer("Maharashtra"))
	require.NoError(t, err)

	assert.Equal(t, 30.51, comp.IGSTAmount)
	assert.Equal(t, 0.00, comp.CGSTAmount)
	assert.Equal(t, 0.00, comp.SGSTAmount)
	assert.Equal(t, 200.00, comp.GrandTotal)
}

func TestCompute_StateComparisonNormalizesCaseAndWhitespace(t *testing.T) {
	order := &domain.Order{Items: []domain.OrderItem{
		{Quantity: 1, UnitPrice: 118, GSTRatePercent: 18},
	}}

	comp, err := billing.Compute(order, inclusiveSeller("  karnataka "), buyer("KARNATAKA"))
	require.NoError(t, err)
	assert.Equal(t, 0.00, comp.IGSTAmount)
	assert.Equal(t, 9.00, comp.CGSTAmount)
	assert.Equal(t, 9.00, comp.SGSTAmount)
}

func TestCompute_UnknownStateFallsBackToIntraState(t *testing.T) {
	order := &domain.Order{Items: []domain.OrderItem{
		{Quantity: 1, UnitPrice: 118, GSTRatePercent: 18},
	}}

	comp, err := billing.Compute(order, inclusiveSeller(""), buyer("Maharashtra"))
	require.NoError(t, err)
	assert.Equal(t, 0.00, comp.IGSTAmount)
	assert.Equal(t, 9.00, comp.CGSTAmount)
	assert.Equal(t, 9.00, comp.SGSTAmount)
}

func TestCompute_CGSTPlusSGSTMatchesIGSTAcrossStateSwap(t *testing.T) {
	order := &domain.Order{Items: []domain.OrderItem{
		{Quantity: 2, UnitPrice: 100, GSTRatePercent: 18},
		{Quantity: 3, UnitPrice: 49.99, GSTRatePercent: 12},
	}}

	intra, err := billing.Compute(order, inclusiveSeller("Karnataka"), buyer("Karnataka"))
	require.NoError(t, err)
	inter, err := billing.Compute(order, inclusiveSeller("Karnataka"), buyer("Maharashtra"))
	require.NoError(t, err)

	assert.InDelta(t, inter.IGSTAmount, intra.CGSTAmount+intra.SGSTAmount, 0.01)
	assert.Equal(t, inter.GrandTotal, intra.GrandTotal)
	assert.Equal(t, inter.TotalGSTAmount, intra.TotalGSTAmount)
}

func TestCompute_ZeroRateItems(t *testing.T) {
	order := &domain.Order{Items: []domain.OrderItem{
		{Quantity: 4, UnitPrice: 25, GSTRatePercent: 0},
	}}

	t.Run("inclusive", func(t *testing.T) {
		comp, err := billing.Compute(order, inclusiveSeller("Karnataka"), buyer("Karnataka"))
		require.NoError(t, err)
		assert.Equal(t, 100.00, comp.Items[0].TaxableValue)
		assert.Equal(t, 0.00, comp.Items[0].GSTAmount)
		assert.Equal(t, 100.00, comp.GrandTotal)
	})

	t.Run("exclusive", func(t *testing.T) {
		comp, err := billing.Compute(order, exclusiveSeller("Karnataka"), buyer("Karnataka"))
		require.NoError(t, err)
		assert.Equal(t, 100.00, comp.Items[0].TaxableValue)
		assert.Equal(t, 0.00, comp.Items[0].GSTAmount)
		assert.Equal(t, 100.00, comp.GrandTotal)
	})
}

func TestCompute_GrossReconstruction(t *testing.T) {
	items := []domain.OrderItem{
		{Quantity: 3, UnitPrice: 33.33, GSTRatePercent: 18},
		{Quantity: 1, UnitPrice: 999.99, GSTRatePercent: 5},
		{Quantity: 7, UnitPrice: 12.5, GSTRatePercent: 28},
	}
	order := &domain.Order{Items: items}

	t.Run("inclusive_taxable_plus_gst_is_gross", func(t *testing.T) {
		comp, err := billing.Compute(order, inclusiveSeller("Karnataka"), buyer("Karnataka"))
		require.NoError(t, err)
		for i, it := range comp.Items {
			gross := items[i].Quantity * items[i].UnitPrice
			assert.InDelta(t, gross, it.TaxableValue+it.GSTAmount, 0.01)
		}
	})

	t.Run("exclusive_gst_is_rate_on_taxable", func(t *testing.T) {
		comp, err := billing.Compute(order, exclusiveSeller("Karnataka"), buyer("Karnataka"))
		require.NoError(t, err)
		for i, it := range comp.Items {
			expected := it.TaxableValue * (1 + items[i].GSTRatePercent/100)
			assert.InDelta(t, expected, it.TaxableValue+it.GSTAmount, 0.01)
		}
	})
}

func TestCompute_Idempotent(t *testing.T) {
	order := &domain.Order{
		Items: []domain.OrderItem{
			{Quantity: 2, UnitPrice: 100, GSTRatePercent: 18},
			{Quantity: 5, UnitPrice: 7.77, GSTRatePercent: 12},
		},
		Adjustments: []domain.Adjustment{
			{Label: "Freight", Kind: domain.AdjustmentAddition, Value: 40, GSTRatePercent: 18},
		},
		DiscountAmount: 10,
	}

	first, err := billing.Compute(order, inclusiveSeller("Karnataka"), buyer("Tamil Nadu"))
	require.NoError(t, err)
	second, err := billing.Compute(order, inclusiveSeller("Karnataka"), buyer("Tamil Nadu"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCompute_EmptyOrderYieldsZeroInvoice(t *testing.T) {
	comp, err := billing.Compute(&domain.Order{}, inclusiveSeller("Karnataka"), buyer("Karnataka"))
	require.NoError(t, err)

	assert.Empty(t, comp.Items)
	assert.Equal(t, 0.00, comp.SubTotal)
	assert.Equal(t, 0.00, comp.GrandTotal)
	assert.Equal(t, "Zero Rupees Only", comp.AmountInWords)
}

func TestCompute_ZeroQuantityItemContributesNothing(t *testing.T) {
	order := &domain.Order{Items: []domain.OrderItem{
		{Quantity: 0, UnitPrice: 500, GSTRatePercent: 18},
		{Quantity: 1, UnitPrice: 118, GSTRatePercent: 18},
	}}

	comp, err := billing.Compute(order, inclusiveSeller("Karnataka"), buyer("Karnataka"))
	require.NoError(t, err)

	require.Len(t, comp.Items, 2)
	assert.Equal(t, 0.00, comp.Items[0].TaxableValue)
	assert.Equal(t, 0.00, comp.Items[0].GSTAmount)
	assert.Equal(t, 100.00, comp.SubTotal)
	assert.Equal(t, 118.00, comp.GrandTotal)
}

func TestCompute_NegativeInputsAreValidationErrors(t *testing.T) {
	cases := []struct {
		name  string
		order *domain.Order
	}{
		{"negative_quantity", &domain.Order{Items: []domain.OrderItem{{Quantity: -1, UnitPrice: 10}}}},
		{"negative_price", &domain.Order{Items: []domain.OrderItem{{Quantity: 1, UnitPrice: -10}}}},
		{"negative_rate", &domain.Order{Items: []domain.OrderItem{{Quantity: 1, UnitPrice: 10, GSTRatePercent: -5}}}},
		{"negative_adjustment", &domain.Order{Adjustments: []domain.Adjustment{{Kind: domain.AdjustmentAddition, Value: -1}}}},
		{"negative_discount", &domain.Order{DiscountAmount: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := billing.Compute(tc.order, inclusiveSeller("Karnataka"), buyer("Karnataka"))
			require.Error(t, err)
			assert.True(t, domain.IsValidationError(err))
		})
	}
}

func TestCompute_AdjustmentLedgerLines(t *testing.T) {
	order := &domain.Order{
		Items: []domain.OrderItem{
			{Quantity: 1, UnitPrice: 100, GSTRatePercent: 18},
		},
		Adjustments: []domain.Adjustment{
			{Label: "Freight", Kind: domain.AdjustmentAddition, Value: 100, GSTRatePercent: 18},
			{Label: "Credit note", Kind: domain.AdjustmentDeduction, Value: 50, GSTRatePercent: 0},
		},
	}

	comp, err := billing.Compute(order, exclusiveSeller("Karnataka"), buyer("Karnataka"))
	require.NoError(t, err)

	require.Len(t, comp.Adjustments, 2)
	assert.Equal(t, 100.00, comp.Adjustments[0].TaxableValue)
	assert.Equal(t, 18.00, comp.Adjustments[0].GSTAmount)
	assert.Equal(t, 100.00, comp.Adjustments[0].FinalTotal)
	assert.Equal(t, 50.00, comp.Adjustments[1].TaxableValue)
	assert.Equal(t, 0.00, comp.Adjustments[1].GSTAmount)
	assert.Equal(t, 50.00, comp.Adjustments[1].FinalTotal)

	// 100 + 100 - 50 taxable, 18 + 18 GST.
	assert.Equal(t, 100.00, comp.SubTotal)
	assert.Equal(t, 36.00, comp.TotalGSTAmount)
	assert.Equal(t, 186.00, comp.GrandTotal)
}

func TestCompute_DiscountAppliedLast(t *testing.T) {
	order := &domain.Order{
		Items:          []domain.OrderItem{{Quantity: 1, UnitPrice: 100, GSTRatePercent: 18}},
		DiscountAmount: 18,
	}

	comp, err := billing.Compute(order, exclusiveSeller("Karnataka"), buyer("Karnataka"))
	require.NoError(t, err)

	assert.Equal(t, 18.00, comp.DiscountAmount)
	assert.Equal(t, 100.00, comp.GrandTotal)
	// The discount is tax-settled: GST stays computed on the undiscounted base.
	assert.Equal(t, 18.00, comp.TotalGSTAmount)
}

func TestCompute_AssessableRedistribution_Inclusive(t *testing.T) {
	// Two items with gross 118 and 236 at 18% inclusive: taxable 100 and 200.
	// A scheme discount of 50 included in assessable value shifts bases
	// proportionally (1/3 and 2/3) while each gross price stays fixed.
	order := &domain.Order{
		Items: []domain.OrderItem{
			{Quantity: 1, UnitPrice: 118, GSTRatePercent: 18},
			{Quantity: 1, UnitPrice: 236, GSTRatePercent: 18},
		},
		Adjustments: []domain.Adjustment{
			{Label: "Scheme discount", Kind: domain.AdjustmentDeduction, Value: 50, IncludedInAssessableValue: true},
		},
	}

	comp, err := billing.Compute(order, inclusiveSeller("Karnataka"), buyer("Karnataka"))
	require.NoError(t, err)

	assert.Equal(t, 83.33, comp.Items[0].TaxableValue)
	assert.Equal(t, 34.67, comp.Items[0].GSTAmount)
	assert.Equal(t, 166.67, comp.Items[1].TaxableValue)
	assert.Equal(t, 69.33, comp.Items[1].GSTAmount)

	// Money is conserved: gross per item, and therefore the grand total,
	// do not move in inclusive mode.
	assert.InDelta(t, 118.00, comp.Items[0].TaxableValue+comp.Items[0].GSTAmount, 0.01)
	assert.InDelta(t, 236.00, comp.Items[1].TaxableValue+comp.Items[1].GSTAmount, 0.01)
	assert.Equal(t, 250.00, comp.TotalTaxableValue)
	assert.Equal(t, 104.00, comp.TotalGSTAmount)
	assert.Equal(t, 354.00, comp.GrandTotal)

	// The adjustment still appears as a resolved ledger entry for display.
	require.Len(t, comp.Adjustments, 1)
	assert.Equal(t, 50.00, comp.Adjustments[0].FinalTotal)
}

func TestCompute_AssessableRedistribution_Exclusive(t *testing.T) {
	order := &domain.Order{
		Items: []domain.OrderItem{
			{Quantity: 1, UnitPrice: 100, GSTRatePercent: 18},
			{Quantity: 1, UnitPrice: 200, GSTRatePercent: 18},
		},
		Adjustments: []domain.Adjustment{
			{Label: "Scheme discount", Kind: domain.AdjustmentDeduction, Value: 30, IncludedInAssessableValue: true},
		},
	}

	comp, err := billing.Compute(order, exclusiveSeller("Karnataka"), buyer("Karnataka"))
	require.NoError(t, err)

	// GST is recomputed on the shrunken bases: 90 and 180 at 18%.
	assert.Equal(t, 90.00, comp.Items[0].TaxableValue)
	assert.Equal(t, 16.20, comp.Items[0].GSTAmount)
	assert.Equal(t, 180.00, comp.Items[1].TaxableValue)
	assert.Equal(t, 32.40, comp.Items[1].GSTAmount)
	assert.Equal(t, 270.00, comp.TotalTaxableValue)
	assert.Equal(t, 48.60, comp.TotalGSTAmount)
	assert.Equal(t, 318.60, comp.GrandTotal)
}

func TestCompute_AssessableRedistribution_SkippedOnZeroBase(t *testing.T) {
	// An all-free order has no taxable base to redistribute over; the
	// adjustment is skipped rather than dividing by zero.
	order := &domain.Order{
		Items: []domain.OrderItem{{Quantity: 2, UnitPrice: 0, GSTRatePercent: 18}},
		Adjustments: []domain.Adjustment{
			{Label: "Scheme discount", Kind: domain.AdjustmentDeduction, Value: 10, IncludedInAssessableValue: true},
		},
	}

	comp, err := billing.Compute(order, inclusiveSeller("Karnataka"), buyer("Karnataka"))
	require.NoError(t, err)
	assert.Equal(t, 0.00, comp.TotalTaxableValue)
	assert.Equal(t, 0.00, comp.GrandTotal)
}

func TestSubTotal(t *testing.T) {
	items := []domain.OrderItem{
		{Quantity: 1, UnitPrice: 118, GSTRatePercent: 18},
		{Quantity: 2, UnitPrice: 59, GSTRatePercent: 18},
	}
	assert.Equal(t, 200.00, billing.SubTotal(items, domain.PricingInclusive))
	assert.Equal(t, 236.00, billing.SubTotal(items, domain.PricingExclusive))
}

func TestResolveAdjustments_PercentAgainstSubTotal(t *testing.T) {
	order := &domain.Order{
		Items: []domain.OrderItem{
			{Quantity: 1, UnitPrice: 100, GSTRatePercent: 18},
			{Quantity: 1, UnitPrice: 200, GSTRatePercent: 18},
		},
		Adjustments: []domain.Adjustment{
			{Label: "Festival offer", Kind: domain.AdjustmentDeduction, Value: 10, ValueType: domain.AdjustmentPercent},
			{Label: "Packing", Kind: domain.AdjustmentAddition, Value: 25},
		},
	}

	resolved := billing.ResolveAdjustments(order, domain.PricingExclusive)
	require.Len(t, resolved, 2)
	assert.Equal(t, 30.00, resolved[0].Value) // 10% of 300
	assert.Equal(t, domain.AdjustmentAbsolute, resolved[0].ValueType)
	assert.Equal(t, 25.00, resolved[1].Value)

	// The original order is left untouched.
	assert.Equal(t, 10.00, order.Adjustments[0].Value)
}
