package domain

import "strings"

// PricingMode states whether unit prices and adjustment values already
// contain GST.
type PricingMode string

const (
	PricingInclusive PricingMode = "inclusive"
	PricingExclusive PricingMode = "exclusive"
)

// ParsePricingMode maps wire values to a PricingMode. It accepts both the
// short form ("inclusive") and the legacy client profile form
// ("Inclusive GST"). Unknown values default to exclusive pricing.
func ParsePricingMode(s string) PricingMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inclusive", "inclusive gst":
		return PricingInclusive
	default:
		return PricingExclusive
	}
}

// AdjustmentKind distinguishes additions from deductions.
type AdjustmentKind string

const (
	AdjustmentAddition  AdjustmentKind = "addition"
	AdjustmentDeduction AdjustmentKind = "deduction"
)

// AdjustmentValue states how an adjustment's Value field is expressed.
type AdjustmentValue string

const (
	AdjustmentAbsolute AdjustmentValue = "absolute"
	AdjustmentPercent  AdjustmentValue = "percent"
)
