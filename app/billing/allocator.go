// Package billing implements the display-side money maths for invoices.
//
// The allocator distributes a single invoice-level discount across the
// invoice's fee line items proportionally to each item's original amount:
//
//	ratio         = item_original / subtotal
//	item_discount = round2(overall_discount * ratio)
//
// Line discounts are rounded to two decimal places (half away from zero),
// so their sum can drift a cent or two from the true invoice discount. The
// summary therefore always reports the invoice-level figure, never the sum
// of the rounded lines: the footer must foot exactly to
// subtotal - TotalDiscount == invoice total. Do not "fix" TotalDiscount to
// sum the lines; that reintroduces the drift the override exists to hide.
package billing

import (
	"psb-admin/app/models"

	"github.com/shopspring/decimal"
)

// AllocatedItem is a fee line item together with its display figures.
type AllocatedItem struct {
	models.FeeItem
	DisplayDiscount decimal.Decimal `json:"display_discount"`
	DisplayAmount   decimal.Decimal `json:"display_amount"`
}

// Allocation is the computed display breakdown for one invoice. It is
// derived per request and never persisted; the stored fee rows are not
// mutated.
type Allocation struct {
	Subtotal        decimal.Decimal `json:"subtotal"`
	OverallDiscount decimal.Decimal `json:"overall_discount"`
	Items           []AllocatedItem `json:"items"`
	// TotalDiscount is the reconciled summary figure: always equal to
	// OverallDiscount, regardless of what the rounded lines sum to.
	TotalDiscount decimal.Decimal `json:"total_discount"`
}

// Allocate computes the proportional discount breakdown for an invoice's
// fee items against its stored total. It never fails: degenerate inputs
// (no items, zero subtotal, a total exceeding the fee sum) degrade to zero
// discounts rather than errors, and the caller's stored total is left as
// the ground truth either way.
func Allocate(items []models.FeeItem, invoiceTotal decimal.Decimal) Allocation {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.OriginalAmount)
	}

	// Discount actually applied to the whole invoice. Clamped at zero so a
	// manually edited total that exceeds the fee sum shows no discount
	// instead of a negative one.
	overallDiscount := subtotal.Sub(invoiceTotal)
	if overallDiscount.IsNegative() {
		overallDiscount = decimal.Zero
	}

	allocated := make([]AllocatedItem, len(items))
	for i, item := range items {
		a := AllocatedItem{FeeItem: item}
		if subtotal.IsPositive() {
			ratio := item.OriginalAmount.Div(subtotal)
			a.DisplayDiscount = overallDiscount.Mul(ratio).Round(2)
			a.DisplayAmount = item.OriginalAmount.Sub(a.DisplayDiscount)
		} else {
			a.DisplayDiscount = decimal.Zero
			a.DisplayAmount = decimal.Zero
		}
		allocated[i] = a
	}

	return Allocation{
		Subtotal:        subtotal,
		OverallDiscount: overallDiscount,
		Items:           allocated,
		TotalDiscount:   overallDiscount,
	}
}
