package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psb-admin/app/models"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func items(amounts ...string) []models.FeeItem {
	out := make([]models.FeeItem, len(amounts))
	for i, a := range amounts {
		out[i] = models.FeeItem{FeeType: "course_fee", OriginalAmount: dec(a)}
	}
	return out
}

func TestAllocateProportionalSplit(t *testing.T) {
	result := Allocate(items("6000", "4000"), dec("9000"))

	assert.True(t, result.Subtotal.Equal(dec("10000")), "subtotal = %s", result.Subtotal)
	assert.True(t, result.OverallDiscount.Equal(dec("1000")))

	require.Len(t, result.Items, 2)
	assert.True(t, result.Items[0].DisplayDiscount.Equal(dec("600.00")))
	assert.True(t, result.Items[0].DisplayAmount.Equal(dec("5400.00")))
	assert.True(t, result.Items[1].DisplayDiscount.Equal(dec("400.00")))
	assert.True(t, result.Items[1].DisplayAmount.Equal(dec("3600.00")))

	assert.True(t, result.TotalDiscount.Equal(dec("1000")))
}

func TestAllocateTotalExceedsFeeSum(t *testing.T) {
	// Manually edited invoice totals can exceed the fee sum; the discount
	// clamps to zero and the stored total stays untouched.
	result := Allocate(items("100"), dec("150"))

	assert.True(t, result.OverallDiscount.IsZero())
	assert.True(t, result.TotalDiscount.IsZero())
	require.Len(t, result.Items, 1)
	assert.True(t, result.Items[0].DisplayDiscount.IsZero())
	assert.True(t, result.Items[0].DisplayAmount.Equal(dec("100")))
}

func TestAllocateNoItems(t *testing.T) {
	result := Allocate(nil, dec("500"))

	assert.True(t, result.Subtotal.IsZero())
	assert.True(t, result.OverallDiscount.IsZero())
	assert.True(t, result.TotalDiscount.IsZero())
	assert.Empty(t, result.Items)
}

func TestAllocateZeroSubtotal(t *testing.T) {
	// All-zero fee amounts must not divide by zero; every display field
	// comes back zero.
	result := Allocate(items("0", "0"), dec("500"))

	require.Len(t, result.Items, 2)
	for _, item := range result.Items {
		assert.True(t, item.DisplayDiscount.IsZero())
		assert.True(t, item.DisplayAmount.IsZero())
	}
}

func TestAllocateRoundingReconciliation(t *testing.T) {
	// Three near-equal thirds force per-line rounding drift. The summary
	// figure must be the invoice-level discount, not the sum of the
	// rounded lines.
	result := Allocate(items("333.33", "333.33", "333.34"), dec("900.00"))

	assert.True(t, result.Subtotal.Equal(dec("1000.00")))
	assert.True(t, result.TotalDiscount.Equal(dec("100.00")),
		"summary discount = %s, want exactly 100.00", result.TotalDiscount)

	lineSum := decimal.Zero
	for _, item := range result.Items {
		lineSum = lineSum.Add(item.DisplayDiscount)
	}
	// The rounded lines may legitimately sum to 99.99 or 100.01; the test
	// only pins them to within a cent of the true figure.
	drift := lineSum.Sub(result.TotalDiscount).Abs()
	assert.True(t, drift.LessThanOrEqual(dec("0.01")), "line drift = %s", drift)
}

func TestAllocateNoDiscount(t *testing.T) {
	result := Allocate(items("2500", "2500"), dec("5000"))

	assert.True(t, result.OverallDiscount.IsZero())
	for _, item := range result.Items {
		assert.True(t, item.DisplayDiscount.IsZero())
		assert.True(t, item.DisplayAmount.Equal(item.OriginalAmount))
	}
}

func TestAllocateFootingInvariant(t *testing.T) {
	cases := [][2][]string{
		{{"6000", "4000"}, {"9000"}},
		{{"1200.50", "799.50", "3000"}, {"4500.75"}},
		{{"10"}, {"0"}},
		{{"333.33", "333.33", "333.34"}, {"750"}},
	}
	for _, tc := range cases {
		result := Allocate(items(tc[0]...), dec(tc[1][0]))
		// subtotal - reconciled discount == invoice total whenever the
		// subtotal covers the total
		footer := result.Subtotal.Sub(result.TotalDiscount)
		assert.True(t, footer.Equal(dec(tc[1][0])),
			"items %v total %s: footer = %s", tc[0], tc[1][0], footer)
	}
}

func TestAllocateNonNegativity(t *testing.T) {
	result := Allocate(items("150.25", "49.75", "800"), dec("650"))

	for _, item := range result.Items {
		assert.False(t, item.DisplayDiscount.IsNegative())
		assert.False(t, item.DisplayAmount.IsNegative())
	}
}

func TestAllocateProportionality(t *testing.T) {
	// An item with twice the original amount carries twice the discount,
	// within one rounding unit.
	result := Allocate(items("200", "100"), dec("271.37"))

	require.Len(t, result.Items, 2)
	twiceB := result.Items[1].DisplayDiscount.Mul(dec("2"))
	diff := result.Items[0].DisplayDiscount.Sub(twiceB).Abs()
	assert.True(t, diff.LessThanOrEqual(dec("0.01")), "diff = %s", diff)
}
