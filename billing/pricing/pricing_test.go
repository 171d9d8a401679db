package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertAmount(t *testing.T, expected string, actual decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, dec(expected).Equal(actual), "%s: expected %s, got %s", field, expected, actual.String())
}

func TestCalculate(t *testing.T) {
	testCases := []struct {
		name             string
		lines            []Line
		expectedSubtotal string
		expectedTax      string
		expectedDiscount string
		expectedTotal    string
	}{
		{
			name:             "empty_bill_prices_to_zero",
			lines:            nil,
			expectedSubtotal: "0",
			expectedTax:      "0",
			expectedDiscount: "0",
			expectedTotal:    "0",
		},
		{
			name: "silver_three_pieces_medium_tier",
			lines: []Line{
				{TotalPrice: dec("10000"), Quantity: 2, Material: "silver"},
				{TotalPrice: dec("5000"), Quantity: 1, Material: "silver"},
			},
			expectedSubtotal: "15000.00",
			expectedTax:      "750.00",
			expectedDiscount: "750.00",
			expectedTotal:    "15000.00",
		},
		{
			name: "single_gold_line_below_tier",
			lines: []Line{
				{TotalPrice: dec("10000"), Quantity: 2, Material: "gold"},
			},
			expectedSubtotal: "10000.00",
			expectedTax:      "300.00",
			expectedDiscount: "0.00",
			expectedTotal:    "10300.00",
		},
		{
			name: "platinum_gets_flat_precious_discount",
			lines: []Line{
				{TotalPrice: dec("1000"), Quantity: 1, Material: "Platinum"},
			},
			expectedSubtotal: "1000.00",
			expectedTax:      "50.00",
			expectedDiscount: "20.00",
			expectedTotal:    "1030.00",
		},
		{
			name: "large_tier_plus_diamond_with_gold_rate",
			lines: []Line{
				{TotalPrice: dec("3000"), Quantity: 3, Material: "gold"},
				{TotalPrice: dec("7000.55"), Quantity: 2, Material: "diamond"},
			},
			expectedSubtotal: "10000.55",
			expectedTax:      "300.02",
			expectedDiscount: "1200.07",
			expectedTotal:    "9100.50",
		},
		{
			name: "tax_rounds_half_up",
			lines: []Line{
				{TotalPrice: dec("10.10"), Quantity: 1, Material: "silver"},
			},
			expectedSubtotal: "10.10",
			expectedTax:      "0.51",
			expectedDiscount: "0.00",
			expectedTotal:    "10.61",
		},
		{
			name: "subtotal_rounded_before_tax",
			lines: []Line{
				{TotalPrice: dec("10.005"), Quantity: 1, Material: "ruby"},
			},
			expectedSubtotal: "10.01",
			expectedTax:      "0.50",
			expectedDiscount: "0.00",
			expectedTotal:    "10.51",
		},
		{
			name: "gold_match_is_case_insensitive_substring",
			lines: []Line{
				{TotalPrice: dec("200"), Quantity: 1, Material: "White GOLD 18k"},
				{TotalPrice: dec("800"), Quantity: 1, Material: "pearl"},
			},
			expectedSubtotal: "1000.00",
			expectedTax:      "30.00",
			expectedDiscount: "0.00",
			expectedTotal:    "1030.00",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			totals := Calculate(tc.lines)

			assertAmount(t, tc.expectedSubtotal, totals.Subtotal, "subtotal")
			assertAmount(t, tc.expectedTax, totals.Tax, "tax")
			assertAmount(t, tc.expectedDiscount, totals.Discount, "discount")
			assertAmount(t, tc.expectedTotal, totals.Total, "total")
			assert.True(t, Round2(totals.Subtotal.Add(totals.Tax).Sub(totals.Discount)).Equal(totals.Total))
		})
	}
}

func TestDiscountTiers(t *testing.T) {
	subtotal := dec("1000")

	testCases := []struct {
		name     string
		qty      []int32
		material string
		expected string
	}{
		{name: "zero_items", qty: nil, material: "silver", expected: "0"},
		{name: "two_items_no_tier", qty: []int32{1, 1}, material: "silver", expected: "0"},
		{name: "three_items_five_percent", qty: []int32{2, 1}, material: "silver", expected: "50"},
		{name: "four_items_five_percent", qty: []int32{4}, material: "silver", expected: "50"},
		{name: "five_items_ten_percent_only", qty: []int32{3, 2}, material: "silver", expected: "100"},
		{name: "twelve_items_ten_percent", qty: []int32{12}, material: "silver", expected: "100"},
		{name: "diamond_adds_two_percent", qty: []int32{1}, material: "rose diamond", expected: "20"},
		{name: "platinum_on_top_of_large_tier", qty: []int32{5}, material: "platinum", expected: "120"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lines := make([]Line, 0, len(tc.qty))
			for _, q := range tc.qty {
				lines = append(lines, Line{Quantity: q, Material: tc.material})
			}
			assertAmount(t, tc.expected, Discount(subtotal, lines), "discount")
		})
	}
}

func TestTaxRate(t *testing.T) {
	assert.True(t, dec("0.05").Equal(TaxRate(nil)))
	assert.True(t, dec("0.05").Equal(TaxRate([]Line{{Material: "silver"}, {Material: ""}})))
	assert.True(t, dec("0.03").Equal(TaxRate([]Line{{Material: "silver"}, {Material: "Gold"}})))
}
