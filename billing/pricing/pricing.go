// Package pricing derives bill totals from jewellery line items.
//
// Every amount is rounded half-up to two decimals at the step where it is
// produced (subtotal, tax, discount, total). Chained rounding is part of the
// contract: totals must not be computed from unrounded intermediates.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

const scale = 2

var (
	goldTaxRate     = decimal.RequireFromString("0.03")
	standardTaxRate = decimal.RequireFromString("0.05")

	largeVolumeRate    = decimal.RequireFromString("0.10")
	mediumVolumeRate   = decimal.RequireFromString("0.05")
	preciousMetalRate  = decimal.RequireFromString("0.02")
	largeVolumeMinQty  = int64(5)
	mediumVolumeMinQty = int64(3)
)

// Line is the pricing view of a bill item. TotalPrice is already extended
// by quantity.
type Line struct {
	TotalPrice decimal.Decimal
	Quantity   int32
	Material   string
}

type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// Round2 rounds half away from zero, which is half-up for the non-negative
// amounts billed here.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(scale)
}

// Calculate prices a set of lines. An empty set prices to zero everywhere.
func Calculate(lines []Line) Totals {
	if len(lines) == 0 {
		zero := Round2(decimal.Zero)
		return Totals{Subtotal: zero, Tax: zero, Discount: zero, Total: zero}
	}

	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.TotalPrice)
	}
	subtotal := Round2(sum)

	tax := Round2(subtotal.Mul(TaxRate(lines)))
	discount := Discount(subtotal, lines)

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Discount: discount,
		Total:    Round2(subtotal.Add(tax).Sub(discount)),
	}
}

// TaxRate is a whole-bill rate: a single gold line drops it for every line.
func TaxRate(lines []Line) decimal.Decimal {
	if anyMaterial(lines, "gold") {
		return goldTaxRate
	}
	return standardTaxRate
}

// Discount applies one volume tier (first match wins) plus a flat precious
// metal share. Both terms are fractions of subtotal, never compounded.
func Discount(subtotal decimal.Decimal, lines []Line) decimal.Decimal {
	var qty int64
	for _, l := range lines {
		qty += int64(l.Quantity)
	}

	discount := decimal.Zero
	switch {
	case qty >= largeVolumeMinQty:
		discount = subtotal.Mul(largeVolumeRate)
	case qty >= mediumVolumeMinQty:
		discount = subtotal.Mul(mediumVolumeRate)
	}

	if anyMaterial(lines, "platinum", "diamond") {
		discount = discount.Add(subtotal.Mul(preciousMetalRate))
	}

	return Round2(discount)
}

func anyMaterial(lines []Line, needles ...string) bool {
	for _, l := range lines {
		material := strings.ToLower(l.Material)
		for _, n := range needles {
			if strings.Contains(material, n) {
				return true
			}
		}
	}
	return false
}
