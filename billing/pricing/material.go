package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Price per gram by material. Lookup is by exact, case-insensitive name.
var materialPrices = map[string]decimal.Decimal{
	"gold":     decimal.NewFromInt(5000),
	"silver":   decimal.NewFromInt(80),
	"platinum": decimal.NewFromInt(3500),
	"diamond":  decimal.NewFromInt(100000),
	"ruby":     decimal.NewFromInt(15000),
	"emerald":  decimal.NewFromInt(12000),
	"pearl":    decimal.NewFromInt(2000),
}

var defaultMaterialPrice = decimal.NewFromInt(100)

func MaterialMultiplier(material string) decimal.Decimal {
	if price, ok := materialPrices[strings.ToLower(strings.TrimSpace(material))]; ok {
		return price
	}
	return defaultMaterialPrice
}

// MaterialPrices returns a copy of the price table, default excluded.
func MaterialPrices() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(materialPrices))
	for k, v := range materialPrices {
		out[k] = v
	}
	return out
}

func DefaultMaterialPrice() decimal.Decimal {
	return defaultMaterialPrice
}

// CatalogUnitPrice is multiplier(material) * weight * gmPerWeight, unrounded.
func CatalogUnitPrice(material string, weight, gmPerWeight float64) decimal.Decimal {
	return MaterialMultiplier(material).
		Mul(decimal.NewFromFloat(weight)).
		Mul(decimal.NewFromFloat(gmPerWeight))
}

// ExtendLine returns round2(unitPrice * quantity).
func ExtendLine(unitPrice decimal.Decimal, quantity int32) decimal.Decimal {
	return Round2(unitPrice.Mul(decimal.NewFromInt32(quantity)))
}
