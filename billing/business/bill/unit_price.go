package bill

import (
	"github.com/shopspring/decimal"

	"github.com/jewelcraft/jewel-billing/billing/model"
	"github.com/jewelcraft/jewel-billing/billing/pricing"
)

// resolveUnitPrice picks the caller's price, then the catalog price, then
// the material table.
func resolveUnitPrice(req model.ItemRequest, product *model.Product) decimal.Decimal {
	if req.UnitPrice.IsPositive() {
		return req.UnitPrice
	}
	if product.UnitPrice != nil && product.UnitPrice.IsPositive() {
		return *product.UnitPrice
	}
	return pricing.CatalogUnitPrice(product.Material, product.Weight, product.GmPerWeight)
}
