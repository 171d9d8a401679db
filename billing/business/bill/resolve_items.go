package bill

import (
	"context"

	"github.com/jewelcraft/jewel-billing/billing/client"
	"github.com/jewelcraft/jewel-billing/billing/fault"
	"github.com/jewelcraft/jewel-billing/billing/model"
	"github.com/jewelcraft/jewel-billing/billing/pricing"
)

// ItemResolver turns requested lines into priced bill items, snapshotting
// the product attributes at billing time.
type ItemResolver struct {
	products client.ProductClient
}

func NewItemResolver(products client.ProductClient) *ItemResolver {
	return &ItemResolver{products: products}
}

// Resolve prices every line or fails on the first bad one. It never writes.
func (r *ItemResolver) Resolve(ctx context.Context, reqs []model.ItemRequest) ([]model.BillItem, error) {
	items := make([]model.BillItem, 0, len(reqs))
	for _, req := range reqs {
		item, err := r.resolve(ctx, req)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *ItemResolver) resolve(ctx context.Context, req model.ItemRequest) (model.BillItem, error) {
	if req.ProductID <= 0 {
		return model.BillItem{}, fault.InvalidInput("product ID must be positive")
	}
	if req.Quantity <= 0 {
		return model.BillItem{}, fault.InvalidInput("quantity must be greater than 0")
	}

	product, err := r.products.LookupProduct(ctx, req.ProductID)
	if err != nil {
		return model.BillItem{}, err
	}

	unitPrice := pricing.Round2(resolveUnitPrice(req, product))
	if !unitPrice.IsPositive() {
		return model.BillItem{}, fault.InvalidInput("valid unit price is required for product: %d", req.ProductID)
	}

	description := req.Description
	if description == "" {
		description = product.Material + " jewellery item"
	}

	return model.BillItem{
		ProductID:          req.ProductID,
		ProductName:        product.DisplayName(),
		ProductMaterial:    product.Material,
		ProductWeight:      product.Weight,
		ProductGmPerWeight: product.GmPerWeight,
		Quantity:           req.Quantity,
		UnitPrice:          unitPrice,
		TotalPrice:         pricing.ExtendLine(unitPrice, req.Quantity),
		Description:        description,
	}, nil
}
