package model

import (
	"github.com/shopspring/decimal"
)

// BillItem is a line of a bill. Product attributes are copied at billing
// time and never follow later product edits.
type BillItem struct {
	ID                 int64           `json:"id"`
	BillID             int64           `json:"bill_id"`
	ProductID          int64           `json:"product_id"`
	ProductName        string          `json:"product_name"`
	ProductMaterial    string          `json:"product_material"`
	ProductWeight      float64         `json:"product_weight"`
	ProductGmPerWeight float64         `json:"product_gm_per_weight"`
	Quantity           int32           `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	TotalPrice         decimal.Decimal `json:"total_price"`
	Description        string          `json:"description"`
}

// ItemRequest is a caller-supplied line before product resolution.
type ItemRequest struct {
	ProductID   int64
	Quantity    int32
	UnitPrice   decimal.Decimal
	Description string
}
