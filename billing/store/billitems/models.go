package billitems

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type BillItem struct {
	ID                 int64              `json:"id"`
	BillID             int64              `json:"bill_id"`
	ProductID          int64              `json:"product_id"`
	ProductName        string             `json:"product_name"`
	ProductMaterial    string             `json:"product_material"`
	ProductWeight      float64            `json:"product_weight"`
	ProductGmPerWeight float64            `json:"product_gm_per_weight"`
	Quantity           int32              `json:"quantity"`
	UnitPrice          decimal.Decimal    `json:"unit_price"`
	TotalPrice         decimal.Decimal    `json:"total_price"`
	Description        pgtype.Text        `json:"description"`
	CreatedAt          pgtype.Timestamptz `json:"created_at"`
}
