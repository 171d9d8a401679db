package bills

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type Bill struct {
	ID             int64              `json:"id"`
	CustomerID     int64              `json:"customer_id"`
	VendorID       int64              `json:"vendor_id"`
	BillNumber     string             `json:"bill_number"`
	BillDate       pgtype.Timestamptz `json:"bill_date"`
	Subtotal       decimal.Decimal    `json:"subtotal"`
	TaxAmount      decimal.Decimal    `json:"tax_amount"`
	DiscountAmount decimal.Decimal    `json:"discount_amount"`
	TotalAmount    decimal.Decimal    `json:"total_amount"`
	Status         string             `json:"status"`
	PaymentMethod  pgtype.Text        `json:"payment_method"`
	Notes          pgtype.Text        `json:"notes"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}
