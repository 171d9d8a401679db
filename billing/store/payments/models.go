package payments

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type Payment struct {
	ID            int64              `json:"id"`
	BillID        int64              `json:"bill_id"`
	CustomerID    int64              `json:"customer_id"`
	Amount        decimal.Decimal    `json:"amount"`
	PaymentMethod string             `json:"payment_method"`
	TransactionID string             `json:"transaction_id"`
	Status        string             `json:"status"`
	PaymentDate   pgtype.Timestamptz `json:"payment_date"`
	Notes         pgtype.Text        `json:"notes"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	UpdatedAt     pgtype.Timestamptz `json:"updated_at"`
}
