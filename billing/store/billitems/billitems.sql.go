package billitems

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const itemColumns = `id, bill_id, product_id, product_name, product_material, product_weight, product_gm_per_weight, quantity, unit_price, total_price, description, created_at`

func scanBillItem(row interface{ Scan(...any) error }) (BillItem, error) {
	var i BillItem
	err := row.Scan(
		&i.ID,
		&i.BillID,
		&i.ProductID,
		&i.ProductName,
		&i.ProductMaterial,
		&i.ProductWeight,
		&i.ProductGmPerWeight,
		&i.Quantity,
		&i.UnitPrice,
		&i.TotalPrice,
		&i.Description,
		&i.CreatedAt,
	)
	return i, err
}

func collect(rows pgx.Rows) ([]BillItem, error) {
	defer rows.Close()
	items := []BillItem{}
	for rows.Next() {
		i, err := scanBillItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createBillItem = `-- name: CreateBillItem :one
INSERT INTO bill_items (
    bill_id, product_id, product_name, product_material, product_weight, product_gm_per_weight, quantity, unit_price, total_price, description
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10
)
RETURNING ` + itemColumns

type CreateBillItemParams struct {
	BillID             int64           `json:"bill_id"`
	ProductID          int64           `json:"product_id"`
	ProductName        string          `json:"product_name"`
	ProductMaterial    string          `json:"product_material"`
	ProductWeight      float64         `json:"product_weight"`
	ProductGmPerWeight float64         `json:"product_gm_per_weight"`
	Quantity           int32           `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	TotalPrice         decimal.Decimal `json:"total_price"`
	Description        pgtype.Text     `json:"description"`
}

func (q *Queries) CreateBillItem(ctx context.Context, arg CreateBillItemParams) (BillItem, error) {
	row := q.db.QueryRow(ctx, createBillItem,
		arg.BillID,
		arg.ProductID,
		arg.ProductName,
		arg.ProductMaterial,
		arg.ProductWeight,
		arg.ProductGmPerWeight,
		arg.Quantity,
		arg.UnitPrice,
		arg.TotalPrice,
		arg.Description,
	)
	return scanBillItem(row)
}

const listBillItemsByBill = `-- name: ListBillItemsByBill :many
SELECT ` + itemColumns + ` FROM bill_items WHERE bill_id = $1 ORDER BY id
`

func (q *Queries) ListBillItemsByBill(ctx context.Context, billID int64) ([]BillItem, error) {
	rows, err := q.db.Query(ctx, listBillItemsByBill, billID)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

const listBillItemsByBills = `-- name: ListBillItemsByBills :many
SELECT ` + itemColumns + ` FROM bill_items WHERE bill_id = ANY($1::bigint[]) ORDER BY bill_id, id
`

func (q *Queries) ListBillItemsByBills(ctx context.Context, billIds []int64) ([]BillItem, error) {
	rows, err := q.db.Query(ctx, listBillItemsByBills, billIds)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}
