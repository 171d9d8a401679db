package bills

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const billColumns = `id, customer_id, vendor_id, bill_number, bill_date, subtotal, tax_amount, discount_amount, total_amount, status, payment_method, notes, created_at, updated_at`

func scanBill(row interface{ Scan(...any) error }) (Bill, error) {
	var i Bill
	err := row.Scan(
		&i.ID,
		&i.CustomerID,
		&i.VendorID,
		&i.BillNumber,
		&i.BillDate,
		&i.Subtotal,
		&i.TaxAmount,
		&i.DiscountAmount,
		&i.TotalAmount,
		&i.Status,
		&i.PaymentMethod,
		&i.Notes,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const countBills = `-- name: CountBills :one
SELECT count(*) FROM bills
WHERE ($1::bigint IS NULL OR customer_id = $1)
  AND ($2::bigint IS NULL OR vendor_id = $2)
  AND ($3::text IS NULL OR status = $3)
`

type CountBillsParams struct {
	CustomerID pgtype.Int8 `json:"customer_id"`
	VendorID   pgtype.Int8 `json:"vendor_id"`
	Status     pgtype.Text `json:"status"`
}

func (q *Queries) CountBills(ctx context.Context, arg CountBillsParams) (int64, error) {
	row := q.db.QueryRow(ctx, countBills, arg.CustomerID, arg.VendorID, arg.Status)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createBill = `-- name: CreateBill :one
INSERT INTO bills (
    customer_id, vendor_id, bill_number, bill_date, subtotal, tax_amount, discount_amount, total_amount, status, notes
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10
)
RETURNING ` + billColumns

type CreateBillParams struct {
	CustomerID     int64              `json:"customer_id"`
	VendorID       int64              `json:"vendor_id"`
	BillNumber     string             `json:"bill_number"`
	BillDate       pgtype.Timestamptz `json:"bill_date"`
	Subtotal       decimal.Decimal    `json:"subtotal"`
	TaxAmount      decimal.Decimal    `json:"tax_amount"`
	DiscountAmount decimal.Decimal    `json:"discount_amount"`
	TotalAmount    decimal.Decimal    `json:"total_amount"`
	Status         string             `json:"status"`
	Notes          pgtype.Text        `json:"notes"`
}

func (q *Queries) CreateBill(ctx context.Context, arg CreateBillParams) (Bill, error) {
	row := q.db.QueryRow(ctx, createBill,
		arg.CustomerID,
		arg.VendorID,
		arg.BillNumber,
		arg.BillDate,
		arg.Subtotal,
		arg.TaxAmount,
		arg.DiscountAmount,
		arg.TotalAmount,
		arg.Status,
		arg.Notes,
	)
	return scanBill(row)
}

const deleteBill = `-- name: DeleteBill :exec
DELETE FROM bills WHERE id = $1
`

func (q *Queries) DeleteBill(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deleteBill, id)
	return err
}

const getBill = `-- name: GetBill :one
SELECT ` + billColumns + ` FROM bills WHERE id = $1
`

func (q *Queries) GetBill(ctx context.Context, id int64) (Bill, error) {
	return scanBill(q.db.QueryRow(ctx, getBill, id))
}

const getBillByNumber = `-- name: GetBillByNumber :one
SELECT ` + billColumns + ` FROM bills WHERE bill_number = $1
`

func (q *Queries) GetBillByNumber(ctx context.Context, billNumber string) (Bill, error) {
	return scanBill(q.db.QueryRow(ctx, getBillByNumber, billNumber))
}

const getBillForUpdate = `-- name: GetBillForUpdate :one
SELECT ` + billColumns + ` FROM bills WHERE id = $1 FOR UPDATE
`

func (q *Queries) GetBillForUpdate(ctx context.Context, id int64) (Bill, error) {
	return scanBill(q.db.QueryRow(ctx, getBillForUpdate, id))
}

const listBills = `-- name: ListBills :many
SELECT ` + billColumns + ` FROM bills
WHERE ($1::bigint IS NULL OR customer_id = $1)
  AND ($2::bigint IS NULL OR vendor_id = $2)
  AND ($3::text IS NULL OR status = $3)
ORDER BY id DESC
LIMIT $4 OFFSET $5
`

type ListBillsParams struct {
	CustomerID pgtype.Int8 `json:"customer_id"`
	VendorID   pgtype.Int8 `json:"vendor_id"`
	Status     pgtype.Text `json:"status"`
	Limit      int32       `json:"limit"`
	Offset     int32       `json:"offset"`
}

func (q *Queries) ListBills(ctx context.Context, arg ListBillsParams) ([]Bill, error) {
	rows, err := q.db.Query(ctx, listBills,
		arg.CustomerID,
		arg.VendorID,
		arg.Status,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Bill{}
	for rows.Next() {
		i, err := scanBill(rows)
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

const markBillPaid = `-- name: MarkBillPaid :one
UPDATE bills
SET status = 'PAID', payment_method = $2, updated_at = NOW()
WHERE id = $1
RETURNING ` + billColumns

type MarkBillPaidParams struct {
	ID            int64  `json:"id"`
	PaymentMethod string `json:"payment_method"`
}

func (q *Queries) MarkBillPaid(ctx context.Context, arg MarkBillPaidParams) (Bill, error) {
	return scanBill(q.db.QueryRow(ctx, markBillPaid, arg.ID, arg.PaymentMethod))
}

const updateBillStatus = `-- name: UpdateBillStatus :one
UPDATE bills
SET status = $2, updated_at = NOW()
WHERE id = $1
RETURNING ` + billColumns

type UpdateBillStatusParams struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

func (q *Queries) UpdateBillStatus(ctx context.Context, arg UpdateBillStatusParams) (Bill, error) {
	return scanBill(q.db.QueryRow(ctx, updateBillStatus, arg.ID, arg.Status))
}
