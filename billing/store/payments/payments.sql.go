package payments

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const paymentColumns = `id, bill_id, customer_id, amount, payment_method, transaction_id, status, payment_date, notes, created_at, updated_at`

func scanPayment(row interface{ Scan(...any) error }) (Payment, error) {
	var i Payment
	err := row.Scan(
		&i.ID,
		&i.BillID,
		&i.CustomerID,
		&i.Amount,
		&i.PaymentMethod,
		&i.TransactionID,
		&i.Status,
		&i.PaymentDate,
		&i.Notes,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const countPayments = `-- name: CountPayments :one
SELECT count(*) FROM payments
WHERE ($1::bigint IS NULL OR bill_id = $1)
  AND ($2::bigint IS NULL OR customer_id = $2)
  AND ($3::text IS NULL OR status = $3)
`

type CountPaymentsParams struct {
	BillID     pgtype.Int8 `json:"bill_id"`
	CustomerID pgtype.Int8 `json:"customer_id"`
	Status     pgtype.Text `json:"status"`
}

func (q *Queries) CountPayments(ctx context.Context, arg CountPaymentsParams) (int64, error) {
	row := q.db.QueryRow(ctx, countPayments, arg.BillID, arg.CustomerID, arg.Status)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createPayment = `-- name: CreatePayment :one
INSERT INTO payments (
    bill_id, customer_id, amount, payment_method, transaction_id, status, payment_date, notes
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8
)
RETURNING ` + paymentColumns

type CreatePaymentParams struct {
	BillID        int64              `json:"bill_id"`
	CustomerID    int64              `json:"customer_id"`
	Amount        decimal.Decimal    `json:"amount"`
	PaymentMethod string             `json:"payment_method"`
	TransactionID string             `json:"transaction_id"`
	Status        string             `json:"status"`
	PaymentDate   pgtype.Timestamptz `json:"payment_date"`
	Notes         pgtype.Text        `json:"notes"`
}

func (q *Queries) CreatePayment(ctx context.Context, arg CreatePaymentParams) (Payment, error) {
	row := q.db.QueryRow(ctx, createPayment,
		arg.BillID,
		arg.CustomerID,
		arg.Amount,
		arg.PaymentMethod,
		arg.TransactionID,
		arg.Status,
		arg.PaymentDate,
		arg.Notes,
	)
	return scanPayment(row)
}

const getPayment = `-- name: GetPayment :one
SELECT ` + paymentColumns + ` FROM payments WHERE id = $1
`

func (q *Queries) GetPayment(ctx context.Context, id int64) (Payment, error) {
	return scanPayment(q.db.QueryRow(ctx, getPayment, id))
}

const getPaymentForUpdate = `-- name: GetPaymentForUpdate :one
SELECT ` + paymentColumns + ` FROM payments WHERE id = $1 FOR UPDATE
`

func (q *Queries) GetPaymentForUpdate(ctx context.Context, id int64) (Payment, error) {
	return scanPayment(q.db.QueryRow(ctx, getPaymentForUpdate, id))
}

const listPayments = `-- name: ListPayments :many
SELECT ` + paymentColumns + ` FROM payments
WHERE ($1::bigint IS NULL OR bill_id = $1)
  AND ($2::bigint IS NULL OR customer_id = $2)
  AND ($3::text IS NULL OR status = $3)
ORDER BY id DESC
LIMIT $4 OFFSET $5
`

type ListPaymentsParams struct {
	BillID     pgtype.Int8 `json:"bill_id"`
	CustomerID pgtype.Int8 `json:"customer_id"`
	Status     pgtype.Text `json:"status"`
	Limit      int32       `json:"limit"`
	Offset     int32       `json:"offset"`
}

func (q *Queries) ListPayments(ctx context.Context, arg ListPaymentsParams) ([]Payment, error) {
	rows, err := q.db.Query(ctx, listPayments,
		arg.BillID,
		arg.CustomerID,
		arg.Status,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Payment{}
	for rows.Next() {
		i, err := scanPayment(rows)
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

const updatePaymentStatus = `-- name: UpdatePaymentStatus :one
UPDATE payments
SET status = $2, notes = $3, updated_at = NOW()
WHERE id = $1
RETURNING ` + paymentColumns

type UpdatePaymentStatusParams struct {
	ID     int64       `json:"id"`
	Status string      `json:"status"`
	Notes  pgtype.Text `json:"notes"`
}

func (q *Queries) UpdatePaymentStatus(ctx context.Context, arg UpdatePaymentStatusParams) (Payment, error) {
	return scanPayment(q.db.QueryRow(ctx, updatePaymentStatus, arg.ID, arg.Status, arg.Notes))
}
