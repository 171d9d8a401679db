package bills

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type Querier interface {
	CountBills(ctx context.Context, arg CountBillsParams) (int64, error)
	CreateBill(ctx context.Context, arg CreateBillParams) (Bill, error)
	DeleteBill(ctx context.Context, id int64) error
	GetBill(ctx context.Context, id int64) (Bill, error)
	GetBillByNumber(ctx context.Context, billNumber string) (Bill, error)
	GetBillForUpdate(ctx context.Context, id int64) (Bill, error)
	ListBills(ctx context.Context, arg ListBillsParams) ([]Bill, error)
	MarkBillPaid(ctx context.Context, arg MarkBillPaidParams) (Bill, error)
	UpdateBillStatus(ctx context.Context, arg UpdateBillStatusParams) (Bill, error)
	WithTx(tx pgx.Tx) Querier
}

var _ Querier = (*Queries)(nil)
