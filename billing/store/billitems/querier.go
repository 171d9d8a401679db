package billitems

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type Querier interface {
	CreateBillItem(ctx context.Context, arg CreateBillItemParams) (BillItem, error)
	ListBillItemsByBill(ctx context.Context, billID int64) ([]BillItem, error)
	ListBillItemsByBills(ctx context.Context, billIds []int64) ([]BillItem, error)
	WithTx(tx pgx.Tx) Querier
}

var _ Querier = (*Queries)(nil)
