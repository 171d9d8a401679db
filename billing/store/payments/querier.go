package payments

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type Querier interface {
	CountPayments(ctx context.Context, arg CountPaymentsParams) (int64, error)
	CreatePayment(ctx context.Context, arg CreatePaymentParams) (Payment, error)
	GetPayment(ctx context.Context, id int64) (Payment, error)
	GetPaymentForUpdate(ctx context.Context, id int64) (Payment, error)
	ListPayments(ctx context.Context, arg ListPaymentsParams) ([]Payment, error)
	UpdatePaymentStatus(ctx context.Context, arg UpdatePaymentStatusParams) (Payment, error)
	WithTx(tx pgx.Tx) Querier
}

var _ Querier = (*Queries)(nil)
