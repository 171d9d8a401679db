package payment

import (
	"context"

	"github.com/jewelcraft/jewel-billing/billing/domain"
	"github.com/jewelcraft/jewel-billing/billing/identifier"
	"github.com/jewelcraft/jewel-billing/billing/model"
	"github.com/jewelcraft/jewel-billing/billing/store"
)

type Business interface {
	ProcessPayment(ctx context.Context, req *model.PaymentRequest) (*model.Payment, error)
	GetPayment(ctx context.Context, id int64) (*model.Payment, error)
	ListPayments(ctx context.Context, filter model.PaymentFilter) ([]*model.Payment, int64, error)
	RefundPayment(ctx context.Context, id int64, reason string) (*model.Payment, error)
}

// business is the payment ledger. Every write that touches a bill runs
// under that bill's row lock.
type business struct {
	repo         *store.Store
	ids          identifier.Generator
	stateMachine domain.StateMachine
}

func NewPaymentBusiness(repo *store.Store, ids identifier.Generator, stateMachine domain.StateMachine) Business {
	return &business{
		repo:         repo,
		ids:          ids,
		stateMachine: stateMachine,
	}
}
