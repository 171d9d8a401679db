package bill

import (
	"context"

	"github.com/jewelcraft/jewel-billing/billing/client"
	"github.com/jewelcraft/jewel-billing/billing/domain"
	"github.com/jewelcraft/jewel-billing/billing/identifier"
	"github.com/jewelcraft/jewel-billing/billing/model"
	"github.com/jewelcraft/jewel-billing/billing/store"
)

type Business interface {
	CreateBill(ctx context.Context, req *model.BillRequest) (*model.Bill, error)
	GetBill(ctx context.Context, id int64) (*model.Bill, error)
	GetBillByNumber(ctx context.Context, billNumber string) (*model.Bill, error)
	ListBills(ctx context.Context, filter model.BillFilter) ([]*model.Bill, int64, error)
	UpdateBillStatus(ctx context.Context, id int64, status model.BillStatus) (*model.Bill, error)
	DeleteBill(ctx context.Context, id int64) error

	// ExpireBill cancels a bill that is still PENDING. It reports whether
	// the bill was cancelled.
	ExpireBill(ctx context.Context, id int64) (bool, error)
}

// business handles bill creation, lookup and status changes
type business struct {
	repo         *store.Store
	customers    client.CustomerClient
	resolver     *ItemResolver
	ids          identifier.Generator
	stateMachine domain.StateMachine
}

// NewBillBusiness creates the bill business layer
func NewBillBusiness(
	repo *store.Store,
	customers client.CustomerClient,
	products client.ProductClient,
	ids identifier.Generator,
	stateMachine domain.StateMachine,
) Business {
	return &business{
		repo:         repo,
		customers:    customers,
		resolver:     NewItemResolver(products),
		ids:          ids,
		stateMachine: stateMachine,
	}
}
