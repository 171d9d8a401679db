package bill

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/jewelcraft/jewel-billing/billing/mocks/client/catalog_client"
	"github.com/jewelcraft/jewel-billing/billing/mocks/domain/state_machine"
	"github.com/jewelcraft/jewel-billing/billing/mocks/store/bill_item_store"
	"github.com/jewelcraft/jewel-billing/billing/mocks/store/bill_store"
	"github.com/jewelcraft/jewel-billing/billing/store"
	"github.com/jewelcraft/jewel-billing/billing/store/bills"
)

// stubIDs hands out bill numbers in order.
type stubIDs struct {
	numbers []string
	next    int
}

func (s *stubIDs) BillNumber() string {
	n := s.numbers[s.next%len(s.numbers)]
	s.next++
	return n
}

func (s *stubIDs) TransactionID() string { return "TXN-20240101-0001" }

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

type billDeps struct {
	stateMachine *state_machine.MockStateMachine
	billRepo     *bill_store.MockQuerier
	itemRepo     *bill_item_store.MockQuerier
	customers    *catalog_client.MockCustomerClient
	products     *catalog_client.MockProductClient
	ids          *stubIDs
	business     *business
}

func newBillDeps(t *testing.T) *billDeps {
	ctrl := gomock.NewController(t)
	d := &billDeps{
		stateMachine: state_machine.NewMockStateMachine(ctrl),
		billRepo:     bill_store.NewMockQuerier(ctrl),
		itemRepo:     bill_item_store.NewMockQuerier(ctrl),
		customers:    catalog_client.NewMockCustomerClient(ctrl),
		products:     catalog_client.NewMockProductClient(ctrl),
		ids:          &stubIDs{numbers: []string{"BILL-20240101-0001", "BILL-20240101-0002"}},
	}
	d.business = &business{
		repo:         &store.Store{Bills: d.billRepo, BillItems: d.itemRepo},
		customers:    d.customers,
		resolver:     NewItemResolver(d.products),
		ids:          d.ids,
		stateMachine: d.stateMachine,
	}
	return d
}

// inTx runs ExecuteInTx callbacks against the mocked repositories.
func (d *billDeps) inTx() *gomock.Call {
	return d.stateMachine.EXPECT().
		ExecuteInTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, businessLogic func(*store.Store) error) error {
			return businessLogic(d.business.repo)
		})
}

// lockBill runs ExecuteWithLock callbacks against current.
func (d *billDeps) lockBill(current bills.Bill) *gomock.Call {
	return d.stateMachine.EXPECT().
		ExecuteWithLock(gomock.Any(), current.ID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, billID int64, businessLogic func(*store.Store, bills.Bill) error) error {
			return businessLogic(d.business.repo, current)
		})
}
