package bill

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jewelcraft/jewel-billing/billing/fault"
	"github.com/jewelcraft/jewel-billing/billing/model"
	"github.com/jewelcraft/jewel-billing/billing/store"
	"github.com/jewelcraft/jewel-billing/billing/store/bills"
)

// GetBill returns a bill with its items
func (b *business) GetBill(ctx context.Context, id int64) (*model.Bill, error) {
	if id <= 0 {
		return nil, fault.InvalidInput("bill ID must be positive")
	}

	dbBill, err := b.repo.Bills.GetBill(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fault.NotFound(fault.ResourceBill, "bill not found with ID: %d", id)
		}
		return nil, fault.ProcessingFailure(err, "failed to get bill %d", id)
	}

	return loadItems(ctx, b.repo, dbBill)
}

func (b *business) GetBillByNumber(ctx context.Context, billNumber string) (*model.Bill, error) {
	billNumber = strings.TrimSpace(billNumber)
	if billNumber == "" {
		return nil, fault.InvalidInput("bill number is required")
	}

	dbBill, err := b.repo.Bills.GetBillByNumber(ctx, billNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fault.NotFound(fault.ResourceBill, "bill not found with number: %s", billNumber)
		}
		return nil, fault.ProcessingFailure(err, "failed to get bill %s", billNumber)
	}

	return loadItems(ctx, b.repo, dbBill)
}

// loadItems converts dbBill and attaches its items, read through q so it
// also works inside a locked transaction.
func loadItems(ctx context.Context, q *store.Store, dbBill bills.Bill) (*model.Bill, error) {
	bill := convertDBBillToModel(dbBill)

	dbItems, err := q.BillItems.ListBillItemsByBill(ctx, dbBill.ID)
	if err != nil {
		return nil, fault.ProcessingFailure(err, "failed to get items of bill %d", dbBill.ID)
	}

	bill.Items = make([]model.BillItem, 0, len(dbItems))
	for _, dbItem := range dbItems {
		bill.Items = append(bill.Items, convertDBBillItemToModel(dbItem))
	}
	return bill, nil
}
