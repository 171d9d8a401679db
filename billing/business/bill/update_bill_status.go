package bill

import (
	"context"

	"github.com/jewelcraft/jewel-billing/billing/fault"
	"github.com/jewelcraft/jewel-billing/billing/model"
	"github.com/jewelcraft/jewel-billing/billing/store"
	"github.com/jewelcraft/jewel-billing/billing/store/bills"
)

// UpdateBillStatus applies an explicit status change under the bill lock.
func (b *business) UpdateBillStatus(ctx context.Context, id int64, status model.BillStatus) (*model.Bill, error) {
	if id <= 0 {
		return nil, fault.InvalidInput("bill ID must be positive")
	}
	target, ok := model.ParseBillStatus(string(status))
	if !ok {
		return nil, fault.InvalidInput("invalid bill status: %s", status)
	}

	var result *model.Bill
	err := b.stateMachine.ExecuteWithLock(ctx, id, func(q *store.Store, current bills.Bill) error {
		updated, err := b.stateMachine.TransitionTx(ctx, q, current, target)
		if err != nil {
			return err
		}
		result, err = loadItems(ctx, q, updated)
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
