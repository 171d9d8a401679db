package bill

import (
	"context"

	"github.com/jewelcraft/jewel-billing/billing/fault"
	"github.com/jewelcraft/jewel-billing/billing/store"
	"github.com/jewelcraft/jewel-billing/billing/store/bills"
)

// DeleteBill removes an unpaid bill and its items. Payments recorded
// against it are kept.
func (b *business) DeleteBill(ctx context.Context, id int64) error {
	if id <= 0 {
		return fault.InvalidInput("bill ID must be positive")
	}

	return b.stateMachine.ExecuteWithLock(ctx, id, func(q *store.Store, current bills.Bill) error {
		return b.stateMachine.DeleteTx(ctx, q, current)
	})
}
