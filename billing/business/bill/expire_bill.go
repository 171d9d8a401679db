package bill

import (
	"context"

	"github.com/jewelcraft/jewel-billing/billing/model"
	"github.com/jewelcraft/jewel-billing/billing/store"
	"github.com/jewelcraft/jewel-billing/billing/store/bills"
)

func (b *business) ExpireBill(ctx context.Context, id int64) (bool, error) {
	expired := false
	err := b.stateMachine.ExecuteWithLock(ctx, id, func(q *store.Store, current bills.Bill) error {
		if current.Status != string(model.BillStatusPending) {
			return nil
		}
		if _, err := b.stateMachine.TransitionTx(ctx, q, current, model.BillStatusCancelled); err != nil {
			return err
		}
		expired = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return expired, nil
}
