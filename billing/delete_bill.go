package billing

import (
	"context"

	"encore.dev/rlog"

	"github.com/jewelcraft/jewel-billing/billing/fault"
	"github.com/jewelcraft/jewel-billing/billing/workflow"
)

//encore:api public path=/v1/bills/:id method=DELETE
func (s *Service) DeleteBill(ctx context.Context, id int64) error {
	if id <= 0 {
		return fault.InvalidInput("invalid bill ID")
	}

	if err := s.business.DeleteBill(ctx, id); err != nil {
		rlog.Error("failed to delete bill", "error", err, "bill_id", id)
		return err
	}

	s.signalExpiryWorkflow(id, workflow.BillDeletedSignalName, workflow.BillDeletedSignal{})
	return nil
}
