package billing

import (
	"context"
	"errors"
	"fmt"

	"encore.dev/rlog"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"github.com/jewelcraft/jewel-billing/billing/workflow"
)

// startExpiryWorkflow schedules cancellation of an unpaid bill. It is a
// no-op when bill expiry is disabled.
func (s *Service) startExpiryWorkflow(ctx context.Context, billID int64) error {
	if s.temporal == nil {
		return nil
	}

	workflowID := workflow.WorkflowID(billID)
	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: s.taskQueue,
	}
	params := workflow.BillExpiryParams{
		BillID:       billID,
		ExpiresAfter: s.expiryWindow,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.BillExpiry, params)
	if err != nil {
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("expiry workflow already started", "bill_id", billID, "workflow_id", workflowID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", workflowID, err)
	}
	return nil
}

// signalExpiryWorkflow notifies the bill's expiry workflow in the
// background. Missing workflows are expected once they have finished.
func (s *Service) signalExpiryWorkflow(billID int64, signalName string, payload any) {
	if s.temporal == nil {
		return
	}

	workflowID := workflow.WorkflowID(billID)
	runAsync("signal "+signalName, func(ctx context.Context) error {
		err := s.temporal.SignalWorkflow(ctx, workflowID, "", signalName, payload)
		var notFound *serviceerror.NotFound
		if errors.As(err, &notFound) {
			rlog.Debug("expiry workflow not running", "bill_id", billID, "signal", signalName)
			return nil
		}
		return err
	})
}
