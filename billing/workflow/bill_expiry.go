package workflow

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// BillExpiryParams contains parameters for starting the expiry workflow
type BillExpiryParams struct {
	BillID       int64         `json:"bill_id"`
	ExpiresAfter time.Duration `json:"expires_after"`
}

type BillExpiryOutcome string

const (
	OutcomeExpired BillExpiryOutcome = "expired"
	OutcomeSettled BillExpiryOutcome = "settled"
	OutcomeDeleted BillExpiryOutcome = "deleted"
	// OutcomeUntouched means the window elapsed but the bill had already
	// left PENDING without a signal reaching the workflow.
	OutcomeUntouched BillExpiryOutcome = "untouched"
)

// WorkflowID is the id of the expiry workflow for a bill, used to signal it.
func WorkflowID(billID int64) string {
	return fmt.Sprintf("bill-expiry-%d", billID)
}

// BillExpiry cancels a bill that is still PENDING once its payment window
// elapses. Settlement or deletion signals end it early.
func BillExpiry(ctx workflow.Context, params BillExpiryParams) (BillExpiryOutcome, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting bill expiry workflow", "billID", params.BillID, "expiresAfter", params.ExpiresAfter)

	if params.ExpiresAfter <= 0 {
		logger.Warn("Non-positive expiry window, expiring immediately", "billID", params.BillID)
		return expireBill(ctx, params.BillID)
	}

	timerCtx, cancelTimer := workflow.WithCancel(ctx)
	timer := workflow.NewTimer(timerCtx, params.ExpiresAfter)

	settledCh := workflow.GetSignalChannel(ctx, BillSettledSignalName)
	deletedCh := workflow.GetSignalChannel(ctx, BillDeletedSignalName)

	var (
		outcome BillExpiryOutcome
		err     error
	)

	selector := workflow.NewSelector(ctx)
	selector.AddReceive(settledCh, func(c workflow.ReceiveChannel, more bool) {
		var signal BillSettledSignal
		c.Receive(ctx, &signal)
		logger.Info("Bill settled before expiry", "billID", params.BillID, "transactionID", signal.TransactionID)
		cancelTimer()
		outcome = OutcomeSettled
	})
	selector.AddReceive(deletedCh, func(c workflow.ReceiveChannel, more bool) {
		var signal BillDeletedSignal
		c.Receive(ctx, &signal)
		logger.Info("Bill deleted before expiry", "billID", params.BillID)
		cancelTimer()
		outcome = OutcomeDeleted
	})
	selector.AddFuture(timer, func(f workflow.Future) {
		logger.Info("Expiry window elapsed", "billID", params.BillID)
		outcome, err = expireBill(ctx, params.BillID)
	})
	selector.Select(ctx)

	if err != nil {
		logger.Error("Failed to expire bill", "billID", params.BillID, "error", err)
		return "", err
	}

	logger.Info("Bill expiry workflow completed", "billID", params.BillID, "outcome", outcome)
	return outcome, nil
}

// expireBill executes the ExpireBill activity
func expireBill(ctx workflow.Context, billID int64) (BillExpiryOutcome, error) {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    6,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	var expired bool
	if err := workflow.ExecuteActivity(activityCtx, ExpireBillActivity, billID).Get(ctx, &expired); err != nil {
		return "", err
	}
	if expired {
		return OutcomeExpired, nil
	}
	return OutcomeUntouched, nil
}
