package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"github.com/jewelcraft/jewel-billing/billing/business/bill"
	"github.com/jewelcraft/jewel-billing/billing/fault"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	BillBusiness bill.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(billBusiness bill.Business) {
	activityDeps = &ActivityDependencies{
		BillBusiness: billBusiness,
	}
}

// ExpireBillActivity cancels the bill if it is still PENDING and reports
// whether it did. A bill that no longer exists counts as not expired.
func ExpireBillActivity(ctx context.Context, billID int64) (bool, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing expire bill activity", "billID", billID)

	if activityDeps == nil || activityDeps.BillBusiness == nil {
		logger.Error("Activity dependencies not set")
		return false, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	expired, err := activityDeps.BillBusiness.ExpireBill(ctx, billID)
	if err != nil {
		switch fault.KindOf(err) {
		case fault.KindNotFound:
			logger.Info("Bill no longer exists, nothing to expire", "billID", billID)
			return false, nil
		case fault.KindProcessingFailure:
			logger.Warn("Failed to expire bill, will retry", "billID", billID, "error", err)
			return false, err
		default:
			logger.Error("Failed to expire bill", "billID", billID, "error", err)
			return false, temporal.NewNonRetryableApplicationError("failed to expire bill", "BILL_EXPIRY_FAILED", err)
		}
	}

	logger.Info("Expire bill activity finished", "billID", billID, "expired", expired)
	return expired, nil
}
