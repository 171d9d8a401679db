package payment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/jewelcraft/jewel-billing/billing/fault"
	"github.com/jewelcraft/jewel-billing/billing/identifier"
	"github.com/jewelcraft/jewel-billing/billing/model"
	"github.com/jewelcraft/jewel-billing/billing/store"
	"github.com/jewelcraft/jewel-billing/billing/store/bills"
	"github.com/jewelcraft/jewel-billing/billing/store/payments"
)

const transactionIDConstraint = "payments_transaction_id_key"

// ProcessPayment settles a bill in full. The payment row and the PAID bill
// are written in one transaction while the bill row is locked, so two
// concurrent payments for one bill cannot both succeed.
func (b *business) ProcessPayment(ctx context.Context, req *model.PaymentRequest) (*model.Payment, error) {
	method := strings.TrimSpace(req.PaymentMethod)
	switch {
	case req.BillID <= 0:
		return nil, fault.InvalidInput("bill ID must be positive")
	case req.CustomerID <= 0:
		return nil, fault.InvalidInput("customer ID must be positive")
	case !req.Amount.IsPositive():
		return nil, fault.InvalidInput("payment amount must be greater than 0")
	case method == "":
		return nil, fault.InvalidInput("payment method is required")
	}

	for attempt := 1; attempt <= identifier.MaxAttempts; attempt++ {
		var (
			result   *model.Payment
			collided bool
		)
		transactionID := b.ids.TransactionID()

		err := b.stateMachine.ExecuteWithLock(ctx, req.BillID, func(q *store.Store, current bills.Bill) error {
			switch model.BillStatus(current.Status) {
			case model.BillStatusPaid:
				return fault.StateConflict("bill %d is already paid", current.ID)
			case model.BillStatusCancelled:
				return fault.StateConflict("bill %d is cancelled", current.ID)
			}
			if !req.Amount.Equal(current.TotalAmount) {
				return fault.StateConflict("payment amount %s does not match bill total %s",
					req.Amount.StringFixed(2), current.TotalAmount.StringFixed(2))
			}

			dbPayment, err := q.Payments.CreatePayment(ctx, payments.CreatePaymentParams{
				BillID:        current.ID,
				CustomerID:    req.CustomerID,
				Amount:        req.Amount,
				PaymentMethod: method,
				TransactionID: transactionID,
				Status:        string(model.PaymentStatusCompleted),
				PaymentDate:   pgtype.Timestamptz{Time: time.Now(), Valid: true},
				Notes:         pgtype.Text{String: req.Notes, Valid: req.Notes != ""},
			})
			if err != nil {
				collided = isUniqueViolation(err, transactionIDConstraint)
				return fault.ProcessingFailure(err, "failed to record payment for bill %d", current.ID)
			}

			if _, err := b.stateMachine.MarkPaidTx(ctx, q, current.ID, method); err != nil {
				return err
			}

			result = convertDBPaymentToModel(dbPayment)
			return nil
		})
		if err == nil {
			return result, nil
		}
		if !collided {
			return nil, err
		}
	}

	return nil, fault.ProcessingFailure(
		errors.New("transaction id collision"),
		"failed to allocate a unique transaction id after %d attempts", identifier.MaxAttempts,
	)
}

func isUniqueViolation(err error, constraint string) bool {
	var e *pgconn.PgError
	return errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation && e.ConstraintName == constraint
}
