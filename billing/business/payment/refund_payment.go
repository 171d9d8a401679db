package payment

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/jewelcraft/jewel-billing/billing/fault"
	"github.com/jewelcraft/jewel-billing/billing/model"
	"github.com/jewelcraft/jewel-billing/billing/store"
	"github.com/jewelcraft/jewel-billing/billing/store/bills"
	"github.com/jewelcraft/jewel-billing/billing/store/payments"
)

// RefundPayment marks a completed payment REFUNDED and returns its bill to
// PENDING in one transaction. The bill lock is taken before the payment
// row lock, the same order ProcessPayment uses.
func (b *business) RefundPayment(ctx context.Context, id int64, reason string) (*model.Payment, error) {
	reason = strings.TrimSpace(reason)
	if id <= 0 {
		return nil, fault.InvalidInput("payment ID must be positive")
	}
	if reason == "" {
		return nil, fault.InvalidInput("refund reason is required")
	}

	existing, err := b.repo.Payments.GetPayment(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fault.NotFound(fault.ResourcePayment, "payment not found with ID: %d", id)
		}
		return nil, fault.ProcessingFailure(err, "failed to get payment %d", id)
	}
	if err := checkRefundable(existing); err != nil {
		return nil, err
	}

	var result *model.Payment
	err = b.stateMachine.ExecuteWithLock(ctx, existing.BillID, func(q *store.Store, current bills.Bill) error {
		locked, err := q.Payments.GetPaymentForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fault.NotFound(fault.ResourcePayment, "payment not found with ID: %d", id)
			}
			return fault.ProcessingFailure(err, "failed to lock payment %d", id)
		}
		// A concurrent refund may have won between the read and the lock.
		if err := checkRefundable(locked); err != nil {
			return err
		}

		refunded, err := q.Payments.UpdatePaymentStatus(ctx, payments.UpdatePaymentStatusParams{
			ID:     id,
			Status: string(model.PaymentStatusRefunded),
			Notes:  pgtype.Text{String: refundNotes(locked.Notes, reason), Valid: true},
		})
		if err != nil {
			return fault.ProcessingFailure(err, "failed to refund payment %d", id)
		}

		if _, err := b.stateMachine.ReopenTx(ctx, q, current.ID); err != nil {
			return err
		}

		result = convertDBPaymentToModel(refunded)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func checkRefundable(p payments.Payment) error {
	if model.PaymentStatus(p.Status) != model.PaymentStatusCompleted {
		return fault.RefundConflict("only completed payments can be refunded, payment %d is %s", p.ID, p.Status)
	}
	return nil
}

// refundNotes appends the refund reason to any existing notes.
func refundNotes(existing pgtype.Text, reason string) string {
	note := "Refunded: " + reason
	if !existing.Valid || strings.TrimSpace(existing.String) == "" {
		return note
	}
	return existing.String + "; " + note
}
