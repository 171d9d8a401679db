package domain

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jewelcraft/jewel-billing/billing/fault"
	"github.com/jewelcraft/jewel-billing/billing/model"
	"github.com/jewelcraft/jewel-billing/billing/store"
	"github.com/jewelcraft/jewel-billing/billing/store/bills"
)

// TxBeginner is satisfied by *pgxpool.Pool.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// StateMachine owns bill status transitions and the transaction boundary
// around them. Callbacks receive a Store bound to the open transaction.
type StateMachine interface {
	// ExecuteWithLock locks the bill row (SELECT ... FOR UPDATE) for the
	// whole callback, so read-validate-write sequences on one bill are
	// serialized. The transaction commits only if the callback succeeds.
	ExecuteWithLock(ctx context.Context, billID int64, businessLogic func(q *store.Store, current bills.Bill) error) error

	// ExecuteInTx runs writes that do not target an existing bill row.
	ExecuteInTx(ctx context.Context, businessLogic func(q *store.Store) error) error

	TransitionTx(ctx context.Context, q *store.Store, current bills.Bill, target model.BillStatus) (bills.Bill, error)
	MarkPaidTx(ctx context.Context, q *store.Store, billID int64, paymentMethod string) (bills.Bill, error)
	ReopenTx(ctx context.Context, q *store.Store, billID int64) (bills.Bill, error)
	DeleteTx(ctx context.Context, q *store.Store, current bills.Bill) error
}

// BillStateMachine handles all bill state transitions
type BillStateMachine struct {
	db   TxBeginner
	repo *store.Store
}

// NewBillStateMachine creates a new bill state machine with database and repository access
func NewBillStateMachine(db TxBeginner, repo *store.Store) *BillStateMachine {
	return &BillStateMachine{
		db:   db,
		repo: repo,
	}
}

var _ StateMachine = (*BillStateMachine)(nil)

func (sm *BillStateMachine) ExecuteWithLock(ctx context.Context, billID int64, businessLogic func(q *store.Store, current bills.Bill) error) error {
	return sm.ExecuteInTx(ctx, func(q *store.Store) error {
		currentBill, err := q.Bills.GetBillForUpdate(ctx, billID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fault.NotFound(fault.ResourceBill, "bill not found with ID: %d", billID)
			}
			return fault.ProcessingFailure(err, "failed to lock bill %d", billID)
		}

		// The row stays locked until commit or rollback.
		return businessLogic(q, currentBill)
	})
}

func (sm *BillStateMachine) ExecuteInTx(ctx context.Context, businessLogic func(q *store.Store) error) error {
	tx, err := sm.db.Begin(ctx)
	if err != nil {
		return fault.ProcessingFailure(err, "failed to start transaction")
	}
	defer tx.Rollback(ctx)

	if err := businessLogic(sm.repo.WithTx(tx)); err != nil {
		return fault.ProcessingFailure(err, "failed to apply bill changes")
	}

	if err := tx.Commit(ctx); err != nil {
		return fault.ProcessingFailure(err, "failed to commit bill changes")
	}

	return nil
}

// TransitionTx validates and applies an explicit status change. Setting the
// current status again is accepted and writes nothing.
func (sm *BillStateMachine) TransitionTx(ctx context.Context, q *store.Store, current bills.Bill, target model.BillStatus) (bills.Bill, error) {
	if err := ValidateTransition(model.BillStatus(current.Status), target); err != nil {
		return bills.Bill{}, err
	}
	if model.BillStatus(current.Status) == target {
		return current, nil
	}

	updated, err := q.Bills.UpdateBillStatus(ctx, bills.UpdateBillStatusParams{
		ID:     current.ID,
		Status: string(target),
	})
	if err != nil {
		return bills.Bill{}, fault.ProcessingFailure(err, "failed to update status of bill %d", current.ID)
	}
	return updated, nil
}

// MarkPaidTx moves a bill to PAID and records the payment method. Callers
// must hold the bill lock and have validated the payment.
func (sm *BillStateMachine) MarkPaidTx(ctx context.Context, q *store.Store, billID int64, paymentMethod string) (bills.Bill, error) {
	updated, err := q.Bills.MarkBillPaid(ctx, bills.MarkBillPaidParams{
		ID:            billID,
		PaymentMethod: paymentMethod,
	})
	if err != nil {
		return bills.Bill{}, fault.ProcessingFailure(err, "failed to mark bill %d as paid", billID)
	}
	return updated, nil
}

// ReopenTx returns a bill to PENDING after a refund, whatever its current
// status (including CANCELLED).
func (sm *BillStateMachine) ReopenTx(ctx context.Context, q *store.Store, billID int64) (bills.Bill, error) {
	updated, err := q.Bills.UpdateBillStatus(ctx, bills.UpdateBillStatusParams{
		ID:     billID,
		Status: string(model.BillStatusPending),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return bills.Bill{}, fault.NotFound(fault.ResourceBill, "bill not found with ID: %d", billID)
		}
		return bills.Bill{}, fault.ProcessingFailure(err, "failed to reopen bill %d", billID)
	}
	return updated, nil
}

func (sm *BillStateMachine) DeleteTx(ctx context.Context, q *store.Store, current bills.Bill) error {
	if err := ValidateDeletion(model.BillStatus(current.Status)); err != nil {
		return err
	}
	if err := q.Bills.DeleteBill(ctx, current.ID); err != nil {
		return fault.ProcessingFailure(err, "failed to delete bill %d", current.ID)
	}
	return nil
}
