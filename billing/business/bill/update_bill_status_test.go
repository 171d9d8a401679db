package bill

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jewelcraft/jewel-billing/billing/fault"
	"github.com/jewelcraft/jewel-billing/billing/model"
	"github.com/jewelcraft/jewel-billing/billing/store/bills"
)

func TestUpdateBillStatus(t *testing.T) {
	testCases := []struct {
		name             string
		billID           int64
		status           model.BillStatus
		current          bills.Bill
		transitionErr    error
		expectLock       bool
		expectTransition bool
		expectedTarget   model.BillStatus
		expectedKind     fault.Kind
	}{
		{
			name:             "pending_to_cancelled_lowercase",
			billID:           1,
			status:           "cancelled",
			current:          bills.Bill{ID: 1, Status: string(model.BillStatusPending)},
			expectLock:       true,
			expectTransition: true,
			expectedTarget:   model.BillStatusCancelled,
		},
		{
			name:             "paid_to_pending_rejected",
			billID:           1,
			status:           model.BillStatusPending,
			current:          bills.Bill{ID: 1, Status: string(model.BillStatusPaid)},
			transitionErr:    fault.StateConflict("cannot change status from PAID to PENDING"),
			expectLock:       true,
			expectTransition: true,
			expectedTarget:   model.BillStatusPending,
			expectedKind:     fault.KindStateConflict,
		},
		{
			name:         "unknown_status",
			billID:       1,
			status:       "SHIPPED",
			expectedKind: fault.KindInvalidInput,
		},
		{
			name:         "invalid_id",
			billID:       0,
			status:       model.BillStatusPaid,
			expectedKind: fault.KindInvalidInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newBillDeps(t)
			if tc.expectLock {
				d.lockBill(tc.current)
			}
			if tc.expectTransition {
				updated := tc.current
				updated.Status = string(tc.expectedTarget)
				d.stateMachine.EXPECT().
					TransitionTx(gomock.Any(), gomock.Any(), tc.current, tc.expectedTarget).
					Return(updated, tc.transitionErr)
				if tc.transitionErr == nil {
					d.itemRepo.EXPECT().ListBillItemsByBill(gomock.Any(), tc.billID).Return(nil, nil)
				}
			}

			result, err := d.business.UpdateBillStatus(context.Background(), tc.billID, tc.status)
			if tc.expectedKind != "" {
				require.Error(t, err)
				assert.Equal(t, tc.expectedKind, fault.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedTarget, result.Status)
		})
	}
}

func TestDeleteBill(t *testing.T) {
	t.Run("deletes_under_lock", func(t *testing.T) {
		d := newBillDeps(t)
		current := bills.Bill{ID: 2, Status: string(model.BillStatusCancelled)}
		d.lockBill(current)
		d.stateMachine.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), current).Return(nil)

		require.NoError(t, d.business.DeleteBill(context.Background(), 2))
	})

	t.Run("paid_bill_rejected", func(t *testing.T) {
		d := newBillDeps(t)
		current := bills.Bill{ID: 3, Status: string(model.BillStatusPaid)}
		d.lockBill(current)
		d.stateMachine.EXPECT().
			DeleteTx(gomock.Any(), gomock.Any(), current).
			Return(fault.StateConflict("cannot delete a paid bill"))

		err := d.business.DeleteBill(context.Background(), 3)
		assert.Equal(t, fault.KindStateConflict, fault.KindOf(err))
	})

	t.Run("missing_bill", func(t *testing.T) {
		d := newBillDeps(t)
		d.stateMachine.EXPECT().
			ExecuteWithLock(gomock.Any(), int64(4), gomock.Any()).
			Return(fault.NotFound(fault.ResourceBill, "bill not found with ID: 4"))

		err := d.business.DeleteBill(context.Background(), 4)
		assert.Equal(t, fault.KindNotFound, fault.KindOf(err))
	})

	t.Run("invalid_id", func(t *testing.T) {
		d := newBillDeps(t)
		err := d.business.DeleteBill(context.Background(), -1)
		assert.Equal(t, fault.KindInvalidInput, fault.KindOf(err))
	})
}

func TestExpireBill(t *testing.T) {
	t.Run("pending_bill_is_cancelled", func(t *testing.T) {
		d := newBillDeps(t)
		current := bills.Bill{ID: 5, Status: string(model.BillStatusPending)}
		d.lockBill(current)
		d.stateMachine.EXPECT().
			TransitionTx(gomock.Any(), gomock.Any(), current, model.BillStatusCancelled).
			Return(bills.Bill{ID: 5, Status: string(model.BillStatusCancelled)}, nil)

		expired, err := d.business.ExpireBill(context.Background(), 5)
		require.NoError(t, err)
		assert.True(t, expired)
	})

	t.Run("paid_bill_left_alone", func(t *testing.T) {
		d := newBillDeps(t)
		d.lockBill(bills.Bill{ID: 6, Status: string(model.BillStatusPaid)})

		expired, err := d.business.ExpireBill(context.Background(), 6)
		require.NoError(t, err)
		assert.False(t, expired)
	})
}
