package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jewelcraft/jewel-billing/billing/fault"
	"github.com/jewelcraft/jewel-billing/billing/mocks/domain/state_machine"
	"github.com/jewelcraft/jewel-billing/billing/mocks/store/bill_store"
	"github.com/jewelcraft/jewel-billing/billing/mocks/store/payment_store"
	"github.com/jewelcraft/jewel-billing/billing/model"
	"github.com/jewelcraft/jewel-billing/billing/store"
	"github.com/jewelcraft/jewel-billing/billing/store/bills"
	"github.com/jewelcraft/jewel-billing/billing/store/payments"
)

// stubIDs hands out transaction ids in order.
type stubIDs struct {
	txns []string
	next int
}

func (s *stubIDs) BillNumber() string { return "BILL-20240101-0001" }

func (s *stubIDs) TransactionID() string {
	id := s.txns[s.next%len(s.txns)]
	s.next++
	return id
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type paymentDeps struct {
	stateMachine *state_machine.MockStateMachine
	billRepo     *bill_store.MockQuerier
	paymentRepo  *payment_store.MockQuerier
	ids          *stubIDs
	business     *business
}

func newPaymentDeps(t *testing.T) *paymentDeps {
	ctrl := gomock.NewController(t)
	d := &paymentDeps{
		stateMachine: state_machine.NewMockStateMachine(ctrl),
		billRepo:     bill_store.NewMockQuerier(ctrl),
		paymentRepo:  payment_store.NewMockQuerier(ctrl),
		ids:          &stubIDs{txns: []string{"TXN-20240101-0001", "TXN-20240101-0002"}},
	}
	d.business = &business{
		repo:         &store.Store{Bills: d.billRepo, Payments: d.paymentRepo},
		ids:          d.ids,
		stateMachine: d.stateMachine,
	}
	return d
}

// lockBill makes ExecuteWithLock run the callback against current using the
// mocked repositories as the transaction store.
func (d *paymentDeps) lockBill(current bills.Bill) *gomock.Call {
	return d.stateMachine.EXPECT().
		ExecuteWithLock(gomock.Any(), current.ID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, billID int64, businessLogic func(*store.Store, bills.Bill) error) error {
			return businessLogic(d.business.repo, current)
		})
}

func TestProcessPayment(t *testing.T) {
	pendingBill := bills.Bill{
		ID:          1,
		Status:      string(model.BillStatusPending),
		TotalAmount: dec("10300.00"),
	}

	testCases := []struct {
		name            string
		req             *model.PaymentRequest
		bill            bills.Bill
		lockErr         error
		createErr       error
		markPaidErr     error
		expectCreate    bool
		expectMarkPaid  bool
		expectedKind    fault.Kind
		expectedMessage string
	}{
		{
			name:           "happy_case_scale_insensitive_amount",
			req:            &model.PaymentRequest{BillID: 1, CustomerID: 9, Amount: dec("10300.0"), PaymentMethod: " CARD ", Notes: "counter 2"},
			bill:           pendingBill,
			expectCreate:   true,
			expectMarkPaid: true,
		},
		{
			name:         "missing_bill_id",
			req:          &model.PaymentRequest{CustomerID: 9, Amount: dec("1"), PaymentMethod: "CARD"},
			expectedKind: fault.KindInvalidInput,
		},
		{
			name:         "missing_customer_id",
			req:          &model.PaymentRequest{BillID: 1, Amount: dec("1"), PaymentMethod: "CARD"},
			expectedKind: fault.KindInvalidInput,
		},
		{
			name:         "non_positive_amount",
			req:          &model.PaymentRequest{BillID: 1, CustomerID: 9, Amount: dec("0"), PaymentMethod: "CARD"},
			expectedKind: fault.KindInvalidInput,
		},
		{
			name:         "blank_method",
			req:          &model.PaymentRequest{BillID: 1, CustomerID: 9, Amount: dec("1"), PaymentMethod: "   "},
			expectedKind: fault.KindInvalidInput,
		},
		{
			name:         "bill_not_found",
			req:          &model.PaymentRequest{BillID: 1, CustomerID: 9, Amount: dec("10300"), PaymentMethod: "CARD"},
			bill:         pendingBill,
			lockErr:      fault.NotFound(fault.ResourceBill, "bill not found with ID: 1"),
			expectedKind: fault.KindNotFound,
		},
		{
			name:            "already_paid",
			req:             &model.PaymentRequest{BillID: 1, CustomerID: 9, Amount: dec("10300"), PaymentMethod: "CARD"},
			bill:            bills.Bill{ID: 1, Status: string(model.BillStatusPaid), TotalAmount: dec("10300")},
			expectedKind:    fault.KindStateConflict,
			expectedMessage: "already paid",
		},
		{
			name:            "cancelled_bill",
			req:             &model.PaymentRequest{BillID: 1, CustomerID: 9, Amount: dec("10300"), PaymentMethod: "CARD"},
			bill:            bills.Bill{ID: 1, Status: string(model.BillStatusCancelled), TotalAmount: dec("10300")},
			expectedKind:    fault.KindStateConflict,
			expectedMessage: "cancelled",
		},
		{
			name:            "underpayment",
			req:             &model.PaymentRequest{BillID: 1, CustomerID: 9, Amount: dec("10299.99"), PaymentMethod: "CARD"},
			bill:            pendingBill,
			expectedKind:    fault.KindStateConflict,
			expectedMessage: "does not match bill total 10300.00",
		},
		{
			name:            "overpayment",
			req:             &model.PaymentRequest{BillID: 1, CustomerID: 9, Amount: dec("10300.01"), PaymentMethod: "CARD"},
			bill:            pendingBill,
			expectedKind:    fault.KindStateConflict,
			expectedMessage: "does not match",
		},
		{
			name:         "payment_insert_fails",
			req:          &model.PaymentRequest{BillID: 1, CustomerID: 9, Amount: dec("10300"), PaymentMethod: "CARD"},
			bill:         pendingBill,
			createErr:    errors.New("disk full"),
			expectCreate: true,
			expectedKind: fault.KindProcessingFailure,
		},
		{
			name:           "bill_update_fails",
			req:            &model.PaymentRequest{BillID: 1, CustomerID: 9, Amount: dec("10300"), PaymentMethod: "CARD"},
			bill:           pendingBill,
			markPaidErr:    fault.ProcessingFailure(errors.New("timeout"), "failed to mark bill 1 as paid"),
			expectCreate:   true,
			expectMarkPaid: true,
			expectedKind:   fault.KindProcessingFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newPaymentDeps(t)

			if tc.lockErr != nil {
				d.stateMachine.EXPECT().
					ExecuteWithLock(gomock.Any(), tc.req.BillID, gomock.Any()).
					Return(tc.lockErr)
			} else if tc.bill.ID != 0 {
				d.lockBill(tc.bill)
			}

			if tc.expectCreate {
				d.paymentRepo.EXPECT().
					CreatePayment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, arg payments.CreatePaymentParams) (payments.Payment, error) {
						assert.Equal(t, "TXN-20240101-0001", arg.TransactionID)
						assert.Equal(t, string(model.PaymentStatusCompleted), arg.Status)
						assert.Equal(t, "CARD", arg.PaymentMethod)
						assert.True(t, arg.PaymentDate.Valid)
						if tc.createErr != nil {
							return payments.Payment{}, tc.createErr
						}
						return payments.Payment{
							ID:            50,
							BillID:        arg.BillID,
							CustomerID:    arg.CustomerID,
							Amount:        arg.Amount,
							PaymentMethod: arg.PaymentMethod,
							TransactionID: arg.TransactionID,
							Status:        arg.Status,
							PaymentDate:   arg.PaymentDate,
							Notes:         arg.Notes,
						}, nil
					})
			}

			if tc.expectMarkPaid {
				d.stateMachine.EXPECT().
					MarkPaidTx(gomock.Any(), gomock.Any(), tc.bill.ID, "CARD").
					Return(bills.Bill{ID: tc.bill.ID, Status: string(model.BillStatusPaid)}, tc.markPaidErr)
			}

			result, err := d.business.ProcessPayment(context.Background(), tc.req)

			if tc.expectedKind != "" {
				require.Error(t, err)
				assert.Nil(t, result)
				assert.Equal(t, tc.expectedKind, fault.KindOf(err))
				if tc.expectedMessage != "" {
					assert.Contains(t, err.Error(), tc.expectedMessage)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(50), result.ID)
			assert.Equal(t, model.PaymentStatusCompleted, result.Status)
			assert.Equal(t, "TXN-20240101-0001", result.TransactionID)
			require.NotNil(t, result.Notes)
			assert.Equal(t, "counter 2", *result.Notes)
		})
	}
}

func TestProcessPaymentRegeneratesTransactionID(t *testing.T) {
	d := newPaymentDeps(t)
	bill := bills.Bill{ID: 1, Status: string(model.BillStatusPending), TotalAmount: dec("500")}
	req := &model.PaymentRequest{BillID: 1, CustomerID: 9, Amount: dec("500.00"), PaymentMethod: "UPI"}
	collision := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: transactionIDConstraint}

	d.lockBill(bill).Times(2)
	gomock.InOrder(
		d.paymentRepo.EXPECT().
			CreatePayment(gomock.Any(), gomock.Any()).
			Return(payments.Payment{}, collision),
		d.paymentRepo.EXPECT().
			CreatePayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, arg payments.CreatePaymentParams) (payments.Payment, error) {
				assert.Equal(t, "TXN-20240101-0002", arg.TransactionID)
				return payments.Payment{ID: 2, TransactionID: arg.TransactionID, Status: arg.Status}, nil
			}),
	)
	d.stateMachine.EXPECT().
		MarkPaidTx(gomock.Any(), gomock.Any(), int64(1), "UPI").
		Return(bills.Bill{ID: 1, Status: string(model.BillStatusPaid)}, nil)

	result, err := d.business.ProcessPayment(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "TXN-20240101-0002", result.TransactionID)
}

func TestProcessPaymentGivesUpAfterRepeatedCollisions(t *testing.T) {
	d := newPaymentDeps(t)
	bill := bills.Bill{ID: 1, Status: string(model.BillStatusPending), TotalAmount: dec("500")}
	collision := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: transactionIDConstraint}

	d.lockBill(bill).Times(5)
	d.paymentRepo.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		Return(payments.Payment{}, collision).
		Times(5)

	_, err := d.business.ProcessPayment(context.Background(), &model.PaymentRequest{
		BillID: 1, CustomerID: 9, Amount: dec("500"), PaymentMethod: "UPI",
	})
	require.Error(t, err)
	assert.Equal(t, fault.KindProcessingFailure, fault.KindOf(err))
	assert.Contains(t, err.Error(), "unique transaction id")
}
