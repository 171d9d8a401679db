package billing

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"github.com/jewelcraft/jewel-billing/billing/fault"
	"github.com/jewelcraft/jewel-billing/billing/mocks/business/payment_business"
	"github.com/jewelcraft/jewel-billing/billing/model"
	"github.com/jewelcraft/jewel-billing/billing/workflow"
)

func completedPayment(id, billID int64) *model.Payment {
	return &model.Payment{
		ID:            id,
		BillID:        billID,
		CustomerID:    7,
		Amount:        decimal.RequireFromString("10094.00"),
		PaymentMethod: "CARD",
		TransactionID: "TXN-1704067200000-ABCD1234",
		Status:        model.PaymentStatusCompleted,
		PaymentDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestProcessPayment(t *testing.T) {
	runSync(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPayments := payment_business.NewMockBusiness(ctrl)
	mockTemporal := mocks.NewClient(t)
	service := &Service{payments: mockPayments, temporal: mockTemporal}

	req := &ProcessPaymentRequest{
		BillID:        1,
		CustomerID:    7,
		Amount:        decimal.RequireFromString("10094.00"),
		PaymentMethod: "CARD",
	}

	mockPayments.EXPECT().
		ProcessPayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *model.PaymentRequest) (*model.Payment, error) {
			assert.Equal(t, int64(1), r.BillID)
			assert.True(t, r.Amount.Equal(req.Amount))
			return completedPayment(10, 1), nil
		})
	mockTemporal.On("SignalWorkflow",
		mock.Anything,
		workflow.WorkflowID(1),
		"",
		workflow.BillSettledSignalName,
		workflow.BillSettledSignal{TransactionID: "TXN-1704067200000-ABCD1234"},
	).Return(nil).Once()

	response, err := service.ProcessPayment(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(10), response.Payment.ID)
	assert.Equal(t, model.PaymentStatusCompleted, response.Payment.Status)
}

func TestProcessPayment_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPayments := payment_business.NewMockBusiness(ctrl)
	mockTemporal := mocks.NewClient(t)
	service := &Service{payments: mockPayments, temporal: mockTemporal}

	mockPayments.EXPECT().
		ProcessPayment(gomock.Any(), gomock.Any()).
		Return(nil, fault.StateConflict("bill 1 is already paid"))

	response, err := service.ProcessPayment(context.Background(), &ProcessPaymentRequest{
		BillID:        1,
		CustomerID:    7,
		Amount:        decimal.RequireFromString("1"),
		PaymentMethod: "CASH",
	})
	assert.Nil(t, response)
	assert.Equal(t, fault.KindStateConflict, fault.KindOf(err))
	mockTemporal.AssertNotCalled(t, "SignalWorkflow", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessPaymentRequest_Validation(t *testing.T) {
	valid := func() *ProcessPaymentRequest {
		return &ProcessPaymentRequest{
			BillID:        1,
			CustomerID:    7,
			Amount:        decimal.RequireFromString("100.00"),
			PaymentMethod: "UPI",
		}
	}

	testCases := []struct {
		name          string
		mutate        func(r *ProcessPaymentRequest)
		expectedError string
	}{
		{name: "valid", mutate: func(r *ProcessPaymentRequest) {}},
		{name: "missing_bill", mutate: func(r *ProcessPaymentRequest) { r.BillID = 0 }, expectedError: "BillID"},
		{name: "missing_customer", mutate: func(r *ProcessPaymentRequest) { r.CustomerID = 0 }, expectedError: "CustomerID"},
		{name: "blank_method", mutate: func(r *ProcessPaymentRequest) { r.PaymentMethod = "   " }, expectedError: "payment_method"},
		{name: "zero_amount", mutate: func(r *ProcessPaymentRequest) { r.Amount = decimal.Zero }, expectedError: "amount must be positive"},
		{name: "negative_amount", mutate: func(r *ProcessPaymentRequest) { r.Amount = decimal.NewFromInt(-5) }, expectedError: "amount must be positive"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid()
			tc.mutate(req)

			err := req.Validate()
			if tc.expectedError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectedError)
			assert.Equal(t, fault.KindInvalidInput, fault.KindOf(err))
		})
	}
}

func TestGetPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPayments := payment_business.NewMockBusiness(ctrl)
	service := &Service{payments: mockPayments}

	mockPayments.EXPECT().GetPayment(gomock.Any(), int64(10)).Return(completedPayment(10, 1), nil)
	mockPayments.EXPECT().GetPayment(gomock.Any(), int64(11)).
		Return(nil, fault.NotFound(fault.ResourcePayment, "payment not found with ID: 11"))

	response, err := service.GetPayment(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), response.Payment.BillID)

	_, err = service.GetPayment(context.Background(), 11)
	assert.Equal(t, fault.KindNotFound, fault.KindOf(err))

	_, err = service.GetPayment(context.Background(), 0)
	assert.Equal(t, fault.KindInvalidInput, fault.KindOf(err))
}

func TestListPayments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPayments := payment_business.NewMockBusiness(ctrl)
	service := &Service{payments: mockPayments}

	mockPayments.EXPECT().
		ListPayments(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f model.PaymentFilter) ([]*model.Payment, int64, error) {
			require.NotNil(t, f.Status)
			assert.Equal(t, model.PaymentStatusRefunded, *f.Status)
			assert.Nil(t, f.BillID)
			assert.Nil(t, f.CustomerID)
			return []*model.Payment{completedPayment(10, 1)}, 1, nil
		})

	response, err := service.ListPayments(context.Background(), &ListPaymentsRequest{Status: "refunded", Offset: 0})
	require.NoError(t, err)
	assert.Len(t, response.Payments, 1)
	assert.Equal(t, int64(1), response.TotalCount)
	assert.Equal(t, int(model.DefaultPageSize), response.Limit)

	_, err = service.ListPayments(context.Background(), &ListPaymentsRequest{Status: "bounced"})
	assert.Equal(t, fault.KindInvalidInput, fault.KindOf(err))
}

func TestRefundPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPayments := payment_business.NewMockBusiness(ctrl)
	mockTemporal := mocks.NewClient(t)
	service := &Service{
		payments:     mockPayments,
		temporal:     mockTemporal,
		taskQueue:    "test-queue",
		expiryWindow: 72 * time.Hour,
	}

	refunded := completedPayment(10, 1)
	refunded.Status = model.PaymentStatusRefunded
	mockPayments.EXPECT().
		RefundPayment(gomock.Any(), int64(10), "damaged clasp").
		Return(refunded, nil)
	mockTemporal.On("ExecuteWorkflow",
		mock.Anything,
		mock.MatchedBy(func(o client.StartWorkflowOptions) bool {
			return o.ID == workflow.WorkflowID(1)
		}),
		mock.Anything,
		workflow.BillExpiryParams{BillID: 1, ExpiresAfter: 72 * time.Hour},
	).Return(nil, nil).Once()

	response, err := service.RefundPayment(context.Background(), 10, &RefundPaymentRequest{Reason: "damaged clasp"})
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusRefunded, response.Payment.Status)
}

func TestRefundPayment_NotRefundable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPayments := payment_business.NewMockBusiness(ctrl)
	service := &Service{payments: mockPayments}

	mockPayments.EXPECT().
		RefundPayment(gomock.Any(), int64(10), "again").
		Return(nil, fault.RefundConflict("only completed payments can be refunded"))

	response, err := service.RefundPayment(context.Background(), 10, &RefundPaymentRequest{Reason: "again"})
	assert.Nil(t, response)
	assert.True(t, fault.IsRefundConflict(err))

	assert.Error(t, (&RefundPaymentRequest{}).Validate())
}
