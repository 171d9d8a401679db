package billing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jewelcraft/jewel-billing/billing/fault"
	"github.com/jewelcraft/jewel-billing/billing/mocks/business/bill_business"
	"github.com/jewelcraft/jewel-billing/billing/model"
)

func TestUpdateBillStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusiness := bill_business.NewMockBusiness(ctrl)
	service := &Service{business: mockBusiness}

	cancelled := pendingBill(1)
	cancelled.Status = model.BillStatusCancelled
	mockBusiness.EXPECT().
		UpdateBillStatus(gomock.Any(), int64(1), model.BillStatus("cancelled")).
		Return(cancelled, nil)

	response, err := service.UpdateBillStatus(context.Background(), 1, &UpdateBillStatusRequest{Status: "cancelled"})
	require.NoError(t, err)
	assert.Equal(t, model.BillStatusCancelled, response.Bill.Status)
}

func TestUpdateBillStatus_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusiness := bill_business.NewMockBusiness(ctrl)
	service := &Service{business: mockBusiness}

	mockBusiness.EXPECT().
		UpdateBillStatus(gomock.Any(), int64(4), model.BillStatus("PENDING")).
		Return(nil, fault.StateConflict("invalid status transition from PAID to PENDING"))

	response, err := service.UpdateBillStatus(context.Background(), 4, &UpdateBillStatusRequest{Status: "PENDING"})
	assert.Nil(t, response)
	assert.Equal(t, fault.KindStateConflict, fault.KindOf(err))
}

func TestUpdateBillStatus_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := &Service{business: bill_business.NewMockBusiness(ctrl)}

	_, err := service.UpdateBillStatus(context.Background(), -1, &UpdateBillStatusRequest{Status: "PAID"})
	assert.Equal(t, fault.KindInvalidInput, fault.KindOf(err))
}

func TestUpdateBillStatusRequest_Validation(t *testing.T) {
	err := (&UpdateBillStatusRequest{}).Validate()
	require.Error(t, err)
	assert.Equal(t, fault.KindInvalidInput, fault.KindOf(err))

	assert.NoError(t, (&UpdateBillStatusRequest{Status: "PAID"}).Validate())
}
