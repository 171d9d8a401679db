package bill

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jewelcraft/jewel-billing/billing/fault"
	"github.com/jewelcraft/jewel-billing/billing/model"
	"github.com/jewelcraft/jewel-billing/billing/store/billitems"
	"github.com/jewelcraft/jewel-billing/billing/store/bills"
)

func TestListBills(t *testing.T) {
	customerID := int64(9)
	vendorID := int64(4)
	badID := int64(-1)
	pending := model.BillStatusPending

	t.Run("by_customer_attaches_items", func(t *testing.T) {
		d := newBillDeps(t)
		customer := pgtype.Int8{Int64: customerID, Valid: true}

		d.billRepo.EXPECT().
			ListBills(gomock.Any(), bills.ListBillsParams{CustomerID: customer, Limit: 10, Offset: 0}).
			Return([]bills.Bill{{ID: 1, CustomerID: customerID}, {ID: 2, CustomerID: customerID}}, nil)
		d.billRepo.EXPECT().
			CountBills(gomock.Any(), bills.CountBillsParams{CustomerID: customer}).
			Return(int64(2), nil)
		d.itemRepo.EXPECT().
			ListBillItemsByBills(gomock.Any(), []int64{1, 2}).
			Return([]billitems.BillItem{{ID: 10, BillID: 1}, {ID: 11, BillID: 1}}, nil)

		result, total, err := d.business.ListBills(context.Background(), model.BillFilter{CustomerID: &customerID})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, result, 2)
		assert.Len(t, result[0].Items, 2)
		assert.NotNil(t, result[1].Items)
		assert.Empty(t, result[1].Items)
	})

	t.Run("by_status_empty_page", func(t *testing.T) {
		d := newBillDeps(t)
		status := pgtype.Text{String: "PENDING", Valid: true}

		d.billRepo.EXPECT().
			ListBills(gomock.Any(), bills.ListBillsParams{Status: status, Limit: 5, Offset: 40}).
			Return(nil, nil)
		d.billRepo.EXPECT().
			CountBills(gomock.Any(), bills.CountBillsParams{Status: status}).
			Return(int64(40), nil)

		result, total, err := d.business.ListBills(context.Background(), model.BillFilter{Status: &pending, Limit: 5, Offset: 40})
		require.NoError(t, err)
		assert.Equal(t, int64(40), total)
		assert.Empty(t, result)
	})

	t.Run("filter_validation", func(t *testing.T) {
		d := newBillDeps(t)
		for _, filter := range []model.BillFilter{
			{},
			{CustomerID: &customerID, VendorID: &vendorID},
			{VendorID: &vendorID, Status: &pending},
			{VendorID: &badID},
		} {
			_, _, err := d.business.ListBills(context.Background(), filter)
			assert.Equal(t, fault.KindInvalidInput, fault.KindOf(err))
		}
	})

	t.Run("query_fails", func(t *testing.T) {
		d := newBillDeps(t)
		d.billRepo.EXPECT().ListBills(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

		_, _, err := d.business.ListBills(context.Background(), model.BillFilter{VendorID: &vendorID})
		assert.Equal(t, fault.KindProcessingFailure, fault.KindOf(err))
	})
}
