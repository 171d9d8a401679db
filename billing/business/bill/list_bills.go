package bill

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/jewelcraft/jewel-billing/billing/fault"
	"github.com/jewelcraft/jewel-billing/billing/model"
	"github.com/jewelcraft/jewel-billing/billing/store/bills"
)

// ListBills returns one page of bills matching exactly one filter, plus the
// total number of matches.
func (b *business) ListBills(ctx context.Context, filter model.BillFilter) ([]*model.Bill, int64, error) {
	set := 0
	var customerID, vendorID pgtype.Int8
	var status pgtype.Text
	if filter.CustomerID != nil {
		if *filter.CustomerID <= 0 {
			return nil, 0, fault.InvalidInput("customer ID must be positive")
		}
		customerID = pgtype.Int8{Int64: *filter.CustomerID, Valid: true}
		set++
	}
	if filter.VendorID != nil {
		if *filter.VendorID <= 0 {
			return nil, 0, fault.InvalidInput("vendor ID must be positive")
		}
		vendorID = pgtype.Int8{Int64: *filter.VendorID, Valid: true}
		set++
	}
	if filter.Status != nil {
		status = pgtype.Text{String: string(*filter.Status), Valid: true}
		set++
	}
	if set != 1 {
		return nil, 0, fault.InvalidInput("exactly one of customer_id, vendor_id or status is required")
	}

	limit, offset := model.NormalizePage(filter.Limit, filter.Offset)

	dbBills, err := b.repo.Bills.ListBills(ctx, bills.ListBillsParams{
		CustomerID: customerID,
		VendorID:   vendorID,
		Status:     status,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, 0, fault.ProcessingFailure(err, "failed to list bills")
	}

	total, err := b.repo.Bills.CountBills(ctx, bills.CountBillsParams{
		CustomerID: customerID,
		VendorID:   vendorID,
		Status:     status,
	})
	if err != nil {
		return nil, 0, fault.ProcessingFailure(err, "failed to count bills")
	}

	result := make([]*model.Bill, 0, len(dbBills))
	if len(dbBills) == 0 {
		return result, total, nil
	}

	ids := make([]int64, len(dbBills))
	byID := make(map[int64]*model.Bill, len(dbBills))
	for i, dbBill := range dbBills {
		bill := convertDBBillToModel(dbBill)
		bill.Items = []model.BillItem{}
		ids[i] = dbBill.ID
		byID[dbBill.ID] = bill
		result = append(result, bill)
	}

	dbItems, err := b.repo.BillItems.ListBillItemsByBills(ctx, ids)
	if err != nil {
		return nil, 0, fault.ProcessingFailure(err, "failed to list bill items")
	}
	for _, dbItem := range dbItems {
		if bill, ok := byID[dbItem.BillID]; ok {
			bill.Items = append(bill.Items, convertDBBillItemToModel(dbItem))
		}
	}

	return result, total, nil
}
