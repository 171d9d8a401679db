package bill

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/jewelcraft/jewel-billing/billing/fault"
	"github.com/jewelcraft/jewel-billing/billing/identifier"
	"github.com/jewelcraft/jewel-billing/billing/model"
	"github.com/jewelcraft/jewel-billing/billing/pricing"
	"github.com/jewelcraft/jewel-billing/billing/store"
	"github.com/jewelcraft/jewel-billing/billing/store/billitems"
	"github.com/jewelcraft/jewel-billing/billing/store/bills"
)

const billNumberConstraint = "bills_bill_number_key"

// CreateBill prices the requested items and persists the bill with its
// items in one transaction. All lookups happen before the first write.
func (b *business) CreateBill(ctx context.Context, req *model.BillRequest) (*model.Bill, error) {
	if req.CustomerID <= 0 {
		return nil, fault.InvalidInput("customer ID must be positive")
	}
	if req.VendorID <= 0 {
		return nil, fault.InvalidInput("vendor ID must be positive")
	}
	if len(req.Items) == 0 {
		return nil, fault.InvalidInput("bill must contain at least one item")
	}

	if _, err := b.customers.LookupCustomer(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	items, err := b.resolver.Resolve(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	lines := make([]pricing.Line, len(items))
	for i, item := range items {
		lines[i] = pricing.Line{
			TotalPrice: item.TotalPrice,
			Quantity:   item.Quantity,
			Material:   item.ProductMaterial,
		}
	}
	totals := pricing.Calculate(lines)

	for attempt := 1; attempt <= identifier.MaxAttempts; attempt++ {
		var (
			result   *model.Bill
			collided bool
		)
		billNumber := b.ids.BillNumber()

		err := b.stateMachine.ExecuteInTx(ctx, func(q *store.Store) error {
			dbBill, err := q.Bills.CreateBill(ctx, bills.CreateBillParams{
				CustomerID:     req.CustomerID,
				VendorID:       req.VendorID,
				BillNumber:     billNumber,
				BillDate:       pgtype.Timestamptz{Time: time.Now(), Valid: true},
				Subtotal:       totals.Subtotal,
				TaxAmount:      totals.Tax,
				DiscountAmount: totals.Discount,
				TotalAmount:    totals.Total,
				Status:         string(model.BillStatusPending),
				Notes:          pgtype.Text{String: req.Notes, Valid: req.Notes != ""},
			})
			if err != nil {
				collided = isUniqueViolation(err, billNumberConstraint)
				return fault.ProcessingFailure(err, "failed to create bill")
			}

			result = convertDBBillToModel(dbBill)
			result.Items = make([]model.BillItem, 0, len(items))
			for _, item := range items {
				dbItem, err := q.BillItems.CreateBillItem(ctx, billitems.CreateBillItemParams{
					BillID:             dbBill.ID,
					ProductID:          item.ProductID,
					ProductName:        item.ProductName,
					ProductMaterial:    item.ProductMaterial,
					ProductWeight:      item.ProductWeight,
					ProductGmPerWeight: item.ProductGmPerWeight,
					Quantity:           item.Quantity,
					UnitPrice:          item.UnitPrice,
					TotalPrice:         item.TotalPrice,
					Description:        pgtype.Text{String: item.Description, Valid: true},
				})
				if err != nil {
					return fault.ProcessingFailure(err, "failed to create bill item for product %d", item.ProductID)
				}
				result.Items = append(result.Items, convertDBBillItemToModel(dbItem))
			}
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
		errors.New("bill number collision"),
		"failed to allocate a unique bill number after %d attempts", identifier.MaxAttempts,
	)
}

func isUniqueViolation(err error, constraint string) bool {
	var e *pgconn.PgError
	return errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation && e.ConstraintName == constraint
}
