package bill

import (
	"github.com/jewelcraft/jewel-billing/billing/model"
	"github.com/jewelcraft/jewel-billing/billing/store/billitems"
	"github.com/jewelcraft/jewel-billing/billing/store/bills"
)

// convertDBBillToModel converts a database Bill to a domain model Bill
func convertDBBillToModel(dbBill bills.Bill) *model.Bill {
	bill := &model.Bill{
		ID:             dbBill.ID,
		CustomerID:     dbBill.CustomerID,
		VendorID:       dbBill.VendorID,
		BillNumber:     dbBill.BillNumber,
		BillDate:       dbBill.BillDate.Time,
		Subtotal:       dbBill.Subtotal,
		TaxAmount:      dbBill.TaxAmount,
		DiscountAmount: dbBill.DiscountAmount,
		TotalAmount:    dbBill.TotalAmount,
		Status:         model.BillStatus(dbBill.Status),
		CreatedAt:      dbBill.CreatedAt.Time,
		UpdatedAt:      dbBill.UpdatedAt.Time,
	}

	if dbBill.PaymentMethod.Valid {
		bill.PaymentMethod = &dbBill.PaymentMethod.String
	}

	if dbBill.Notes.Valid {
		bill.Notes = &dbBill.Notes.String
	}

	return bill
}

func convertDBBillItemToModel(dbItem billitems.BillItem) model.BillItem {
	return model.BillItem{
		ID:                 dbItem.ID,
		BillID:             dbItem.BillID,
		ProductID:          dbItem.ProductID,
		ProductName:        dbItem.ProductName,
		ProductMaterial:    dbItem.ProductMaterial,
		ProductWeight:      dbItem.ProductWeight,
		ProductGmPerWeight: dbItem.ProductGmPerWeight,
		Quantity:           dbItem.Quantity,
		UnitPrice:          dbItem.UnitPrice,
		TotalPrice:         dbItem.TotalPrice,
		Description:        dbItem.Description.String,
	}
}
