package billing

import (
	"context"

	"encore.dev/rlog"
	"github.com/shopspring/decimal"

	"github.com/jewelcraft/jewel-billing/billing/fault"
	"github.com/jewelcraft/jewel-billing/billing/model"
)

type CreateBillItem struct {
	ProductID   int64            `json:"product_id" validate:"gt=0"`
	Quantity    int32            `json:"quantity" validate:"gt=0"`
	UnitPrice   *decimal.Decimal `json:"unit_price,omitempty"`
	Description string           `json:"description,omitempty" validate:"max=500"`
}

type CreateBillRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	CustomerID int64            `json:"customer_id" validate:"gt=0"`
	VendorID   int64            `json:"vendor_id" validate:"gt=0"`
	Notes      string           `json:"notes,omitempty" validate:"max=1000"`
	Items      []CreateBillItem `json:"items" validate:"required,min=1,dive"`
}

type BillResponse struct {
	Bill model.Bill `json:"bill"`
}

//encore:api public path=/v1/bills method=POST tag:idempotency
func (s *Service) CreateBill(ctx context.Context, req *CreateBillRequest) (*BillResponse, error) {
	items := make([]model.ItemRequest, len(req.Items))
	for i, item := range req.Items {
		items[i] = model.ItemRequest{
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			Description: item.Description,
		}
		if item.UnitPrice != nil {
			items[i].UnitPrice = *item.UnitPrice
		}
	}

	result, err := s.business.CreateBill(ctx, &model.BillRequest{
		CustomerID: req.CustomerID,
		VendorID:   req.VendorID,
		Notes:      req.Notes,
		Items:      items,
	})
	if err != nil {
		rlog.Error("failed to create bill", "customer_id", req.CustomerID, "error", err)
		return nil, err
	}

	if wfErr := s.startExpiryWorkflow(ctx, result.ID); wfErr != nil {
		// The bill exists either way; expiry is best effort.
		rlog.Error("expiry workflow start issue", "bill_id", result.ID, "error", wfErr)
	}

	return &BillResponse{
		Bill: *result,
	}, nil
}

func (r *CreateBillRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fault.InvalidInput("%s", err.Error())
	}
	for i, item := range r.Items {
		if item.UnitPrice != nil && !item.UnitPrice.IsPositive() {
			return fault.InvalidInput("items[%d].unit_price must be positive", i)
		}
	}
	return nil
}
