package billing

import (
	"context"

	"encore.dev/rlog"

	"github.com/jewelcraft/jewel-billing/billing/fault"
	"github.com/jewelcraft/jewel-billing/billing/model"
)

type UpdateBillStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

//encore:api public path=/v1/bills/:id/status method=PUT
func (s *Service) UpdateBillStatus(ctx context.Context, id int64, req *UpdateBillStatusRequest) (*BillResponse, error) {
	if id <= 0 {
		return nil, fault.InvalidInput("invalid bill ID")
	}

	result, err := s.business.UpdateBillStatus(ctx, id, model.BillStatus(req.Status))
	if err != nil {
		rlog.Error("failed to update bill status", "error", err, "bill_id", id, "status", req.Status)
		return nil, err
	}

	return &BillResponse{
		Bill: *result,
	}, nil
}

func (r *UpdateBillStatusRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fault.InvalidInput("%s", err.Error())
	}
	return nil
}
