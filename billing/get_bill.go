package billing

import (
	"context"

	"encore.dev/rlog"

	"github.com/jewelcraft/jewel-billing/billing/fault"
)

//encore:api public path=/v1/bills/:id method=GET
func (s *Service) GetBill(ctx context.Context, id int64) (*BillResponse, error) {
	if id <= 0 {
		return nil, fault.InvalidInput("invalid bill ID")
	}

	result, err := s.business.GetBill(ctx, id)
	if err != nil {
		rlog.Error("failed to get bill", "error", err, "id", id)
		return nil, err
	}

	return &BillResponse{
		Bill: *result,
	}, nil
}

//encore:api public path=/v1/bill-numbers/:number method=GET
func (s *Service) GetBillByNumber(ctx context.Context, number string) (*BillResponse, error) {
	result, err := s.business.GetBillByNumber(ctx, number)
	if err != nil {
		rlog.Error("failed to get bill by number", "error", err, "bill_number", number)
		return nil, err
	}

	return &BillResponse{
		Bill: *result,
	}, nil
}
