package billing

import (
	"context"

	"encore.dev/rlog"

	"github.com/jewelcraft/jewel-billing/billing/fault"
)

//encore:api public path=/v1/payments/:id method=GET
func (s *Service) GetPayment(ctx context.Context, id int64) (*PaymentResponse, error) {
	if id <= 0 {
		return nil, fault.InvalidInput("invalid payment ID")
	}

	result, err := s.payments.GetPayment(ctx, id)
	if err != nil {
		rlog.Error("failed to get payment", "error", err, "id", id)
		return nil, err
	}

	return &PaymentResponse{
		Payment: *result,
	}, nil
}
