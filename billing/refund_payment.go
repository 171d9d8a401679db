package billing

import (
	"context"

	"encore.dev/rlog"

	"github.com/jewelcraft/jewel-billing/billing/fault"
)

type RefundPaymentRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	Reason string `json:"reason" validate:"required,max=500"`
}

// RefundPayment refunds a completed payment and reopens its bill. When
// bill expiry is enabled the reopened bill gets a fresh expiry window.
//
//encore:api public path=/v1/payments/:id/refund method=POST tag:idempotency
func (s *Service) RefundPayment(ctx context.Context, id int64, req *RefundPaymentRequest) (*PaymentResponse, error) {
	if id <= 0 {
		return nil, fault.InvalidInput("invalid payment ID")
	}

	result, err := s.payments.RefundPayment(ctx, id, req.Reason)
	if err != nil {
		rlog.Error("failed to refund payment", "error", err, "payment_id", id)
		return nil, err
	}

	if wfErr := s.startExpiryWorkflow(ctx, result.BillID); wfErr != nil {
		rlog.Error("expiry workflow restart issue", "bill_id", result.BillID, "error", wfErr)
	}

	return &PaymentResponse{
		Payment: *result,
	}, nil
}

func (r *RefundPaymentRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fault.InvalidInput("%s", err.Error())
	}
	return nil
}
