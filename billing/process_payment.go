package billing

import (
	"context"
	"strings"

	"encore.dev/rlog"
	"github.com/shopspring/decimal"

	"github.com/jewelcraft/jewel-billing/billing/fault"
	"github.com/jewelcraft/jewel-billing/billing/model"
	"github.com/jewelcraft/jewel-billing/billing/workflow"
)

type ProcessPaymentRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	BillID        int64           `json:"bill_id" validate:"gt=0"`
	CustomerID    int64           `json:"customer_id" validate:"gt=0"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method" validate:"required,max=50"`
	Notes         string          `json:"notes,omitempty" validate:"max=1000"`
}

type PaymentResponse struct {
	Payment model.Payment `json:"payment"`
}

//encore:api public path=/v1/payments method=POST tag:idempotency
func (s *Service) ProcessPayment(ctx context.Context, req *ProcessPaymentRequest) (*PaymentResponse, error) {
	result, err := s.payments.ProcessPayment(ctx, &model.PaymentRequest{
		BillID:        req.BillID,
		CustomerID:    req.CustomerID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		rlog.Error("failed to process payment", "bill_id", req.BillID, "error", err)
		return nil, err
	}

	s.signalExpiryWorkflow(result.BillID, workflow.BillSettledSignalName, workflow.BillSettledSignal{
		TransactionID: result.TransactionID,
	})

	return &PaymentResponse{
		Payment: *result,
	}, nil
}

func (r *ProcessPaymentRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fault.InvalidInput("%s", err.Error())
	}
	if strings.TrimSpace(r.PaymentMethod) == "" {
		return fault.InvalidInput("payment_method is required")
	}
	if !r.Amount.IsPositive() {
		return fault.InvalidInput("amount must be positive")
	}
	return nil
}
