package billing

import (
	"context"

	"encore.dev/rlog"

	"github.com/jewelcraft/jewel-billing/billing/fault"
	"github.com/jewelcraft/jewel-billing/billing/model"
)

// ListPaymentsRequest takes exactly one of bill_id, customer_id or status.
type ListPaymentsRequest struct {
	BillID     int64  `query:"bill_id" validate:"gte=0"`
	CustomerID int64  `query:"customer_id" validate:"gte=0"`
	Status     string `query:"status"`
	Limit      int    `query:"limit" validate:"gte=0"`
	Offset     int    `query:"offset" validate:"gte=0"`
}

type ListPaymentsResponse struct {
	Payments   []model.Payment `json:"payments"`
	TotalCount int64           `json:"total_count"`
	Limit      int             `json:"limit"`
	Offset     int             `json:"offset"`
}

//encore:api public path=/v1/payments method=GET
func (s *Service) ListPayments(ctx context.Context, req *ListPaymentsRequest) (*ListPaymentsResponse, error) {
	filter, err := req.filter()
	if err != nil {
		return nil, err
	}

	payments, totalCount, err := s.payments.ListPayments(ctx, filter)
	if err != nil {
		rlog.Error("failed to list payments", "error", err)
		return nil, err
	}

	limit, offset := model.NormalizePage(filter.Limit, filter.Offset)
	response := &ListPaymentsResponse{
		Payments:   make([]model.Payment, len(payments)),
		TotalCount: totalCount,
		Limit:      int(limit),
		Offset:     int(offset),
	}
	for i, payment := range payments {
		response.Payments[i] = *payment
	}

	return response, nil
}

func (r *ListPaymentsRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fault.InvalidInput("%s", err.Error())
	}
	return nil
}

func (r *ListPaymentsRequest) filter() (model.PaymentFilter, error) {
	filter := model.PaymentFilter{
		Limit:  int32(r.Limit),
		Offset: int32(r.Offset),
	}
	if r.BillID != 0 {
		filter.BillID = &r.BillID
	}
	if r.CustomerID != 0 {
		filter.CustomerID = &r.CustomerID
	}
	if r.Status != "" {
		status, ok := model.ParsePaymentStatus(r.Status)
		if !ok {
			return filter, fault.InvalidInput("unknown payment status: %s", r.Status)
		}
		filter.Status = &status
	}
	return filter, nil
}
