package billing

import (
	"context"

	"encore.dev/rlog"

	"github.com/jewelcraft/jewel-billing/billing/fault"
	"github.com/jewelcraft/jewel-billing/billing/model"
)

// ListBillsRequest takes exactly one of customer_id, vendor_id or status.
// Zero ids and an empty status count as absent.
type ListBillsRequest struct {
	CustomerID int64  `query:"customer_id" validate:"gte=0"`
	VendorID   int64  `query:"vendor_id" validate:"gte=0"`
	Status     string `query:"status"`
	Limit      int    `query:"limit" validate:"gte=0"`
	Offset     int    `query:"offset" validate:"gte=0"`
}

type ListBillsResponse struct {
	Bills      []model.Bill `json:"bills"`
	TotalCount int64        `json:"total_count"`
	Limit      int          `json:"limit"`
	Offset     int          `json:"offset"`
}

//encore:api public path=/v1/bills method=GET
func (s *Service) ListBills(ctx context.Context, req *ListBillsRequest) (*ListBillsResponse, error) {
	filter, err := req.filter()
	if err != nil {
		return nil, err
	}

	bills, totalCount, err := s.business.ListBills(ctx, filter)
	if err != nil {
		rlog.Error("failed to list bills", "error", err)
		return nil, err
	}

	limit, offset := model.NormalizePage(filter.Limit, filter.Offset)
	response := &ListBillsResponse{
		Bills:      make([]model.Bill, len(bills)),
		TotalCount: totalCount,
		Limit:      int(limit),
		Offset:     int(offset),
	}
	for i, bill := range bills {
		response.Bills[i] = *bill
	}

	return response, nil
}

func (r *ListBillsRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fault.InvalidInput("%s", err.Error())
	}
	return nil
}

func (r *ListBillsRequest) filter() (model.BillFilter, error) {
	filter := model.BillFilter{
		Limit:  int32(r.Limit),
		Offset: int32(r.Offset),
	}
	if r.CustomerID != 0 {
		filter.CustomerID = &r.CustomerID
	}
	if r.VendorID != 0 {
		filter.VendorID = &r.VendorID
	}
	if r.Status != "" {
		status, ok := model.ParseBillStatus(r.Status)
		if !ok {
			return filter, fault.InvalidInput("unknown bill status: %s", r.Status)
		}
		filter.Status = &status
	}
	return filter, nil
}
