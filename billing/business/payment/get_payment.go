package payment

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/jewelcraft/jewel-billing/billing/fault"
	"github.com/jewelcraft/jewel-billing/billing/model"
	"github.com/jewelcraft/jewel-billing/billing/store/payments"
)

func (b *business) GetPayment(ctx context.Context, id int64) (*model.Payment, error) {
	if id <= 0 {
		return nil, fault.InvalidInput("payment ID must be positive")
	}

	dbPayment, err := b.repo.Payments.GetPayment(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fault.NotFound(fault.ResourcePayment, "payment not found with ID: %d", id)
		}
		return nil, fault.ProcessingFailure(err, "failed to get payment %d", id)
	}

	return convertDBPaymentToModel(dbPayment), nil
}

// ListPayments returns one page of payments matching exactly one filter,
// plus the total number of matches.
func (b *business) ListPayments(ctx context.Context, filter model.PaymentFilter) ([]*model.Payment, int64, error) {
	set := 0
	var billID, customerID pgtype.Int8
	var status pgtype.Text
	if filter.BillID != nil {
		if *filter.BillID <= 0 {
			return nil, 0, fault.InvalidInput("bill ID must be positive")
		}
		billID = pgtype.Int8{Int64: *filter.BillID, Valid: true}
		set++
	}
	if filter.CustomerID != nil {
		if *filter.CustomerID <= 0 {
			return nil, 0, fault.InvalidInput("customer ID must be positive")
		}
		customerID = pgtype.Int8{Int64: *filter.CustomerID, Valid: true}
		set++
	}
	if filter.Status != nil {
		status = pgtype.Text{String: string(*filter.Status), Valid: true}
		set++
	}
	if set != 1 {
		return nil, 0, fault.InvalidInput("exactly one of bill_id, customer_id or status is required")
	}

	limit, offset := model.NormalizePage(filter.Limit, filter.Offset)

	dbPayments, err := b.repo.Payments.ListPayments(ctx, payments.ListPaymentsParams{
		BillID:     billID,
		CustomerID: customerID,
		Status:     status,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, 0, fault.ProcessingFailure(err, "failed to list payments")
	}

	total, err := b.repo.Payments.CountPayments(ctx, payments.CountPaymentsParams{
		BillID:     billID,
		CustomerID: customerID,
		Status:     status,
	})
	if err != nil {
		return nil, 0, fault.ProcessingFailure(err, "failed to count payments")
	}

	result := make([]*model.Payment, 0, len(dbPayments))
	for _, dbPayment := range dbPayments {
		result = append(result, convertDBPaymentToModel(dbPayment))
	}
	return result, total, nil
}

// convertDBPaymentToModel converts a database Payment to a domain model Payment
func convertDBPaymentToModel(dbPayment payments.Payment) *model.Payment {
	payment := &model.Payment{
		ID:            dbPayment.ID,
		BillID:        dbPayment.BillID,
		CustomerID:    dbPayment.CustomerID,
		Amount:        dbPayment.Amount,
		PaymentMethod: dbPayment.PaymentMethod,
		TransactionID: dbPayment.TransactionID,
		Status:        model.PaymentStatus(dbPayment.Status),
		PaymentDate:   dbPayment.PaymentDate.Time,
		CreatedAt:     dbPayment.CreatedAt.Time,
		UpdatedAt:     dbPayment.UpdatedAt.Time,
	}

	if dbPayment.Notes.Valid {
		payment.Notes = &dbPayment.Notes.String
	}

	return payment
}
