package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID            int64           `json:"id"`
	BillID        int64           `json:"bill_id"`
	CustomerID    int64           `json:"customer_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	TransactionID string          `json:"transaction_id"`
	Status        PaymentStatus   `json:"status"`
	PaymentDate   time.Time       `json:"payment_date"`
	Notes         *string         `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	switch status := PaymentStatus(strings.ToUpper(strings.TrimSpace(s))); status {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return status, true
	default:
		return "", false
	}
}

type PaymentRequest struct {
	BillID        int64
	CustomerID    int64
	Amount        decimal.Decimal
	PaymentMethod string
	Notes         string
}

// PaymentFilter selects payments by exactly one secondary index.
type PaymentFilter struct {
	BillID     *int64
	CustomerID *int64
	Status     *PaymentStatus
	Limit      int32
	Offset     int32
}
