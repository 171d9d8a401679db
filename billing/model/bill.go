package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Bill struct {
	ID             int64           `json:"id"`
	CustomerID     int64           `json:"customer_id"`
	VendorID       int64           `json:"vendor_id"`
	BillNumber     string          `json:"bill_number"`
	BillDate       time.Time       `json:"bill_date"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Status         BillStatus      `json:"status"`
	PaymentMethod  *string         `json:"payment_method,omitempty"`
	Notes          *string         `json:"notes,omitempty"`
	Items          []BillItem      `json:"items,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type BillStatus string

const (
	BillStatusPending   BillStatus = "PENDING"
	BillStatusPaid      BillStatus = "PAID"
	BillStatusCancelled BillStatus = "CANCELLED"
)

// ParseBillStatus accepts any letter case and returns the canonical status.
func ParseBillStatus(s string) (BillStatus, bool) {
	switch status := BillStatus(strings.ToUpper(strings.TrimSpace(s))); status {
	case BillStatusPending, BillStatusPaid, BillStatusCancelled:
		return status, true
	default:
		return "", false
	}
}

// BillFilter selects bills by exactly one secondary index.
type BillFilter struct {
	CustomerID *int64
	VendorID   *int64
	Status     *BillStatus
	Limit      int32
	Offset     int32
}

// BillRequest is the input to bill creation.
type BillRequest struct {
	CustomerID int64
	VendorID   int64
	Notes      string
	Items      []ItemRequest
}
