package workflow

const (
	// Signal names
	BillSettledSignalName = "bill-settled"
	BillDeletedSignalName = "bill-deleted"
)

// BillSettledSignal is sent after a payment marks the bill PAID.
type BillSettledSignal struct {
	TransactionID string `json:"transaction_id"`
}

// BillDeletedSignal is sent after the bill row is removed.
type BillDeletedSignal struct{}
