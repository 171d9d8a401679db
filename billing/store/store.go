package store

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jewelcraft/jewel-billing/billing/store/billitems"
	"github.com/jewelcraft/jewel-billing/billing/store/bills"
	"github.com/jewelcraft/jewel-billing/billing/store/payments"
)

// Store combines all domain-specific queriers
type Store struct {
	Bills     bills.Querier
	BillItems billitems.Querier
	Payments  payments.Querier
}

// NewStore creates a new Store with all domain queriers
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		Bills:     bills.New(db),
		BillItems: billitems.New(db),
		Payments:  payments.New(db),
	}
}

// WithTx returns a Store whose queriers all run inside tx.
func (s *Store) WithTx(tx pgx.Tx) *Store {
	return &Store{
		Bills:     s.Bills.WithTx(tx),
		BillItems: s.BillItems.WithTx(tx),
		Payments:  s.Payments.WithTx(tx),
	}
}
