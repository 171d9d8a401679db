// Package identifier generates human-readable bill numbers and transaction
// ids of the form PREFIX-yyyyMMdd-NNNN.
//
// The four digit suffix is random, so two ids issued on the same day can
// collide. Uniqueness is enforced by the database; callers regenerate on a
// unique violation (see MaxAttempts).
package identifier

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	BillPrefix        = "BILL"
	TransactionPrefix = "TXN"

	// MaxAttempts bounds regeneration after a unique-key collision.
	MaxAttempts = 5
)

type Generator interface {
	BillNumber() string
	TransactionID() string
}

type generator struct {
	now    func() time.Time
	suffix func() int
}

func NewGenerator() Generator {
	return &generator{
		now:    time.Now,
		suffix: func() int { return rand.Intn(10000) },
	}
}

func (g *generator) BillNumber() string {
	return format(BillPrefix, g.now(), g.suffix())
}

func (g *generator) TransactionID() string {
	return format(TransactionPrefix, g.now(), g.suffix())
}

func format(prefix string, at time.Time, suffix int) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, at.Format("20060102"), suffix)
}
