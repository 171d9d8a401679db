// Package fault maps billing failures onto Encore error codes.
package fault

import (
	"errors"
	"fmt"

	"encore.dev/beta/errs"
)

type Kind string

const (
	KindNotFound          Kind = "not_found"
	KindInvalidInput      Kind = "invalid_input"
	KindStateConflict     Kind = "state_conflict"
	KindProcessingFailure Kind = "processing_failure"
)

type Resource string

const (
	ResourceBill     Resource = "bill"
	ResourcePayment  Resource = "payment"
	ResourceCustomer Resource = "customer"
	ResourceProduct  Resource = "product"
)

// Details is attached to every error built here so clients can branch on
// the failure kind without parsing messages.
type Details struct {
	Kind     Kind     `json:"kind"`
	Resource Resource `json:"resource,omitempty"`
	Refund   bool     `json:"refund,omitempty"`
}

func (Details) ErrDetails() {}

func NotFound(resource Resource, format string, args ...any) error {
	return &errs.Error{
		Code:    errs.NotFound,
		Message: fmt.Sprintf(format, args...),
		Details: Details{Kind: KindNotFound, Resource: resource},
	}
}

func InvalidInput(format string, args ...any) error {
	return &errs.Error{
		Code:    errs.InvalidArgument,
		Message: fmt.Sprintf(format, args...),
		Details: Details{Kind: KindInvalidInput},
	}
}

func StateConflict(format string, args ...any) error {
	return &errs.Error{
		Code:    errs.FailedPrecondition,
		Message: fmt.Sprintf(format, args...),
		Details: Details{Kind: KindStateConflict},
	}
}

// RefundConflict is a StateConflict raised by the refund path.
func RefundConflict(format string, args ...any) error {
	return &errs.Error{
		Code:    errs.FailedPrecondition,
		Message: fmt.Sprintf(format, args...),
		Details: Details{Kind: KindStateConflict, Resource: ResourcePayment, Refund: true},
	}
}

// ProcessingFailure wraps a persistence error raised inside a write sequence.
// Domain errors pass through untouched so callers keep their original code.
func ProcessingFailure(cause error, format string, args ...any) error {
	if cause == nil {
		return nil
	}
	var e *errs.Error
	if errors.As(cause, &e) {
		return cause
	}
	return errs.B().
		Code(errs.Internal).
		Cause(cause).
		Details(Details{Kind: KindProcessingFailure}).
		Msgf(format, args...).
		Err()
}

// KindOf returns the failure kind of err, or "" for errors not built here.
func KindOf(err error) Kind {
	var e *errs.Error
	if !errors.As(err, &e) {
		return ""
	}
	if d, ok := e.Details.(Details); ok {
		return d.Kind
	}
	return ""
}

func IsRefundConflict(err error) bool {
	var e *errs.Error
	if !errors.As(err, &e) {
		return false
	}
	d, ok := e.Details.(Details)
	return ok && d.Refund
}
