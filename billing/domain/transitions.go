package domain

import (
	"github.com/jewelcraft/jewel-billing/billing/fault"
	"github.com/jewelcraft/jewel-billing/billing/model"
)

// ValidateTransition enforces the bill status rules:
//
//	CANCELLED -> *          rejected (terminal)
//	PAID      -> CANCELLED  allowed
//	PAID      -> other      rejected
//	anything else           allowed, including same-status updates
func ValidateTransition(current, target model.BillStatus) error {
	if current == model.BillStatusCancelled {
		return fault.StateConflict("cannot change status of a cancelled bill")
	}
	if current == model.BillStatusPaid && target != model.BillStatusCancelled {
		return fault.StateConflict("cannot change status from PAID to %s", target)
	}
	return nil
}

// ValidateDeletion rejects deleting a paid bill.
func ValidateDeletion(current model.BillStatus) error {
	if current == model.BillStatusPaid {
		return fault.StateConflict("cannot delete a paid bill")
	}
	return nil
}
