package booking

import "github.com/VelvetStudioPL/salon-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Occupies reports whether an appointment in this status holds its
// (date, time) against new bookings. Cancelling frees the slot.
func (s Status) Occupies() bool {
	return s != StatusCancelled
}

// ===============================
// Validations
// ===============================

// CanConfirm: only a pending appointment awaits confirmation; confirming a
// confirmed one is a harmless no-op for the admin panel.
func CanConfirm(current Status) error {
	if current == StatusCancelled {
		return httperr.ErrBusiness(httperr.CodeInvalidInput)
	}
	return nil
}

// InitialStatus is what a customer-created booking starts as. Admin manual
// bookings bypass it and are created confirmed.
func InitialStatus() Status {
	return StatusPending
}
