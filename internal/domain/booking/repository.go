package booking

import (
	"context"

	"github.com/VelvetStudioPL/salon-scheduler/internal/models"
)

// AdminAppointment is the joined admin-panel view of an appointment with the
// owning client's display fields.
type AdminAppointment struct {
	models.Appointment
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	AccountType string `json:"account_type"` // manual or registered
}

// BookedSlot is one occupied time in the admin day view.
type BookedSlot struct {
	Time      string `json:"time"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type Repository interface {
	// -------- Slot store --------
	OpenSlot(ctx context.Context, date, timeOfDay string) error // idempotent
	CloseSlot(ctx context.Context, date, timeOfDay string) error
	SlotExists(ctx context.Context, date, timeOfDay string) (bool, error)
	ListSlotTimes(ctx context.Context, date string) ([]string, error)
	ListDatesWithSlots(ctx context.Context, fromDate string) ([]string, error)

	// -------- Appointment ledger --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	HasActiveAppointment(ctx context.Context, date, timeOfDay string) (bool, error)
	ListBookedTimes(ctx context.Context, date string) ([]BookedSlot, error)
	ListAppointmentsForUser(ctx context.Context, userID int64) ([]models.Appointment, error)
	ListAppointments(ctx context.Context, date, search string) ([]AdminAppointment, error)
	AppointmentStatus(ctx context.Context, id int64) (Status, error)
	ConfirmAppointment(ctx context.Context, id int64) error
	// DeleteAppointment hard-deletes and returns the freed calendar date.
	DeleteAppointment(ctx context.Context, id int64) (string, error)

	// -------- Manual accounts --------
	FindUserIDByEmail(ctx context.Context, email string) (int64, bool, error)
	CreateManualUser(ctx context.Context, firstName, lastName, phone, email string) (int64, error)
}
