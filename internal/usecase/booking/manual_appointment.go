package booking

import (
	"context"
	"errors"
	"strings"

	"github.com/VelvetStudioPL/salon-scheduler/internal/audit"
	"github.com/VelvetStudioPL/salon-scheduler/internal/cache"
	"github.com/VelvetStudioPL/salon-scheduler/internal/dateutil"
	"github.com/VelvetStudioPL/salon-scheduler/internal/db"
	domain "github.com/VelvetStudioPL/salon-scheduler/internal/domain/booking"
	"github.com/VelvetStudioPL/salon-scheduler/internal/httperr"
	"github.com/VelvetStudioPL/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type ManualAppointmentInput struct {
	AdminID int64

	FirstName string
	LastName  string
	Phone     string
	Email     string

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

// ManualAppointment is the admin walk-in flow: the admin books on behalf of a
// client, reusing their account when the email is known and otherwise
// creating an active manual account with no login credential. The
// appointment is created confirmed, skipping the pending step.
type ManualAppointment struct {
	repo  domain.Repository
	cache *cache.Availability
	audit *audit.Dispatcher
}

func NewManualAppointment(
	repo domain.Repository,
	availability *cache.Availability,
	dispatcher *audit.Dispatcher,
) *ManualAppointment {
	return &ManualAppointment{
		repo:  repo,
		cache: availability,
		audit: dispatcher,
	}
}

func (uc *ManualAppointment) Execute(ctx context.Context, in ManualAppointmentInput) (string, error) {

	// 1. All client fields are required.
	if in.FirstName == "" || in.LastName == "" || in.Phone == "" || in.Email == "" {
		return "", httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "Wszystkie pola są wymagane")
	}
	date, err := dateutil.ParseDate(in.Date)
	if err != nil {
		return "", httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "Wszystkie pola są wymagane")
	}
	timeOfDay, err := dateutil.ParseTime(in.Time)
	if err != nil {
		return "", httperr.ErrBusinessMsg(httperr.CodeInvalidInput, "Wszystkie pola są wymagane")
	}

	// 2. Same slot and conflict rules as the customer flow.
	open, err := uc.repo.SlotExists(ctx, date, timeOfDay)
	if err != nil {
		return "", storageErr("slot lookup", err)
	}
	if !open {
		return "", httperr.ErrBusinessMsg(httperr.CodeSlotNotAvailable, "Ten termin nie jest dostępny w systemie")
	}

	taken, err := uc.repo.HasActiveAppointment(ctx, date, timeOfDay)
	if err != nil {
		return "", storageErr("conflict check", err)
	}
	if taken {
		return "", httperr.ErrBusinessMsg(httperr.CodeSlotAlreadyBooked, "Ten termin jest już zajęty")
	}

	// 3. Resolve the client by email, creating a manual account when unseen.
	email := strings.ToLower(strings.TrimSpace(in.Email))
	userID, found, err := uc.repo.FindUserIDByEmail(ctx, email)
	if err != nil {
		return "", storageErr("user lookup", err)
	}
	if !found {
		userID, err = uc.repo.CreateManualUser(ctx, in.FirstName, in.LastName, in.Phone, email)
		if err != nil {
			return "", storageErr("manual user insert", err)
		}
	}

	// 4. Admin bookings are pre-approved.
	ap := &models.Appointment{
		UserID: userID,
		Date:   date,
		Time:   timeOfDay,
		Notes:  in.Notes,
		Status: string(domain.StatusConfirmed),
	}
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if errors.Is(err, db.ErrConstraint) {
			return "", httperr.ErrBusinessMsg(httperr.CodeSlotAlreadyBooked, "Ten termin jest już zajęty")
		}
		return "", storageErr("appointment insert", err)
	}

	uc.cache.Invalidate(ctx, date)

	uc.audit.Dispatch(audit.Event{
		AdminID:  in.AdminID,
		Action:   "manual_appointment_created",
		Entity:   "appointment",
		Metadata: map[string]string{"date": date, "time": timeOfDay, "email": email},
	})

	return "Wizyta została dodana", nil
}
