package booking

import (
	"context"
	"errors"

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

type BookAppointmentInput struct {
	UserID int64
	Date   string
	Time   string
	Notes  string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	cache *cache.Availability
}

func NewBookAppointment(repo domain.Repository, availability *cache.Availability) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		cache: availability,
	}
}

// Execute runs the customer booking flow. The slot-exists and conflict checks
// are an optimization; the real double-booking guarantee is the storage-level
// uniqueness constraint, whose violation is reported the same way the checked
// path reports it.
func (uc *BookAppointment) Execute(ctx context.Context, in BookAppointmentInput) (string, error) {

	// 1. Date and time must be well-formed calendar values.
	date, err := dateutil.ParseDate(in.Date)
	if err != nil {
		return "", httperr.ErrBusiness(httperr.CodeInvalidInput)
	}
	timeOfDay, err := dateutil.ParseTime(in.Time)
	if err != nil {
		return "", httperr.ErrBusiness(httperr.CodeInvalidInput)
	}

	// 2. Staff must have opened the slot.
	open, err := uc.repo.SlotExists(ctx, date, timeOfDay)
	if err != nil {
		return "", storageErr("slot lookup", err)
	}
	if !open {
		return "", httperr.ErrBusiness(httperr.CodeSlotNotAvailable)
	}

	// 3. Nobody may already hold it.
	taken, err := uc.repo.HasActiveAppointment(ctx, date, timeOfDay)
	if err != nil {
		return "", storageErr("conflict check", err)
	}
	if taken {
		return "", httperr.ErrBusiness(httperr.CodeSlotAlreadyBooked)
	}

	// 4. Insert as pending. A concurrent booking that slipped past step 3
	//    fails here on the uniqueness constraint.
	ap := &models.Appointment{
		UserID: in.UserID,
		Date:   date,
		Time:   timeOfDay,
		Notes:  in.Notes,
		Status: string(domain.InitialStatus()),
	}
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if errors.Is(err, db.ErrConstraint) {
			return "", httperr.ErrBusiness(httperr.CodeSlotAlreadyBooked)
		}
		return "", storageErr("appointment insert", err)
	}

	uc.cache.Invalidate(ctx, date)

	return "Wizyta została zgłoszona i oczekuje na potwierdzenie", nil
}
