package booking

import (
	"context"

	"github.com/VelvetStudioPL/salon-scheduler/internal/audit"
	"github.com/VelvetStudioPL/salon-scheduler/internal/cache"
	"github.com/VelvetStudioPL/salon-scheduler/internal/dateutil"
	domain "github.com/VelvetStudioPL/salon-scheduler/internal/domain/booking"
	"github.com/VelvetStudioPL/salon-scheduler/internal/httperr"
	"github.com/VelvetStudioPL/salon-scheduler/internal/models"
)

// ManageAppointments covers the admin appointment operations: the joined
// list view, confirmation and hard deletion.
type ManageAppointments struct {
	repo  domain.Repository
	cache *cache.Availability
	audit *audit.Dispatcher
}

func NewManageAppointments(
	repo domain.Repository,
	availability *cache.Availability,
	dispatcher *audit.Dispatcher,
) *ManageAppointments {
	return &ManageAppointments{
		repo:  repo,
		cache: availability,
		audit: dispatcher,
	}
}

func (uc *ManageAppointments) List(ctx context.Context, date, search string) ([]domain.AdminAppointment, error) {
	if date != "" {
		normalized, err := dateutil.ParseDate(date)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidInput)
		}
		date = normalized
	}

	appointments, err := uc.repo.ListAppointments(ctx, date, search)
	if err != nil {
		return nil, storageErr("appointment listing", err)
	}
	return appointments, nil
}

func (uc *ManageAppointments) ListForUser(ctx context.Context, userID int64) ([]models.Appointment, error) {
	appointments, err := uc.repo.ListAppointmentsForUser(ctx, userID)
	if err != nil {
		return nil, storageErr("user appointment listing", err)
	}
	return appointments, nil
}

func (uc *ManageAppointments) Confirm(ctx context.Context, adminID, id int64) (string, error) {
	status, err := uc.repo.AppointmentStatus(ctx, id)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			return "", err
		}
		return "", storageErr("appointment lookup", err)
	}
	if err := domain.CanConfirm(status); err != nil {
		return "", err
	}

	if err := uc.repo.ConfirmAppointment(ctx, id); err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			return "", err
		}
		return "", storageErr("appointment confirm", err)
	}

	uc.audit.Dispatch(audit.Event{
		AdminID:  adminID,
		Action:   "appointment_confirmed",
		Entity:   "appointment",
		EntityID: &id,
	})
	return "Wizyta została potwierdzona", nil
}

func (uc *ManageAppointments) Delete(ctx context.Context, adminID, id int64) (string, error) {
	freedDate, err := uc.repo.DeleteAppointment(ctx, id)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			return "", err
		}
		return "", storageErr("appointment delete", err)
	}

	uc.cache.Invalidate(ctx, freedDate)
	uc.audit.Dispatch(audit.Event{
		AdminID:  adminID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &id,
	})
	return "Wizyta została usunięta", nil
}
