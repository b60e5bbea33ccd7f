package booking

import (
	"context"
	"sort"
	"strings"

	"github.com/VelvetStudioPL/salon-scheduler/internal/db"
	domain "github.com/VelvetStudioPL/salon-scheduler/internal/domain/booking"
	"github.com/VelvetStudioPL/salon-scheduler/internal/httperr"
	"github.com/VelvetStudioPL/salon-scheduler/internal/models"
)

type fakeUser struct {
	id        int64
	firstName string
	lastName  string
	phone     string
	email     string
	manual    bool
}

// fakeRepo is the in-memory stand-in for the SQL repository. It enforces the
// same (date, time) uniqueness over non-cancelled appointments that the
// database constraint does, surfacing violations as db.ErrConstraint.
type fakeRepo struct {
	slots        map[string]bool // "date|time"
	appointments []*models.Appointment
	users        []*fakeUser
	nextID       int64

	// raceOnCreate simulates a concurrent booking that lands between the
	// conflict check and the insert.
	raceOnCreate bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{slots: map[string]bool{}, nextID: 1}
}

func key(date, timeOfDay string) string { return date + "|" + timeOfDay }

func (f *fakeRepo) openSlots(date string, times ...string) {
	for _, t := range times {
		f.slots[key(date, t)] = true
	}
}

func (f *fakeRepo) OpenSlot(_ context.Context, date, timeOfDay string) error {
	f.slots[key(date, timeOfDay)] = true
	return nil
}

func (f *fakeRepo) CloseSlot(_ context.Context, date, timeOfDay string) error {
	delete(f.slots, key(date, timeOfDay))
	return nil
}

func (f *fakeRepo) SlotExists(_ context.Context, date, timeOfDay string) (bool, error) {
	return f.slots[key(date, timeOfDay)], nil
}

func (f *fakeRepo) ListSlotTimes(_ context.Context, date string) ([]string, error) {
	times := []string{}
	for k := range f.slots {
		if strings.HasPrefix(k, date+"|") {
			times = append(times, strings.TrimPrefix(k, date+"|"))
		}
	}
	sort.Strings(times)
	return times, nil
}

func (f *fakeRepo) ListDatesWithSlots(_ context.Context, fromDate string) ([]string, error) {
	seen := map[string]bool{}
	for k := range f.slots {
		date := strings.SplitN(k, "|", 2)[0]
		if date >= fromDate {
			seen[date] = true
		}
	}
	dates := []string{}
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if f.raceOnCreate {
		f.raceOnCreate = false
		return db.ErrConstraint
	}
	for _, existing := range f.appointments {
		if existing.Date == ap.Date && existing.Time == ap.Time &&
			domain.Status(existing.Status).Occupies() {
			return db.ErrConstraint
		}
	}
	ap.ID = f.nextID
	f.nextID++
	f.appointments = append(f.appointments, ap)
	return nil
}

func (f *fakeRepo) HasActiveAppointment(_ context.Context, date, timeOfDay string) (bool, error) {
	for _, ap := range f.appointments {
		if ap.Date == date && ap.Time == timeOfDay && domain.Status(ap.Status).Occupies() {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) ListBookedTimes(_ context.Context, date string) ([]domain.BookedSlot, error) {
	booked := []domain.BookedSlot{}
	for _, ap := range f.appointments {
		if ap.Date == date && domain.Status(ap.Status).Occupies() {
			b := domain.BookedSlot{Time: ap.Time}
			if u := f.userByID(ap.UserID); u != nil {
				b.FirstName, b.LastName = u.firstName, u.lastName
			}
			booked = append(booked, b)
		}
	}
	sort.Slice(booked, func(i, j int) bool { return booked[i].Time < booked[j].Time })
	return booked, nil
}

func (f *fakeRepo) ListAppointmentsForUser(_ context.Context, userID int64) ([]models.Appointment, error) {
	out := []models.Appointment{}
	for _, ap := range f.appointments {
		if ap.UserID == userID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointments(_ context.Context, date, search string) ([]domain.AdminAppointment, error) {
	out := []domain.AdminAppointment{}
	for _, ap := range f.appointments {
		if date != "" && ap.Date != date {
			continue
		}
		out = append(out, domain.AdminAppointment{Appointment: *ap})
	}
	return out, nil
}

func (f *fakeRepo) AppointmentStatus(_ context.Context, id int64) (domain.Status, error) {
	for _, ap := range f.appointments {
		if ap.ID == id {
			return domain.Status(ap.Status), nil
		}
	}
	return "", httperr.ErrBusiness(httperr.CodeNotFound)
}

func (f *fakeRepo) ConfirmAppointment(_ context.Context, id int64) error {
	for _, ap := range f.appointments {
		if ap.ID == id {
			ap.Status = string(domain.StatusConfirmed)
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeNotFound)
}

func (f *fakeRepo) DeleteAppointment(_ context.Context, id int64) (string, error) {
	for i, ap := range f.appointments {
		if ap.ID == id {
			f.appointments = append(f.appointments[:i], f.appointments[i+1:]...)
			return ap.Date, nil
		}
	}
	return "", httperr.ErrBusiness(httperr.CodeNotFound)
}

func (f *fakeRepo) FindUserIDByEmail(_ context.Context, email string) (int64, bool, error) {
	for _, u := range f.users {
		if u.email == email {
			return u.id, true, nil
		}
	}
	return 0, false, nil
}

func (f *fakeRepo) CreateManualUser(_ context.Context, firstName, lastName, phone, email string) (int64, error) {
	u := &fakeUser{
		id:        f.nextID,
		firstName: firstName,
		lastName:  lastName,
		phone:     phone,
		email:     email,
		manual:    true,
	}
	f.nextID++
	f.users = append(f.users, u)
	return u.id, nil
}

// deleteUser removes the user and, like the ON DELETE CASCADE foreign key in
// the real schema, every appointment that references them.
func (f *fakeRepo) deleteUser(id int64) {
	for i, u := range f.users {
		if u.id == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			break
		}
	}
	kept := f.appointments[:0]
	for _, ap := range f.appointments {
		if ap.UserID != id {
			kept = append(kept, ap)
		}
	}
	f.appointments = kept
}

func (f *fakeRepo) userByID(id int64) *fakeUser {
	for _, u := range f.users {
		if u.id == id {
			return u
		}
	}
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)
