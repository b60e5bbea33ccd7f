package booking

import (
	"context"
	"testing"

	"github.com/VelvetStudioPL/salon-scheduler/internal/audit"
	domain "github.com/VelvetStudioPL/salon-scheduler/internal/domain/booking"
	"github.com/VelvetStudioPL/salon-scheduler/internal/httperr"
)

type discardSink struct{}

func (discardSink) Record(audit.Event) error { return nil }

func newManualUC(repo *fakeRepo) *ManualAppointment {
	return NewManualAppointment(repo, nil, audit.NewDispatcher(discardSink{}))
}

func TestManualAppointmentRequiresAllClientFields(t *testing.T) {
	repo := newFakeRepo()
	repo.openSlots("2026-09-01", "10:00:00")
	uc := newManualUC(repo)

	in := ManualAppointmentInput{
		AdminID: 1, FirstName: "Anna", LastName: "Nowak",
		Phone: "600100200", Email: "anna@example.com",
		Date: "2026-09-01", Time: "10:00",
	}

	for _, blank := range []func(*ManualAppointmentInput){
		func(i *ManualAppointmentInput) { i.FirstName = "" },
		func(i *ManualAppointmentInput) { i.LastName = "" },
		func(i *ManualAppointmentInput) { i.Phone = "" },
		func(i *ManualAppointmentInput) { i.Email = "" },
		func(i *ManualAppointmentInput) { i.Date = "" },
		func(i *ManualAppointmentInput) { i.Time = "" },
	} {
		bad := in
		blank(&bad)
		if _, err := uc.Execute(context.Background(), bad); !httperr.IsBusiness(err, httperr.CodeInvalidInput) {
			t.Errorf("missing field must be invalid_input, got %v", err)
		}
	}
}

func TestManualAppointmentCreatesManualAccountForUnknownEmail(t *testing.T) {
	repo := newFakeRepo()
	repo.openSlots("2026-09-01", "10:00:00")
	uc := newManualUC(repo)

	msg, err := uc.Execute(context.Background(), ManualAppointmentInput{
		AdminID: 1, FirstName: "Anna", LastName: "Nowak",
		Phone: "600100200", Email: "Anna@Example.com",
		Date: "2026-09-01", Time: "10:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != "Wizyta została dodana" {
		t.Errorf("unexpected message %q", msg)
	}

	if len(repo.users) != 1 {
		t.Fatalf("want 1 manual user, got %d", len(repo.users))
	}
	u := repo.users[0]
	if !u.manual {
		t.Error("created account must be manual")
	}
	if u.email != "anna@example.com" {
		t.Errorf("email must be normalized to lower case, got %q", u.email)
	}

	if len(repo.appointments) != 1 {
		t.Fatalf("want 1 appointment, got %d", len(repo.appointments))
	}
	ap := repo.appointments[0]
	if ap.UserID != u.id {
		t.Errorf("appointment must belong to the manual account")
	}
	if ap.Status != string(domain.StatusConfirmed) {
		t.Errorf("admin booking must be created confirmed, got %q", ap.Status)
	}
}

func TestManualAppointmentReusesKnownAccount(t *testing.T) {
	repo := newFakeRepo()
	repo.openSlots("2026-09-01", "10:00:00")
	existingID, _ := repo.CreateManualUser(context.Background(), "Anna", "Nowak", "600100200", "anna@example.com")
	uc := newManualUC(repo)

	_, err := uc.Execute(context.Background(), ManualAppointmentInput{
		AdminID: 1, FirstName: "Anna", LastName: "Nowak",
		Phone: "600100200", Email: " anna@example.com ",
		Date: "2026-09-01", Time: "10:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.users) != 1 {
		t.Fatalf("known email must not create a second account, have %d", len(repo.users))
	}
	if repo.appointments[0].UserID != existingID {
		t.Errorf("appointment must reuse account %d, got %d", existingID, repo.appointments[0].UserID)
	}
}

func TestManualAppointmentEnforcesSlotRules(t *testing.T) {
	repo := newFakeRepo()
	repo.openSlots("2026-09-01", "10:00:00")
	uc := newManualUC(repo)

	in := ManualAppointmentInput{
		AdminID: 1, FirstName: "Anna", LastName: "Nowak",
		Phone: "600100200", Email: "anna@example.com",
		Date: "2026-09-01", Time: "11:00",
	}
	if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, httperr.CodeSlotNotAvailable) {
		t.Fatalf("undeclared slot: want slot_not_available, got %v", err)
	}

	in.Time = "10:00"
	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in.Email = "ktos.inny@example.com"
	if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, httperr.CodeSlotAlreadyBooked) {
		t.Fatalf("occupied slot: want slot_already_booked, got %v", err)
	}
}
