package booking

import (
	"context"
	"testing"

	"github.com/VelvetStudioPL/salon-scheduler/internal/audit"
	domain "github.com/VelvetStudioPL/salon-scheduler/internal/domain/booking"
	"github.com/VelvetStudioPL/salon-scheduler/internal/httperr"
)

func newManageUC(repo *fakeRepo) *ManageAppointments {
	return NewManageAppointments(repo, nil, audit.NewDispatcher(discardSink{}))
}

func TestConfirmAppointment(t *testing.T) {
	repo := newFakeRepo()
	repo.openSlots("2099-01-01", "10:00:00")
	book := NewBookAppointment(repo, nil)
	uc := newManageUC(repo)
	ctx := context.Background()

	if _, err := book.Execute(ctx, BookAppointmentInput{UserID: 1, Date: "2099-01-01", Time: "10:00"}); err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	id := repo.appointments[0].ID

	msg, err := uc.Confirm(ctx, 1, id)
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if msg != "Wizyta została potwierdzona" {
		t.Errorf("unexpected message %q", msg)
	}
	if repo.appointments[0].Status != string(domain.StatusConfirmed) {
		t.Errorf("status not updated, got %q", repo.appointments[0].Status)
	}

	// Re-confirming an already confirmed appointment stays a success.
	if _, err := uc.Confirm(ctx, 1, id); err != nil {
		t.Errorf("re-confirm must be a no-op success, got %v", err)
	}
}

func TestConfirmCancelledAppointment(t *testing.T) {
	repo := newFakeRepo()
	repo.openSlots("2099-01-01", "10:00:00")
	book := NewBookAppointment(repo, nil)
	uc := newManageUC(repo)
	ctx := context.Background()

	if _, err := book.Execute(ctx, BookAppointmentInput{UserID: 1, Date: "2099-01-01", Time: "10:00"}); err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	repo.appointments[0].Status = string(domain.StatusCancelled)

	if _, err := uc.Confirm(ctx, 1, repo.appointments[0].ID); !httperr.IsBusiness(err, httperr.CodeInvalidInput) {
		t.Fatalf("confirming a cancelled appointment must be invalid_input, got %v", err)
	}
	if repo.appointments[0].Status != string(domain.StatusCancelled) {
		t.Errorf("status changed to %q", repo.appointments[0].Status)
	}
}

func TestDeletingUserRemovesTheirAppointments(t *testing.T) {
	repo := newFakeRepo()
	repo.openSlots("2099-01-01", "10:00:00")
	uc := newManualUC(repo)
	ctx := context.Background()

	if _, err := uc.Execute(ctx, ManualAppointmentInput{
		AdminID: 1, FirstName: "Anna", LastName: "Nowak",
		Phone: "600100200", Email: "anna@example.com",
		Date: "2099-01-01", Time: "10:00",
	}); err != nil {
		t.Fatalf("manual booking failed: %v", err)
	}
	userID := repo.appointments[0].UserID

	repo.deleteUser(userID)

	if got, _ := repo.ListAppointmentsForUser(ctx, userID); len(got) != 0 {
		t.Fatalf("appointments survived their owner: %v", got)
	}
	if occupied, _ := repo.HasActiveAppointment(ctx, "2099-01-01", "10:00:00"); occupied {
		t.Fatal("slot still occupied by an orphaned appointment")
	}

	// The freed slot is bookable again.
	book := NewBookAppointment(repo, nil)
	if _, err := book.Execute(ctx, BookAppointmentInput{UserID: 7, Date: "2099-01-01", Time: "10:00"}); err != nil {
		t.Fatalf("rebooking the freed slot failed: %v", err)
	}
}

func TestConfirmUnknownAppointment(t *testing.T) {
	uc := newManageUC(newFakeRepo())

	if _, err := uc.Confirm(context.Background(), 1, 42); !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Fatalf("want not_found, got %v", err)
	}
}

func TestDeleteUnknownAppointment(t *testing.T) {
	uc := newManageUC(newFakeRepo())

	if _, err := uc.Delete(context.Background(), 1, 42); !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Fatalf("want not_found, got %v", err)
	}
}

func TestListRejectsMalformedDateFilter(t *testing.T) {
	uc := newManageUC(newFakeRepo())

	if _, err := uc.List(context.Background(), "wczoraj", ""); !httperr.IsBusiness(err, httperr.CodeInvalidInput) {
		t.Fatalf("want invalid_input, got %v", err)
	}
}

func TestOpenSlotIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	uc := NewManageSlots(repo, nil, audit.NewDispatcher(discardSink{}))
	ctx := context.Background()

	if err := uc.Open(ctx, 1, "2099-01-01", "10:00"); err != nil {
		t.Fatalf("first open failed: %v", err)
	}
	if err := uc.Open(ctx, 1, "2099-01-01", "10:00"); err != nil {
		t.Fatalf("second open must succeed, got %v", err)
	}

	times, _ := repo.ListSlotTimes(ctx, "2099-01-01")
	if len(times) != 1 {
		t.Errorf("want a single slot, got %v", times)
	}
}

func TestCloseAbsentSlotSucceeds(t *testing.T) {
	uc := NewManageSlots(newFakeRepo(), nil, audit.NewDispatcher(discardSink{}))

	if err := uc.Close(context.Background(), 1, "2099-01-01", "10:00"); err != nil {
		t.Fatalf("closing an absent slot must not fail, got %v", err)
	}
}
