package booking

import (
	"context"
	"reflect"
	"testing"

	"github.com/VelvetStudioPL/salon-scheduler/internal/audit"
	"github.com/VelvetStudioPL/salon-scheduler/internal/httperr"
)

func TestAvailabilityDatesListsOnlyFutureDatesWithSlots(t *testing.T) {
	repo := newFakeRepo()
	repo.openSlots("2099-01-02", "10:00:00")
	repo.openSlots("2099-01-01", "09:00:00", "10:00:00")
	repo.openSlots("2000-01-01", "10:00:00") // long past
	uc := NewAvailability(repo, nil)

	dates, err := uc.Dates(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"2099-01-01", "2099-01-02"}
	if !reflect.DeepEqual(dates, want) {
		t.Errorf("want %v, got %v", want, dates)
	}
}

func TestSlotsForDateSubtractsBookedTimes(t *testing.T) {
	repo := newFakeRepo()
	repo.openSlots("2099-01-01", "09:00:00", "10:00:00", "11:00:00")
	uc := NewAvailability(repo, nil)
	book := NewBookAppointment(repo, nil)

	if _, err := book.Execute(context.Background(), BookAppointmentInput{
		UserID: 1, Date: "2099-01-01", Time: "10:00",
	}); err != nil {
		t.Fatalf("booking failed: %v", err)
	}

	free, err := uc.SlotsForDate(context.Background(), "2099-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"09:00:00", "11:00:00"}
	if !reflect.DeepEqual(free, want) {
		t.Errorf("want %v, got %v", want, free)
	}
}

func TestSlotsForDateRejectsMalformedDate(t *testing.T) {
	uc := NewAvailability(newFakeRepo(), nil)

	if _, err := uc.SlotsForDate(context.Background(), "01-01-2099"); !httperr.IsBusiness(err, httperr.CodeInvalidInput) {
		t.Fatalf("want invalid_input, got %v", err)
	}
}

func TestAdminDayPairsFreeAndBooked(t *testing.T) {
	repo := newFakeRepo()
	repo.openSlots("2099-01-01", "09:00:00", "10:00:00")
	uc := NewAvailability(repo, nil)
	manual := newManualUC(repo)

	if _, err := manual.Execute(context.Background(), ManualAppointmentInput{
		AdminID: 1, FirstName: "Anna", LastName: "Nowak",
		Phone: "600100200", Email: "anna@example.com",
		Date: "2099-01-01", Time: "09:00",
	}); err != nil {
		t.Fatalf("manual booking failed: %v", err)
	}

	free, booked, err := uc.AdminDay(context.Background(), "2099-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"10:00:00"}; !reflect.DeepEqual(free, want) {
		t.Errorf("free: want %v, got %v", want, free)
	}
	if len(booked) != 1 || booked[0].Time != "09:00:00" {
		t.Fatalf("booked: want 09:00:00, got %v", booked)
	}
	if booked[0].FirstName != "Anna" || booked[0].LastName != "Nowak" {
		t.Errorf("booked slot must carry the holder's name, got %+v", booked[0])
	}
}

// Full slot lifecycle: open, book, delete the appointment, and the time is
// bookable again.
func TestSlotLifecycle(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()
	dispatcher := audit.NewDispatcher(discardSink{})

	slots := NewManageSlots(repo, nil, dispatcher)
	appointments := NewManageAppointments(repo, nil, dispatcher)
	book := NewBookAppointment(repo, nil)
	availability := NewAvailability(repo, nil)

	if err := slots.Open(ctx, 1, "2099-01-01", "10:00"); err != nil {
		t.Fatalf("open failed: %v", err)
	}

	if _, err := book.Execute(ctx, BookAppointmentInput{UserID: 5, Date: "2099-01-01", Time: "10:00"}); err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	if free, _ := availability.SlotsForDate(ctx, "2099-01-01"); len(free) != 0 {
		t.Fatalf("slot must be gone from the free list, got %v", free)
	}

	if _, err := appointments.Confirm(ctx, 1, repo.appointments[0].ID); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if free, _ := availability.SlotsForDate(ctx, "2099-01-01"); len(free) != 0 {
		t.Fatalf("confirming must not free the slot, got %v", free)
	}

	if _, err := appointments.Delete(ctx, 1, repo.appointments[0].ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if free, _ := availability.SlotsForDate(ctx, "2099-01-01"); !reflect.DeepEqual(free, []string{"10:00:00"}) {
		t.Fatalf("deleting the appointment must free the slot, got %v", free)
	}
}
