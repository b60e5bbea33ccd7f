package booking

import (
	"context"

	"github.com/VelvetStudioPL/salon-scheduler/internal/cache"
	"github.com/VelvetStudioPL/salon-scheduler/internal/dateutil"
	domain "github.com/VelvetStudioPL/salon-scheduler/internal/domain/booking"
	"github.com/VelvetStudioPL/salon-scheduler/internal/httperr"
)

// Availability answers the customer-facing calendar queries. Responses may be
// served from the advisory cache; booking re-validates, so staleness is
// bounded and harmless.
type Availability struct {
	repo  domain.Repository
	cache *cache.Availability
}

func NewAvailability(repo domain.Repository, availability *cache.Availability) *Availability {
	return &Availability{
		repo:  repo,
		cache: availability,
	}
}

// Dates lists the calendar dates from today (UTC) forward that have at least
// one open slot.
func (uc *Availability) Dates(ctx context.Context) ([]string, error) {
	if dates, ok := uc.cache.GetDates(ctx); ok {
		return dates, nil
	}

	dates, err := uc.repo.ListDatesWithSlots(ctx, dateutil.Today())
	if err != nil {
		return nil, storageErr("date listing", err)
	}

	uc.cache.SetDates(ctx, dates)
	return dates, nil
}

// SlotsForDate lists the open slot times for a date minus the times occupied
// by a non-cancelled appointment, ascending.
func (uc *Availability) SlotsForDate(ctx context.Context, date string) ([]string, error) {
	date, err := dateutil.ParseDate(date)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput)
	}

	if slots, ok := uc.cache.GetSlots(ctx, date); ok {
		return slots, nil
	}

	open, err := uc.repo.ListSlotTimes(ctx, date)
	if err != nil {
		return nil, storageErr("slot listing", err)
	}
	booked, err := uc.repo.ListBookedTimes(ctx, date)
	if err != nil {
		return nil, storageErr("booked listing", err)
	}

	free := subtractBooked(open, booked)
	uc.cache.SetSlots(ctx, date, free)
	return free, nil
}

// AdminDay is the back-office day view: remaining free times plus who holds
// the booked ones.
func (uc *Availability) AdminDay(ctx context.Context, date string) ([]string, []domain.BookedSlot, error) {
	date, err := dateutil.ParseDate(date)
	if err != nil {
		return nil, nil, httperr.ErrBusiness(httperr.CodeInvalidInput)
	}

	open, err := uc.repo.ListSlotTimes(ctx, date)
	if err != nil {
		return nil, nil, storageErr("slot listing", err)
	}
	booked, err := uc.repo.ListBookedTimes(ctx, date)
	if err != nil {
		return nil, nil, storageErr("booked listing", err)
	}

	return subtractBooked(open, booked), booked, nil
}

func subtractBooked(open []string, booked []domain.BookedSlot) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		taken[b.Time] = struct{}{}
	}

	free := []string{}
	for _, t := range open {
		if _, ok := taken[t]; !ok {
			free = append(free, t)
		}
	}
	return free
}
