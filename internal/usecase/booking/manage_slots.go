package booking

import (
	"context"

	"github.com/VelvetStudioPL/salon-scheduler/internal/audit"
	"github.com/VelvetStudioPL/salon-scheduler/internal/cache"
	"github.com/VelvetStudioPL/salon-scheduler/internal/dateutil"
	domain "github.com/VelvetStudioPL/salon-scheduler/internal/domain/booking"
	"github.com/VelvetStudioPL/salon-scheduler/internal/httperr"
)

// ManageSlots is the admin side of the slot store: opening and closing
// bookable (date, time) units.
type ManageSlots struct {
	repo  domain.Repository
	cache *cache.Availability
	audit *audit.Dispatcher
}

func NewManageSlots(
	repo domain.Repository,
	availability *cache.Availability,
	dispatcher *audit.Dispatcher,
) *ManageSlots {
	return &ManageSlots{
		repo:  repo,
		cache: availability,
		audit: dispatcher,
	}
}

// Open declares a slot. Idempotent: opening an already-open slot succeeds
// without effect.
func (uc *ManageSlots) Open(ctx context.Context, adminID int64, dateStr, timeStr string) error {
	date, err := dateutil.ParseDate(dateStr)
	if err != nil {
		return httperr.ErrBusiness(httperr.CodeInvalidInput)
	}
	timeOfDay, err := dateutil.ParseTime(timeStr)
	if err != nil {
		return httperr.ErrBusiness(httperr.CodeInvalidInput)
	}

	if err := uc.repo.OpenSlot(ctx, date, timeOfDay); err != nil {
		return storageErr("slot open", err)
	}

	uc.cache.Invalidate(ctx, date)
	uc.audit.Dispatch(audit.Event{
		AdminID:  adminID,
		Action:   "slot_opened",
		Entity:   "slot",
		Metadata: map[string]string{"date": date, "time": timeOfDay},
	})
	return nil
}

// Close removes a slot; closing an absent slot is not an error.
func (uc *ManageSlots) Close(ctx context.Context, adminID int64, dateStr, timeStr string) error {
	date, err := dateutil.ParseDate(dateStr)
	if err != nil {
		return httperr.ErrBusiness(httperr.CodeInvalidInput)
	}
	timeOfDay, err := dateutil.ParseTime(timeStr)
	if err != nil {
		return httperr.ErrBusiness(httperr.CodeInvalidInput)
	}

	if err := uc.repo.CloseSlot(ctx, date, timeOfDay); err != nil {
		return storageErr("slot close", err)
	}

	uc.cache.Invalidate(ctx, date)
	uc.audit.Dispatch(audit.Event{
		AdminID:  adminID,
		Action:   "slot_closed",
		Entity:   "slot",
		Metadata: map[string]string{"date": date, "time": timeOfDay},
	})
	return nil
}
