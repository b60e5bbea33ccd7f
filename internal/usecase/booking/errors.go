package booking

import (
	"log"

	"github.com/VelvetStudioPL/salon-scheduler/internal/httperr"
)

// storageErr logs an unexpected storage failure and translates it to the
// recoverable `unavailable` error. Raw storage errors never cross the
// booking-service boundary.
func storageErr(op string, err error) error {
	log.Printf("storage error during %s: %v", op, err)
	return httperr.ErrBusiness(httperr.CodeUnavailable)
}
