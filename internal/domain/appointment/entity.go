package appointment

import (
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// Apply moves ap to the requested status through the matching action.
func Apply(ap *models.Appointment, to Status, now time.Time) error {
	switch to {
	case StatusCancelled:
		return Cancel(ap, now)
	case StatusCompleted:
		return Complete(ap, now)
	}
	return ErrInvalidState
}
