package schedule

import (
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// FitsShifts reports whether [start, end) lies inside one of the shifts.
// A day without shifts places no constraint.
func FitsShifts(shifts []models.Shift, start, end time.Time) bool {
	if len(shifts) == 0 {
		return true
	}

	for _, s := range shifts {
		if !start.Before(s.StartTime) && !end.After(s.EndTime) {
			return true
		}
	}
	return false
}
