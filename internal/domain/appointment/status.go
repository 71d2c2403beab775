package appointment

import "github.com/BruksfildServices01/salon-booking/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusBooked    Status = "booked"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var ErrInvalidState = httperr.ErrBusiness("invalid_state")

// transitions lists every legal move. Completed and cancelled are terminal.
var transitions = map[Status][]Status{
	StatusBooked: {StatusCompleted, StatusCancelled},
}

func ParseStatus(s string) (Status, bool) {
	switch st := Status(s); st {
	case StatusBooked, StatusCompleted, StatusCancelled:
		return st, true
	}
	return "", false
}

func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

func CanTransition(from, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return ErrInvalidState
}

func CanCancel(current Status) error {
	return CanTransition(current, StatusCancelled)
}

func CanComplete(current Status) error {
	return CanTransition(current, StatusCompleted)
}

func InitialStatus() Status {
	return StatusBooked
}
