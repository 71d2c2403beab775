package appointment

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		ok       bool
	}{
		{StatusBooked, StatusCompleted, true},
		{StatusBooked, StatusCancelled, true},
		{StatusBooked, StatusBooked, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusBooked, false},
		{StatusCancelled, StatusBooked, false},
		{StatusCancelled, StatusCompleted, false},
	}

	for _, tt := range tests {
		err := CanTransition(tt.from, tt.to)
		if (err == nil) != tt.ok {
			t.Errorf("%s -> %s: err = %v, want ok=%v", tt.from, tt.to, err, tt.ok)
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	if StatusBooked.Terminal() {
		t.Error("booked is not terminal")
	}
	if !StatusCompleted.Terminal() || !StatusCancelled.Terminal() {
		t.Error("completed and cancelled are terminal")
	}
}

func TestCancelSetsTimestamp(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusBooked)}

	if err := Cancel(ap, now); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if ap.Status != string(StatusCancelled) || ap.CancelledAt == nil || !ap.CancelledAt.Equal(now) {
		t.Fatalf("unexpected appointment: %+v", ap)
	}

	if err := Complete(ap, now); err != ErrInvalidState {
		t.Fatalf("completing a cancelled appointment: got %v", err)
	}
}

func TestApply(t *testing.T) {
	now := time.Now()
	ap := &models.Appointment{Status: string(StatusBooked)}

	if err := Apply(ap, StatusBooked, now); err != ErrInvalidState {
		t.Fatalf("apply booked: got %v", err)
	}
	if err := Apply(ap, StatusCompleted, now); err != nil {
		t.Fatalf("apply completed: %v", err)
	}
	if ap.CompletedAt == nil {
		t.Fatal("completed_at not set")
	}
}

func TestParseStatus(t *testing.T) {
	if _, ok := ParseStatus("scheduled"); ok {
		t.Error("unknown status accepted")
	}
	if s, ok := ParseStatus("booked"); !ok || s != StatusBooked {
		t.Errorf("got %q %v", s, ok)
	}
}
