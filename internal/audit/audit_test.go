package audit

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/db/dbtest"
)

func TestDispatcherPersistsAndLists(t *testing.T) {
	db := dbtest.New(t)
	logger := New(db)
	d := NewDispatcher(logger)

	d.Dispatch(Event{UserID: Ptr(1), Action: ActionAppointmentBooked, Entity: "appointment", EntityID: Ptr(10)})
	d.Dispatch(Event{UserID: Ptr(1), Action: ActionReviewCreated, Entity: "review", EntityID: Ptr(3)})
	d.Dispatch(Event{UserID: Ptr(2), Action: ActionAppointmentBooked, Entity: "appointment", EntityID: Ptr(11)})
	d.Close()

	page, err := logger.List(context.Background(), Filter{Entity: "appointment"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 2 || len(page.Data) != 2 {
		t.Fatalf("expected 2 appointment rows, got total=%d len=%d", page.Total, len(page.Data))
	}
	if page.Limit != 50 || page.Page != 1 {
		t.Errorf("defaults: page=%d limit=%d", page.Page, page.Limit)
	}
	if *page.Data[0].EntityID != 11 {
		t.Errorf("expected newest first, got entity %d", *page.Data[0].EntityID)
	}

	future := time.Now().Add(time.Hour)
	page, err = logger.List(context.Background(), Filter{From: &future})
	if err != nil {
		t.Fatalf("list future: %v", err)
	}
	if page.Total != 0 {
		t.Errorf("expected nothing after now, got %d", page.Total)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	d := NewDispatcher(New(dbtest.New(t)))
	d.Close()
	d.Close()
}
