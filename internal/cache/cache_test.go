package cache

import (
	"context"
	"testing"
	"time"
)

type item struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func TestMemoryRoundTripAndExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	m := NewMemory(time.Minute)
	m.now = func() time.Time { return now }

	if err := m.SetJSON(ctx, "services:0:100", []item{{1, "Haircut"}}); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got []item
	ok, err := m.GetJSON(ctx, "services:0:100", &got)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if len(got) != 1 || got[0].Name != "Haircut" {
		t.Fatalf("unexpected value: %+v", got)
	}

	now = now.Add(2 * time.Minute)
	if ok, _ := m.GetJSON(ctx, "services:0:100", &got); ok {
		t.Fatal("expected entry to expire")
	}
}

func TestMemoryInvalidatePrefix(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(time.Minute)

	_ = m.SetJSON(ctx, "services:0:100", 1)
	_ = m.SetJSON(ctx, "services:100:100", 2)
	_ = m.SetJSON(ctx, "masters:0:100", 3)

	if err := m.Invalidate(ctx, "services:"); err != nil {
		t.Fatalf("invalidate: %v", err)
	}

	var v int
	if ok, _ := m.GetJSON(ctx, "services:0:100", &v); ok {
		t.Error("services page 0 should be gone")
	}
	if ok, _ := m.GetJSON(ctx, "services:100:100", &v); ok {
		t.Error("services page 1 should be gone")
	}
	if ok, _ := m.GetJSON(ctx, "masters:0:100", &v); !ok || v != 3 {
		t.Error("masters must survive a services invalidation")
	}
}

func TestNopNeverHits(t *testing.T) {
	var c Catalog = Nop{}
	_ = c.SetJSON(context.Background(), "k", 1)

	var v int
	if ok, _ := c.GetJSON(context.Background(), "k", &v); ok {
		t.Fatal("nop cache returned a hit")
	}
}
