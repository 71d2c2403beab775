// Package cache stores read-mostly catalog listings (services, masters)
// served to anonymous visitors.
package cache

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"
)

type Catalog interface {
	// GetJSON decodes the cached value into dst and reports whether it was found.
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, v any) error
	// Invalidate drops every key starting with prefix.
	Invalidate(ctx context.Context, prefix string) error
}

// ===============================
// Nop
// ===============================

type Nop struct{}

func (Nop) GetJSON(context.Context, string, any) (bool, error) { return false, nil }
func (Nop) SetJSON(context.Context, string, any) error         { return nil }
func (Nop) Invalidate(context.Context, string) error           { return nil }

// ===============================
// Memory
// ===============================

type entry struct {
	data    []byte
	expires time.Time
}

// Memory is a process-local Catalog with a fixed TTL.
type Memory struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]entry
	now   func() time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:   ttl,
		items: make(map[string]entry),
		now:   time.Now,
	}
}

func (m *Memory) GetJSON(_ context.Context, key string, dst any) (bool, error) {
	m.mu.Lock()
	e, ok := m.items[key]
	if ok && m.now().After(e.expires) {
		delete(m.items, key)
		ok = false
	}
	m.mu.Unlock()

	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(e.data, dst)
}

func (m *Memory) SetJSON(_ context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.items[key] = entry{data: b, expires: m.now().Add(m.ttl)}
	m.mu.Unlock()
	return nil
}

func (m *Memory) Invalidate(_ context.Context, prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for k := range m.items {
		if strings.HasPrefix(k, prefix) {
			delete(m.items, k)
		}
	}
	return nil
}
