package audit

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

const (
	ActionAppointmentBooked    = "appointment_booked"
	ActionAppointmentCancelled = "appointment_cancelled"
	ActionAppointmentCompleted = "appointment_completed"
	ActionReviewCreated        = "review_created"
	ActionReviewDeleted        = "review_deleted"
	ActionServiceCreated       = "service_created"
	ActionServiceUpdated       = "service_updated"
	ActionServiceDeleted       = "service_deleted"
	ActionMasterCreated        = "master_created"
	ActionMasterUpdated        = "master_updated"
	ActionMasterDeleted        = "master_deleted"
	ActionUserRegistered       = "user_registered"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Sink receives audit events. Use cases depend on this, not on Dispatcher.
type Sink interface {
	Dispatch(ev Event)
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
	wg     sync.WaitGroup
	once   sync.Once
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for ev := range d.queue {
		if err := d.logger.Log(context.Background(), ev); err != nil {
			log.Error().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
	}
}

// Dispatch never blocks: when the queue is full the event is dropped.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close stops accepting events and waits for the queue to drain.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}

// Discard drops every event.
type Discard struct{}

func (Discard) Dispatch(Event) {}

func Ptr(v uint) *uint {
	return &v
}

var (
	_ Sink = (*Dispatcher)(nil)
	_ Sink = Discard{}
)
