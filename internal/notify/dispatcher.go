package notify

import "log"

type Event struct {
	UserID  uint
	Message string
	Type    string
}

// Sink is what use cases push notifications through. The async Dispatcher
// implements it for production; tests swap in a synchronous recorder.
type Sink interface {
	Dispatch(ev Event)
}

type Dispatcher struct {
	store *Store
	queue chan Event
}

func NewDispatcher(store *Store) *Dispatcher {
	d := &Dispatcher{
		store: store,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.store.Save(ev.UserID, ev.Message, ev.Type); err != nil {
			log.Println("notify error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// queued
	default:
		// full queue never blocks a booking request
		log.Println("notify queue full, dropping event")
	}
}
