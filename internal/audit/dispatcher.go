package audit

import "log"

// Event records one admin action (slot opened, appointment confirmed, user
// deleted, ...) for the back-office trail.
type Event struct {
	AdminID  int64
	Action   string
	Entity   string
	EntityID *int64
	Metadata any
}

type Sink interface {
	Record(ev Event) error
}

type Dispatcher struct {
	sink  Sink
	queue chan Event
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Record(ev); err != nil {
			log.Println("audit error:", err)
		}
	}
}

// Dispatch never blocks a request: when the queue is full the event is
// dropped with a log line instead.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Println("audit queue full, dropping event")
	}
}
