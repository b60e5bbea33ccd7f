package audit

import (
	"sync"
	"testing"
	"time"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) Record(ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func TestDispatcherDeliversEvents(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink)

	d.Dispatch(Event{AdminID: 1, Action: "slot_opened", Entity: "slot"})
	d.Dispatch(Event{AdminID: 1, Action: "appointment_confirmed", Entity: "appointment"})

	deadline := time.Now().Add(time.Second)
	for sink.count() < 2 {
		if time.Now().After(deadline) {
			t.Fatalf("expected 2 events, got %d", sink.count())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

type blockingSink struct {
	release chan struct{}
}

func (s *blockingSink) Record(Event) error {
	<-s.release
	return nil
}

func TestDispatchNeverBlocks(t *testing.T) {
	sink := &blockingSink{release: make(chan struct{})}
	defer close(sink.release)

	d := NewDispatcher(sink)

	done := make(chan struct{})
	go func() {
		// Overfill the queue while the sink is stuck.
		for i := 0; i < 300; i++ {
			d.Dispatch(Event{AdminID: 1, Action: "slot_opened"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Dispatch blocked on a full queue")
	}
}
