package timer

import (
	"testing"
	"time"
)

func TestAfterDeliversEventName(t *testing.T) {
	events := make(chan Event, 4)
	s := NewService(events)
	defer s.CancelAll()

	s.After(5*time.Millisecond, "User:Tick")

	select {
	case ev := <-events:
		if ev.EventName != "User:Tick" || ev.Repeating {
			t.Errorf("got %+v, want one-shot User:Tick", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("timer never fired")
	}
}

func TestEveryRepeats(t *testing.T) {
	events := make(chan Event, 16)
	s := NewService(events)
	defer s.CancelAll()

	s.Every(5*time.Millisecond, "User:Clock")

	for i := 0; i < 2; i++ {
		select {
		case ev := <-events:
			if !ev.Repeating || ev.EventName != "User:Clock" {
				t.Errorf("fire %d: got %+v", i, ev)
			}
		case <-time.After(time.Second):
			t.Fatalf("fire %d never arrived", i)
		}
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	events := make(chan Event, 4)
	s := NewService(events)

	id := s.After(50*time.Millisecond, "User:Never")
	s.Cancel(id)

	select {
	case ev := <-events:
		t.Errorf("cancelled timer fired: %+v", ev)
	case <-time.After(100 * time.Millisecond):
	}
}
