package timer

import (
	"sync"
	"time"
)

// Event is sent when an interval fires. EventName is the engine event key
// the host should deliver (e.g. "User:Tick").
type Event struct {
	ID        int
	EventName string
	Repeating bool
}

// Service schedules interval updaters: timers that feed engine events so
// components like clocks can subscribe without a native host event. It
// owns ID generation, scheduling, repeating logic, and cancellation.
//
// Firing happens on timer goroutines; the events channel carries them to
// whoever marshals onto the engine's single thread. Uses fixed-interval
// semantics: repeating timers reschedule immediately on fire.
type Service struct {
	events chan<- Event
	timers map[int]*entry
	nextID int
	mu     sync.Mutex
}

type entry struct {
	name     string
	interval time.Duration // 0 = one-shot, >0 = repeating
	cancel   func() bool   // time.Timer.Stop
}

// NewService creates a timer service that sends fired events.
func NewService(events chan<- Event) *Service {
	return &Service{
		events: events,
		timers: make(map[int]*entry),
	}
}

// After schedules a one-shot event delivery. Returns the timer ID.
func (s *Service) After(d time.Duration, eventName string) int {
	return s.schedule(d, 0, eventName)
}

// Every schedules a repeating event delivery. Returns the timer ID.
func (s *Service) Every(d time.Duration, eventName string) int {
	return s.schedule(d, d, eventName)
}

func (s *Service) schedule(d, interval time.Duration, name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID

	t := time.AfterFunc(d, func() {
		s.fire(id)
	})

	s.timers[id] = &entry{
		name:     name,
		interval: interval,
		cancel:   t.Stop,
	}

	return id
}

// fire sends the timer event and reschedules if repeating.
func (s *Service) fire(id int) {
	s.mu.Lock()
	e, ok := s.timers[id]
	if !ok {
		s.mu.Unlock()
		return // Cancelled before firing
	}

	name := e.name
	repeating := e.interval > 0

	if repeating {
		// Fixed-interval: reschedule immediately
		t := time.AfterFunc(e.interval, func() {
			s.fire(id)
		})
		e.cancel = t.Stop
	} else {
		// One-shot: clean up
		delete(s.timers, id)
	}
	s.mu.Unlock()

	select {
	case s.events <- Event{ID: id, EventName: name, Repeating: repeating}:
	default:
		// Receiver shutting down or buffer full
	}
}

// Cancel stops a timer and removes it.
func (s *Service) Cancel(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.timers[id]; ok {
		e.cancel()
		delete(s.timers, id)
	}
}

// CancelAll stops all timers and clears the map.
func (s *Service) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.timers {
		e.cancel()
	}
	s.timers = make(map[int]*entry)
}
