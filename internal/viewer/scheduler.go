package viewer

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonlayout/internal/world"
)

// Poster queues events for the viewer's event loop.
type Poster interface {
	PostEvent(ev tcell.Event) error
}

// timerFired is the payload of the interrupt posted when a timer elapses.
type timerFired struct {
	token world.TimerToken
}

// EventScheduler is a world.Scheduler whose callbacks run on the event loop
// goroutine. Timers post an interrupt when they elapse and Dispatch runs the
// callback if it is still pending. Only the event loop goroutine may call its
// methods.
type EventScheduler struct {
	poster  Poster
	next    world.TimerToken
	pending map[world.TimerToken]*scheduled
}

type scheduled struct {
	timer *time.Timer
	fn    func()
}

// NewEventScheduler returns a scheduler posting to p.
func NewEventScheduler(p Poster) *EventScheduler {
	return &EventScheduler{poster: p, pending: make(map[world.TimerToken]*scheduled)}
}

// ScheduleOnce implements world.Scheduler.
func (s *EventScheduler) ScheduleOnce(delay time.Duration, fn func()) world.TimerToken {
	s.next++
	tok := s.next
	poster := s.poster
	s.pending[tok] = &scheduled{
		fn: fn,
		timer: time.AfterFunc(max(delay, 0), func() {
			_ = poster.PostEvent(tcell.NewEventInterrupt(timerFired{token: tok}))
		}),
	}
	return tok
}

// CancelScheduled implements world.Scheduler.
func (s *EventScheduler) CancelScheduled(tok world.TimerToken) {
	if p, ok := s.pending[tok]; ok {
		p.timer.Stop()
		delete(s.pending, tok)
	}
}

// Dispatch runs the callback carried by ev. It reports whether ev belonged to
// this scheduler.
func (s *EventScheduler) Dispatch(ev *tcell.EventInterrupt) bool {
	fired, ok := ev.Data().(timerFired)
	if !ok {
		return false
	}
	p, ok := s.pending[fired.token]
	if !ok {
		return true
	}
	delete(s.pending, fired.token)
	p.fn()
	return true
}

// Pending returns the number of callbacks not yet run.
func (s *EventScheduler) Pending() int {
	return len(s.pending)
}

// Stop cancels every pending callback.
func (s *EventScheduler) Stop() {
	for tok := range s.pending {
		s.CancelScheduled(tok)
	}
}
