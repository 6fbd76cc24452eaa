package world

import (
	"sort"
	"time"
)

// TimerToken identifies a scheduled callback. The zero token is never issued.
type TimerToken uint64

// Scheduler runs fire-once deferred callbacks.
type Scheduler interface {
	ScheduleOnce(delay time.Duration, fn func()) TimerToken
	// CancelScheduled revokes tok. Cancelling a fired or unknown token is a
	// no-op.
	CancelScheduled(tok TimerToken)
}

type pendingCall struct {
	token TimerToken
	due   time.Duration
	fn    func()
}

// ManualScheduler is a Scheduler driven by explicit Advance calls, so
// deferred work runs on the caller's goroutine at a chosen virtual time.
type ManualScheduler struct {
	now     time.Duration
	next    TimerToken
	pending []pendingCall
}

// NewManualScheduler returns a scheduler at virtual time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// ScheduleOnce implements Scheduler.
func (s *ManualScheduler) ScheduleOnce(delay time.Duration, fn func()) TimerToken {
	if delay < 0 {
		delay = 0
	}
	s.next++
	s.pending = append(s.pending, pendingCall{token: s.next, due: s.now + delay, fn: fn})
	return s.next
}

// CancelScheduled implements Scheduler.
func (s *ManualScheduler) CancelScheduled(tok TimerToken) {
	for i, p := range s.pending {
		if p.token == tok {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

// Pending returns the number of callbacks not yet fired.
func (s *ManualScheduler) Pending() int {
	return len(s.pending)
}

// Now returns the current virtual time.
func (s *ManualScheduler) Now() time.Duration {
	return s.now
}

// Advance moves virtual time forward by d and fires every callback that
// became due, in due order. Callbacks scheduled while firing run in the same
// call if they fall within the window. It returns the number fired.
func (s *ManualScheduler) Advance(d time.Duration) int {
	target := s.now + d
	fired := 0
	for {
		idx := s.nextDue(target)
		if idx < 0 {
			break
		}
		call := s.pending[idx]
		s.pending = append(s.pending[:idx], s.pending[idx+1:]...)
		if call.due > s.now {
			s.now = call.due
		}
		call.fn()
		fired++
	}
	s.now = target
	return fired
}

// Flush fires all pending callbacks regardless of their delay.
func (s *ManualScheduler) Flush() int {
	fired := 0
	for len(s.pending) > 0 {
		sort.SliceStable(s.pending, func(i, j int) bool {
			return s.pending[i].due < s.pending[j].due
		})
		fired += s.Advance(s.pending[0].due - s.now)
	}
	return fired
}

func (s *ManualScheduler) nextDue(target time.Duration) int {
	idx := -1
	for i, p := range s.pending {
		if p.due > target {
			continue
		}
		if idx < 0 || p.due < s.pending[idx].due {
			idx = i
		}
	}
	return idx
}
