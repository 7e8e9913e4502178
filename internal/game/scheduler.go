package game

import "time"

// Scheduler runs one-shot callbacks on the game clock. Callbacks fire from
// Run, inside a tick, so they touch world state from the loop goroutine only.
type Scheduler struct {
	pending []deferred
	nextID  uint64
}

type deferred struct {
	id uint64
	at time.Time
	fn func()
}

// After schedules fn to run on the first Run at or past now+d and returns
// an id usable with Cancel.
func (s *Scheduler) After(now time.Time, d time.Duration, fn func()) uint64 {
	s.nextID++
	s.pending = append(s.pending, deferred{id: s.nextID, at: now.Add(d), fn: fn})
	return s.nextID
}

// Cancel drops a pending callback. Unknown ids are ignored.
func (s *Scheduler) Cancel(id uint64) {
	s.pending = removeIf(s.pending, func(d deferred) bool { return d.id == id })
}

// Pending returns the number of callbacks waiting to fire.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Run fires every callback that is due, in scheduling order. Callbacks may
// schedule or cancel others; those take effect from the next Run.
func (s *Scheduler) Run(now time.Time) {
	if len(s.pending) == 0 {
		return
	}
	var due []deferred
	kept := s.pending[:0]
	for _, d := range s.pending {
		if !now.Before(d.at) {
			due = append(due, d)
		} else {
			kept = append(kept, d)
		}
	}
	s.pending = kept
	for _, d := range due {
		d.fn()
	}
}
