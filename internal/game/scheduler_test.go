package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRunsDueCallbacksInOrder(t *testing.T) {
	var s Scheduler
	start := time.Unix(0, 0)
	var got []string

	s.After(start, 2*time.Second, func() { got = append(got, "late") })
	s.After(start, time.Second, func() { got = append(got, "early") })
	s.After(start, time.Second, func() { got = append(got, "early-2") })

	s.Run(start.Add(999 * time.Millisecond))
	assert.Empty(t, got)
	assert.Equal(t, 3, s.Pending())

	s.Run(start.Add(time.Second))
	assert.Equal(t, []string{"early", "early-2"}, got)
	assert.Equal(t, 1, s.Pending())

	s.Run(start.Add(time.Hour))
	assert.Equal(t, []string{"early", "early-2", "late"}, got)
	assert.Zero(t, s.Pending())
}

func TestSchedulerCancel(t *testing.T) {
	var s Scheduler
	start := time.Unix(0, 0)
	fired := 0

	id := s.After(start, time.Second, func() { fired++ })
	s.After(start, time.Second, func() { fired += 10 })
	s.Cancel(id)
	s.Cancel(9999)

	s.Run(start.Add(time.Minute))
	assert.Equal(t, 10, fired)
}

func TestSchedulerCallbackCanReschedule(t *testing.T) {
	var s Scheduler
	start := time.Unix(0, 0)
	fired := 0

	var again func()
	again = func() {
		fired++
		s.After(start, 0, again)
	}
	s.After(start, 0, again)

	s.Run(start)
	assert.Equal(t, 1, fired, "rescheduled callbacks wait for the next run")
	s.Run(start)
	assert.Equal(t, 2, fired)
}
