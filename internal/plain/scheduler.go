package plain

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/quizgrid/quizgrid/internal/game"
)

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the real-time SleepFunc.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// queueScheduler keeps tasks on a virtual clock. Line mode has no event
// loop of its own, so the read loop calls Flush between inputs to let
// pending tasks run.
type queueScheduler struct {
	now   time.Duration
	seq   int
	tasks []*queuedTask
	sleep SleepFunc
}

var _ game.Scheduler = (*queueScheduler)(nil)

type queuedTask struct {
	due       time.Duration
	seq       int
	fn        func()
	cancelled bool
}

func (t *queuedTask) Cancel() {
	t.cancelled = true
}

func newQueueScheduler(sleep SleepFunc) *queueScheduler {
	if sleep == nil {
		sleep = Sleep
	}
	return &queueScheduler{sleep: sleep}
}

func (s *queueScheduler) Schedule(d time.Duration, fn func()) game.Task {
	s.seq++
	t := &queuedTask{due: s.now + d, seq: s.seq, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Flush runs every live task in due order, sleeping until each is due.
// Tasks scheduled while flushing run in the same call.
func (s *queueScheduler) Flush(ctx context.Context) error {
	for {
		s.tasks = slices.DeleteFunc(s.tasks, func(t *queuedTask) bool { return t.cancelled })
		if len(s.tasks) == 0 {
			return nil
		}
		slices.SortStableFunc(s.tasks, func(a, b *queuedTask) int {
			if c := cmp.Compare(a.due, b.due); c != 0 {
				return c
			}
			return cmp.Compare(a.seq, b.seq)
		})

		next := s.tasks[0]
		s.tasks = s.tasks[1:]
		if wait := next.due - s.now; wait > 0 {
			if err := s.sleep(ctx, wait); err != nil {
				return err
			}
			s.now = next.due
		}
		next.fn()
	}
}

// Pending returns the number of live tasks.
func (s *queueScheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}
