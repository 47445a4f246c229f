package plain

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueScheduler_RunsInDueOrder(t *testing.T) {
	var waits []time.Duration
	s := newQueueScheduler(func(_ context.Context, d time.Duration) error {
		waits = append(waits, d)
		return nil
	})

	var order []string
	s.Schedule(300*time.Millisecond, func() { order = append(order, "late") })
	s.Schedule(100*time.Millisecond, func() { order = append(order, "early") })
	s.Schedule(100*time.Millisecond, func() { order = append(order, "early-2") })

	require.NoError(t, s.Flush(context.Background()))
	assert.Equal(t, []string{"early", "early-2", "late"}, order)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, waits)
	assert.Equal(t, 0, s.Pending())
}

func TestQueueScheduler_SkipsCancelled(t *testing.T) {
	s := newQueueScheduler(noSleep)
	ran := false
	task := s.Schedule(time.Second, func() { ran = true })
	task.Cancel()

	require.NoError(t, s.Flush(context.Background()))
	assert.False(t, ran)
}

func TestQueueScheduler_RunsTasksScheduledDuringFlush(t *testing.T) {
	s := newQueueScheduler(noSleep)
	var order []int
	s.Schedule(0, func() {
		order = append(order, 1)
		s.Schedule(time.Millisecond, func() { order = append(order, 2) })
	})

	require.NoError(t, s.Flush(context.Background()))
	assert.Equal(t, []int{1, 2}, order)
}

func TestQueueScheduler_SleepError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := newQueueScheduler(Sleep)
	ran := false
	s.Schedule(time.Hour, func() { ran = true })

	assert.ErrorIs(t, s.Flush(ctx), context.Canceled)
	assert.False(t, ran)
}
