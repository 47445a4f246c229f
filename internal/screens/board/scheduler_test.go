package board

import (
	"testing"
	"time"
)

func TestTickScheduler_RunsOnce(t *testing.T) {
	s := newTickScheduler("game-1")
	runs := 0
	s.Schedule(time.Second, func() { runs++ })

	if got := len(s.Drain()); got != 1 {
		t.Fatalf("queued commands = %d, want 1", got)
	}
	if got := len(s.Drain()); got != 0 {
		t.Errorf("second drain = %d, want 0", got)
	}

	ids := s.Pending()
	if len(ids) != 1 {
		t.Fatalf("pending = %v, want one task", ids)
	}
	msg := taskDueMsg{id: ids[0], owner: "game-1"}
	if !s.Run(msg) {
		t.Error("expected task to run")
	}
	if s.Run(msg) {
		t.Error("expected task to run only once")
	}
	if runs != 1 {
		t.Errorf("runs = %d, want 1", runs)
	}
}

func TestTickScheduler_CancelDropsTick(t *testing.T) {
	s := newTickScheduler("game-1")
	ran := false
	task := s.Schedule(time.Second, func() { ran = true })
	id := s.Pending()[0]

	task.Cancel()

	if s.Run(taskDueMsg{id: id, owner: "game-1"}) {
		t.Error("cancelled task should not run")
	}
	if ran {
		t.Error("cancelled task body executed")
	}
	if len(s.Pending()) != 0 {
		t.Error("expected no pending tasks")
	}
}

func TestTickScheduler_IgnoresOtherGames(t *testing.T) {
	s := newTickScheduler("game-1")
	ran := false
	s.Schedule(0, func() { ran = true })
	id := s.Pending()[0]

	if s.Run(taskDueMsg{id: id, owner: "game-0"}) {
		t.Error("task from another game should not run")
	}
	if ran {
		t.Error("task body executed for foreign tick")
	}
	if len(s.Pending()) != 1 {
		t.Error("foreign tick must not consume the task")
	}
}

func TestTickScheduler_PendingOrder(t *testing.T) {
	s := newTickScheduler("g")
	for range 3 {
		s.Schedule(time.Millisecond, func() {})
	}
	ids := s.Pending()
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("pending ids not ordered: %v", ids)
		}
	}
}
