package board

import (
	"slices"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/quizgrid/quizgrid/internal/game"
)

// tickScheduler runs game tasks on the Bubble Tea loop. Each scheduled
// task becomes a tea.Tick whose message names the task; a task cancelled
// before its tick arrives is dropped when the message is delivered.
type tickScheduler struct {
	owner  string
	nextID uint64
	tasks  map[uint64]func()
	queued []tea.Cmd
}

var _ game.Scheduler = (*tickScheduler)(nil)

type tickTask struct {
	s  *tickScheduler
	id uint64
}

func (t tickTask) Cancel() {
	delete(t.s.tasks, t.id)
}

func newTickScheduler(owner string) *tickScheduler {
	return &tickScheduler{
		owner: owner,
		tasks: make(map[uint64]func()),
	}
}

func (s *tickScheduler) Schedule(d time.Duration, fn func()) game.Task {
	s.nextID++
	id := s.nextID
	owner := s.owner
	s.tasks[id] = fn
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return taskDueMsg{id: id, owner: owner}
	}))
	return tickTask{s: s, id: id}
}

// Run executes the task named by msg. It reports false when the task
// belongs to another game or was cancelled.
func (s *tickScheduler) Run(msg taskDueMsg) bool {
	if msg.owner != s.owner {
		return false
	}
	fn, ok := s.tasks[msg.id]
	if !ok {
		return false
	}
	delete(s.tasks, msg.id)
	fn()
	return true
}

// Drain returns and clears the tick commands queued since the last call.
func (s *tickScheduler) Drain() []tea.Cmd {
	cmds := s.queued
	s.queued = nil
	return cmds
}

// Pending returns the ids of live tasks in scheduling order.
func (s *tickScheduler) Pending() []uint64 {
	ids := make([]uint64, 0, len(s.tasks))
	for id := range s.tasks {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
