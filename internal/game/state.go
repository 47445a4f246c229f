package game

import (
	"github.com/google/uuid"

	"github.com/quizgrid/quizgrid/internal/catalog"
)

// Phase represents where the game is in its prompt cycle.
type Phase int

const (
	PhaseIdle       Phase = iota // Board shown, no prompt open
	PhasePromptOpen              // A question prompt is open
	PhaseGameOver                // Every question answered and the result announced
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePromptOpen:
		return "prompt-open"
	case PhaseGameOver:
		return "game-over"
	}
	return "unknown"
}

// State tracks the mutable progress of one game.
type State struct {
	// GameID identifies this game instance in logs and scheduled tasks.
	GameID string

	// Score is the running total of awarded point values.
	Score int

	// Answered counts non-empty submissions.
	Answered int

	// Correct counts submissions that matched the expected answer.
	Correct int

	// Total is the number of questions in the catalog, fixed at creation.
	Total int

	// Active is the question shown in the open prompt (nil when closed).
	Active *catalog.Question

	// ActiveTile is the tile that opened the prompt. It survives the prompt
	// closing so focus can return to it.
	ActiveTile *catalog.TileID

	// Disabled holds tiles that have been answered.
	Disabled map[catalog.TileID]bool

	// Phase is the current prompt phase.
	Phase Phase
}

// NewState creates a fresh state for the given catalog.
func NewState(c *catalog.Catalog) *State {
	return &State{
		GameID:   uuid.New().String(),
		Total:    c.Total(),
		Disabled: make(map[catalog.TileID]bool),
	}
}

// IsDisabled reports whether the tile has already been answered.
func (s *State) IsDisabled(id catalog.TileID) bool {
	return s.Disabled[id]
}

// IsOver reports whether every question has been answered.
func (s *State) IsOver() bool {
	return s.Answered >= s.Total
}

// Remaining returns the number of unanswered questions.
func (s *State) Remaining() int {
	if s.Answered >= s.Total {
		return 0
	}
	return s.Total - s.Answered
}

// Result summarizes a game for display once it ends.
type Result struct {
	Score    int
	MaxScore int
	Correct  int
	Answered int
	Total    int
}

// Result returns the current summary. MaxScore comes from the catalog.
func (s *State) Result(c *catalog.Catalog) Result {
	return Result{
		Score:    s.Score,
		MaxScore: c.MaxScore(),
		Correct:  s.Correct,
		Answered: s.Answered,
		Total:    s.Total,
	}
}
