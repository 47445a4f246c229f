package game

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/quizgrid/quizgrid/internal/catalog"
)

// ErrEmptyAnswer is returned when a submission has no non-whitespace
// content. The prompt stays open and nothing is consumed.
var ErrEmptyAnswer = errors.New("empty answer")

// Timing holds the pacing delays used by the Controller.
type Timing struct {
	FocusDelay     time.Duration // prompt open → answer field focused
	AutoCloseDelay time.Duration // submission → prompt closed
	GameOverDelay  time.Duration // final submission → game over announced
}

// DefaultTiming returns the standard pacing.
func DefaultTiming() Timing {
	return Timing{
		FocusDelay:     100 * time.Millisecond,
		AutoCloseDelay: 1500 * time.Millisecond,
		GameOverDelay:  1500 * time.Millisecond,
	}
}

// Outcome describes an accepted submission.
type Outcome struct {
	Accepted bool // false when there was nothing to submit to
	Correct  bool
	Awarded  int
	GameOver bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithTiming overrides the pacing delays.
func WithTiming(t Timing) Option {
	return func(c *Controller) { c.timing = t }
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// Controller owns a game's State and mutates it in response to player
// actions, reflecting every change through its Renderer.
type Controller struct {
	catalog  *catalog.Catalog
	state    *State
	renderer Renderer
	sched    Scheduler
	timing   Timing
	log      zerolog.Logger

	focusTask Task
	closeTask Task
}

// NewController creates a controller for a new game over the catalog.
func NewController(c *catalog.Catalog, r Renderer, s Scheduler, opts ...Option) *Controller {
	ctrl := &Controller{
		catalog:  c,
		state:    NewState(c),
		renderer: r,
		sched:    s,
		timing:   DefaultTiming(),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(ctrl)
	}
	ctrl.log = ctrl.log.With().Str("game_id", ctrl.state.GameID).Logger()
	return ctrl
}

// State returns the live game state. Callers must treat it as read-only.
func (c *Controller) State() *State {
	return c.state
}

// Result summarizes the game so far.
func (c *Controller) Result() Result {
	return c.state.Result(c.catalog)
}

// Catalog returns the catalog the game is played over.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// Start builds the board and shows the initial score.
func (c *Controller) Start() {
	c.log.Info().
		Int("categories", c.catalog.Len()).
		Int("questions", c.state.Total).
		Msg("game started")
	c.Redraw()
	if c.state.IsOver() {
		c.finish()
	}
}

// Redraw rebuilds the board from scratch and reapplies the current
// state to it. Calling it repeatedly yields the same display.
func (c *Controller) Redraw() {
	c.renderer.RenderBoard(c.catalog)
	for _, id := range c.catalog.Tiles() {
		if c.state.IsDisabled(id) {
			c.renderer.DisableTile(id)
		}
	}
	c.renderer.SetScoreText(ScoreText(c.state.Score))
}

// SelectTile opens the prompt for a tile. It returns false and does
// nothing when the tile is unknown, already answered, or the game is over.
func (c *Controller) SelectTile(id catalog.TileID) bool {
	if c.state.Phase == PhaseGameOver || c.state.IsOver() {
		return false
	}
	if c.state.IsDisabled(id) {
		c.log.Debug().Str("tile", id.String()).Msg("ignored disabled tile")
		return false
	}
	q, ok := c.catalog.Question(id)
	if !ok {
		return false
	}

	c.cancelPending()

	c.state.Active = &q
	c.state.ActiveTile = &id
	c.state.Phase = PhasePromptOpen

	c.renderer.ShowFeedback(Feedback{})
	c.renderer.ShowPrompt(id, q)
	c.focusTask = c.sched.Schedule(c.timing.FocusDelay, func() {
		c.focusTask = nil
		c.renderer.FocusAnswer()
	})

	c.log.Debug().Str("tile", id.String()).Int("value", q.Value).Msg("tile selected")
	return true
}

// SubmitAnswer scores raw against the active question.
//
// Without an open prompt, or once the active tile has been answered, it is
// a no-op returning a zero Outcome. Blank input returns ErrEmptyAnswer and
// leaves the prompt open for another try.
func (c *Controller) SubmitAnswer(raw string) (Outcome, error) {
	q := c.state.Active
	tile := c.state.ActiveTile
	if q == nil || tile == nil || c.state.IsDisabled(*tile) {
		return Outcome{}, nil
	}

	if IsBlank(raw) {
		c.renderer.ShowFeedback(Feedback{Kind: FeedbackValidation, Text: MsgEmptyAnswer})
		c.renderer.FocusAnswer()
		return Outcome{}, ErrEmptyAnswer
	}

	c.state.Disabled[*tile] = true
	c.renderer.DisableTile(*tile)

	out := Outcome{Accepted: true}
	if CheckAnswer(raw, q.Answer) {
		out.Correct = true
		out.Awarded = q.Value
		c.state.Score += q.Value
		c.state.Correct++
		c.renderer.SetScoreText(ScoreText(c.state.Score))
		c.renderer.ShowFeedback(Feedback{Kind: FeedbackSuccess, Text: CorrectText(q.Value)})
	} else {
		c.renderer.ShowFeedback(Feedback{Kind: FeedbackError, Text: IncorrectText(q.Answer)})
	}

	c.state.Answered++
	out.GameOver = c.state.IsOver()

	c.log.Info().
		Str("tile", tile.String()).
		Bool("correct", out.Correct).
		Int("awarded", out.Awarded).
		Int("score", c.state.Score).
		Int("answered", c.state.Answered).
		Int("total", c.state.Total).
		Msg("answer submitted")

	if c.closeTask != nil {
		c.closeTask.Cancel()
	}
	if out.GameOver {
		c.closeTask = c.sched.Schedule(c.timing.GameOverDelay, func() {
			c.closeTask = nil
			c.closePrompt()
			c.finish()
		})
	} else {
		c.closeTask = c.sched.Schedule(c.timing.AutoCloseDelay, func() {
			c.closeTask = nil
			c.closePrompt()
		})
	}
	return out, nil
}

// ClosePrompt hides the prompt and returns focus to the tile that opened
// it. Pending focus and auto-close tasks are cancelled. Closing the prompt
// after the last answer announces the result right away.
func (c *Controller) ClosePrompt() {
	if c.state.Active == nil {
		return
	}
	c.cancelPending()
	c.closePrompt()
	if c.state.IsOver() {
		c.finish()
	}
}

func (c *Controller) closePrompt() {
	if c.state.Active == nil {
		return
	}
	c.state.Active = nil
	c.state.Phase = PhaseIdle
	c.renderer.HidePrompt()
	if c.state.ActiveTile != nil {
		c.renderer.FocusTile(*c.state.ActiveTile)
	}
}

func (c *Controller) finish() {
	if c.state.Phase == PhaseGameOver {
		return
	}
	c.state.Phase = PhaseGameOver
	c.log.Info().Int("score", c.state.Score).Msg("game over")
	c.renderer.AnnounceGameOver(c.state.Score)
}

func (c *Controller) cancelPending() {
	if c.focusTask != nil {
		c.focusTask.Cancel()
		c.focusTask = nil
	}
	if c.closeTask != nil {
		c.closeTask.Cancel()
		c.closeTask = nil
	}
}
