package board

import (
	"errors"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/quizgrid/quizgrid/internal/catalog"
	"github.com/quizgrid/quizgrid/internal/game"
	"github.com/quizgrid/quizgrid/internal/router"
	"github.com/quizgrid/quizgrid/internal/screen"
	"github.com/quizgrid/quizgrid/internal/screens/gameover"
	"github.com/quizgrid/quizgrid/internal/ui/components"
	"github.com/quizgrid/quizgrid/internal/ui/layout"
)

// answerLimit caps the answer field length.
const answerLimit = 60

// BoardScreen hosts one game: the tile grid and the question prompt.
// It is the game.Renderer for its controller, so every state change the
// controller makes is reflected here and picked up by the next View.
type BoardScreen struct {
	ctrl  *game.Controller
	sched *tickScheduler
	log   zerolog.Logger

	// Board as last rendered by the controller.
	categories []catalog.Category
	disabled   map[catalog.TileID]bool
	scoreText  string
	cursor     catalog.TileID

	// Prompt.
	promptOpen bool
	promptTile catalog.TileID
	question   catalog.Question
	input      components.TextInput
	submitBtn  components.Button
	closeBtn   components.Button
	focus      focusTarget
	feedback   game.Feedback

	// Commands produced by renderer callbacks, returned from the
	// current Init or Update.
	pending []tea.Cmd

	hitboxes []hitbox
}

var _ screen.Screen = (*BoardScreen)(nil)
var _ screen.KeyHintProvider = (*BoardScreen)(nil)
var _ screen.StatusProvider = (*BoardScreen)(nil)
var _ screen.BackHandler = (*BoardScreen)(nil)
var _ game.Renderer = (*BoardScreen)(nil)

// New creates a BoardScreen for a fresh game over the catalog.
func New(c *catalog.Catalog, timing game.Timing, log zerolog.Logger) *BoardScreen {
	b := &BoardScreen{
		disabled: make(map[catalog.TileID]bool),
		input:    components.NewTextInput("Type your answer...", answerLimit),
	}
	b.submitBtn = components.NewButton("Submit", func() tea.Cmd {
		b.submit()
		return nil
	})
	b.closeBtn = components.NewButton("Close", func() tea.Cmd {
		b.ctrl.ClosePrompt()
		return nil
	})

	// The scheduler owner is only known once the controller has created
	// the game state.
	b.sched = newTickScheduler("")
	b.ctrl = game.NewController(c, b, b.sched,
		game.WithTiming(timing),
		game.WithLogger(log),
	)
	b.sched.owner = b.ctrl.State().GameID
	b.log = log.With().Str("game_id", b.ctrl.State().GameID).Logger()
	return b
}

func (b *BoardScreen) Init() tea.Cmd {
	b.ctrl.Start()
	return b.flush()
}

func (b *BoardScreen) Title() string {
	return "Board"
}

func (b *BoardScreen) Status() string {
	return b.scoreText
}

// HandlesBack reports whether Esc should close the prompt rather than
// leave the board.
func (b *BoardScreen) HandlesBack() bool {
	return b.promptOpen
}

func (b *BoardScreen) KeyHints() []layout.KeyHint {
	if b.promptOpen {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Tab", Description: "Next"},
			{Key: "Esc", Description: "Close"},
		}
	}
	return []layout.KeyHint{
		{Key: "←↑↓→", Description: "Move"},
		{Key: "Enter", Description: "Pick"},
		{Key: "Esc", Description: "Menu"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Controller exposes the game controller.
func (b *BoardScreen) Controller() *game.Controller {
	return b.ctrl
}

func (b *BoardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case taskDueMsg:
		b.sched.Run(msg)
		return b, b.flush()

	case tea.MouseClickMsg:
		b.handleClick(msg.Mouse())
		return b, b.flush()

	case tea.KeyMsg:
		cmd := b.handleKey(msg)
		return b, tea.Batch(cmd, b.flush())
	}

	// Cursor blink and other input housekeeping.
	if b.promptOpen && b.focus == focusInput {
		var cmd tea.Cmd
		b.input, cmd = b.input.Update(msg)
		return b, cmd
	}
	return b, nil
}

func (b *BoardScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	if b.promptOpen {
		return b.handlePromptKey(msg)
	}

	switch msg.String() {
	case "up", "k":
		b.moveCursor(0, -1)
	case "down", "j":
		b.moveCursor(0, 1)
	case "left", "h":
		b.moveCursor(-1, 0)
	case "right", "l":
		b.moveCursor(1, 0)
	case "enter", "space", " ":
		b.ctrl.SelectTile(b.cursor)
	}
	return nil
}

func (b *BoardScreen) handlePromptKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		b.ctrl.ClosePrompt()
		return nil
	case "tab":
		return b.cycleFocus(1)
	case "shift+tab":
		return b.cycleFocus(-1)
	}

	var cmd tea.Cmd
	switch b.focus {
	case focusSubmit:
		b.submitBtn, cmd = b.submitBtn.Update(msg)
	case focusClose:
		b.closeBtn, cmd = b.closeBtn.Update(msg)
	default:
		if msg.String() == "enter" {
			b.submit()
			return nil
		}
		if b.focus == focusInput {
			b.input, cmd = b.input.Update(msg)
		}
	}
	return cmd
}

// submit hands the typed answer to the controller.
func (b *BoardScreen) submit() {
	out, err := b.ctrl.SubmitAnswer(b.input.Value())
	if errors.Is(err, game.ErrEmptyAnswer) {
		return
	}
	if out.Accepted {
		b.input.Submit(out.Correct)
		b.input.Blur()
	}
}

func (b *BoardScreen) handleClick(m tea.Mouse) {
	if m.Button != tea.MouseLeft {
		return
	}
	for _, h := range b.hitboxes {
		if !h.contains(m.X, m.Y) {
			continue
		}
		switch h.target.kind {
		case hitTile:
			if !b.promptOpen {
				b.cursor = h.target.tile
				b.ctrl.SelectTile(h.target.tile)
			}
		case hitInput:
			b.setFocus(focusInput)
		case hitSubmit:
			b.setFocus(focusSubmit)
			b.pending = append(b.pending, b.submitBtn.Press())
		case hitClose:
			b.pending = append(b.pending, b.closeBtn.Press())
		}
		return
	}
}

// cycleFocus moves prompt focus through input, Submit and Close.
func (b *BoardScreen) cycleFocus(dir int) tea.Cmd {
	order := []focusTarget{focusInput, focusSubmit, focusClose}
	idx := 0
	for i, f := range order {
		if f == b.focus {
			idx = i
		}
	}
	idx = (idx + dir + len(order)) % len(order)
	return b.setFocus(order[idx])
}

func (b *BoardScreen) setFocus(f focusTarget) tea.Cmd {
	b.focus = f
	b.submitBtn.Focused = f == focusSubmit
	b.closeBtn.Focused = f == focusClose
	if f == focusInput && !b.input.Submitted() {
		return b.input.Focus()
	}
	b.input.Blur()
	return nil
}

// moveCursor steps the board cursor, clamping to the grid. Columns may
// have different lengths.
func (b *BoardScreen) moveCursor(dc, dq int) {
	if len(b.categories) == 0 {
		return
	}
	c := clamp(b.cursor.Category+dc, 0, len(b.categories)-1)
	n := len(b.categories[c].Questions)
	if n == 0 {
		return
	}
	q := clamp(b.cursor.Question+dq, 0, n-1)
	b.cursor = catalog.TileID{Category: c, Question: q}
}

// flush collects commands produced since the last call.
func (b *BoardScreen) flush() tea.Cmd {
	cmds := append(b.pending, b.sched.Drain()...)
	b.pending = nil
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// showGameOver queues the hand-off to the game over screen, which takes
// the board's place on the stack.
func (b *BoardScreen) showGameOver() {
	result := b.ctrl.Result()
	b.pending = append(b.pending, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: gameover.New(result)}
	})
}
