package gameover

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizgrid/quizgrid/internal/game"
	"github.com/quizgrid/quizgrid/internal/router"
	"github.com/quizgrid/quizgrid/internal/screen"
	"github.com/quizgrid/quizgrid/internal/ui/components"
	"github.com/quizgrid/quizgrid/internal/ui/layout"
	"github.com/quizgrid/quizgrid/internal/ui/theme"
)

// FinishedMsg is delivered to the root screen after the player
// acknowledges the result.
type FinishedMsg struct {
	Result game.Result
}

// GameOverScreen announces the final score. It must be acknowledged
// before the player returns to the home menu.
type GameOverScreen struct {
	result game.Result
}

var _ screen.Screen = (*GameOverScreen)(nil)
var _ screen.KeyHintProvider = (*GameOverScreen)(nil)
var _ screen.StatusProvider = (*GameOverScreen)(nil)
var _ screen.BackHandler = (*GameOverScreen)(nil)

// New creates a GameOverScreen for a finished game.
func New(result game.Result) *GameOverScreen {
	return &GameOverScreen{result: result}
}

func (s *GameOverScreen) Init() tea.Cmd {
	return nil
}

func (s *GameOverScreen) Title() string {
	return "Game Over"
}

func (s *GameOverScreen) Status() string {
	return game.ScoreText(s.result.Score)
}

// HandlesBack is always true: Esc acknowledges like Enter does.
func (s *GameOverScreen) HandlesBack() bool {
	return true
}

func (s *GameOverScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *GameOverScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc", "space", " ":
			return s, s.acknowledge()
		}
	case tea.MouseClickMsg:
		if msg.Mouse().Button == tea.MouseLeft {
			return s, s.acknowledge()
		}
	}
	return s, nil
}

func (s *GameOverScreen) acknowledge() tea.Cmd {
	result := s.result
	return func() tea.Msg {
		return router.PopToRootMsg{Notify: FinishedMsg{Result: result}}
	}
}

func (s *GameOverScreen) View(width, height int) string {
	r := s.result

	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render(game.GameOverText(r.Score)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Correct: %d/%d        Best possible: $%d",
		r.Correct, r.Answered, r.MaxScore)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	barWidth := min(width-8, 40)
	bar := components.NewProgressBar("Answered", r.Answered, r.Total, barWidth)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	b.WriteString(theme.Subtitle.Width(width).Render("Press Enter to return to the menu"))

	return lipgloss.PlaceVertical(height, lipgloss.Center, b.String())
}
