package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/quizgrid/quizgrid/internal/catalog"
	"github.com/quizgrid/quizgrid/internal/game"
	"github.com/quizgrid/quizgrid/internal/router"
	"github.com/quizgrid/quizgrid/internal/screen"
	"github.com/quizgrid/quizgrid/internal/screens/board"
	"github.com/quizgrid/quizgrid/internal/screens/gameover"
	"github.com/quizgrid/quizgrid/internal/ui/components"
	"github.com/quizgrid/quizgrid/internal/ui/layout"
)

// stats is what the home screen shows about the catalog and past games.
type stats struct {
	categories int
	questions  int
	played     int
	best       int
	last       game.Result
}

// HomeScreen is the main menu.
type HomeScreen struct {
	catalog    *catalog.Catalog
	timing     game.Timing
	log        zerolog.Logger
	menu       components.Menu
	menuLabels []string
	stats      stats
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen. Each NEW GAME starts a fresh board over c.
func New(c *catalog.Catalog, timing game.Timing, log zerolog.Logger) *HomeScreen {
	h := &HomeScreen{
		catalog: c,
		timing:  timing,
		log:     log,
		stats: stats{
			categories: c.Len(),
			questions:  c.Total(),
		},
	}

	h.menuLabels = []string{"NEW GAME", "QUIT"}
	items := []components.MenuItem{
		{Label: h.menuLabels[0], Action: h.newGame},
		{Label: h.menuLabels[1], Action: func() tea.Cmd { return tea.Quit }},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) newGame() tea.Cmd {
	b := board.New(h.catalog, h.timing, h.log)
	h.log.Debug().Str("game_id", b.Controller().State().GameID).Msg("new game")
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: b}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if done, ok := msg.(gameover.FinishedMsg); ok {
		h.record(done.Result)
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) record(r game.Result) {
	h.stats.played++
	h.stats.last = r
	if h.stats.played == 1 || r.Score > h.stats.best {
		h.stats.best = r.Score
	}
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back the header and footer.
	termHeight := height + layout.HeaderHeight + layout.FooterHeight
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, renderStatsBar(h.stats, cw, compact))
	if last := renderLastGame(h.stats, cw); last != "" && !compact {
		sections = append(sections, last)
	}
	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw))
	}

	content := strings.Join(sections, "\n\n")
	return renderCabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
