package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/quizgrid/quizgrid/internal/catalog"
	"github.com/quizgrid/quizgrid/internal/game"
	"github.com/quizgrid/quizgrid/internal/router"
	"github.com/quizgrid/quizgrid/internal/screens/board"
	"github.com/quizgrid/quizgrid/internal/screens/gameover"
)

func testHome() *HomeScreen {
	return New(catalog.MustDefault(), game.DefaultTiming(), zerolog.Nop())
}

func TestHomeScreen_View(t *testing.T) {
	h := testHome()
	view := h.View(100, 40)
	for _, want := range []string{"3 CATEGORIES", "9 QUESTIONS", "NEW GAME", "QUIT", "NO GAMES YET"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHomeScreen_CompactView(t *testing.T) {
	h := testHome()
	view := h.View(80, 16)
	if !strings.Contains(view, "Q · U · I · Z") {
		t.Error("expected compact title")
	}
}

func TestHomeScreen_NewGamePushesBoard(t *testing.T) {
	h := testHome()
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := push.Screen.(*board.BoardScreen); !ok {
		t.Errorf("pushed %T, want board", push.Screen)
	}
}

func TestHomeScreen_EachGameIsFresh(t *testing.T) {
	h := testHome()
	_, first := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, second := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	a := first().(router.PushScreenMsg).Screen.(*board.BoardScreen)
	b := second().(router.PushScreenMsg).Screen.(*board.BoardScreen)
	if a.Controller().State().GameID == b.Controller().State().GameID {
		t.Error("expected a new game id per game")
	}
}

func TestHomeScreen_RecordsResults(t *testing.T) {
	h := testHome()

	h.Update(gameover.FinishedMsg{Result: game.Result{Score: 300, MaxScore: 1800, Correct: 2, Answered: 9, Total: 9}})
	h.Update(gameover.FinishedMsg{Result: game.Result{Score: 100, MaxScore: 1800, Correct: 1, Answered: 9, Total: 9}})

	if h.stats.played != 2 {
		t.Errorf("played = %d, want 2", h.stats.played)
	}
	if h.stats.best != 300 {
		t.Errorf("best = %d, want 300", h.stats.best)
	}
	view := h.View(100, 40)
	if !strings.Contains(view, "BEST $300") {
		t.Error("view missing best score")
	}
	if !strings.Contains(view, "Last game: $100 of $1800") {
		t.Error("view missing last game")
	}
}

func TestHomeScreen_QuitItem(t *testing.T) {
	h := testHome()
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}
