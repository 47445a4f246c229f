package gameover

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/quizgrid/quizgrid/internal/game"
	"github.com/quizgrid/quizgrid/internal/router"
)

func testResult() game.Result {
	return game.Result{Score: 300, MaxScore: 1800, Correct: 2, Answered: 9, Total: 9}
}

func TestGameOverScreen_Title(t *testing.T) {
	s := New(testResult())
	if s.Title() != "Game Over" {
		t.Errorf("Title = %q, want %q", s.Title(), "Game Over")
	}
	if s.Status() != "Score: 300" {
		t.Errorf("Status = %q, want %q", s.Status(), "Score: 300")
	}
}

func TestGameOverScreen_Display(t *testing.T) {
	s := New(testResult())
	view := s.View(100, 30)

	for _, want := range []string{
		"Game Over! Your final score is $300",
		"Correct: 2/9",
		"$1800",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestGameOverScreen_AcknowledgeReturnsHome(t *testing.T) {
	for _, key := range []tea.KeyPressMsg{
		{Code: tea.KeyEnter},
		{Code: tea.KeyEscape},
		{Code: tea.KeySpace, Text: " "},
	} {
		s := New(testResult())
		_, cmd := s.Update(key)
		if cmd == nil {
			t.Fatalf("%s: expected a command", key.String())
		}
		pop, ok := cmd().(router.PopToRootMsg)
		if !ok {
			t.Fatalf("%s: expected PopToRootMsg", key.String())
		}
		done, ok := pop.Notify.(FinishedMsg)
		if !ok {
			t.Fatalf("%s: expected FinishedMsg notify, got %T", key.String(), pop.Notify)
		}
		if done.Result != testResult() {
			t.Errorf("%s: result = %+v", key.String(), done.Result)
		}
	}
}

func TestGameOverScreen_HandlesBack(t *testing.T) {
	if !New(testResult()).HandlesBack() {
		t.Error("expected game over screen to consume Esc")
	}
}

func TestGameOverScreen_IgnoresOtherKeys(t *testing.T) {
	s := New(testResult())
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd != nil {
		t.Error("expected no command for unrelated key")
	}
}
