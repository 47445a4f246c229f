package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{79, 24, true},
		{80, 23, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestContentHeight(t *testing.T) {
	if got := ContentHeight(30); got != 24 {
		t.Errorf("ContentHeight(30) = %d, want 24", got)
	}
	if got := ContentHeight(4); got != 0 {
		t.Errorf("ContentHeight(4) = %d, want 0", got)
	}
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Board", "Score: 300", 100)
	for _, want := range []string{"QUIZGRID", "Board", "Score: 300"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q:\n%s", want, h)
		}
	}
	if got := lipgloss.Height(h); got != HeaderHeight {
		t.Errorf("header height = %d, want %d", got, HeaderHeight)
	}
}

func TestRenderHeaderLongTitleStaysOneRow(t *testing.T) {
	h := RenderHeader(strings.Repeat("Clinical Trials ", 10), "Score: 1200", 80)
	if got := lipgloss.Height(h); got != HeaderHeight {
		t.Errorf("header height = %d, want %d", got, HeaderHeight)
	}
	if !strings.Contains(h, "Score: 1200") {
		t.Errorf("status dropped from header:\n%s", h)
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Enter", Description: "Select"}, {Key: "Esc", Description: "Close"}}, 80)
	if !strings.Contains(f, "Enter") || !strings.Contains(f, "Close") {
		t.Errorf("footer missing hints:\n%s", f)
	}
}

func TestRenderFooterTruncates(t *testing.T) {
	hints := make([]KeyHint, 0, 20)
	for range 20 {
		hints = append(hints, KeyHint{Key: "Tab", Description: "Next control"})
	}
	if got := lipgloss.Height(RenderFooter(hints, 80)); got != FooterHeight {
		t.Errorf("footer height = %d, want %d", got, FooterHeight)
	}
}

func TestRenderFrameFillsHeight(t *testing.T) {
	header := RenderHeader("Home", "", 80)
	footer := RenderFooter(nil, 80)
	frame := RenderFrame(header, "content", footer, 80, 30)
	if got := lipgloss.Height(frame); got != 30 {
		t.Errorf("frame height = %d, want 30", got)
	}
}

func TestRenderMinSizeMessage(t *testing.T) {
	msg := RenderMinSizeMessage(60, 20)
	if !strings.Contains(msg, "Terminal too small") || !strings.Contains(msg, "60 x 20") {
		t.Errorf("unexpected message:\n%s", msg)
	}
}
