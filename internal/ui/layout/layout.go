package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/quizgrid/quizgrid/internal/ui/theme"
)

// Terminal size thresholds. Below MinWidth x MinHeight the board and the
// prompt modal no longer fit side by side with the header and footer.
const (
	MinWidth  = 80
	MinHeight = 24

	HeaderHeight = 3
	FooterHeight = 3

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30
)

const hintSeparator = "   "

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

var (
	bar = lipgloss.NewStyle().
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)

	brandStyle  = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	titleStyle  = lipgloss.NewStyle().Foreground(theme.Text)
	statusStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	keyStyle    = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle   = lipgloss.NewStyle().Foreground(theme.TextDim)
)

// IsCompactWidth reports whether the home banner should switch to its
// one-line form.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsCompactHeight reports whether vertical chrome should be trimmed.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentHeight returns the rows left for the active screen.
func ContentHeight(totalHeight int) int {
	return max(totalHeight-HeaderHeight-FooterHeight, 0)
}

// RenderMinSizeMessage renders a centered notice asking for a bigger terminal.
func RenderMinSizeMessage(width, height int) string {
	msg := titleStyle.Align(lipgloss.Center).Render(fmt.Sprintf(
		"Terminal too small!\n\nThe board needs at least %d x %d\n\nCurrent: %d x %d",
		MinWidth, MinHeight, width, height,
	))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

// RenderHeader renders the top bar: brand on the left, the screen title
// centered, and status (usually the score) on the right.
func RenderHeader(title, status string, width int) string {
	inner := innerWidth(width)

	brand := brandStyle.Render(" QUIZGRID")
	right := statusStyle.Render(status + " ")

	free := inner - lipgloss.Width(brand) - lipgloss.Width(right)
	middle := lipgloss.PlaceHorizontal(max(free, 0), lipgloss.Center,
		titleStyle.Render(ansi.Truncate(title, max(free-2, 0), "…")))

	return bar.Width(width).Render(fit(brand+middle+right, inner))
}

// RenderFooter renders the bottom bar with key hints. Hints that do not
// fit are cut at the right edge.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Description))
	}
	line := "  " + strings.Join(parts, hintSeparator)
	return bar.Width(width).Render(fit(line, innerWidth(width)))
}

// RenderFrame stacks header, content and footer, padding the content so
// the footer stays on the last rows.
func RenderFrame(header, content, footer string, width, height int) string {
	body := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.NewStyle().Width(width).Height(body).Render(content),
		footer,
	)
}

func innerWidth(width int) int {
	return max(width-bar.GetHorizontalFrameSize(), 0)
}

// fit keeps a bar on a single row.
func fit(line string, width int) string {
	if lipgloss.Width(line) <= width {
		return line
	}
	return ansi.Truncate(line, width, "")
}
