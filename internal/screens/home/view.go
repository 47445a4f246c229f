package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/quizgrid/quizgrid/internal/ui/theme"
)

// Block-letter title.
const titleFull = `  ██████╗ ██╗   ██╗██╗███████╗ ██████╗ ██████╗ ██╗██████╗
 ██╔═══██╗██║   ██║██║╚══███╔╝██╔════╝ ██╔══██╗██║██╔══██╗
 ██║   ██║██║   ██║██║  ███╔╝ ██║  ███╗██████╔╝██║██║  ██║
 ██║▄▄ ██║██║   ██║██║ ███╔╝  ██║   ██║██╔══██╗██║██║  ██║
 ╚██████╔╝╚██████╔╝██║███████╗╚██████╔╝██║  ██║██║██████╔╝
  ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝ ╚═════╝ ╚═╝  ╚═╝╚═╝╚═════╝`

const titleCompact = "Q · U · I · Z · G · R · I · D"

// contentWidth returns the uniform inner width used for all sections.
// All boxes are rendered at this width so they visually align.
func contentWidth(frameWidth int) int {
	// Leave room for cabinet border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	text := titleFull
	if compact {
		text = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(text))
}

// renderStatsBar shows the catalog size and the session's scores.
func renderStatsBar(st stats, cw int, compact bool) string {
	catStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var parts []string
	if compact {
		parts = []string{
			catStyle.Render(fmt.Sprintf("▦%d", st.categories)),
			valueStyle.Render(fmt.Sprintf("?%d", st.questions)),
		}
	} else {
		parts = []string{
			catStyle.Render(fmt.Sprintf("▦ %d CATEGORIES", st.categories)),
			valueStyle.Render(fmt.Sprintf("? %d QUESTIONS", st.questions)),
		}
	}
	parts = append(parts, bestText(st, compact, valueStyle, dimStyle))

	sep := "  "
	if compact {
		sep = " "
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(strings.Join(parts, sep))
}

func bestText(st stats, compact bool, active, dim lipgloss.Style) string {
	if st.played == 0 {
		if compact {
			return dim.Render("★-")
		}
		return dim.Render("★ NO GAMES YET")
	}
	if compact {
		return active.Render(fmt.Sprintf("★$%d", st.best))
	}
	return active.Render(fmt.Sprintf("★ BEST $%d", st.best))
}

// renderLastGame renders a dim one-line summary of the previous game.
func renderLastGame(st stats, cw int) string {
	if st.played == 0 {
		return ""
	}
	text := fmt.Sprintf("Last game: $%d of $%d, %d/%d correct",
		st.last.Score, st.last.MaxScore, st.last.Correct, st.last.Answered)
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderMenuCompact renders menu items as simple text lines (no borders)
// for small terminals where bordered buttons would overflow.
func renderMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		if i == selected {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Render(" ▸ "+label+" "))
		} else {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   "+label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderCabinetFrame wraps content in a double-border frame,
// centering vertically and horizontally within the given dimensions.
func renderCabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).   // account for border chars
		Height(height - 2). // account for border chars
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
