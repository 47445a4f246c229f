package board

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/quizgrid/quizgrid/internal/catalog"
	"github.com/quizgrid/quizgrid/internal/game"
	"github.com/quizgrid/quizgrid/internal/ui/theme"
)

const (
	boardMarginX = 2
	boardMarginY = 1
	columnGap    = 1
	minColumn    = 10
	maxColumn    = 28
	modalWidth   = 56
)

func (b *BoardScreen) View(width, height int) string {
	b.hitboxes = b.hitboxes[:0]
	if b.promptOpen {
		return b.renderPrompt(width, height)
	}
	return b.renderBoard(width, height)
}

// columnWidth fits n columns into width.
func columnWidth(width, n int) int {
	if n == 0 {
		return maxColumn
	}
	w := (width - 2*boardMarginX - columnGap*(n-1)) / n
	return clamp(w, minColumn, maxColumn)
}

// renderBoard draws the category columns and records a hitbox per tile.
func (b *BoardScreen) renderBoard(width, height int) string {
	if len(b.categories) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No questions to play.")
	}

	colW := columnWidth(width, len(b.categories))

	columns := make([]string, 0, len(b.categories)*2)
	x := boardMarginX
	for ci, cat := range b.categories {
		if ci > 0 {
			columns = append(columns, strings.Repeat(" ", columnGap))
			x += columnGap
		}

		header := theme.CategoryHeader.
			Width(colW).
			Render(ansi.Truncate(cat.Name, colW, "…"))
		parts := []string{header, ""}
		y := boardMarginY + lipgloss.Height(header) + 1

		for qi, q := range cat.Questions {
			id := catalog.TileID{Category: ci, Question: qi}
			tile := b.tileStyle(id).Width(colW).Render(catalog.ValueLabel(q.Value))
			th := lipgloss.Height(tile)
			b.hitboxes = append(b.hitboxes, hitbox{
				x: x, y: y, w: lipgloss.Width(tile), h: th,
				target: hitTarget{kind: hitTile, tile: id},
			})
			parts = append(parts, tile)
			y += th
		}

		col := lipgloss.JoinVertical(lipgloss.Left, parts...)
		columns = append(columns, col)
		x += lipgloss.Width(col)
	}

	grid := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	var sb strings.Builder
	sb.WriteString(strings.Repeat("\n", boardMarginY))
	for i, line := range strings.Split(grid, "\n") {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(strings.Repeat(" ", boardMarginX))
		sb.WriteString(line)
	}

	label := b.focusLabel()
	if label != "" && lipgloss.Height(sb.String())+2 <= height {
		sb.WriteString("\n\n")
		sb.WriteString(strings.Repeat(" ", boardMarginX))
		sb.WriteString(theme.Hint.Render(label))
	}
	return sb.String()
}

func (b *BoardScreen) tileStyle(id catalog.TileID) lipgloss.Style {
	focused := id == b.cursor
	switch {
	case b.disabled[id] && focused:
		return theme.TileDisabledFocused
	case b.disabled[id]:
		return theme.TileDisabled
	case focused:
		return theme.TileFocused
	}
	return theme.Tile
}

// focusLabel describes the tile under the cursor, e.g. "Potpourri for $200".
func (b *BoardScreen) focusLabel() string {
	label := b.ctrl.Catalog().TileLabel(b.cursor)
	if label == "" {
		return ""
	}
	if b.disabled[b.cursor] {
		return label + " (answered)"
	}
	return label
}

// renderPrompt draws the question modal centered in the content area and
// records hitboxes for its controls.
func (b *BoardScreen) renderPrompt(width, height int) string {
	mw := min(modalWidth, width-4)
	inner := mw - theme.Modal.GetHorizontalFrameSize()

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(b.ctrl.Catalog().TileLabel(b.promptTile))

	question := theme.Body.Width(inner).Render(b.question.Prompt)

	input := b.input.View()

	submit := b.submitBtn.View()
	closeBtn := b.closeBtn.View()
	const buttonGap = "  "
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, submit, buttonGap, closeBtn)

	feedback := renderFeedback(b.feedback, inner)

	rows := []string{title, "", question, "", input, "", buttons}
	if feedback != "" {
		rows = append(rows, "", feedback)
	}
	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	modal := theme.Modal.Width(mw).Render(body)

	left := max((width-lipgloss.Width(modal))/2, 0)
	top := max((height-lipgloss.Height(modal))/2, 0)

	// Content origin inside the modal frame.
	ox := left + theme.Modal.GetBorderLeftSize() + theme.Modal.GetPaddingLeft()
	oy := top + theme.Modal.GetBorderTopSize() + theme.Modal.GetPaddingTop()

	inputY := oy + lipgloss.Height(title) + 1 + lipgloss.Height(question) + 1
	b.hitboxes = append(b.hitboxes, hitbox{
		x: ox, y: inputY, w: inner, h: lipgloss.Height(input),
		target: hitTarget{kind: hitInput},
	})

	buttonsY := inputY + lipgloss.Height(input) + 1
	b.hitboxes = append(b.hitboxes,
		hitbox{
			x: ox, y: buttonsY, w: lipgloss.Width(submit), h: lipgloss.Height(submit),
			target: hitTarget{kind: hitSubmit},
		},
		hitbox{
			x: ox + lipgloss.Width(submit) + len(buttonGap), y: buttonsY,
			w: lipgloss.Width(closeBtn), h: lipgloss.Height(closeBtn),
			target: hitTarget{kind: hitClose},
		},
	)

	return lipgloss.NewStyle().
		MarginLeft(left).
		MarginTop(top).
		Render(modal)
}

func renderFeedback(f game.Feedback, width int) string {
	if f.Text == "" {
		return ""
	}
	style := lipgloss.NewStyle().Width(width)
	switch f.Kind {
	case game.FeedbackSuccess:
		style = style.Inherit(theme.Correct)
	case game.FeedbackError:
		style = style.Inherit(theme.Incorrect)
	case game.FeedbackValidation:
		style = style.Inherit(theme.Validation)
	default:
		style = style.Foreground(theme.Text)
	}
	return style.Render(f.Text)
}
