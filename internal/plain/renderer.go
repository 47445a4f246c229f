package plain

import (
	"fmt"
	"io"
	"strings"

	"github.com/quizgrid/quizgrid/internal/catalog"
	"github.com/quizgrid/quizgrid/internal/game"
)

// answeredMark replaces the value of an answered tile in the listing.
const answeredMark = "----"

// lineRenderer is a game.Renderer that writes to a line-oriented stream.
// The board is kept as state and printed on request, since lines already
// written cannot be updated in place.
type lineRenderer struct {
	w          io.Writer
	catalog    *catalog.Catalog
	disabled   map[catalog.TileID]bool
	scoreText  string
	promptOpen bool
	gameOver   bool
}

var _ game.Renderer = (*lineRenderer)(nil)

func newLineRenderer(w io.Writer) *lineRenderer {
	return &lineRenderer{
		w:        w,
		disabled: make(map[catalog.TileID]bool),
	}
}

func (r *lineRenderer) RenderBoard(c *catalog.Catalog) {
	r.catalog = c
	clear(r.disabled)
}

func (r *lineRenderer) ShowPrompt(tile catalog.TileID, q catalog.Question) {
	r.promptOpen = true
	fmt.Fprintf(r.w, "\n%s\n  %s\n", r.catalog.TileLabel(tile), q.Prompt)
}

func (r *lineRenderer) HidePrompt() {
	r.promptOpen = false
}

func (r *lineRenderer) ShowFeedback(f game.Feedback) {
	if f.Text == "" {
		return
	}
	fmt.Fprintf(r.w, "%s\n", f.Text)
}

func (r *lineRenderer) DisableTile(tile catalog.TileID) {
	r.disabled[tile] = true
}

// SetScoreText prints score changes made while answering. The board
// listing prints the score otherwise.
func (r *lineRenderer) SetScoreText(text string) {
	changed := text != r.scoreText
	r.scoreText = text
	if changed && r.promptOpen {
		fmt.Fprintln(r.w, text)
	}
}

// FocusTile has nothing to move in line mode.
func (r *lineRenderer) FocusTile(catalog.TileID) {}

// FocusAnswer is implicit: the next line read is the answer.
func (r *lineRenderer) FocusAnswer() {}

func (r *lineRenderer) AnnounceGameOver(finalScore int) {
	r.gameOver = true
	fmt.Fprintf(r.w, "\n%s\n", game.GameOverText(finalScore))
}

// printBoard lists every category with its tiles, numbered from 1,
// followed by the score and how many questions are left.
func (r *lineRenderer) printBoard(remaining int) {
	if r.catalog == nil {
		return
	}
	fmt.Fprintln(r.w)
	for ci, cat := range r.catalog.Categories() {
		var tiles []string
		for qi, q := range cat.Questions {
			label := catalog.ValueLabel(q.Value)
			if r.disabled[catalog.TileID{Category: ci, Question: qi}] {
				label = answeredMark
			}
			tiles = append(tiles, fmt.Sprintf("[%d] %-5s", qi+1, label))
		}
		fmt.Fprintf(r.w, "%d. %-20s %s\n", ci+1, cat.Name, strings.TrimRight(strings.Join(tiles, "  "), " "))
	}
	if r.scoreText != "" {
		fmt.Fprintln(r.w, r.scoreText)
	}
	fmt.Fprintf(r.w, "%d of %d questions left\n", remaining, r.catalog.Total())
}

// prompt writes the input marker for the current mode.
func (r *lineRenderer) prompt() {
	if r.promptOpen {
		fmt.Fprint(r.w, "answer> ")
		return
	}
	fmt.Fprint(r.w, "> ")
}
