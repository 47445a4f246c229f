package board

import (
	"github.com/quizgrid/quizgrid/internal/catalog"
	"github.com/quizgrid/quizgrid/internal/game"
)

func (b *BoardScreen) RenderBoard(c *catalog.Catalog) {
	b.categories = c.Categories()
	clear(b.disabled)
	if _, ok := c.Question(b.cursor); !ok {
		b.cursor = catalog.TileID{}
	}
}

func (b *BoardScreen) ShowPrompt(tile catalog.TileID, q catalog.Question) {
	b.promptOpen = true
	b.promptTile = tile
	b.question = q
	b.input.Reset()
	b.setFocus(focusNone)
}

func (b *BoardScreen) HidePrompt() {
	b.promptOpen = false
	b.feedback = game.Feedback{}
	b.input.Reset()
	b.setFocus(focusNone)
}

func (b *BoardScreen) ShowFeedback(f game.Feedback) {
	b.feedback = f
}

func (b *BoardScreen) DisableTile(tile catalog.TileID) {
	b.disabled[tile] = true
}

func (b *BoardScreen) SetScoreText(text string) {
	b.scoreText = text
}

func (b *BoardScreen) FocusTile(tile catalog.TileID) {
	b.cursor = tile
}

func (b *BoardScreen) FocusAnswer() {
	if !b.promptOpen {
		return
	}
	if cmd := b.setFocus(focusInput); cmd != nil {
		b.pending = append(b.pending, cmd)
	}
}

func (b *BoardScreen) AnnounceGameOver(finalScore int) {
	b.log.Debug().Int("score", finalScore).Msg("showing game over screen")
	b.showGameOver()
}
