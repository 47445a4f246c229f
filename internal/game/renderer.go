package game

import (
	"fmt"
	"time"

	"github.com/quizgrid/quizgrid/internal/catalog"
)

// Renderer is the display surface the Controller drives. Implementations
// own all presentation; the Controller never inspects them.
type Renderer interface {
	// RenderBoard clears the display and builds one group per category
	// with one enabled tile per question.
	RenderBoard(c *catalog.Catalog)

	// ShowPrompt opens the prompt for a tile with an empty answer field.
	ShowPrompt(tile catalog.TileID, q catalog.Question)

	// HidePrompt closes the prompt.
	HidePrompt()

	// ShowFeedback replaces the prompt's feedback area. A zero Feedback clears it.
	ShowFeedback(f Feedback)

	// DisableTile marks a tile as answered and no longer activatable.
	DisableTile(tile catalog.TileID)

	// SetScoreText updates the score display.
	SetScoreText(text string)

	// FocusTile moves keyboard focus to a tile.
	FocusTile(tile catalog.TileID)

	// FocusAnswer moves keyboard focus into the answer field.
	FocusAnswer()

	// AnnounceGameOver presents the final score and waits for acknowledgment.
	AnnounceGameOver(finalScore int)
}

// FeedbackKind classifies a feedback message for styling.
type FeedbackKind int

const (
	FeedbackNone FeedbackKind = iota
	FeedbackSuccess
	FeedbackError
	FeedbackValidation
)

// Feedback is a message shown in the prompt after a submission.
type Feedback struct {
	Kind FeedbackKind
	Text string
}

// Task is a handle to a scheduled callback.
type Task interface {
	// Cancel prevents the callback from running. Cancelling a task that
	// already ran is a no-op.
	Cancel()
}

// Scheduler runs callbacks after a delay on the same event loop that
// drives the Controller.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) Task
}

// Messages shown to the player.
const (
	MsgEmptyAnswer = "Please enter an answer"
)

// ScoreText formats the score display.
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// CorrectText is the success message for an awarded value.
func CorrectText(value int) string {
	return fmt.Sprintf("Correct! You earned %s.", catalog.ValueLabel(value))
}

// IncorrectText discloses the correct answer verbatim.
func IncorrectText(answer string) string {
	return fmt.Sprintf("Incorrect. The correct answer is \"%s\".", answer)
}

// GameOverText is the terminal announcement.
func GameOverText(score int) string {
	return fmt.Sprintf("Game Over! Your final score is %s", catalog.ValueLabel(score))
}
