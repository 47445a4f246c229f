package plain

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizgrid/quizgrid/internal/catalog"
	"github.com/quizgrid/quizgrid/internal/game"
)

func singleCatalog() *catalog.Catalog {
	return catalog.New(catalog.Category{
		Name:      "Regulations",
		Questions: []catalog.Question{{Value: 100, Prompt: "Which agency?", Answer: "FDA"}},
	})
}

func twoByTwoCatalog() *catalog.Catalog {
	return catalog.New(
		catalog.Category{Name: "A", Questions: []catalog.Question{
			{Value: 100, Prompt: "a1", Answer: "one"},
			{Value: 200, Prompt: "a2", Answer: "two"},
		}},
		catalog.Category{Name: "B", Questions: []catalog.Question{
			{Value: 100, Prompt: "b1", Answer: "three"},
			{Value: 200, Prompt: "b2", Answer: "four"},
		}},
	)
}

func noSleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

func play(t *testing.T, c *catalog.Catalog, input string) string {
	t.Helper()
	var out bytes.Buffer
	err := Run(context.Background(), strings.NewReader(input), &out, Options{
		Catalog: c,
		Timing:  game.DefaultTiming(),
		Logger:  zerolog.Nop(),
		Sleep:   noSleep,
	})
	require.NoError(t, err)
	return out.String()
}

func TestRun_CorrectAnswerEndsGame(t *testing.T) {
	out := play(t, singleCatalog(), "1 1\nfda\n")

	assert.Contains(t, out, "Regulations for $100")
	assert.Contains(t, out, "Which agency?")
	assert.Contains(t, out, "Correct! You earned $100.")
	assert.Contains(t, out, "Score: 100")
	assert.Contains(t, out, "Game Over! Your final score is $100")
}

func TestRun_WrongAnswer(t *testing.T) {
	out := play(t, singleCatalog(), "tile-0-0\nwrong\n")

	assert.Contains(t, out, `Incorrect. The correct answer is "FDA".`)
	assert.Contains(t, out, "Game Over! Your final score is $0")
	assert.NotContains(t, out, "Score: 100")
}

func TestRun_EmptyAnswerReprompts(t *testing.T) {
	out := play(t, singleCatalog(), "1 1\n   \nFDA\n")

	assert.Contains(t, out, game.MsgEmptyAnswer)
	assert.Contains(t, out, "Correct! You earned $100.")
	assert.Less(t, strings.Index(out, game.MsgEmptyAnswer), strings.Index(out, "Correct!"))
}

func TestRun_CloseThenReopen(t *testing.T) {
	out := play(t, twoByTwoCatalog(), "1 1\n:close\n1 1\none\n")

	assert.Equal(t, 2, strings.Count(out, "A for $100"))
	assert.Contains(t, out, "Correct! You earned $100.")
	assert.Contains(t, out, "[1] ----")
	assert.NotContains(t, out, "Game Over!")
	assert.Contains(t, out, "4 of 4 questions left")
	assert.Contains(t, out, "3 of 4 questions left")
}

func TestRun_CloseIsAValidAnswer(t *testing.T) {
	c := catalog.New(catalog.Category{
		Name:      "Doors",
		Questions: []catalog.Question{{Value: 100, Prompt: "Opposite of open?", Answer: "Close"}},
	})
	out := play(t, c, "1 1
close
")

	assert.Contains(t, out, "Correct! You earned $100.")
	assert.Contains(t, out, "Game Over! Your final score is $100")
}

func TestRun_AnsweredTileRefused(t *testing.T) {
	out := play(t, twoByTwoCatalog(), "1 1\none\n1 1\n")
	assert.Contains(t, out, "already been answered")
	assert.Equal(t, 1, strings.Count(out, "a1"))
}

func TestRun_UnknownInput(t *testing.T) {
	out := play(t, twoByTwoCatalog(), "9 9\nhello\nclose\n")
	assert.Contains(t, out, "No such tile.")
	assert.Contains(t, out, `Unknown command "hello"`)
	assert.Contains(t, out, "No question is open.")
}

func TestRun_BoardAndHelp(t *testing.T) {
	out := play(t, twoByTwoCatalog(), "help\nboard\n")
	assert.Contains(t, out, "Commands:")
	assert.Equal(t, 2, strings.Count(out, "1. A"))
}

func TestRun_Quit(t *testing.T) {
	out := play(t, twoByTwoCatalog(), "quit\n1 1\n")
	assert.NotContains(t, out, "A for $100")
}

func TestRun_FullGame(t *testing.T) {
	out := play(t, twoByTwoCatalog(), "1 1\none\n1 2\nx\n2 1\nTHREE\n2 2\nfour\n")
	assert.Contains(t, out, "Game Over! Your final score is $400")
}

func TestRun_EmptyCatalog(t *testing.T) {
	out := play(t, catalog.New(), "")
	assert.Contains(t, out, "Game Over! Your final score is $0")
}

func TestRun_HonorsTiming(t *testing.T) {
	var waits []time.Duration
	sleep := func(_ context.Context, d time.Duration) error {
		waits = append(waits, d)
		return nil
	}
	var out bytes.Buffer
	err := Run(context.Background(), strings.NewReader("1 1\none\n"), &out, Options{
		Catalog: twoByTwoCatalog(),
		Timing:  game.DefaultTiming(),
		Logger:  zerolog.Nop(),
		Sleep:   sleep,
	})
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 1500 * time.Millisecond}, waits)
}

func TestRun_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := Run(ctx, strings.NewReader("1 1\n"), &out, Options{
		Catalog: twoByTwoCatalog(),
		Logger:  zerolog.Nop(),
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in   string
		want Command
	}{
		{"1 1", Command{Kind: CmdSelect, Tile: catalog.TileID{}}},
		{" 2  3 ", Command{Kind: CmdSelect, Tile: catalog.TileID{Category: 1, Question: 2}}},
		{"tile-1-2", Command{Kind: CmdSelect, Tile: catalog.TileID{Category: 1, Question: 2}}},
		{"TILE-0-0", Command{Kind: CmdSelect}},
		{"board", Command{Kind: CmdBoard}},
		{"Close", Command{Kind: CmdClose}},
		{":close", Command{Kind: CmdClose}},
		{"?", Command{Kind: CmdHelp}},
		{"exit", Command{Kind: CmdQuit}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCommand(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommand_Invalid(t *testing.T) {
	for _, in := range []string{"", "0 1", "1", "a b", "tile-x-1", "1 2 3"} {
		_, err := ParseCommand(in)
		assert.ErrorIs(t, err, ErrUnknownCommand, "input %q", in)
	}
}
