// Package plain plays the game over a line-oriented stream, for terminals
// without full-screen support and for scripted play.
package plain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/quizgrid/quizgrid/internal/catalog"
	"github.com/quizgrid/quizgrid/internal/game"
)

// ErrUnknownCommand is returned by ParseCommand for unrecognized input.
var ErrUnknownCommand = errors.New("unknown command")

// CommandKind identifies a board command.
type CommandKind int

const (
	CmdSelect CommandKind = iota
	CmdBoard
	CmdClose
	CmdHelp
	CmdQuit
)

// Command is a parsed line of board input.
type Command struct {
	Kind CommandKind
	Tile catalog.TileID // for CmdSelect
}

// ParseCommand parses a line typed while no prompt is open. Tiles are
// picked either as "<category> <question>" numbered from 1, as shown in the
// board listing, or by tile id ("tile-0-2").
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, ErrUnknownCommand
	}

	switch fields[0] {
	case "board", "b":
		return Command{Kind: CmdBoard}, nil
	case closeCommand, "close", "c":
		return Command{Kind: CmdClose}, nil
	case "help", "h", "?":
		return Command{Kind: CmdHelp}, nil
	case "quit", "q", "exit":
		return Command{Kind: CmdQuit}, nil
	}

	if len(fields) == 1 && strings.HasPrefix(fields[0], "tile-") {
		id, err := catalog.ParseTileID(fields[0])
		if err != nil {
			return Command{}, fmt.Errorf("%w: %w", ErrUnknownCommand, err)
		}
		return Command{Kind: CmdSelect, Tile: id}, nil
	}

	if len(fields) == 2 {
		c, errC := strconv.Atoi(fields[0])
		q, errQ := strconv.Atoi(fields[1])
		if errC == nil && errQ == nil && c > 0 && q > 0 {
			return Command{Kind: CmdSelect, Tile: catalog.TileID{Category: c - 1, Question: q - 1}}, nil
		}
	}

	return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
}

// closeCommand closes the open question. The colon keeps it apart from
// answers, so "close" itself can still be submitted.
const closeCommand = ":close"

const helpText = `Commands:
  <category> <question>   pick a tile, e.g. "2 3"
  tile-<c>-<q>            pick a tile by id, e.g. "tile-1-2"
  board                   show the board
  :close                  close the open question
  quit                    leave the game
While a question is open, any line other than :close is your answer.`

// Options configures a line-mode game.
type Options struct {
	Catalog *catalog.Catalog
	Timing  game.Timing
	Logger  zerolog.Logger

	// Sleep waits between scheduled steps. Nil uses real time.
	Sleep SleepFunc
}

// Run plays one game, reading commands and answers from in and writing
// to out. It returns nil when the game ends or the player quits, and the
// context error if ctx is cancelled.
func Run(ctx context.Context, in io.Reader, out io.Writer, opts Options) error {
	r := newLineRenderer(out)
	sched := newQueueScheduler(opts.Sleep)
	ctrl := game.NewController(opts.Catalog, r, sched,
		game.WithTiming(opts.Timing),
		game.WithLogger(opts.Logger),
	)
	log := opts.Logger.With().Str("game_id", ctrl.State().GameID).Str("mode", "plain").Logger()

	ctrl.Start()
	if r.gameOver {
		return nil
	}
	r.printBoard(ctrl.State().Remaining())
	fmt.Fprintln(out, `Type "help" for commands.`)

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.prompt()
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			fmt.Fprintln(out)
			log.Debug().Msg("input closed")
			return nil
		}
		line := scanner.Text()
		wasOpen := r.promptOpen

		if r.promptOpen {
			if isClose(line) {
				ctrl.ClosePrompt()
			} else if _, err := ctrl.SubmitAnswer(line); err != nil && !errors.Is(err, game.ErrEmptyAnswer) {
				return err
			}
		} else if quit := handleCommand(line, ctrl, r, out); quit {
			log.Debug().Msg("player quit")
			return nil
		}

		if err := sched.Flush(ctx); err != nil {
			return err
		}
		if r.gameOver {
			return nil
		}
		if wasOpen && !r.promptOpen {
			r.printBoard(ctrl.State().Remaining())
		}
	}
}

func isClose(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), closeCommand)
}

// handleCommand runs a board command and reports whether to quit.
func handleCommand(line string, ctrl *game.Controller, r *lineRenderer, out io.Writer) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}
	cmd, err := ParseCommand(line)
	if err != nil {
		fmt.Fprintf(out, "Unknown command %q. Type \"help\" for commands.\n", strings.TrimSpace(line))
		return false
	}

	switch cmd.Kind {
	case CmdQuit:
		return true
	case CmdHelp:
		fmt.Fprintln(out, helpText)
	case CmdBoard:
		ctrl.Redraw()
		r.printBoard(ctrl.State().Remaining())
	case CmdClose:
		fmt.Fprintln(out, "No question is open.")
	case CmdSelect:
		if !ctrl.SelectTile(cmd.Tile) {
			if ctrl.State().IsDisabled(cmd.Tile) {
				fmt.Fprintln(out, "That question has already been answered.")
			} else {
				fmt.Fprintln(out, "No such tile.")
			}
		}
	}
	return false
}
