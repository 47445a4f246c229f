package cmd

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/quizgrid/quizgrid/internal/plain"
)

var plainCmd = &cobra.Command{
	Use:   "plain",
	Short: "Play line by line over stdin and stdout",
	Long: `Play without the full-screen interface. Pick a tile with "<category> <question>"
(numbered from 1) or by id ("tile-0-2"), then type the answer on the next line.
Type "help" during the game for all commands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		return plain.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), plain.Options{
			Catalog: runtime.catalog,
			Timing:  runtime.cfg.Timing.Game(),
			Logger:  runtime.log,
		})
	},
}
