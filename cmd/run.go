package cmd

import (
	"github.com/spf13/cobra"

	"github.com/quizgrid/quizgrid/internal/app"
)

// runApp launches the TUI with the loaded catalog and timing.
func runApp(cmd *cobra.Command) error {
	opts := app.Options{
		Catalog: runtime.catalog,
		Timing:  runtime.cfg.Timing.Game(),
		Logger:  runtime.log,
	}
	return app.Run(opts)
}
