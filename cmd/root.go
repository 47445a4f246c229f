package cmd

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/quizgrid/quizgrid/internal/catalog"
	"github.com/quizgrid/quizgrid/internal/config"
	"github.com/quizgrid/quizgrid/internal/logging"
)

// runtime holds what PersistentPreRunE prepared for the subcommands.
var runtime struct {
	cfg     *config.Config
	log     zerolog.Logger
	closer  io.Closer
	catalog *catalog.Catalog
}

var rootCmd = &cobra.Command{
	Use:   "quizgrid",
	Short: "Trivia board game for the terminal",
	Long:  "Quizgrid: pick a category and a value, answer the question, and build your score until the board is cleared.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations[annotationNoSetup] != "" {
			return nil
		}
		return setup(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

// annotationNoSetup marks commands that run without config, log or catalog.
const annotationNoSetup = "quizgrid/no-setup"

// Execute runs the root command. The log opened by setup is closed on
// every exit path, including command errors.
func Execute() error {
	defer closeLog()
	return rootCmd.Execute()
}

func closeLog() {
	if runtime.closer != nil {
		runtime.closer.Close()
		runtime.closer = nil
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: ./config/config.yaml or $XDG_CONFIG_HOME/quizgrid/config.yaml)")
	rootCmd.PersistentFlags().String("env-file", ".env", "Path to a dotenv file with QUIZGRID_* overrides")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error, or disabled (overrides config)")
	rootCmd.PersistentFlags().String("log-file", "", "Log file path (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(plainCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration, opens the log and loads the catalog.
// Flags take precedence over the config file and environment.
func setup(cmd *cobra.Command) error {
	configFile, _ := cmd.Flags().GetString("config")
	envFile, _ := cmd.Flags().GetString("env-file")

	cfg, err := config.Load(config.LoadOptions{ConfigFile: configFile, EnvFile: envFile})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	if file, _ := cmd.Flags().GetString("log-file"); file != "" {
		cfg.Log.File = file
	}

	path := cfg.Log.File
	if path == "" {
		path, err = logging.DefaultPath()
		if err != nil {
			return fmt.Errorf("resolve log path: %w", err)
		}
	}
	log, closer, err := logging.New(cfg.Log.Level, path)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}

	cat, err := catalog.Default()
	if err != nil {
		closer.Close()
		return fmt.Errorf("load catalog: %w", err)
	}

	runtime.cfg = cfg
	runtime.log = log.With().Str("cmd", cmd.Name()).Logger()
	runtime.closer = closer
	runtime.catalog = cat

	runtime.log.Debug().
		Dur("focus_delay", cfg.Timing.FocusDelay).
		Dur("auto_close_delay", cfg.Timing.AutoCloseDelay).
		Dur("game_over_delay", cfg.Timing.GameOverDelay).
		Msg("configuration loaded")
	return nil
}
