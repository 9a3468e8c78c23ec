// realorai is a terminal quiz: spot the AI-generated images in each level.
//
// Usage:
//
//	realorai                   - Pick a level pack from a menu and play
//	realorai play [pack]       - Play a pack (default from config)
//	realorai list              - List available level packs
//	realorai levels [pack]     - Print a pack's levels
//	realorai validate <path>   - Check level files
//	realorai config            - Print the default config file
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible shuffles
//	--config <path>     - Config file (default search: ~/.realorai, ./configs)
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/real-or-ai/internal/config"
	"github.com/vovakirdan/real-or-ai/internal/core"

	// Import packs to register them
	_ "github.com/vovakirdan/real-or-ai/internal/packs/classic"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "realorai",
	Short: "Real or AI - spot the generated images",
	Long: `Real or AI is a terminal quiz. Each level shows a handful of images;
mark the ones you think are AI-generated, check your answers, and read
why each image is real or not.

Available commands:
  play      - Play a level pack
  list      - Show all level packs
  levels    - Print the levels of a pack
  validate  - Check level files for errors
  config    - Print the default config file

Run without a command to pick a pack from a menu.

Examples:
  realorai
  realorai play classic
  realorai play --levels ./my-levels --difficulty hard
  realorai validate ./my-levels`,
	Args: cobra.NoArgs,
	Run:  exitOnError(runMenu),
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(configCmd)
}

// exitOnError adapts a command body to cobra's Run. The body returns
// before the process exits, so its deferred cleanup (the log file) runs.
func exitOnError(fn func(*cobra.Command, []string) error) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		if err := fn(cmd, args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

// newLogger builds the process logger. The TUI owns the terminal, so
// interactive commands only log when --log-file is given.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		if dir := filepath.Dir(flagLogFile); dir != "." {
			//nolint:errcheck // OpenFile reports the real problem
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	case interactive:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "realorai",
		Level:           level,
	})
	return logger, closeFn, nil
}

// newRunID returns an identifier for correlating one process's log lines.
func newRunID() string {
	return uuid.NewString()
}

// loadConfig loads the config file and logs where it came from.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, origin, err := config.Load(flagConfig, logger)
	if err != nil {
		return config.Config{}, err
	}
	logger.Debug("config loaded", "from", origin)
	return cfg, nil
}

// runtimeConfig reads the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}
