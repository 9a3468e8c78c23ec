package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/real-or-ai/internal/catalog"
	"github.com/vovakirdan/real-or-ai/internal/config"
	"github.com/vovakirdan/real-or-ai/internal/core"
	"github.com/vovakirdan/real-or-ai/internal/platform/tui"
	"github.com/vovakirdan/real-or-ai/internal/quiz"
	"github.com/vovakirdan/real-or-ai/internal/registry"
)

var (
	flagLevels     string
	flagNoShuffle  bool
	flagEnd        string
	flagProtocol   string
	flagDifficulty string
	flagTheme      string
)

var playCmd = &cobra.Command{
	Use:   "play [pack]",
	Short: "Play a level pack",
	Long: `Start the quiz with the given level pack (default: the config's pack).

Controls:
  Arrows/hjkl  - Move between images
  Space / 1-6  - Mark an image as AI-generated
  Enter        - Check answers
  N            - Next level
  R            - Restart with reshuffled images
  ?            - Show all keys
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Hints and instructions shown, answers checked per level
  normal - No hints, answers checked per level
  hard   - No hints, answers only revealed in the final summary

Examples:
  realorai play
  realorai play classic --difficulty hard
  realorai play --levels ./my-levels.yaml
  realorai play --end wrap --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  exitOnError(runPlay),
}

func init() {
	playCmd.Flags().StringVar(&flagLevels, "levels", "", "Play a level file or directory instead of a pack")
	playCmd.Flags().BoolVar(&flagNoShuffle, "no-shuffle", false, "Keep images in authored order")
	playCmd.Flags().StringVar(&flagEnd, "end", "", "After the last level: gameover or wrap")
	playCmd.Flags().StringVar(&flagProtocol, "protocol", "", "Level flow: two-phase or single-phase")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Color theme: default or mono")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if err := checkTerminal(); err != nil {
		return err
	}
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	if err := applyPlayFlags(cmd, &cfg); err != nil {
		return err
	}

	packID := cfg.Pack
	if len(args) == 1 {
		packID = args[0]
	}

	src, err := resolveSource(packID, flagLevels)
	if err != nil {
		return err
	}

	session, err := play(src, cfg, runtimeConfig(), logger)
	if err != nil {
		return err
	}
	fmt.Println(tui.SummaryText(session))
	return nil
}

// applyPlayFlags folds the difficulty preset and explicit flags into cfg.
// Order: config file, then preset, then individual flags.
func applyPlayFlags(cmd *cobra.Command, cfg *config.Config) error {
	preset := cfg.Difficulty
	if cmd.Flags().Changed("difficulty") {
		p, ok := config.ParseDifficulty(flagDifficulty)
		if !ok {
			return fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		preset = p
	}
	config.ApplyPreset(cfg, preset)

	if cmd.Flags().Changed("end") {
		cfg.Session.EndPolicy = flagEnd
	}
	if cmd.Flags().Changed("protocol") {
		cfg.Session.Protocol = flagProtocol
	}
	if flagNoShuffle {
		cfg.Session.Shuffle = false
	}
	if cmd.Flags().Changed("theme") {
		cfg.Display.Theme = flagTheme
	}

	return config.Validate(*cfg)
}

// resolveSource loads levels from a path when given, otherwise from a pack.
func resolveSource(packID, levelsPath string) (catalog.Source, error) {
	if levelsPath != "" {
		src, err := catalog.NewLoader(levelsPath).Load()
		if err != nil {
			return catalog.Source{}, fmt.Errorf("load levels %s: %w", levelsPath, err)
		}
		return src, nil
	}

	if !registry.Exists(packID) {
		return catalog.Source{}, fmt.Errorf("unknown pack %q; run 'realorai list' to see available packs", packID)
	}
	return registry.Source(packID)
}

// quizOptions converts session settings into quiz options.
func quizOptions(s config.SessionConfig) ([]quiz.Option, error) {
	end, err := quiz.ParseEndPolicy(s.EndPolicy)
	if err != nil {
		return nil, err
	}
	protocol, err := quiz.ParseProtocol(s.Protocol)
	if err != nil {
		return nil, err
	}
	return []quiz.Option{
		quiz.WithEndPolicy(end),
		quiz.WithProtocol(protocol),
		quiz.WithHints(s.Hints),
	}, nil
}

// play runs one quiz in the terminal and returns the final session.
func play(src catalog.Source, cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) (quiz.Session, error) {
	opts, err := quizOptions(cfg.Session)
	if err != nil {
		return quiz.Session{}, err
	}
	theme, ok := tui.ThemeByName(cfg.Display.Theme)
	if !ok {
		logger.Warn("unknown theme, using default", "theme", cfg.Display.Theme)
	}

	runID := newRunID()
	logger.Info("starting", "run", runID, "catalog", src.Title, "difficulty", cfg.Difficulty, "shuffle", cfg.Session.Shuffle)

	session, err := tui.Run(rt, tui.Options{
		Source:           src,
		Shuffle:          cfg.Session.Shuffle,
		Quiz:             opts,
		Theme:            theme,
		ShowInstructions: cfg.Display.ShowInstructions,
		CardWidth:        cfg.Display.CardWidth,
		Logger:           logger,
		RunID:            runID,
	})
	if err != nil {
		return quiz.Session{}, fmt.Errorf("running quiz: %w", err)
	}
	return session, nil
}

// checkTerminal refuses to start the TUI when stdout isn't a terminal.
func checkTerminal() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("the quiz needs an interactive terminal")
	}
	return nil
}
