package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/real-or-ai/internal/platform/tui"
	"github.com/vovakirdan/real-or-ai/internal/registry"
)

// runMenu shows the pack picker, plays the chosen pack, and returns to the
// picker until the player quits.
func runMenu(cmd *cobra.Command, _ []string) error {
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
	theme, _ := tui.ThemeByName(cfg.Display.Theme)
	rt := runtimeConfig()

	var last string
	for {
		result, err := tui.RunMenu(registry.List(), rt, theme)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		rt = result.Config
		if result.Quit {
			break
		}

		src, err := registry.Source(result.PackID)
		if err != nil {
			logger.Error("pack failed to load", "pack", result.PackID, "error", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		session, err := play(src, cfg, rt, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		last = tui.SummaryText(session)

		// A pinned seed still varies between games, reproducibly
		if flagSeed != 0 {
			rt.Seed++
		}
	}

	if last != "" {
		fmt.Println(last)
	}
	return nil
}
