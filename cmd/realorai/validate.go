package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/real-or-ai/internal/catalog"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file|dir>",
	Short: "Check level files for errors",
	Long: `Parse and validate level files. For a directory every .yaml/.yml file
is checked and all problems are reported, not just the first.

Each valid level is printed with its layout and number of AI images.
Exits with status 1 if any file is invalid.

Examples:
  realorai validate ./levels
  realorai validate ./levels/portraits.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  exitOnError(runValidate),
}

func runValidate(_ *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	return validateLevels(os.Stdout, logger, args[0])
}

// validateLevels checks every level file under root and reports each one
// to w. The error summarizes how many files failed.
func validateLevels(w io.Writer, logger *log.Logger, root string) error {
	loader := catalog.NewLoader(root)
	files, err := loader.Files()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no level files in %s", root)
	}

	failed := 0
	for _, path := range files {
		if err := checkLevelFile(w, loader, path); err != nil {
			failed++
			logger.Debug("invalid level file", "path", path, "error", err)
			fmt.Fprintf(w, "FAIL %s\n     %v\n", path, err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files invalid", failed, len(files))
	}
	return nil
}

// checkLevelFile loads and builds one file, printing its levels on success.
func checkLevelFile(w io.Writer, loader *catalog.Loader, path string) error {
	src, err := loader.LoadFile(path)
	if err != nil {
		return err
	}

	// Build without shuffling to report the authored order.
	cat, err := src.Build(nil)
	if err != nil {
		return err
	}
	for i, lvl := range cat.Levels() {
		if lvl.Layout().Size() != lvl.Len() {
			return fmt.Errorf("level %d: layout %s does not fit %d images", i+1, lvl.Layout(), lvl.Len())
		}
	}

	fmt.Fprintf(w, "ok   %s (%s: %d levels, %d images)\n", path, cat.Title(), cat.Len(), cat.TotalImages())
	for i, lvl := range cat.Levels() {
		fmt.Fprintf(w, "     %d. %-28s %-7s %d of %d AI\n", i+1, lvl.Title(), lvl.Layout(), lvl.AICount(), lvl.Len())
	}
	return nil
}
