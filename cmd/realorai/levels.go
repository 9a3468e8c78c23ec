package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/real-or-ai/internal/catalog"
)

var flagExportYAML bool

var levelsCmd = &cobra.Command{
	Use:   "levels [pack]",
	Short: "Print the levels of a pack",
	Long: `Print every level of a pack in authored order, with each image's
answer and explanation. Spoilers, obviously.

With --yaml the pack is written in the level file format, which is a
good starting point for authoring your own levels.

Examples:
  realorai levels
  realorai levels classic --yaml > my-levels.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  exitOnError(runLevels),
}

func init() {
	levelsCmd.Flags().BoolVar(&flagExportYAML, "yaml", false, "Write the pack as a level file")
}

func runLevels(_ *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	packID := cfg.Pack
	if len(args) == 1 {
		packID = args[0]
	}

	src, err := resolveSource(packID, "")
	if err != nil {
		return err
	}

	if flagExportYAML {
		return exportLevels(os.Stdout, src)
	}

	printLevels(src)
	return nil
}

// exportLevels writes src in the level file format.
func exportLevels(w io.Writer, src catalog.Source) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(src); err != nil {
		return fmt.Errorf("encoding %s: %w", src.Title, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding %s: %w", src.Title, err)
	}
	return nil
}

func printLevels(src catalog.Source) {
	fmt.Printf("%s: %d levels, %d images\n", src.Title, len(src.Levels), src.ImageCount())
	for i, lvl := range src.Levels {
		fmt.Printf("\n%d. %s\n", i+1, lvl.Title)
		for j, img := range lvl.Images {
			kind := "Real"
			if img.IsAI {
				kind = "AI  "
			}
			fmt.Printf("   %d) %s  %s\n", j+1, kind, img.Src)
			fmt.Printf("          %s\n", img.Explanation)
			if img.HasHint() {
				fmt.Printf("          hint: %s\n", img.Hint)
			}
		}
	}
}
