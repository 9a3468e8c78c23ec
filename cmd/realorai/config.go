package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/real-or-ai/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config file",
	Long: `Print the built-in configuration with every key and its default.
Redirect it to start your own config file.

Examples:
  mkdir -p ~/.realorai && realorai config > ~/.realorai/config.yaml`,
	Args: cobra.NoArgs,
	Run: exitOnError(func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}),
}
