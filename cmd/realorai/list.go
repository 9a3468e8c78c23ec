package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/real-or-ai/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all level packs",
	Long:  `Shows a list of all level packs built into realorai.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	packs := registry.List()

	if len(packs) == 0 {
		fmt.Println("No level packs available.")
		return
	}

	fmt.Println("Available packs:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, p := range packs {
		maxIDLen = max(maxIDLen, len(p.ID))
		maxTitleLen = max(maxTitleLen, len(p.Title))
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Levels")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "------")

	// Print packs
	for _, p := range packs {
		fmt.Printf("  %-*s  %-*s  %d (%d images)\n", maxIDLen, p.ID, maxTitleLen, p.Title, p.Levels, p.Images)
	}

	fmt.Println()
	fmt.Println("Run 'realorai play <id>' to play a pack.")
}
