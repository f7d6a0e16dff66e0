package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/debris-shooter/internal/registry"
)

var pilotsCmd = &cobra.Command{
	Use:   "pilots",
	Short: "List built-in pilots",
	Long:  `Shows the pilots that can drive "debris sim" without a script.`,
	Args:  cobra.NoArgs,
	Run:   runPilots,
}

func runPilots(cmd *cobra.Command, args []string) {
	pilots := registry.List()

	if len(pilots) == 0 {
		fmt.Println("No pilots available.")
		return
	}

	fmt.Println("Available pilots:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range pilots {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, p := range pilots {
		fmt.Printf("  %-*s  %s\n", maxIDLen, p.ID, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'debris sim --pilot <id>' or pass a .lua script instead of an id.")
}
