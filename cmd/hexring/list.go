package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexring/internal/schema"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List embedded levels",
	Long:  `Shows the levels built into hexring, in play order.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	levels := schema.Builtins()

	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, s := range levels {
		maxIDLen = max(maxIDLen, len(s.ID))
	}

	fmt.Printf("  %-5s  %-*s  %-5s  %s\n", "Level", maxIDLen, "ID", "Tiles", "Timeout")
	fmt.Printf("  %-5s  %-*s  %-5s  %s\n", "-----", maxIDLen, "--", "-----", "-------")

	for _, s := range levels {
		timeout := "none"
		if s.Gameplay.Timeout > 0 {
			timeout = fmt.Sprintf("%gs", s.Gameplay.Timeout)
		}
		fmt.Printf("  %-5d  %-*s  %-5d  %s\n", s.Level, maxIDLen, s.ID, len(s.Tiles), timeout)
	}

	fmt.Println()
	fmt.Println("Run 'hexring play <id>' to play a level.")
}
