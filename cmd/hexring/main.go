// hexring is a terminal arcade game: steer through a tiled world inside a
// hexagonal ring, collect bits and find the cue targets before time runs out.
//
// Usage:
//
//	hexring list               - List embedded levels
//	hexring play [level|path]  - Play a level
//	hexring events [session]   - Show recorded sessions or one session's events
//
// Global flags:
//
//	--fps <rate>         - Frame rate (default: 30)
//	--db <path>          - Event database (default: ~/.hexring/events.db)
//	--log <path>         - Log file (default: no logging)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexring",
	Short: "hexring - steer through a hexagonal world in your terminal",
	Long: `hexring is a terminal arcade game. Steer a ship across a tiled world
framed by a hexagonal ring, collect bits for points and find the cue targets
that set the ring flashing before the clock runs out.

Available commands:
  list     - Show the embedded levels
  play     - Play a level
  events   - Inspect recorded sessions

Examples:
  hexring list
  hexring play playpen
  hexring play ./my-level.yaml --difficulty hard
  hexring play --record --feed :8080
  hexring events`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hexring/events.db", "Path to the event database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(eventsCmd)
}
