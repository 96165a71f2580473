package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexring/internal/storage"
)

var flagLimit int

var eventsCmd = &cobra.Command{
	Use:   "events [session]",
	Short: "Show recorded sessions or the events of one session",
	Long: `Without an argument, list the most recently recorded sessions. With a
session ID, print every event recorded for it in order.

Examples:
  hexring events
  hexring events 0b9c1f6e-6a53-4c89-9a0e-1d1f0f5a3c2b`,
	Args: cobra.MaximumNArgs(1),
	Run:  runEvents,
}

func init() {
	eventsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of sessions to list")
}

func runEvents(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		listSessions(store)
		return
	}

	records, err := store.SessionEvents(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving events: %v\n", err)
		return
	}
	if len(records) == 0 {
		fmt.Printf("No events recorded for session %s.\n", args[0])
		return
	}

	for _, r := range records {
		fmt.Printf("%s  %-18s  %s\n", r.CreatedAt.Format("15:04:05.000"), r.Name(), r.Data)
	}
}

func listSessions(store *storage.Store) {
	sessions, err := store.Sessions(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		return
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'hexring play --record' to record one.")
		return
	}

	fmt.Printf("  %-36s  %-6s  %-19s  %s\n", "Session", "Events", "Started", "Duration")
	fmt.Printf("  %-36s  %-6s  %-19s  %s\n", "-------", "------", "-------", "--------")

	for _, s := range sessions {
		fmt.Printf("  %-36s  %-6d  %-19s  %s\n",
			s.SessionID, s.Events, s.First.Local().Format("2006-01-02 15:04:05"), s.Last.Sub(s.First).Round(time.Millisecond))
	}
}
