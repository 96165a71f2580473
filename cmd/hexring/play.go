package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/vovakirdan/hexring/internal/config"
	"github.com/vovakirdan/hexring/internal/events"
	"github.com/vovakirdan/hexring/internal/game"
	"github.com/vovakirdan/hexring/internal/platform/feed"
	"github.com/vovakirdan/hexring/internal/platform/tui"
	"github.com/vovakirdan/hexring/internal/schema"
	"github.com/vovakirdan/hexring/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagFeed       string
	flagRecord     bool
)

var playCmd = &cobra.Command{
	Use:   "play [level|path]",
	Short: "Play a level",
	Long: `Start playing an embedded level or a level file. Without an argument
the first level is played.

Controls:
  Up/W, Down/S  - Thrust, reverse
  A/D, arrows   - Turn
  +/-           - Zoom (when the camera is not yoked)
  Space         - Pause
  R             - Reload the level
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - The level's own lives, steps and timeout
  normal - Slightly fewer of each (default)
  hard   - Noticeably fewer of each

Examples:
  hexring play
  hexring play corridor --difficulty hard
  hexring play ./my-level.yaml --config ./my-tuning.yaml
  hexring play --record --feed :8080`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagFeed, "feed", "", "Serve the event feed over WebSocket on this address")
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Record relayed events to the database")
}

func runPlay(cmd *cobra.Command, args []string) {
	ref := ""
	if len(args) > 0 {
		ref = args[0]
	}

	if err := play(cmd.Context(), ref); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play(ctx context.Context, ref string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	tuning, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	level, err := schema.Load(ref)
	if err != nil {
		return err
	}

	hud := tui.NewHUD()
	g, err := game.New(game.Options{
		Tuning:     tuning,
		Difficulty: preset,
		HUD:        hud,
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	if err := g.Reload(level); err != nil {
		return err
	}

	g.Events().SubscribeAll(events.LogSink(logger))

	if flagRecord {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		rec := storage.NewRecorder(store, logger)
		rec.SetSession(g.Session().ID)
		g.Events().SubscribeAll(rec.Record)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	if err := g.Start(); err != nil {
		return err
	}

	return run(ctx, g, hud, tui.Options{
		FPS:    flagFPS,
		Width:  width,
		Height: height,
		Logger: logger,
	}, logger)
}

// run drives the TUI and, with --feed, the observer feed. Quitting the TUI
// stops the feed; a feed failure stops the TUI.
func run(ctx context.Context, g *game.Game, hud *tui.HUD, opts tui.Options, logger *log.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	grp, gctx := errgroup.WithContext(ctx)

	if flagFeed != "" {
		hub := feed.NewHub(feed.Options{Logger: logger})
		g.Events().SubscribeAll(hub.Publish)
		grp.Go(func() error {
			return hub.Serve(gctx, flagFeed)
		})
	}

	grp.Go(func() error {
		defer cancel()
		err := tui.Run(gctx, g, hud, opts)
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	})

	return grp.Wait()
}
