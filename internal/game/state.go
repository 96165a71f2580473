package game

import (
	"time"

	"github.com/vovakirdan/hexring/internal/core"
	"github.com/vovakirdan/hexring/internal/schema"
)

// Snapshot is a read-only view of the game for drivers and observers.
type Snapshot struct {
	Phase     Phase
	Session   Session
	Level     string
	LevelN    int
	LevelOf   int
	Timed     bool
	Remaining time.Duration
	Elapsed   time.Duration
	Frames    uint64
	Flashing  bool
	BitsLeft  int
	Position  core.Vec2
	Angle     float64
}

// State returns the current snapshot.
func (g *Game) State() Snapshot {
	name, n, of := g.level()
	return Snapshot{
		Phase:     g.loop.Phase(),
		Session:   g.session,
		Level:     name,
		LevelN:    n,
		LevelOf:   of,
		Timed:     g.timer.Limited(),
		Remaining: g.timer.Remaining(),
		Elapsed:   g.timer.Elapsed(),
		Frames:    g.loop.Frames(),
		Flashing:  g.ring.Flashing(),
		BitsLeft:  g.world.BitCount(),
		Position:  g.player.Position(),
		Angle:     g.player.Angle(),
	}
}

// Phase returns the lifecycle phase.
func (g *Game) Phase() Phase {
	return g.loop.Phase()
}

// Session returns a copy of the session state.
func (g *Game) Session() Session {
	return g.session
}

// Schema returns the loaded schema, or nil.
func (g *Game) Schema() *schema.Schema {
	return g.schema
}
