package world

import (
	"github.com/vovakirdan/hexring/internal/core"
	"github.com/vovakirdan/hexring/internal/events"
)

// BitPoints is the score for one consumed bit.
const BitPoints = 10

// Result is the outcome of one collision pass.
type Result struct {
	Tile     *Tile
	InTarget bool
	Cue      *Cue
	Consumed int
	Points   int
}

// Engine runs the player-versus-world pass.
type Engine struct {
	world *World
}

// NewEngine creates an engine over w.
func NewEngine(w *World) *Engine {
	return &Engine{world: w}
}

// Evaluate checks pos against the tile under it. Without a tile the result
// is empty. Every consumable bit containing pos is removed in one sweep.
func (e *Engine) Evaluate(pos core.Vec2) Result {
	c := e.world.CoordinatesOf(pos)
	tile := e.world.TileAt(c)
	if tile == nil {
		return Result{}
	}

	res := Result{Tile: tile}
	if tile.InTarget(pos) {
		res.InTarget = true
		res.Cue = tile.Cue
	}

	for _, p := range tile.Pieces {
		var gone map[*Bit]bool
		for _, b := range p.Bits {
			if b.Consumable && b.Contains(pos) {
				if gone == nil {
					gone = make(map[*Bit]bool)
				}
				gone[b] = true
			}
		}
		if gone != nil {
			p.compact(gone)
			res.Consumed += len(gone)
		}
	}

	if res.Consumed > 0 {
		res.Points = res.Consumed * BitPoints
		e.world.emitter.Emit(TagConsume, events.Consumed{
			Col:    c.Col,
			Row:    c.Row,
			Bits:   res.Consumed,
			Points: res.Points,
		})
	}
	return res
}
