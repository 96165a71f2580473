// Package world holds the tile grid the player moves through and the
// per-frame collision pass against it.
package world

import (
	"errors"
	"fmt"
	"math"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/hexring/internal/core"
	"github.com/vovakirdan/hexring/internal/events"
)

// Event tags emitted by the world.
const (
	TagReload  = "reload"
	TagConsume = "consume"
)

var (
	ErrTileSize      = errors.New("world: tile size must be positive")
	ErrDuplicateTile = errors.New("world: duplicate tile")
)

// World indexes tiles by grid coordinate. A tile at (col, row) covers
// [col*size, (col+1)*size) on both axes.
type World struct {
	size    float64
	tiles   []*Tile
	index   *intmap.Map[uint64, *Tile]
	emitter *events.Emitter
}

// New creates an empty world.
func New() *World {
	return &World{
		size:    1,
		index:   intmap.New[uint64, *Tile](64),
		emitter: events.NewEmitter(),
	}
}

// Reload replaces every tile. On error the world keeps its previous tiles.
func (w *World) Reload(size float64, tiles []*Tile) error {
	if size <= 0 || math.IsNaN(size) {
		return fmt.Errorf("%w: %v", ErrTileSize, size)
	}

	index := intmap.New[uint64, *Tile](len(tiles))
	for _, t := range tiles {
		k := t.Coord.key()
		if _, ok := index.Get(k); ok {
			return fmt.Errorf("%w at %d,%d", ErrDuplicateTile, t.Coord.Col, t.Coord.Row)
		}
		index.Put(k, t)
	}

	w.size = size
	w.tiles = tiles
	w.index = index
	w.emitter.Emit(TagReload, events.Value{Value: fmt.Sprintf("%d tiles", len(tiles))})
	return nil
}

// Events returns the world's emitter.
func (w *World) Events() *events.Emitter {
	return w.emitter
}

// TileSize returns the tile edge length in world units.
func (w *World) TileSize() float64 {
	return w.size
}

// Tiles returns the tiles in load order.
func (w *World) Tiles() []*Tile {
	return w.tiles
}

// CoordinatesOf returns the grid coordinate containing p.
func (w *World) CoordinatesOf(p core.Vec2) Coord {
	return Coord{
		Col: int(math.Floor(p.X / w.size)),
		Row: int(math.Floor(p.Y / w.size)),
	}
}

// TileAt returns the tile at c, or nil.
func (w *World) TileAt(c Coord) *Tile {
	t, _ := w.index.Get(c.key())
	return t
}

// Origin returns the top-left corner of the tile cell at c.
func (w *World) Origin(c Coord) core.Vec2 {
	return core.V(float64(c.Col)*w.size, float64(c.Row)*w.size)
}

// Center returns the center of the tile cell at c.
func (w *World) Center(c Coord) core.Vec2 {
	half := w.size / 2
	return w.Origin(c).Add(core.V(half, half))
}

// Cell returns the square covered by the tile cell at c.
func (w *World) Cell(c Coord) core.Rect {
	o := w.Origin(c)
	return core.NewRect(o.X, o.Y, w.size, w.size)
}

// Bounds returns the rectangle enclosing every tile.
func (w *World) Bounds() core.Rect {
	if len(w.tiles) == 0 {
		return core.Rect{}
	}
	b := w.Cell(w.tiles[0].Coord)
	for _, t := range w.tiles[1:] {
		b = b.Union(w.Cell(t.Coord))
	}
	return b
}

// BitCount returns the number of bits left in the world.
func (w *World) BitCount() int {
	n := 0
	for _, t := range w.tiles {
		n += t.BitCount()
	}
	return n
}

// Draw paints tiles, piece backdrops, bits and target zones through view.
func (w *World) Draw(dst core.Surface, view core.Transform) {
	for _, t := range w.tiles {
		if !t.Fill.IsZero() {
			dst.FillPolygon(view.ApplyAll(w.Cell(t.Coord).Outline()), t.Fill)
		}
		if t.Target != nil && t.Cue != nil && !t.Cue.Fill.IsZero() {
			dst.FillPolygon(view.ApplyAll(t.Target.Outline()), t.Cue.Fill.Blend(t.Fill, 0.5))
		}
		for _, p := range t.Pieces {
			if p.Region != nil && !p.Fill.IsZero() {
				dst.FillPolygon(view.ApplyAll(p.Region.Outline()), p.Fill)
			}
			for _, b := range p.Bits {
				if b.Region != nil {
					dst.FillPolygon(view.ApplyAll(b.Region.Outline()), b.Fill)
				}
			}
		}
	}
}
