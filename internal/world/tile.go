package world

import (
	"github.com/vovakirdan/hexring/internal/core"
)

// Coord addresses a tile on the grid.
type Coord struct {
	Col int
	Row int
}

// key packs the coordinate into a single map key.
func (c Coord) key() uint64 {
	return uint64(uint32(int32(c.Col)))<<32 | uint64(uint32(int32(c.Row)))
}

// Bit is the smallest world element. Consumable bits are removed when the
// player touches them.
type Bit struct {
	Consumable bool
	Fill       core.Color
	Region     core.Region
}

// Contains reports whether p lies in the bit, edges included.
func (b *Bit) Contains(p core.Vec2) bool {
	return b.Region != nil && b.Region.Contains(p)
}

// Piece groups bits on a tile.
type Piece struct {
	Fill   core.Color
	Region core.Region // optional backdrop
	Bits   []*Bit
}

// compact drops the bits marked in gone, keeping the order of the rest.
func (p *Piece) compact(gone map[*Bit]bool) {
	kept := p.Bits[:0]
	for _, b := range p.Bits {
		if !gone[b] {
			kept = append(kept, b)
		}
	}
	clear(p.Bits[len(kept):])
	p.Bits = kept
}

// Cue announces a target zone. A cue without fill flashes the fallback
// palette.
type Cue struct {
	Fill core.Color
}

// Tile is a grid node.
type Tile struct {
	Coord  Coord
	Fill   core.Color
	Pieces []*Piece
	Target core.Region // nil when the tile has no target zone
	Cue    *Cue
}

// InTarget reports whether p lies in the tile's target zone.
func (t *Tile) InTarget(p core.Vec2) bool {
	return t.Target != nil && t.Target.Contains(p)
}

// BitCount returns the number of bits on the tile.
func (t *Tile) BitCount() int {
	n := 0
	for _, p := range t.Pieces {
		n += len(p.Bits)
	}
	return n
}
