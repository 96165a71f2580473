// Package schema defines the declarative level format: spawn points, tiles
// with their pieces, bits and target zones, and the gameplay limits.
package schema

// Schema is a complete level.
type Schema struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Level    int      `yaml:"level"`
	TileSize float64  `yaml:"tile_size"`
	Players  []Player `yaml:"players"`
	Tiles    []Tile   `yaml:"tiles"`
	Gameplay Gameplay `yaml:"gameplay"`

	// Source is the file or catalog entry the schema came from.
	Source string `yaml:"-"`
}

// Player is a spawn point.
type Player struct {
	Position []float64 `yaml:"position"` // [x, y] in world units
	Angle    float64   `yaml:"angle"`    // degrees, 0 faces up
}

// Tile is one grid cell.
type Tile struct {
	Coord  []int   `yaml:"coord"` // [col, row]
	Fill   string  `yaml:"fill,omitempty"`
	Target *Region `yaml:"target,omitempty"`
	Cue    *Cue    `yaml:"cue,omitempty"`
	Pieces []Piece `yaml:"pieces,omitempty"`
}

// Cue marks a target zone; its fill picks the flash palette.
type Cue struct {
	Fill string `yaml:"fill,omitempty"`
}

// Piece groups bits.
type Piece struct {
	Fill   string  `yaml:"fill,omitempty"`
	Region *Region `yaml:"region,omitempty"`
	Bits   []Bit   `yaml:"bits,omitempty"`
}

// Bit is a collectible or decorative region.
type Bit struct {
	Consumable bool   `yaml:"consumable"`
	Fill       string `yaml:"fill,omitempty"`
	Region     Region `yaml:"region"`
}

// Region kinds.
const (
	KindPolygon = "polygon"
	KindCircle  = "circle"
	KindRect    = "rect"
	KindHexagon = "hexagon"
)

// Region is a shape in tile-local coordinates: (0, 0) is the tile's
// top-left corner.
type Region struct {
	Kind   string      `yaml:"kind"`
	Points [][]float64 `yaml:"points,omitempty"` // polygon
	Center []float64   `yaml:"center,omitempty"` // circle, hexagon
	Radius float64     `yaml:"radius,omitempty"` // circle, hexagon
	Phase  float64     `yaml:"phase,omitempty"`  // hexagon, degrees
	At     []float64   `yaml:"at,omitempty"`     // rect top-left
	Size   []float64   `yaml:"size,omitempty"`   // rect [w, h]
}

// Gameplay holds the limits of a run.
type Gameplay struct {
	Lives   int      `yaml:"lives"`
	Steps   int      `yaml:"steps"`
	Timeout float64  `yaml:"timeout"` // seconds, 0 = no limit
	Ring    RingSpec `yaml:"ring"`
}

// RingSpec overrides ring tuning per level. Zero values keep the tuning.
type RingSpec struct {
	Count  int      `yaml:"count,omitempty"`
	Offset *float64 `yaml:"offset,omitempty"`
	Fill   string   `yaml:"fill,omitempty"`
}
