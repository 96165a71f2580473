// Package ring builds the hexagonal notch ring and animates its colors.
package ring

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vovakirdan/hexring/internal/core"
)

// Sides is the ring's rotational symmetry.
const Sides = 6

// ErrInvalidRing is returned for geometry that cannot form a ring.
var ErrInvalidRing = errors.New("ring: invalid geometry")

// Config parameterizes the ring geometry.
type Config struct {
	Size     float64   // outer circumradius
	Extent   float64   // notch depth, measured along the radius
	Count    int       // segments per side; Count-2 notches plus a shared cap
	Offset   float64   // phase shift of the whole ring in degrees
	Position core.Vec2 // center
}

// Validate reports malformed geometry.
func (c Config) Validate() error {
	switch {
	case c.Count < 3:
		return fmt.Errorf("%w: count %d < 3", ErrInvalidRing, c.Count)
	case c.Size <= 0:
		return fmt.Errorf("%w: size %v must be positive", ErrInvalidRing, c.Size)
	case c.Extent <= 0:
		return fmt.Errorf("%w: extent %v must be positive", ErrInvalidRing, c.Extent)
	case c.Extent >= c.Size:
		return fmt.Errorf("%w: extent %v must be smaller than size %v", ErrInvalidRing, c.Extent, c.Size)
	}
	return nil
}

// Len returns the number of shapes a ring with this config holds.
func (c Config) Len() int {
	return Sides*(c.Count-2) + Sides
}

// CapIndex returns the position of side's cap in the shape list.
func (c Config) CapIndex(side int) int {
	return side * (c.Count - 1)
}

// Kind distinguishes notches from corner caps.
type Kind int

const (
	KindNotch Kind = iota
	KindCap
)

func (k Kind) String() string {
	switch k {
	case KindNotch:
		return "notch"
	case KindCap:
		return "cap"
	default:
		return "unknown"
	}
}

// Shape is one colorable ring segment. Geometry is fixed; only the fill
// changes.
type Shape struct {
	Kind    Kind
	Side    int
	Index   int // position within the side, 1..Count-2 for notches, 0 for caps
	Polygon core.Polygon
	fill    core.Color
}

// Fill returns the current fill.
func (s *Shape) Fill() core.Color {
	return s.fill
}

// Build computes the ring's shapes: per side one cap followed by that side's
// notches, sides in order. Color updates are index-aligned with this order.
func Build(cfg Config) ([]*Shape, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := hexGeometry{cfg: cfg, inner: cfg.Size - cfg.Extent}

	notches := make([]*Shape, 0, cfg.Len())
	for side := 0; side < Sides; side++ {
		for ind := 1; ind < cfg.Count-1; ind++ {
			notches = append(notches, g.notch(side, ind))
		}
	}

	caps := make([]*Shape, Sides)
	for side := range caps {
		caps[side] = g.cap(side)
	}

	shapes := notches
	for side, c := range caps {
		shapes = slices.Insert(shapes, cfg.CapIndex(side), c)
	}
	return shapes, nil
}

type hexGeometry struct {
	cfg   Config
	inner float64
}

// corner returns the vertex at the start of side on the hexagon of radius r.
func (g hexGeometry) corner(side int, r float64) core.Vec2 {
	angle := float64(side%Sides)*60 + 30 + g.cfg.Offset
	return core.Polar(g.cfg.Position, r, angle)
}

// edge returns the point at fraction t along side on the hexagon of radius r.
func (g hexGeometry) edge(side int, t, r float64) core.Vec2 {
	return g.corner(side, r).Lerp(g.corner(side+1, r), t)
}

func (g hexGeometry) frac(i int) float64 {
	return float64(i) / float64(g.cfg.Count)
}

func (g hexGeometry) notch(side, ind int) *Shape {
	t0, t1 := g.frac(ind), g.frac(ind+1)
	return &Shape{
		Kind:  KindNotch,
		Side:  side,
		Index: ind,
		Polygon: core.Polygon{
			g.edge(side, t0, g.cfg.Size),
			g.edge(side, t1, g.cfg.Size),
			g.edge(side, t1, g.inner),
			g.edge(side, t0, g.inner),
		},
	}
}

// cap spans the last segment of the previous side and the first segment of
// side, wrapping the corner between them.
func (g hexGeometry) cap(side int) *Shape {
	prev := (side + Sides - 1) % Sides
	last, first := g.frac(g.cfg.Count-1), g.frac(1)
	return &Shape{
		Kind: KindCap,
		Side: side,
		Polygon: core.Polygon{
			g.edge(prev, last, g.cfg.Size),
			g.corner(side, g.cfg.Size),
			g.edge(side, first, g.cfg.Size),
			g.edge(side, first, g.inner),
			g.corner(side, g.inner),
			g.edge(prev, last, g.inner),
		},
	}
}
