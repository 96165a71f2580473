package entity

import "github.com/vovakirdan/hexring/internal/core"

// Mask is the hexagonal viewport inside the ring. While set, everything
// drawn is clipped to it.
type Mask struct {
	shape core.Polygon
	fill  core.Color
}

// NewMask creates a mask of circumradius size around center. offset turns
// it in degrees, matching the ring's.
func NewMask(center core.Vec2, size, offset float64, fill core.Color) *Mask {
	return &Mask{
		shape: core.Hexagon(center, size, 30+offset),
		fill:  fill,
	}
}

// Region returns the clip area.
func (m *Mask) Region() core.Region {
	return m.shape
}

// Set paints the backdrop and starts clipping.
func (m *Mask) Set(dst core.Surface) {
	if !m.fill.IsZero() {
		dst.FillPolygon(m.shape, m.fill)
	}
	dst.SetClip(m.shape)
}

// Unset stops clipping.
func (m *Mask) Unset(dst core.Surface) {
	dst.ClearClip()
}
