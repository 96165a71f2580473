// Package core provides fundamental types and utilities for the game.
// It contains no terminal dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Epsilon is the tolerance used by boundary tests.
const Epsilon = 1e-9

// Vec2 is a point or direction in world or screen space.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Rotate rotates v around the origin by deg degrees.
// Screen coordinates: positive angles turn clockwise because Y grows downward.
func (v Vec2) Rotate(deg float64) Vec2 {
	s, c := math.Sincos(Radians(deg))
	return Vec2{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Cross returns the z component of the 3D cross product.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Dot returns the dot product.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Lerp interpolates between v (t=0) and o (t=1).
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{X: v.X + (o.X-v.X)*t, Y: v.Y + (o.Y-v.Y)*t}
}

// Polar returns the point at distance r and angle deg from center.
func Polar(center Vec2, r, deg float64) Vec2 {
	s, c := math.Sincos(Radians(deg))
	return Vec2{X: center.X + r*c, Y: center.Y + r*s}
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Rect represents an axis-aligned box used for bounds and coarse culling.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges count as overlap, matching the inclusive containment policy.
func (r Rect) Intersects(other Rect) bool {
	if r.X > other.Right() || other.X > r.Right() {
		return false
	}
	if r.Y > other.Bottom() || other.Y > r.Bottom() {
		return false
	}
	return true
}

// Contains reports whether p lies inside r. Edges are inside.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Bounds returns r itself so Rect satisfies Region.
func (r Rect) Bounds() Rect {
	return r
}

// Translate returns r moved by d.
func (r Rect) Translate(d Vec2) Region {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// Outline returns the four corners clockwise from the top-left.
func (r Rect) Outline() []Vec2 {
	return []Vec2{
		{r.X, r.Y},
		{r.Right(), r.Y},
		{r.Right(), r.Bottom()},
		{r.X, r.Bottom()},
	}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Union returns the smallest rectangle covering r and o.
func (r Rect) Union(o Rect) Rect {
	x0 := math.Min(r.X, o.X)
	y0 := math.Min(r.Y, o.Y)
	x1 := math.Max(r.Right(), o.Right())
	y1 := math.Max(r.Bottom(), o.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Transform maps world coordinates onto the screen: the world is shifted so
// Translation lands on Origin, rotated by -Rotation and scaled by Scale.
type Transform struct {
	Translation Vec2
	Rotation    float64 // degrees
	Scale       float64
	Origin      Vec2
}

// Identity returns a transform that leaves points unchanged.
func Identity() Transform {
	return Transform{Scale: 1}
}

// Apply maps a world point to screen space.
func (t Transform) Apply(p Vec2) Vec2 {
	return p.Sub(t.Translation).Rotate(-t.Rotation).Scale(t.Scale).Add(t.Origin)
}

// ApplyAll maps every point of pts.
func (t Transform) ApplyAll(pts []Vec2) []Vec2 {
	out := make([]Vec2, len(pts))
	for i, p := range pts {
		out[i] = t.Apply(p)
	}
	return out
}

// Invert maps a screen point back to world space.
func (t Transform) Invert(p Vec2) Vec2 {
	if t.Scale == 0 {
		return t.Translation
	}
	return p.Sub(t.Origin).Scale(1 / t.Scale).Rotate(t.Rotation).Add(t.Translation)
}
