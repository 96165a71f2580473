package core

import "math"

// Region is a closed 2D area with a containment test.
//
// Every implementation uses an inclusive boundary: a point lying exactly on
// the edge is inside. Results depend only on the inputs.
type Region interface {
	Contains(p Vec2) bool
	Bounds() Rect
	Translate(d Vec2) Region
	// Outline returns vertices suitable for filling the region.
	Outline() []Vec2
}

// Polygon is a simple (non self-intersecting) polygon.
type Polygon []Vec2

// Contains uses the even-odd crossing rule with an explicit edge check first,
// so boundary points are always inside.
func (pg Polygon) Contains(p Vec2) bool {
	n := len(pg)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		if onSegment(p, pg[i], pg[(i+1)%n]) {
			return true
		}
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := pg[i], pg[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// Bounds returns the axis-aligned bounding box.
func (pg Polygon) Bounds() Rect {
	if len(pg) == 0 {
		return Rect{}
	}
	x0, y0 := pg[0].X, pg[0].Y
	x1, y1 := x0, y0
	for _, v := range pg[1:] {
		x0 = math.Min(x0, v.X)
		y0 = math.Min(y0, v.Y)
		x1 = math.Max(x1, v.X)
		y1 = math.Max(y1, v.Y)
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Translate returns a copy moved by d.
func (pg Polygon) Translate(d Vec2) Region {
	out := make(Polygon, len(pg))
	for i, v := range pg {
		out[i] = v.Add(d)
	}
	return out
}

// Outline returns the vertices.
func (pg Polygon) Outline() []Vec2 {
	return pg
}

// Centroid returns the vertex average.
func (pg Polygon) Centroid() Vec2 {
	var c Vec2
	if len(pg) == 0 {
		return c
	}
	for _, v := range pg {
		c = c.Add(v)
	}
	return c.Scale(1 / float64(len(pg)))
}

// onSegment reports whether p lies on segment ab within Epsilon.
func onSegment(p, a, b Vec2) bool {
	ab := b.Sub(a)
	ap := p.Sub(a)
	if math.Abs(ab.Cross(ap)) > Epsilon*math.Max(1, ab.Len()) {
		return false
	}
	d := ap.Dot(ab)
	return d >= -Epsilon && d <= ab.Dot(ab)+Epsilon
}

// Circle is a disc.
type Circle struct {
	Center Vec2
	Radius float64
}

// Contains reports whether p is inside or on the circle.
func (c Circle) Contains(p Vec2) bool {
	dx, dy := p.X-c.Center.X, p.Y-c.Center.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius+Epsilon
}

// Bounds returns the square around the circle.
func (c Circle) Bounds() Rect {
	return Rect{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius, W: 2 * c.Radius, H: 2 * c.Radius}
}

// Translate returns a copy moved by d.
func (c Circle) Translate(d Vec2) Region {
	return Circle{Center: c.Center.Add(d), Radius: c.Radius}
}

// circleSegments is the vertex count used to approximate circle outlines.
const circleSegments = 24

// Outline approximates the circle with a regular polygon.
func (c Circle) Outline() []Vec2 {
	pts := make([]Vec2, circleSegments)
	for i := range pts {
		pts[i] = Polar(c.Center, c.Radius, float64(i)*360/circleSegments)
	}
	return pts
}

// Hexagon returns a regular hexagon with circumradius r whose first vertex
// sits at angle phase degrees.
func Hexagon(center Vec2, r, phase float64) Polygon {
	pg := make(Polygon, 6)
	for i := range pg {
		pg[i] = Polar(center, r, phase+float64(i)*60)
	}
	return pg
}
