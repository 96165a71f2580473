package core

import "math"

// Surface is the drawing target handed to entities during the draw pass.
// Coordinates are logical units, independent of the terminal size.
type Surface interface {
	// Size returns the logical width and height.
	Size() Vec2
	FillPolygon(pts []Vec2, fill Color)
	FillCircle(center Vec2, radius float64, fill Color)
	// SetClip restricts later fills to r until ClearClip.
	SetClip(r Region)
	ClearClip()
}

// Canvas rasterizes a logical square surface onto a rectangle of screen
// cells. A cell is painted when its center falls inside the filled region.
type Canvas struct {
	screen  *Screen
	area    [4]int // x, y, w, h in cells
	logical Vec2
	clip    Region
	glyph   rune
}

// CellAspect is the height/width ratio of a terminal cell.
const CellAspect = 2.0

// NewCanvas fits a logical size x size surface into the screen, centered,
// compensating for non-square cells. The bottom reserve rows stay free for
// status lines.
func NewCanvas(s *Screen, size float64, reserve int) *Canvas {
	rows := max(s.Height()-reserve, 1)
	cols := s.Width()
	h := rows
	w := int(math.Round(float64(h) * CellAspect))
	if w > cols {
		w = cols
		h = max(int(math.Round(float64(w)/CellAspect)), 1)
	}
	x := (cols - w) / 2
	y := (rows - h) / 2
	return &Canvas{
		screen:  s,
		area:    [4]int{x, y, w, h},
		logical: V(size, size),
		glyph:   ' ',
	}
}

// Size implements Surface.
func (c *Canvas) Size() Vec2 {
	return c.logical
}

// Cells returns the canvas rectangle in screen cells.
func (c *Canvas) Cells() (x, y, w, h int) {
	return c.area[0], c.area[1], c.area[2], c.area[3]
}

// SetClip implements Surface.
func (c *Canvas) SetClip(r Region) {
	c.clip = r
}

// ClearClip implements Surface.
func (c *Canvas) ClearClip() {
	c.clip = nil
}

// FillPolygon implements Surface.
func (c *Canvas) FillPolygon(pts []Vec2, fill Color) {
	if len(pts) < 3 || fill.IsZero() {
		return
	}
	c.fill(Polygon(pts), fill)
}

// FillCircle implements Surface.
func (c *Canvas) FillCircle(center Vec2, radius float64, fill Color) {
	if radius <= 0 || fill.IsZero() {
		return
	}
	c.fill(Circle{Center: center, Radius: radius}, fill)
}

func (c *Canvas) fill(r Region, fill Color) {
	b := r.Bounds()
	x0, y0 := c.toCell(V(b.X, b.Y))
	x1, y1 := c.toCell(V(b.Right(), b.Bottom()))
	ax, ay, aw, ah := c.Cells()
	x0, x1 = Clamp(x0, 0, aw-1), Clamp(x1, 0, aw-1)
	y0, y1 = Clamp(y0, 0, ah-1), Clamp(y1, 0, ah-1)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			p := c.cellCenter(cx, cy)
			if !r.Contains(p) {
				continue
			}
			if c.clip != nil && !c.clip.Contains(p) {
				continue
			}
			c.screen.SetBg(ax+cx, ay+cy, fill)
			c.screen.Set(ax+cx, ay+cy, c.glyph)
		}
	}
}

// toCell maps a logical point to canvas-relative cell coordinates.
func (c *Canvas) toCell(p Vec2) (int, int) {
	_, _, w, h := c.Cells()
	x := int(math.Floor(p.X / c.logical.X * float64(w)))
	y := int(math.Floor(p.Y / c.logical.Y * float64(h)))
	return x, y
}

// cellCenter maps a canvas-relative cell to the logical point at its center.
func (c *Canvas) cellCenter(x, y int) Vec2 {
	_, _, w, h := c.Cells()
	return V((float64(x)+0.5)/float64(w)*c.logical.X, (float64(y)+0.5)/float64(h)*c.logical.Y)
}
