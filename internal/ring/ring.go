package ring

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vovakirdan/hexring/internal/core"
	"github.com/vovakirdan/hexring/internal/events"
)

// ErrColorCount is returned when a color assignment does not match the
// number of shapes.
var ErrColorCount = errors.New("ring: color count mismatch")

// Event tags emitted by the ring.
const (
	TagFlash  = "flash"
	TagSteady = "steady"
)

// Palette is the ordered color cycle of a flash.
type Palette []core.Color

// FallbackPalette is used when a flash is started without a palette.
var FallbackPalette = Palette{core.ColorRed, core.ColorOrange, core.ColorCyan, core.ColorGreen}

// CuePalette builds the flash palette announcing a cue colored c.
func CuePalette(c core.Color) Palette {
	return Palette{core.ColorWhite, core.ColorGray, c, c}
}

// Strings returns the hex codes of the palette.
func (p Palette) Strings() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Hex()
	}
	return out
}

// FlashConfig times the flash animation in frames.
type FlashConfig struct {
	Period int // frames per step
	Cycles int // full palette rotations per flash
}

// DefaultFlash matches a 30 fps driver: a step every 4 frames, two rotations.
var DefaultFlash = FlashConfig{Period: 4, Cycles: 2}

// Ring owns the shapes and their fills. Geometry never changes after Build;
// only fills do.
type Ring struct {
	cfg     Config
	flash   FlashConfig
	shapes  []*Shape
	steady  []core.Color
	emitter *events.Emitter

	palette   Palette
	step      int
	frame     int
	remaining int
}

// New builds a ring with every shape filled with fill.
func New(cfg Config, fill core.Color, flash FlashConfig) (*Ring, error) {
	r := &Ring{emitter: events.NewEmitter()}
	if err := r.Reload(cfg, fill, flash); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload rebuilds the geometry and drops any running flash. On error the
// ring is left unchanged.
func (r *Ring) Reload(cfg Config, fill core.Color, flash FlashConfig) error {
	shapes, err := Build(cfg)
	if err != nil {
		return err
	}
	if flash.Period < 1 {
		flash.Period = 1
	}
	if flash.Cycles < 1 {
		flash.Cycles = 1
	}

	r.cfg = cfg
	r.flash = flash
	r.shapes = shapes
	r.steady = make([]core.Color, len(shapes))
	for i := range r.steady {
		r.steady[i] = fill
	}
	r.palette = nil
	r.apply()
	return nil
}

// Config returns the geometry the ring was built from.
func (r *Ring) Config() Config {
	return r.cfg
}

// Events returns the ring's emitter.
func (r *Ring) Events() *events.Emitter {
	return r.emitter
}

// Len returns the number of shapes.
func (r *Ring) Len() int {
	return len(r.shapes)
}

// Shape returns a copy of shape i.
func (r *Ring) Shape(i int) Shape {
	s := *r.shapes[i]
	s.Polygon = slices.Clone(s.Polygon)
	return s
}

// Fills returns the current fill of every shape, in order.
func (r *Ring) Fills() []core.Color {
	out := make([]core.Color, len(r.shapes))
	for i, s := range r.shapes {
		out[i] = s.fill
	}
	return out
}

// Flashing reports whether a flash is running.
func (r *Ring) Flashing() bool {
	return r.palette != nil
}

// Palette returns the running flash palette, or nil when steady.
func (r *Ring) Palette() Palette {
	return slices.Clone(r.palette)
}

// Draw fills every shape in list order.
func (r *Ring) Draw(dst core.Surface) {
	for _, s := range r.shapes {
		dst.FillPolygon(s.Polygon, s.fill)
	}
}

// StartFlashing cycles the fills through p. Restarting with the palette that
// is already running only refreshes the remaining duration.
func (r *Ring) StartFlashing(p Palette) {
	if len(p) == 0 {
		p = FallbackPalette
	}

	if r.Flashing() && slices.Equal(r.palette, p) {
		r.remaining = r.duration()
		return
	}

	r.palette = slices.Clone(p)
	r.step = 0
	r.frame = 0
	r.remaining = r.duration()
	r.apply()
	r.emitter.Emit(TagFlash, events.Flash{Palette: r.palette.Strings()})
}

// StopFlashing restores the steady fills.
func (r *Ring) StopFlashing() {
	if !r.Flashing() {
		return
	}
	r.palette = nil
	r.apply()
	r.emitter.Emit(TagSteady, nil)
}

// Tick advances the flash by one frame.
func (r *Ring) Tick() {
	if !r.Flashing() {
		return
	}

	r.frame++
	if r.frame < r.flash.Period {
		return
	}
	r.frame = 0
	r.step++
	r.remaining--
	if r.remaining <= 0 {
		r.StopFlashing()
		return
	}
	r.apply()
}

// Update sets the steady fill of every shape at once and cancels a running
// flash. colors must hold exactly one entry per shape.
func (r *Ring) Update(colors []core.Color) error {
	if len(colors) != len(r.shapes) {
		return fmt.Errorf("%w: got %d, ring has %d shapes", ErrColorCount, len(colors), len(r.shapes))
	}
	copy(r.steady, colors)
	if r.Flashing() {
		r.StopFlashing()
		return nil
	}
	r.apply()
	return nil
}

func (r *Ring) duration() int {
	return r.flash.Cycles * len(r.palette)
}

func (r *Ring) apply() {
	n := len(r.palette)
	for i, s := range r.shapes {
		if n == 0 {
			s.fill = r.steady[i]
			continue
		}
		s.fill = r.palette[(i+r.step)%n]
	}
}
