package ring

import (
	"errors"
	"testing"

	"pgregory.net/rapid"

	"github.com/vovakirdan/hexring/internal/core"
	"github.com/vovakirdan/hexring/internal/events"
)

var steadyFill = core.RGB(100, 100, 100)

func newTestRing(t testing.TB) *Ring {
	t.Helper()
	r, err := New(Config{Size: 100, Extent: 10, Count: 8}, steadyFill, FlashConfig{Period: 4, Cycles: 2})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r
}

func TestStartFlashingFallback(t *testing.T) {
	r := newTestRing(t)
	var flashes []events.Flash
	events.On(r.Events(), TagFlash, func(p events.Flash) { flashes = append(flashes, p) })

	r.StartFlashing(nil)

	if !r.Flashing() {
		t.Fatal("ring should be flashing")
	}
	fills := r.Fills()
	for i, c := range fills {
		if expected := FallbackPalette[i%4]; c != expected {
			t.Errorf("fill %d = %v, expected %v", i, c, expected)
		}
	}
	if len(flashes) != 1 || flashes[0].Palette[0] != "#ff5050" {
		t.Errorf("flash events = %v, expected one fallback flash", flashes)
	}
}

func TestFlashRunsOut(t *testing.T) {
	r := newTestRing(t)
	steady := 0
	r.Events().On(TagSteady, func(events.Payload) { steady++ })

	r.StartFlashing(CuePalette(core.ColorCyan))
	// 2 cycles x 4 colors x 4 frames per step.
	for i := 0; i < 31; i++ {
		r.Tick()
	}
	if !r.Flashing() {
		t.Fatal("flash ended one frame early")
	}

	r.Tick()
	if r.Flashing() {
		t.Fatal("flash should have ended")
	}
	for i, c := range r.Fills() {
		if c != steadyFill {
			t.Fatalf("fill %d = %v after flash, expected steady %v", i, c, steadyFill)
		}
	}
	if steady != 1 {
		t.Errorf("steady events = %d, expected 1", steady)
	}
}

func TestRepeatedTriggerKeepsPeriod(t *testing.T) {
	r := newTestRing(t)
	p := CuePalette(core.ColorGreen)
	flashes := 0
	r.Events().On(TagFlash, func(events.Payload) { flashes++ })

	// Trigger every frame like a player standing in a target zone.
	for i := 0; i < 20; i++ {
		r.StartFlashing(p)
		r.Tick()
	}

	if flashes != 1 {
		t.Errorf("flash events = %d, expected 1", flashes)
	}
	// 20 frames at period 4 is step 5; shape 0 shows palette[5 % 4].
	if got := r.Fills()[0]; got != p[1] {
		t.Errorf("fill 0 = %v, expected %v", got, p[1])
	}

	// The last trigger refreshed the duration; its own frame already used
	// one step, leaving seven.
	for i := 0; i < 27; i++ {
		r.Tick()
	}
	if !r.Flashing() {
		t.Error("refreshed flash ended early")
	}
	r.Tick()
	if r.Flashing() {
		t.Error("refreshed flash should have ended")
	}
}

func TestDifferentPaletteRestarts(t *testing.T) {
	r := newTestRing(t)
	r.StartFlashing(nil)
	for i := 0; i < 8; i++ {
		r.Tick()
	}

	p := CuePalette(core.ColorOrange)
	r.StartFlashing(p)

	if got := r.Fills()[0]; got != core.ColorWhite {
		t.Errorf("fill 0 = %v, expected restart at %v", got, core.ColorWhite)
	}
	if got := r.Palette(); len(got) != 4 || got[2] != core.ColorOrange {
		t.Errorf("Palette() = %v, expected %v", got, p)
	}
}

func TestStopFlashing(t *testing.T) {
	r := newTestRing(t)
	r.StartFlashing(nil)
	r.StopFlashing()

	if r.Flashing() {
		t.Fatal("ring should be steady")
	}
	if r.Fills()[3] != steadyFill {
		t.Errorf("fill 3 = %v, expected %v", r.Fills()[3], steadyFill)
	}
}

func TestUpdate(t *testing.T) {
	r := newTestRing(t)

	colors := make([]core.Color, r.Len())
	for i := range colors {
		colors[i] = core.RGB(uint8(i), 0, 0)
	}
	if err := r.Update(colors); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	for i, c := range r.Fills() {
		if c != colors[i] {
			t.Errorf("fill %d = %v, expected %v", i, c, colors[i])
		}
	}

	before := r.Fills()
	err := r.Update(colors[:10])
	if !errors.Is(err, ErrColorCount) {
		t.Fatalf("Update() error = %v, expected ErrColorCount", err)
	}
	for i, c := range r.Fills() {
		if c != before[i] {
			t.Fatalf("fill %d changed on rejected update", i)
		}
	}
}

func TestReloadKeepsRingOnError(t *testing.T) {
	r := newTestRing(t)
	err := r.Reload(Config{Size: 10, Extent: 20, Count: 8}, steadyFill, DefaultFlash)
	if !errors.Is(err, ErrInvalidRing) {
		t.Fatalf("Reload() error = %v, expected ErrInvalidRing", err)
	}
	if r.Len() != 42 {
		t.Errorf("Len() = %d after failed reload, expected 42", r.Len())
	}
}

type recordingSurface struct {
	polygons int
}

func (s *recordingSurface) Size() core.Vec2 { return core.V(100, 100) }
func (s *recordingSurface) FillPolygon([]core.Vec2, core.Color) { s.polygons++ }
func (s *recordingSurface) FillCircle(core.Vec2, float64, core.Color) {}
func (s *recordingSurface) SetClip(core.Region) {}
func (s *recordingSurface) ClearClip() {}

func TestDrawFillsEveryShape(t *testing.T) {
	r := newTestRing(t)
	s := &recordingSurface{}
	r.Draw(s)
	if s.polygons != r.Len() {
		t.Errorf("polygons drawn = %d, expected %d", s.polygons, r.Len())
	}
}

func TestFlashRotationProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		period := rapid.IntRange(1, 6).Draw(t, "period")
		cycles := rapid.IntRange(1, 3).Draw(t, "cycles")
		n := rapid.IntRange(1, 6).Draw(t, "paletteLen")
		palette := make(Palette, n)
		for i := range palette {
			palette[i] = core.RGB(uint8(10*i+1), 0, 0)
		}

		r, err := New(Config{Size: 100, Extent: 10, Count: 5}, steadyFill, FlashConfig{Period: period, Cycles: cycles})
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		r.StartFlashing(palette)

		frames := rapid.IntRange(0, period*cycles*n-1).Draw(t, "frames")
		for i := 0; i < frames; i++ {
			r.Tick()
		}

		step := frames / period
		for i, c := range r.Fills() {
			if expected := palette[(i+step)%n]; c != expected {
				t.Fatalf("after %d frames fill %d = %v, expected %v", frames, i, c, expected)
			}
		}
	})
}
