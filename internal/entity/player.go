// Package entity contains the moving parts drawn on top of the world: the
// player, the camera following it and the hexagonal viewport mask.
package entity

import (
	"github.com/vovakirdan/hexring/internal/core"
	"github.com/vovakirdan/hexring/internal/events"
	"github.com/vovakirdan/hexring/internal/input"
	"github.com/vovakirdan/hexring/internal/world"
)

// Player event tags.
const (
	TagEnter = "enter"
	TagExit  = "exit"
)

// PlayerConfig tunes the player's movement and look.
type PlayerConfig struct {
	Size        float64 // icon radius in world units
	Speed       float64 // world units per frame at full thrust
	TurnSpeed   float64 // degrees per frame at full turn
	Friction    float64 // velocity multiplier applied every frame
	Fill        core.Color
	Stroke      core.Color
	StrokeWidth float64 // fraction of Size drawn as outline
}

// DefaultPlayerConfig returns the stock tuning.
func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		Size:        1.5,
		Speed:       0.25,
		TurnSpeed:   8,
		Friction:    0.9,
		Fill:        core.RGB(75, 75, 75),
		Stroke:      core.ColorWhite,
		StrokeWidth: 0.35,
	}
}

// Spawn is where a player starts.
type Spawn struct {
	Position core.Vec2
	Angle    float64
}

// Player is a rotating icon with inertia. Angle 0 faces up; angles grow
// clockwise.
type Player struct {
	cfg     PlayerConfig
	spawn   Spawn
	pos     core.Vec2
	angle   float64
	vel     core.Vec2
	spin    float64
	coords  world.Coord
	emitter *events.Emitter
}

// NewPlayer creates a player at spawn.
func NewPlayer(cfg PlayerConfig, spawn Spawn, w *world.World) *Player {
	p := &Player{cfg: cfg, emitter: events.NewEmitter()}
	p.Reload(spawn, w)
	return p
}

// Reload moves the player to a new spawn and stops it. No enter or exit is
// emitted.
func (p *Player) Reload(spawn Spawn, w *world.World) {
	p.spawn = spawn
	p.Respawn(w)
}

// Respawn returns the player to its spawn point.
func (p *Player) Respawn(w *world.World) {
	p.pos = p.spawn.Position
	p.angle = p.spawn.Angle
	p.vel = core.Vec2{}
	p.spin = 0
	p.coords = w.CoordinatesOf(p.pos)
}

// Events returns the player's emitter.
func (p *Player) Events() *events.Emitter {
	return p.emitter
}

// Position returns the player's position in world units.
func (p *Player) Position() core.Vec2 {
	return p.pos
}

// Angle returns the heading in degrees.
func (p *Player) Angle() float64 {
	return p.angle
}

// Coordinates returns the grid cell the player is in.
func (p *Player) Coordinates() world.Coord {
	return p.coords
}

// Heading returns the unit vector the player faces.
func (p *Player) Heading() core.Vec2 {
	return core.V(0, -1).Rotate(p.angle)
}

// Move applies one frame of input. Up/W thrust, Down/S reverse, Left/A and
// Right/D turn. A step that would leave the tiles is refused and the
// player stops.
func (p *Player) Move(kb *input.Keyboard, w *world.World) {
	if kb.Any(input.KeyUp, input.KeyW) {
		p.vel = p.Heading().Scale(p.cfg.Speed)
	}
	if kb.Any(input.KeyDown, input.KeyS) {
		p.vel = p.Heading().Scale(-p.cfg.Speed)
	}
	if kb.Any(input.KeyLeft, input.KeyA) {
		p.spin = -p.cfg.TurnSpeed
	}
	if kb.Any(input.KeyRight, input.KeyD) {
		p.spin = p.cfg.TurnSpeed
	}

	p.angle = normalizeAngle(p.angle + p.spin)

	next := p.pos.Add(p.vel)
	if w.TileAt(w.CoordinatesOf(next)) != nil {
		p.pos = next
	} else {
		p.vel = core.Vec2{}
	}

	p.vel = p.vel.Scale(p.cfg.Friction)
	p.spin *= p.cfg.Friction
	if p.vel.Len() < core.Epsilon {
		p.vel = core.Vec2{}
	}

	p.track(w)
}

// track emits exit and enter when the grid cell changes.
func (p *Player) track(w *world.World) {
	c := w.CoordinatesOf(p.pos)
	if c == p.coords {
		return
	}
	prev := p.coords
	p.coords = c
	p.emitter.Emit(TagExit, events.Tile{Col: prev.Col, Row: prev.Row})
	p.emitter.Emit(TagEnter, events.Tile{Col: c.Col, Row: c.Row})
}

// Outline returns the icon triangle in world space.
func (p *Player) Outline(scale float64) core.Polygon {
	r := p.cfg.Size * scale
	return core.Polygon{
		core.Polar(p.pos, r, p.angle-90),
		core.Polar(p.pos, r, p.angle+40),
		core.Polar(p.pos, r, p.angle+140),
	}
}

// Draw paints the icon through view.
func (p *Player) Draw(dst core.Surface, view core.Transform) {
	dst.FillPolygon(view.ApplyAll(p.Outline(1)), p.cfg.Stroke)
	if inner := 1 - p.cfg.StrokeWidth; inner > 0 {
		dst.FillPolygon(view.ApplyAll(p.Outline(inner)), p.cfg.Fill)
	}
}

func normalizeAngle(deg float64) float64 {
	for deg >= 360 {
		deg -= 360
	}
	for deg < 0 {
		deg += 360
	}
	return deg
}
