// Package game sequences a hexring session: input, movement, camera, ring
// animation, collisions and the timer each frame, and the draw order of
// the layers. It has no terminal dependencies; a platform driver calls
// Update and Draw.
package game

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hexring/internal/config"
	"github.com/vovakirdan/hexring/internal/core"
	"github.com/vovakirdan/hexring/internal/entity"
	"github.com/vovakirdan/hexring/internal/events"
	"github.com/vovakirdan/hexring/internal/input"
	"github.com/vovakirdan/hexring/internal/ring"
	"github.com/vovakirdan/hexring/internal/schema"
	"github.com/vovakirdan/hexring/internal/world"
)

// CanvasSize is the logical width and height of the drawing surface.
const CanvasSize = 100.0

// Relay namespaces.
const (
	NamespacePlayer   = "player"
	NamespaceKeyboard = "keyboard"
	NamespaceGame     = "game"
	NamespaceWorld    = "world"
	NamespaceRing     = "ring"
)

// ErrNotLoaded is returned when starting a game before any schema is loaded.
var ErrNotLoaded = errors.New("game: no schema loaded")

// Drawable is rendered in world space under the mask.
type Drawable interface {
	Draw(dst core.Surface, view core.Transform)
}

// Overlay is rendered in screen space after the mask is lifted.
type Overlay interface {
	Draw(dst core.Surface)
}

// Animator advances frame-driven animation. Animators keep ticking after
// the game ends.
type Animator interface {
	Tick()
}

// Options configures a Game.
type Options struct {
	Tuning     config.Tuning
	Difficulty config.DifficultyPreset
	HUD        HUD
	Logger     *log.Logger
	Clock      func() time.Time
}

// Game owns every entity of a session and the relay bus observing them.
type Game struct {
	tuning     config.Tuning
	difficulty *config.DifficultyManager
	hud        HUD
	logger     *log.Logger
	now        func() time.Time

	bus      *events.Bus
	loop     *Loop
	keyboard *input.Keyboard
	world    *world.World
	engine   *world.Engine
	player   *entity.Player
	camera   *entity.Camera
	mask     *entity.Mask
	ring     *ring.Ring
	timer    *Timer

	layers    []Drawable
	overlays  []Overlay
	animators []Animator

	schema  *schema.Schema
	session Session
	respawn bool
}

// New creates an idle game. Call Reload with a schema, then Start.
func New(opts Options) (*Game, error) {
	t := opts.Tuning
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g := &Game{
		tuning: t,
		hud:    opts.HUD,
		logger: opts.Logger,
		now:    opts.Clock,
	}
	if g.hud == nil {
		g.hud = NopHUD{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.now == nil {
		g.now = time.Now
	}

	if opts.Difficulty != "" {
		config.ApplyPreset(&t, opts.Difficulty)
	}
	g.difficulty = config.NewDifficultyManager(t.Difficulty)

	center := core.V(CanvasSize/2, CanvasSize/2)
	g.bus = events.NewBus()
	g.bus.SetClock(g.now)
	g.loop = NewLoop()
	g.keyboard = input.NewKeyboard()
	g.keyboard.SetClock(g.now)
	g.world = world.New()
	g.engine = world.NewEngine(g.world)
	g.player = entity.NewPlayer(playerConfig(t.Player), entity.Spawn{}, g.world)
	g.camera = entity.NewCamera(cameraConfig(t.Camera), center)
	g.mask = entity.NewMask(center, t.Mask.SizeRatio*CanvasSize/2, t.Ring.Offset, core.MustColor(t.Mask.Fill))
	g.timer = NewTimer(0)

	r, err := ring.New(g.ringConfig(nil), core.MustColor(t.Ring.Fill), flashConfig(t.Flash))
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	g.ring = r

	g.layers = []Drawable{g.world, g.player}
	g.overlays = []Overlay{g.ring}
	g.animators = []Animator{g.ring}

	g.bus.Relay(g.player.Events(), NamespacePlayer, entity.TagEnter)
	g.bus.Relay(g.player.Events(), NamespacePlayer, entity.TagExit)
	g.bus.Relay(g.keyboard.Events(), NamespaceKeyboard, input.TagKeyDown)
	g.bus.Relay(g.keyboard.Events(), NamespaceKeyboard, input.TagKeyUp)
	g.bus.Relay(g.loop.Events(), NamespaceGame, "")
	g.bus.Relay(g.world.Events(), NamespaceWorld, "")
	g.bus.Relay(g.ring.Events(), NamespaceRing, "")

	events.On(g.player.Events(), entity.TagExit, g.onExit)
	events.On(g.keyboard.Events(), input.TagKeyDown, func(k events.Key) {
		if input.Key(k.Key) == input.KeySpace {
			g.TogglePause()
		}
	})

	return g, nil
}

// Events returns the relay bus. Observers subscribe here; gameplay never
// reads from it.
func (g *Game) Events() *events.Bus {
	return g.bus
}

// Reload rebuilds world, player and ring from s and starts a fresh session.
// A game that was already started goes back to running. On error nothing
// changes.
func (g *Game) Reload(s *schema.Schema) error {
	if s == nil {
		return fmt.Errorf("game: reload: %w", ErrNotLoaded)
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("game: reload %s: %w", s.ID, err)
	}
	tiles, err := s.BuildTiles()
	if err != nil {
		return fmt.Errorf("game: reload %s: %w", s.ID, err)
	}
	rc := g.ringConfig(s)
	if err := rc.Validate(); err != nil {
		return fmt.Errorf("game: reload %s: %w", s.ID, err)
	}
	fill := core.MustColor(g.tuning.Ring.Fill)
	if s.Gameplay.Ring.Fill != "" {
		fill = core.MustColor(s.Gameplay.Ring.Fill)
	}

	if err := g.world.Reload(s.TileSize, tiles); err != nil {
		return fmt.Errorf("game: reload %s: %w", s.ID, err)
	}
	if err := g.ring.Reload(rc, fill, flashConfig(g.tuning.Flash)); err != nil {
		return fmt.Errorf("game: reload %s: %w", s.ID, err)
	}

	pos, angle := s.Spawn()
	g.player.Reload(entity.Spawn{Position: pos, Angle: angle}, g.world)
	g.camera.Reset()
	if g.camera.Yoked() {
		g.camera.Follow(pos, angle)
	} else {
		g.camera.LookAt(g.world.Bounds().Center())
	}
	g.keyboard.Reset()

	lives := g.difficulty.Lives(s.Gameplay.Lives)
	steps := g.difficulty.Steps(s.Gameplay.Steps)
	timeout := g.difficulty.Timeout(s.Gameplay.Timeout)
	g.timer.Reset(time.Duration(timeout * float64(time.Second)))

	g.schema = s
	g.session = newSession(s.ID, lives, steps, g.now())
	g.respawn = false
	g.refreshHUD()

	g.logger.Info("session reloaded",
		"schema", s.ID,
		"session", g.session.ID,
		"lives", lives,
		"steps", steps,
		"timeout", timeout,
	)

	if g.loop.Phase() != PhaseIdle {
		g.loop.restart()
		g.emit(TagStart, "")
	}
	return nil
}

// Start leaves the idle phase. Later calls do nothing.
func (g *Game) Start() error {
	if g.schema == nil {
		return ErrNotLoaded
	}
	if !g.loop.start() {
		return nil
	}
	g.logger.Info("game started", "session", g.session.ID)
	g.emit(TagStart, "")
	return nil
}

// Pause suspends a running game.
func (g *Game) Pause() {
	if g.loop.pause() {
		g.logger.Debug("game paused", "session", g.session.ID)
		g.emit(TagPause, "")
	}
}

// Resume continues a paused game.
func (g *Game) Resume() {
	if g.loop.resume() {
		g.logger.Debug("game resumed", "session", g.session.ID)
		g.emit(TagResume, "")
	}
}

// TogglePause pauses a running game or resumes a paused one.
func (g *Game) TogglePause() {
	switch g.loop.Phase() {
	case PhaseRunning:
		g.Pause()
	case PhasePaused:
		g.Resume()
	}
}

// End finishes the game and flashes the ring. The first timeout since the
// last reload earns the win bonus.
func (g *Game) End(reason EndReason) {
	if !g.loop.end() {
		return
	}
	g.ring.StartFlashing(nil)

	bonus := 0
	if reason == EndTimeout && !g.session.Done {
		bonus = g.tuning.Scoring.WinBonus
		g.session.Score += bonus
		g.session.Done = true
		g.hud.Score(g.session.Score)
	}

	g.logger.Info("game ended",
		"session", g.session.ID,
		"reason", reason,
		"score", g.session.Score,
		"bonus", bonus,
	)
	g.loop.emitter.Emit(TagEnd, g.lifecycle(string(reason), bonus))
}

// KeyDown feeds a key press to the keyboard.
func (g *Game) KeyDown(k input.Key) {
	g.keyboard.Press(k)
}

// KeyUp feeds a key release to the keyboard.
func (g *Game) KeyUp(k input.Key) {
	g.keyboard.Release(k)
}

// Update advances one frame. Paused and idle games do nothing; an ended
// game only animates the ring.
func (g *Game) Update(dt time.Duration) {
	g.keyboard.Sample()

	switch g.loop.Phase() {
	case PhaseRunning:
	case PhaseEnded:
		g.animate()
		return
	default:
		return
	}
	g.loop.tick()

	g.player.Move(g.keyboard, g.world)
	if g.loop.Phase() != PhaseRunning {
		// the move spent the last life
		return
	}
	if g.respawn {
		g.respawn = false
		g.player.Respawn(g.world)
	}

	g.camera.Follow(g.player.Position(), g.player.Angle())
	g.camera.Move(g.keyboard)

	g.animate()
	g.collide()

	if g.timer.Advance(dt) {
		g.End(EndTimeout)
	}
}

// Draw renders the masked world and player, then the ring on top.
func (g *Game) Draw(dst core.Surface) {
	view := g.camera.Transform()

	g.mask.Set(dst)
	for _, d := range g.layers {
		d.Draw(dst, view)
	}
	g.mask.Unset(dst)

	for _, o := range g.overlays {
		o.Draw(dst)
	}
}

func (g *Game) animate() {
	for _, a := range g.animators {
		a.Tick()
	}
}

// collide runs the collision pass for the player's position.
func (g *Game) collide() {
	res := g.engine.Evaluate(g.player.Position())
	if res.Tile == nil {
		return
	}

	if res.InTarget {
		g.ring.StartFlashing(cuePalette(res.Cue))
	}
	if res.Points > 0 {
		g.session.Score += res.Points
		g.hud.Score(g.session.Score)
	}
}

func cuePalette(cue *world.Cue) ring.Palette {
	if cue == nil || cue.Fill.IsZero() {
		return nil
	}
	return ring.CuePalette(cue.Fill)
}

// onExit spends a step for every tile left. Running out of steps costs a
// life and sends the player back to spawn.
func (g *Game) onExit(events.Tile) {
	if g.loop.Phase() != PhaseRunning {
		return
	}

	s := &g.session
	s.Steps--
	if s.Steps > 0 {
		g.hud.Steps(s.Steps, s.StepsMax)
		return
	}

	s.Lives--
	g.hud.Lives(s.Lives)
	g.loop.emitter.Emit(TagLife, events.Lives{Lives: s.Lives, Steps: s.StepsMax})
	g.logger.Debug("life lost", "session", s.ID, "lives", s.Lives)

	if s.Lives <= 0 {
		s.Lives = 0
		g.hud.Steps(s.Steps, s.StepsMax)
		g.End(EndExhausted)
		return
	}

	s.Steps = s.StepsMax
	g.hud.Steps(s.Steps, s.StepsMax)
	g.respawn = true
}

func (g *Game) refreshHUD() {
	name, n, of := g.level()
	g.hud.Level(name, n, of)
	g.hud.Score(g.session.Score)
	g.hud.Steps(g.session.Steps, g.session.StepsMax)
	g.hud.Lives(g.session.Lives)
}

func (g *Game) level() (string, int, int) {
	if g.schema == nil {
		return "", 0, 0
	}
	name := g.schema.Name
	if name == "" {
		name = g.schema.ID
	}
	n := max(g.schema.Level, 1)
	return name, n, max(schema.Count(), n)
}

func (g *Game) emit(tag, reason string) {
	g.loop.emitter.Emit(tag, g.lifecycle(reason, 0))
}

func (g *Game) lifecycle(reason string, bonus int) events.Lifecycle {
	return events.Lifecycle{
		Session: g.session.ID,
		Phase:   g.loop.Phase().String(),
		Reason:  reason,
		Score:   g.session.Score,
		Bonus:   bonus,
	}
}

// ringConfig sizes the ring for the canvas, applying per-level overrides.
func (g *Game) ringConfig(s *schema.Schema) ring.Config {
	t := g.tuning.Ring
	half := CanvasSize / 2
	cfg := ring.Config{
		Size:     t.SizeRatio * half,
		Extent:   t.ExtentRatio * half,
		Count:    t.Count,
		Offset:   t.Offset,
		Position: core.V(half, half),
	}
	if s != nil {
		if s.Gameplay.Ring.Count != 0 {
			cfg.Count = s.Gameplay.Ring.Count
		}
		if s.Gameplay.Ring.Offset != nil {
			cfg.Offset = *s.Gameplay.Ring.Offset
		}
	}
	return cfg
}

func playerConfig(t config.PlayerTuning) entity.PlayerConfig {
	return entity.PlayerConfig{
		Size:        t.Size,
		Speed:       t.Speed,
		TurnSpeed:   t.TurnSpeed,
		Friction:    t.Friction,
		Fill:        core.MustColor(t.Fill),
		Stroke:      core.MustColor(t.Stroke),
		StrokeWidth: t.StrokeWidth,
	}
}

func cameraConfig(t config.CameraTuning) entity.CameraConfig {
	return entity.CameraConfig{
		Zoom:      t.Zoom,
		MinZoom:   t.MinZoom,
		MaxZoom:   t.MaxZoom,
		ZoomSpeed: t.ZoomSpeed,
		Friction:  t.Friction,
		Yoked:     t.Yoked,
	}
}

func flashConfig(t config.FlashTuning) ring.FlashConfig {
	return ring.FlashConfig{Period: t.Period, Cycles: t.Cycles}
}
