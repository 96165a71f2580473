package entity

import (
	"github.com/vovakirdan/hexring/internal/core"
	"github.com/vovakirdan/hexring/internal/input"
)

// CameraConfig tunes the view.
type CameraConfig struct {
	Zoom      float64 // surface units per world unit
	MinZoom   float64
	MaxZoom   float64
	ZoomSpeed float64 // zoom change per frame while +/- is held
	Friction  float64
	Yoked     bool // follow the player's position and heading
}

// DefaultCameraConfig returns the stock tuning.
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Zoom:      3,
		MinZoom:   1,
		MaxZoom:   8,
		ZoomSpeed: 0.02,
		Friction:  0.9,
		Yoked:     true,
	}
}

// Camera maps world coordinates onto the surface center.
type Camera struct {
	cfg       CameraConfig
	transform core.Transform
	zoomVel   float64
}

// NewCamera creates a camera looking at origin, the surface point the
// followed position is drawn at.
func NewCamera(cfg CameraConfig, origin core.Vec2) *Camera {
	c := &Camera{cfg: cfg}
	c.transform = core.Transform{Scale: cfg.Zoom, Origin: origin}
	return c
}

// Yoked reports whether the camera follows its target.
func (c *Camera) Yoked() bool {
	return c.cfg.Yoked
}

// Follow locks onto pos and heading when yoked.
func (c *Camera) Follow(pos core.Vec2, angle float64) {
	if !c.cfg.Yoked {
		return
	}
	c.transform.Translation = pos
	c.transform.Rotation = angle
}

// LookAt points an unyoked camera at pos.
func (c *Camera) LookAt(pos core.Vec2) {
	c.transform.Translation = pos
	c.transform.Rotation = 0
}

// Move applies one frame of zoom input.
func (c *Camera) Move(kb *input.Keyboard) {
	if kb.IsDown(input.KeyPlus) {
		c.zoomVel += c.cfg.ZoomSpeed
	}
	if kb.IsDown(input.KeyMinus) {
		c.zoomVel -= c.cfg.ZoomSpeed
	}
	c.transform.Scale = core.ClampF(c.transform.Scale+c.zoomVel, c.cfg.MinZoom, c.cfg.MaxZoom)
	c.zoomVel *= c.cfg.Friction
}

// Reset restores the configured zoom.
func (c *Camera) Reset() {
	c.transform.Scale = c.cfg.Zoom
	c.zoomVel = 0
}

// Transform returns the current world-to-surface mapping.
func (c *Camera) Transform() core.Transform {
	return c.transform
}
