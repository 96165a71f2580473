package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque 24-bit color. The zero value means "no color" and is
// skipped by surfaces.
type Color struct {
	R, G, B uint8
	set     bool
}

// RGB builds a Color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, set: true}
}

// Predefined colors used by the game.
var (
	ColorNone   = Color{}
	ColorWhite  = RGB(0xFF, 0xFF, 0xFF)
	ColorGray   = RGB(0x99, 0x99, 0x99)
	ColorBlack  = RGB(0x00, 0x00, 0x00)
	ColorRed    = RGB(0xFF, 0x50, 0x50)
	ColorOrange = RGB(0xFF, 0x89, 0x00)
	ColorCyan   = RGB(0x00, 0xC3, 0xEE)
	ColorGreen  = RGB(0x64, 0xFF, 0x00)
)

var namedColors = map[string]Color{
	"white":  ColorWhite,
	"gray":   ColorGray,
	"grey":   ColorGray,
	"black":  ColorBlack,
	"red":    ColorRed,
	"orange": ColorOrange,
	"cyan":   ColorCyan,
	"green":  ColorGreen,
}

// IsZero reports whether c is the "no color" value.
func (c Color) IsZero() bool {
	return !c.set
}

// Hex returns the #rrggbb form, or "" for the zero value.
func (c Color) Hex() string {
	if !c.set {
		return ""
	}
	return c.colorful().Hex()
}

// String implements fmt.Stringer.
func (c Color) String() string {
	if !c.set {
		return "none"
	}
	return c.Hex()
}

// Blend mixes c towards o by t in [0, 1] in Lab space.
func (c Color) Blend(o Color, t float64) Color {
	if !c.set {
		return o
	}
	if !o.set || t <= 0 {
		return c
	}
	if t >= 1 {
		return o
	}
	return fromColorful(c.colorful().BlendLab(o.colorful(), t).Clamped())
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(cc colorful.Color) Color {
	r, g, b := cc.RGB255()
	return RGB(r, g, b)
}

// ParseColor accepts "#rgb", "#rrggbb", "rgb(r,g,b)" and a few names.
// An empty string yields the zero Color without error.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return ColorNone, nil
	}
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")") {
		return parseRGBFunc(s[4 : len(s)-1])
	}
	if strings.HasPrefix(s, "#") {
		if len(s) == 4 {
			s = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
		}
		cc, err := colorful.Hex(s)
		if err != nil {
			return ColorNone, fmt.Errorf("core: invalid color %q: %w", s, err)
		}
		return fromColorful(cc), nil
	}
	return ColorNone, fmt.Errorf("core: invalid color %q", s)
}

func parseRGBFunc(body string) (Color, error) {
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return ColorNone, fmt.Errorf("core: invalid rgb() color %q", body)
	}
	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 255 {
			return ColorNone, fmt.Errorf("core: invalid rgb() channel %q", p)
		}
		ch[i] = uint8(v)
	}
	return RGB(ch[0], ch[1], ch[2]), nil
}

// MustColor is ParseColor for constants; it panics on malformed input.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
