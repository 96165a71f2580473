// Package input provides the keyboard input source. Keys are normalized
// identifiers; edges are emitted as keydown and keyup events.
package input

import (
	"strings"
	"time"

	"github.com/vovakirdan/hexring/internal/events"
)

// Key is a normalized key identifier.
type Key string

// Keys used by the game.
const (
	KeySpace Key = "<space>"
	KeyUp    Key = "<up>"
	KeyDown  Key = "<down>"
	KeyLeft  Key = "<left>"
	KeyRight Key = "<right>"
	KeyW     Key = "W"
	KeyA     Key = "A"
	KeyS     Key = "S"
	KeyD     Key = "D"
	KeyPlus  Key = "+"
	KeyMinus Key = "-"
)

// Event tags emitted by the keyboard.
const (
	TagKeyDown = "keydown"
	TagKeyUp   = "keyup"
)

// Normalize maps a terminal key name ("up", " ", "w") to a Key.
func Normalize(name string) Key {
	switch name {
	case " ", "space":
		return KeySpace
	case "up", "down", "left", "right":
		return Key("<" + name + ">")
	case "=":
		return KeyPlus
	}
	if len([]rune(name)) == 1 {
		return Key(strings.ToUpper(name))
	}
	return Key("<" + name + ">")
}

// DefaultReleaseAfter is how long a key stays down without a repeat.
const DefaultReleaseAfter = 150 * time.Millisecond

// Keyboard tracks held keys. Terminals only report presses (with
// auto-repeat), so a key is released when it has not repeated for
// ReleaseAfter; an explicit Release is honored too.
type Keyboard struct {
	emitter      *events.Emitter
	held         map[Key]time.Time
	releaseAfter time.Duration
	now          func() time.Time
}

// NewKeyboard creates a keyboard using the wall clock.
func NewKeyboard() *Keyboard {
	return &Keyboard{
		emitter:      events.NewEmitter(),
		held:         make(map[Key]time.Time),
		releaseAfter: DefaultReleaseAfter,
		now:          time.Now,
	}
}

// SetClock replaces the time source.
func (k *Keyboard) SetClock(now func() time.Time) {
	k.now = now
}

// SetReleaseAfter changes the synthetic release delay.
func (k *Keyboard) SetReleaseAfter(d time.Duration) {
	k.releaseAfter = d
}

// Events returns the keyboard's emitter.
func (k *Keyboard) Events() *events.Emitter {
	return k.emitter
}

// Press marks key as down. Only the first press of a hold emits keydown.
func (k *Keyboard) Press(key Key) {
	_, down := k.held[key]
	k.held[key] = k.now()
	if !down {
		k.emitter.Emit(TagKeyDown, events.Key{Key: string(key)})
	}
}

// Release marks key as up, emitting keyup if it was down.
func (k *Keyboard) Release(key Key) {
	if _, down := k.held[key]; !down {
		return
	}
	delete(k.held, key)
	k.emitter.Emit(TagKeyUp, events.Key{Key: string(key)})
}

// Sample releases keys that stopped repeating. Call once per frame before
// reading key state.
func (k *Keyboard) Sample() {
	now := k.now()
	for key, last := range k.held {
		if now.Sub(last) >= k.releaseAfter {
			k.Release(key)
		}
	}
}

// IsDown reports whether key is held.
func (k *Keyboard) IsDown(key Key) bool {
	_, ok := k.held[key]
	return ok
}

// Any reports whether any of keys is held.
func (k *Keyboard) Any(keys ...Key) bool {
	for _, key := range keys {
		if k.IsDown(key) {
			return true
		}
	}
	return false
}

// Reset releases every key without emitting events.
func (k *Keyboard) Reset() {
	clear(k.held)
}
