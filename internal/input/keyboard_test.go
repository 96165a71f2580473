package input

import (
	"testing"
	"time"

	"github.com/vovakirdan/hexring/internal/events"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestNormalize(t *testing.T) {
	tests := []struct {
		in       string
		expected Key
	}{
		{" ", KeySpace},
		{"up", KeyUp},
		{"left", KeyLeft},
		{"w", KeyW},
		{"D", KeyD},
		{"+", KeyPlus},
		{"=", KeyPlus},
		{"-", KeyMinus},
		{"ctrl+c", Key("<ctrl+c>")},
	}

	for _, tc := range tests {
		if got := Normalize(tc.in); got != tc.expected {
			t.Errorf("Normalize(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestKeyboardEdges(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	kb := NewKeyboard()
	kb.SetClock(clock.now)

	var edges []string
	kb.Events().OnAny(func(tag string, p events.Payload) {
		edges = append(edges, tag+":"+p.(events.Key).Key)
	})

	kb.Press(KeyUp)
	clock.advance(30 * time.Millisecond)
	kb.Press(KeyUp) // auto-repeat, no new edge
	kb.Sample()

	if !kb.IsDown(KeyUp) {
		t.Fatal("key should still be down while repeating")
	}

	clock.advance(DefaultReleaseAfter)
	kb.Sample()

	if kb.IsDown(KeyUp) {
		t.Error("key should be released after it stops repeating")
	}

	expected := []string{"keydown:<up>", "keyup:<up>"}
	if len(edges) != len(expected) {
		t.Fatalf("edges = %v, expected %v", edges, expected)
	}
	for i := range expected {
		if edges[i] != expected[i] {
			t.Errorf("edge %d = %q, expected %q", i, edges[i], expected[i])
		}
	}
}

func TestKeyboardExplicitRelease(t *testing.T) {
	kb := NewKeyboard()
	ups := 0
	kb.Events().On(TagKeyUp, func(events.Payload) { ups++ })

	kb.Release(KeyA) // not held, no event
	kb.Press(KeyA)
	kb.Release(KeyA)

	if ups != 1 {
		t.Errorf("keyup count = %d, expected 1", ups)
	}
	if kb.Any(KeyA, KeyD) {
		t.Error("no key should be held")
	}
}

func TestKeyboardReset(t *testing.T) {
	kb := NewKeyboard()
	kb.Press(KeyW)
	kb.Press(KeyS)
	kb.Reset()

	if kb.Any(KeyW, KeyS) {
		t.Error("Reset() should release every key")
	}
}
