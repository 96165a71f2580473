package events

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 12, 30, 0, 250_000_000, time.UTC)
}

func TestRelaySingleTag(t *testing.T) {
	bus := NewBus()
	bus.SetClock(fixedClock)
	src := NewEmitter()
	bus.Relay(src, "player", "enter")

	var got []Event
	bus.SubscribeAll(func(ev Event) { got = append(got, ev) })

	src.Emit("enter", Tile{Col: 1, Row: 2})
	src.Emit("exit", Tile{Col: 1, Row: 2})

	require.Len(t, got, 1, "only the relayed tag should reach the bus")
	assert.Equal(t, [2]string{"player", "enter"}, got[0].Key())
	assert.Equal(t, Tile{Col: 1, Row: 2}, got[0].Payload)
	assert.Equal(t, fixedClock(), got[0].Time)
}

func TestRelayWildcard(t *testing.T) {
	bus := NewBus()
	src := NewEmitter()
	bus.Relay(src, "world", "")

	var names []string
	bus.SubscribeAll(func(ev Event) { names = append(names, ev.Name()) })

	src.Emit("consume", Consumed{Bits: 1, Points: 10})
	src.Emit("reload", nil)

	assert.Equal(t, []string{"world.consume", "world.reload"}, names)
}

func TestStringPayloadNormalized(t *testing.T) {
	bus := NewBus()
	src := NewEmitter()
	bus.Relay(src, "game", "")

	var got Event
	bus.Subscribe("game", "note", func(ev Event) { got = ev })

	src.EmitString("note", "hello")
	assert.Equal(t, Value{Value: "hello"}, got.Payload)
}

func TestNilPayloadNormalized(t *testing.T) {
	src := NewEmitter()
	var got Payload
	src.On("tick", func(p Payload) { got = p })
	src.Emit("tick", nil)
	assert.Equal(t, Empty{}, got)
}

func TestSubscribersRunInOrder(t *testing.T) {
	bus := NewBus()
	var order []int
	bus.Subscribe("game", "start", func(Event) { order = append(order, 1) })
	bus.Subscribe("game", "start", func(Event) { order = append(order, 2) })
	bus.SubscribeAll(func(Event) { order = append(order, 3) })
	bus.Subscribe("game", "end", func(Event) { order = append(order, 99) })

	bus.Publish("game", "start", Lifecycle{Phase: "running"})

	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestTypedOn(t *testing.T) {
	src := NewEmitter()
	var tiles []Tile
	On(src, "exit", func(p Tile) { tiles = append(tiles, p) })

	src.Emit("exit", Tile{Col: 3})
	src.Emit("exit", Value{Value: "ignored"})

	assert.Equal(t, []Tile{{Col: 3}}, tiles)
}

func TestEventJSONMergesTime(t *testing.T) {
	ev := Event{
		Namespace: "keyboard",
		Tag:       "keydown",
		Time:      fixedClock(),
		Payload:   Key{Key: "<space>"},
	}

	data, err := json.Marshal(ev)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "<space>", decoded["key"])
	assert.Equal(t, "2024-03-01T12:30:00.250Z", decoded["time"])
	assert.Equal(t, []any{"keyboard", "keydown"}, decoded["event"])
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	bus := NewBus()
	bus.SubscribeAll(LogSink(logger))
	bus.Publish("world", "consume", Consumed{Col: 1, Row: 1, Bits: 2, Points: 20})

	assert.Contains(t, buf.String(), "world.consume")
	assert.Contains(t, buf.String(), "points")
}
