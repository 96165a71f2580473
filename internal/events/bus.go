package events

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// ISO8601 is the timestamp layout attached to relayed events.
const ISO8601 = "2006-01-02T15:04:05.000Z07:00"

// Event is a relayed occurrence keyed by [Namespace, Tag].
type Event struct {
	Namespace string
	Tag       string
	Time      time.Time
	Payload   Payload
}

// Key returns the compound key of the event.
func (ev Event) Key() [2]string {
	return [2]string{ev.Namespace, ev.Tag}
}

// Name returns "namespace.tag".
func (ev Event) Name() string {
	return ev.Namespace + "." + ev.Tag
}

// MarshalJSON flattens the payload fields into one object and merges the
// compound key and the ISO-8601 time into it.
func (ev Event) MarshalJSON() ([]byte, error) {
	fields := map[string]any{}
	if ev.Payload != nil {
		raw, err := json.Marshal(ev.Payload)
		if err != nil {
			return nil, fmt.Errorf("events: marshal %s payload: %w", ev.Name(), err)
		}
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, fmt.Errorf("events: flatten %s payload: %w", ev.Name(), err)
		}
	}
	fields["event"] = ev.Key()
	fields["time"] = ev.Time.UTC().Format(ISO8601)
	return json.Marshal(fields)
}

// Bus is the process-wide relay. Observers subscribe to one key or to
// everything; gameplay code never reads from it.
type Bus struct {
	mu   sync.RWMutex
	now  func() time.Time
	subs map[[2]string][]func(Event)
	all  []func(Event)
}

// NewBus creates a bus stamping events with the wall clock.
func NewBus() *Bus {
	return &Bus{
		now:  time.Now,
		subs: make(map[[2]string][]func(Event)),
	}
}

// SetClock replaces the timestamp source.
func (b *Bus) SetClock(now func() time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.now = now
}

// Relay forwards events of src under namespace. With an empty tag every
// event of src is forwarded under its own tag.
func (b *Bus) Relay(src *Emitter, namespace, tag string) {
	if tag == "" {
		src.OnAny(func(t string, p Payload) {
			b.Publish(namespace, t, p)
		})
		return
	}
	src.On(tag, func(p Payload) {
		b.Publish(namespace, tag, p)
	})
}

// Publish stamps and delivers an event: key subscribers first, then
// wildcard subscribers, each group in subscription order.
func (b *Bus) Publish(namespace, tag string, p Payload) {
	if p == nil {
		p = Empty{}
	}

	b.mu.RLock()
	ev := Event{Namespace: namespace, Tag: tag, Time: b.now(), Payload: p}
	keyed := b.subs[ev.Key()]
	all := b.all
	b.mu.RUnlock()

	for _, h := range keyed {
		h(ev)
	}
	for _, h := range all {
		h(ev)
	}
}

// Subscribe registers h for one [namespace, tag] key.
func (b *Bus) Subscribe(namespace, tag string, h func(Event)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	k := [2]string{namespace, tag}
	b.subs[k] = append(b.subs[k], h)
}

// SubscribeAll registers h for every event.
func (b *Bus) SubscribeAll(h func(Event)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.all = append(b.all, h)
}
