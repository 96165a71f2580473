package events

import "sync"

// Handler receives every event of an emitter together with its tag.
type Handler func(tag string, p Payload)

// Emitter is the event source embedded in entities (player, keyboard, world,
// ring, loop). Handlers run synchronously on the emitting goroutine in
// subscription order.
type Emitter struct {
	mu   sync.RWMutex
	tags map[string][]func(Payload)
	any  []Handler
}

// NewEmitter creates an emitter with no subscribers.
func NewEmitter() *Emitter {
	return &Emitter{tags: make(map[string][]func(Payload))}
}

// On subscribes h to one tag.
func (e *Emitter) On(tag string, h func(Payload)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tags[tag] = append(e.tags[tag], h)
}

// OnAny subscribes h to every tag.
func (e *Emitter) OnAny(h Handler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.any = append(e.any, h)
}

// Emit delivers p to the handlers of tag, then to wildcard handlers.
// A nil payload is delivered as Empty.
func (e *Emitter) Emit(tag string, p Payload) {
	if p == nil {
		p = Empty{}
	}

	e.mu.RLock()
	tagged := e.tags[tag]
	wildcard := e.any
	e.mu.RUnlock()

	for _, h := range tagged {
		h(p)
	}
	for _, h := range wildcard {
		h(tag, p)
	}
}

// EmitString emits s normalized to a Value payload.
func (e *Emitter) EmitString(tag, s string) {
	e.Emit(tag, Value{Value: s})
}

// On subscribes a handler that only receives payloads of type P; other
// payload kinds emitted under the same tag are ignored.
func On[P Payload](e *Emitter, tag string, fn func(P)) {
	e.On(tag, func(p Payload) {
		if v, ok := p.(P); ok {
			fn(v)
		}
	})
}
