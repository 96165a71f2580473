package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hexring/internal/events"
)

// Recorder persists every relayed event under the session that produced it.
// Lifecycle events carry the session ID, so a reload switches sessions
// without the recorder being told.
type Recorder struct {
	store   *Store
	logger  *log.Logger
	session string
}

// NewRecorder creates a recorder writing to store.
func NewRecorder(store *Store, logger *log.Logger) *Recorder {
	return &Recorder{store: store, logger: logger}
}

// SetSession sets the session events are recorded under until a lifecycle
// event names another.
func (r *Recorder) SetSession(id string) {
	r.session = id
}

// Record is a bus subscriber. Write failures are logged; the game never
// waits on storage.
func (r *Recorder) Record(ev events.Event) {
	if lc, ok := ev.Payload.(events.Lifecycle); ok && lc.Session != "" {
		r.session = lc.Session
	}

	if _, err := r.store.RecordEvent(r.session, ev); err != nil {
		r.logger.Warn("event not recorded", "event", ev.Name(), "error", err)
	}
}
