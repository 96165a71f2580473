package events

import (
	"encoding/json"

	"github.com/charmbracelet/log"
)

// LogSink returns a subscriber that writes every event to logger at debug
// level.
func LogSink(logger *log.Logger) func(Event) {
	return func(ev Event) {
		data, err := json.Marshal(ev.Payload)
		if err != nil {
			logger.Warn("unloggable event", "event", ev.Name(), "error", err)
			return
		}
		logger.Debug("event", "event", ev.Name(), "payload", string(data))
	}
}
