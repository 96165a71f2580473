package game

import (
	"time"

	"github.com/google/uuid"
)

// Session is the mutable state of one run, reset on every reload.
type Session struct {
	ID       string
	Schema   string
	Started  time.Time
	Score    int
	Lives    int
	Steps    int
	StepsMax int
	Done     bool // win bonus granted
}

func newSession(schema string, lives, steps int, now time.Time) Session {
	return Session{
		ID:       uuid.NewString(),
		Schema:   schema,
		Started:  now,
		Lives:    lives,
		Steps:    steps,
		StepsMax: steps,
	}
}
