package game

import "github.com/vovakirdan/hexring/internal/events"

// Phase is the lifecycle state of a game.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// EndReason says why a game ended.
type EndReason string

const (
	EndTimeout   EndReason = "timeout"   // the clock ran out; earns the win bonus
	EndExhausted EndReason = "exhausted" // no lives left
	EndQuit      EndReason = "quit"
)

// Loop event tags.
const (
	TagStart  = "start"
	TagEnd    = "end"
	TagPause  = "pause"
	TagResume = "resume"
	TagLife   = "life"
)

// Loop gates the frame phases. Transitions that do not apply to the
// current phase are refused.
type Loop struct {
	phase   Phase
	frames  uint64
	emitter *events.Emitter
}

// NewLoop creates an idle loop.
func NewLoop() *Loop {
	return &Loop{emitter: events.NewEmitter()}
}

// Events returns the loop's emitter.
func (l *Loop) Events() *events.Emitter {
	return l.emitter
}

// Phase returns the current phase.
func (l *Loop) Phase() Phase {
	return l.phase
}

// Frames returns the number of running frames since the last restart.
func (l *Loop) Frames() uint64 {
	return l.frames
}

func (l *Loop) start() bool {
	if l.phase != PhaseIdle {
		return false
	}
	l.phase = PhaseRunning
	return true
}

func (l *Loop) restart() {
	l.phase = PhaseRunning
	l.frames = 0
}

func (l *Loop) pause() bool {
	if l.phase != PhaseRunning {
		return false
	}
	l.phase = PhasePaused
	return true
}

func (l *Loop) resume() bool {
	if l.phase != PhasePaused {
		return false
	}
	l.phase = PhaseRunning
	return true
}

func (l *Loop) end() bool {
	if l.phase == PhaseIdle {
		return false
	}
	l.phase = PhaseEnded
	return true
}

func (l *Loop) tick() {
	if l.phase == PhaseRunning {
		l.frames++
	}
}
