// Package events provides the typed emitters owned by game entities and the
// relay bus that republishes their events, timestamped, for observers.
package events

// Payload is the data carried by an event. The marker method keeps the set of
// payload kinds closed to this package.
type Payload interface {
	eventPayload()
}

// Empty is used when an event carries no data.
type Empty struct{}

func (Empty) eventPayload() {}

// Value wraps a plain string payload.
type Value struct {
	Value string `json:"value"`
}

func (Value) eventPayload() {}

// Key is a keyboard edge (keydown or keyup).
type Key struct {
	Key string `json:"key"`
}

func (Key) eventPayload() {}

// Tile identifies the tile a player entered or left.
type Tile struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func (Tile) eventPayload() {}

// Consumed reports bits removed in one collision sweep.
type Consumed struct {
	Col    int `json:"col"`
	Row    int `json:"row"`
	Bits   int `json:"bits"`
	Points int `json:"points"`
}

func (Consumed) eventPayload() {}

// Flash reports the palette the ring started cycling through.
type Flash struct {
	Palette []string `json:"palette"`
}

func (Flash) eventPayload() {}

// Lifecycle reports a game phase change.
type Lifecycle struct {
	Session string `json:"session"`
	Phase   string `json:"phase"`
	Reason  string `json:"reason,omitempty"`
	Score   int    `json:"score"`
	Bonus   int    `json:"bonus,omitempty"`
}

func (Lifecycle) eventPayload() {}

// Lives reports a lost life.
type Lives struct {
	Lives int `json:"lives"`
	Steps int `json:"steps"`
}

func (Lives) eventPayload() {}
