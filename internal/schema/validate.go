package schema

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/hexring/internal/core"
)

// Sentinel errors wrapped by ValidationError.
var (
	ErrNoPlayers     = errors.New("schema: no players")
	ErrNoTiles       = errors.New("schema: no tiles")
	ErrInvalidSchema = errors.New("schema: invalid")
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
	Err     error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e ValidationError) Unwrap() error {
	if e.Err == nil {
		return ErrInvalidSchema
	}
	return e.Err
}

func invalid(code, format string, args ...any) error {
	return ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Validate checks the schema and stops at the first problem.
func (s *Schema) Validate() error {
	if len(s.Players) == 0 {
		return ValidationError{Code: "NO_PLAYERS", Message: "schema declares no players", Err: ErrNoPlayers}
	}
	if len(s.Players[0].Position) != 2 {
		return invalid("BAD_SPAWN", "players[0].position needs 2 numbers, got %d", len(s.Players[0].Position))
	}
	if s.TileSize <= 0 {
		return invalid("BAD_TILE_SIZE", "tile_size must be positive, got %v", s.TileSize)
	}
	if len(s.Tiles) == 0 {
		return ValidationError{Code: "NO_TILES", Message: "schema declares no tiles", Err: ErrNoTiles}
	}

	seen := make(map[[2]int]bool, len(s.Tiles))
	for i, t := range s.Tiles {
		if len(t.Coord) != 2 {
			return invalid("BAD_COORD", "tiles[%d].coord needs 2 integers, got %d", i, len(t.Coord))
		}
		key := [2]int{t.Coord[0], t.Coord[1]}
		if seen[key] {
			return invalid("DUPLICATE_TILE", "tiles[%d] repeats coord %v", i, t.Coord)
		}
		seen[key] = true

		if err := validateTile(i, t); err != nil {
			return err
		}
	}

	g := s.Gameplay
	switch {
	case g.Lives < 1:
		return invalid("BAD_LIVES", "gameplay.lives must be at least 1, got %d", g.Lives)
	case g.Steps < 1:
		return invalid("BAD_STEPS", "gameplay.steps must be at least 1, got %d", g.Steps)
	case g.Timeout < 0:
		return invalid("BAD_TIMEOUT", "gameplay.timeout must not be negative, got %v", g.Timeout)
	case g.Ring.Count != 0 && g.Ring.Count < 3:
		return invalid("BAD_RING", "gameplay.ring.count must be at least 3, got %d", g.Ring.Count)
	}
	if _, err := core.ParseColor(g.Ring.Fill); err != nil {
		return invalid("BAD_COLOR", "gameplay.ring.fill: %v", err)
	}
	return nil
}

func validateTile(i int, t Tile) error {
	if err := validateColor(fmt.Sprintf("tiles[%d].fill", i), t.Fill); err != nil {
		return err
	}
	if t.Target != nil {
		if err := t.Target.validate(fmt.Sprintf("tiles[%d].target", i)); err != nil {
			return err
		}
	}
	if t.Cue != nil {
		if t.Target == nil {
			return invalid("CUE_WITHOUT_TARGET", "tiles[%d] has a cue but no target", i)
		}
		if err := validateColor(fmt.Sprintf("tiles[%d].cue.fill", i), t.Cue.Fill); err != nil {
			return err
		}
	}
	for j, p := range t.Pieces {
		where := fmt.Sprintf("tiles[%d].pieces[%d]", i, j)
		if err := validateColor(where+".fill", p.Fill); err != nil {
			return err
		}
		if p.Region != nil {
			if err := p.Region.validate(where + ".region"); err != nil {
				return err
			}
		}
		for k, b := range p.Bits {
			bw := fmt.Sprintf("%s.bits[%d]", where, k)
			if err := validateColor(bw+".fill", b.Fill); err != nil {
				return err
			}
			if err := b.Region.validate(bw + ".region"); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateColor(where, s string) error {
	if _, err := core.ParseColor(s); err != nil {
		return invalid("BAD_COLOR", "%s: %v", where, err)
	}
	return nil
}

func (r *Region) validate(where string) error {
	switch r.Kind {
	case KindPolygon:
		if len(r.Points) < 3 {
			return invalid("BAD_REGION", "%s: polygon needs at least 3 points, got %d", where, len(r.Points))
		}
		for i, p := range r.Points {
			if len(p) != 2 {
				return invalid("BAD_REGION", "%s: point %d needs 2 numbers, got %d", where, i, len(p))
			}
		}
	case KindCircle, KindHexagon:
		if len(r.Center) != 2 {
			return invalid("BAD_REGION", "%s: center needs 2 numbers, got %d", where, len(r.Center))
		}
		if r.Radius <= 0 {
			return invalid("BAD_REGION", "%s: radius must be positive, got %v", where, r.Radius)
		}
	case KindRect:
		if len(r.At) != 2 || len(r.Size) != 2 {
			return invalid("BAD_REGION", "%s: rect needs at [x, y] and size [w, h]", where)
		}
		if r.Size[0] <= 0 || r.Size[1] <= 0 {
			return invalid("BAD_REGION", "%s: rect size must be positive, got %v", where, r.Size)
		}
	default:
		return invalid("BAD_REGION", "%s: unknown kind %q", where, r.Kind)
	}
	return nil
}
