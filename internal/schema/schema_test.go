package schema

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/hexring/internal/core"
	"github.com/vovakirdan/hexring/internal/world"
)

const minimal = `
name: tiny
tile_size: 4
players:
  - position: [2, 2]
tiles:
  - coord: [0, 0]
    target: {kind: circle, center: [2, 2], radius: 1}
    cue: {fill: red}
    pieces:
      - bits:
          - {consumable: true, region: {kind: rect, at: [0, 0], size: [1, 1]}}
  - coord: [-1, 0]
gameplay:
  lives: 1
  steps: 3
`

func TestParseMinimal(t *testing.T) {
	s, err := Parse([]byte(minimal))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	pos, angle := s.Spawn()
	if pos != core.V(2, 2) || angle != 0 {
		t.Errorf("Spawn() = %v, %v, expected {2 2}, 0", pos, angle)
	}

	tiles, err := s.BuildTiles()
	if err != nil {
		t.Fatalf("BuildTiles() error = %v", err)
	}
	if len(tiles) != 2 {
		t.Fatalf("len(tiles) = %d, expected 2", len(tiles))
	}
	if tiles[0].Cue == nil || tiles[0].Cue.Fill != core.ColorRed {
		t.Errorf("cue = %+v, expected red", tiles[0].Cue)
	}
	if tiles[1].Coord != (world.Coord{Col: -1, Row: 0}) {
		t.Errorf("tiles[1].Coord = %v, expected {-1 0}", tiles[1].Coord)
	}
}

func TestBuildTilesUsesWorldCoordinates(t *testing.T) {
	s, err := Parse([]byte(`
tile_size: 10
players: [{position: [0, 0]}]
tiles:
  - coord: [2, 1]
    pieces:
      - bits:
          - {consumable: true, region: {kind: circle, center: [5, 5], radius: 1}}
gameplay: {lives: 1, steps: 1}
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	tiles, err := s.BuildTiles()
	if err != nil {
		t.Fatalf("BuildTiles() error = %v", err)
	}

	bit := tiles[0].Pieces[0].Bits[0]
	if !bit.Contains(core.V(25, 15)) {
		t.Error("bit should sit at the tile center in world space")
	}
	if bit.Contains(core.V(5, 5)) {
		t.Error("bit should not stay in tile-local space")
	}
}

func TestValidate(t *testing.T) {
	base := func() *Schema {
		s, err := Parse([]byte(minimal))
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		return s
	}

	tests := []struct {
		name   string
		mutate func(*Schema)
		code   string
	}{
		{"no players", func(s *Schema) { s.Players = nil }, "NO_PLAYERS"},
		{"short spawn", func(s *Schema) { s.Players[0].Position = []float64{1} }, "BAD_SPAWN"},
		{"tile size", func(s *Schema) { s.TileSize = 0 }, "BAD_TILE_SIZE"},
		{"no tiles", func(s *Schema) { s.Tiles = nil }, "NO_TILES"},
		{"duplicate", func(s *Schema) { s.Tiles[1].Coord = []int{0, 0} }, "DUPLICATE_TILE"},
		{"coord", func(s *Schema) { s.Tiles[0].Coord = []int{0} }, "BAD_COORD"},
		{"color", func(s *Schema) { s.Tiles[0].Fill = "mauve" }, "BAD_COLOR"},
		{"region kind", func(s *Schema) { s.Tiles[0].Target.Kind = "star" }, "BAD_REGION"},
		{"cue alone", func(s *Schema) { s.Tiles[0].Target = nil }, "CUE_WITHOUT_TARGET"},
		{"lives", func(s *Schema) { s.Gameplay.Lives = 0 }, "BAD_LIVES"},
		{"steps", func(s *Schema) { s.Gameplay.Steps = 0 }, "BAD_STEPS"},
		{"ring count", func(s *Schema) { s.Gameplay.Ring.Count = 2 }, "BAD_RING"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := base()
			tc.mutate(s)

			err := s.Validate()
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, expected ValidationError", err)
			}
			if verr.Code != tc.code {
				t.Errorf("Validate() code = %s, expected %s", verr.Code, tc.code)
			}
		})
	}
}

func TestNoPlayersSentinel(t *testing.T) {
	_, err := Parse([]byte("tile_size: 1\ntiles: [{coord: [0, 0]}]\n"))
	if !errors.Is(err, ErrNoPlayers) {
		t.Errorf("Parse() error = %v, expected ErrNoPlayers", err)
	}
	if !errors.Is(ValidationError{Code: "X"}, ErrInvalidSchema) {
		t.Error("plain validation errors should match ErrInvalidSchema")
	}
}

func TestCatalog(t *testing.T) {
	ids := IDs()
	if len(ids) < 2 {
		t.Fatalf("IDs() = %v, expected at least 2 builtins", ids)
	}
	if ids[0] != "playpen" {
		t.Errorf("IDs()[0] = %s, expected playpen", ids[0])
	}

	for _, s := range Builtins() {
		tiles, err := s.BuildTiles()
		if err != nil {
			t.Errorf("%s: BuildTiles() error = %v", s.ID, err)
			continue
		}
		w := world.New()
		if err := w.Reload(s.TileSize, tiles); err != nil {
			t.Errorf("%s: world reload error = %v", s.ID, err)
		}
		pos, _ := s.Spawn()
		if w.TileAt(w.CoordinatesOf(pos)) == nil {
			t.Errorf("%s: spawn %v is off the tiles", s.ID, pos)
		}
	}
}

func TestLoadResolvesIDThenPath(t *testing.T) {
	s, err := Load("")
	if err != nil || s.ID != "playpen" {
		t.Fatalf("Load(\"\") = %v, %v, expected playpen", s, err)
	}

	path := filepath.Join(t.TempDir(), "mine.yaml")
	if err := os.WriteFile(path, []byte(minimal), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err = Load(path)
	if err != nil {
		t.Fatalf("Load(path) error = %v", err)
	}
	if s.ID != "mine" || s.Source != path {
		t.Errorf("Load(path) = id %q source %q, expected mine from %s", s.ID, s.Source, path)
	}

	if _, err := Load("no-such-level"); err == nil {
		t.Error("Load() of an unknown ref should fail")
	}
}
