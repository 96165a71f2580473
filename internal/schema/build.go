package schema

import (
	"fmt"

	"github.com/vovakirdan/hexring/internal/core"
	"github.com/vovakirdan/hexring/internal/world"
)

// Spawn returns the first player's position and heading.
func (s *Schema) Spawn() (core.Vec2, float64) {
	p := s.Players[0]
	return vec(p.Position), p.Angle
}

// BuildTiles converts the tiles to world tiles with regions in world
// coordinates. The schema must be valid.
func (s *Schema) BuildTiles() ([]*world.Tile, error) {
	tiles := make([]*world.Tile, 0, len(s.Tiles))
	for i, t := range s.Tiles {
		wt, err := s.buildTile(t)
		if err != nil {
			return nil, fmt.Errorf("schema: tiles[%d]: %w", i, err)
		}
		tiles = append(tiles, wt)
	}
	return tiles, nil
}

func (s *Schema) buildTile(t Tile) (*world.Tile, error) {
	coord := world.Coord{Col: t.Coord[0], Row: t.Coord[1]}
	origin := core.V(float64(coord.Col)*s.TileSize, float64(coord.Row)*s.TileSize)

	fill, err := core.ParseColor(t.Fill)
	if err != nil {
		return nil, err
	}
	wt := &world.Tile{Coord: coord, Fill: fill}

	if t.Target != nil {
		wt.Target = t.Target.build(origin)
	}
	if t.Cue != nil {
		cueFill, err := core.ParseColor(t.Cue.Fill)
		if err != nil {
			return nil, err
		}
		wt.Cue = &world.Cue{Fill: cueFill}
	}

	for _, p := range t.Pieces {
		pf, err := core.ParseColor(p.Fill)
		if err != nil {
			return nil, err
		}
		piece := &world.Piece{Fill: pf}
		if p.Region != nil {
			piece.Region = p.Region.build(origin)
		}
		for _, b := range p.Bits {
			bf, err := core.ParseColor(b.Fill)
			if err != nil {
				return nil, err
			}
			if bf.IsZero() {
				bf = pf
			}
			piece.Bits = append(piece.Bits, &world.Bit{
				Consumable: b.Consumable,
				Fill:       bf,
				Region:     b.Region.build(origin),
			})
		}
		wt.Pieces = append(wt.Pieces, piece)
	}
	return wt, nil
}

// build converts the region to world coordinates.
func (r *Region) build(origin core.Vec2) core.Region {
	switch r.Kind {
	case KindPolygon:
		pg := make(core.Polygon, len(r.Points))
		for i, p := range r.Points {
			pg[i] = origin.Add(vec(p))
		}
		return pg
	case KindCircle:
		return core.Circle{Center: origin.Add(vec(r.Center)), Radius: r.Radius}
	case KindHexagon:
		return core.Hexagon(origin.Add(vec(r.Center)), r.Radius, r.Phase)
	case KindRect:
		at := origin.Add(vec(r.At))
		return core.NewRect(at.X, at.Y, r.Size[0], r.Size[1])
	}
	return nil
}

func vec(p []float64) core.Vec2 {
	return core.V(p[0], p[1])
}
