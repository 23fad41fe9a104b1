/*
Copyright © 2025 the tessera authors.
This file is part of tessera.

tessera is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

tessera is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with tessera.  If not, see <http://www.gnu.org/licenses/>.
*/

package tessera

import (
	"image/color"

	"github.com/ctessum/geom"
	"gonum.org/v1/gonum/floats"
)

// Grid visual styling.
var (
	BackgroundFill = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	GridLineColor  = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	GridLineWidth  = 1.0
)

// Sync performs the full two-phase synchronization: grid visuals are
// rebuilt first, then every tile's screen geometry is re-derived from
// its world vertices, and finally a redraw is requested. Calling Sync
// twice with unchanged scene state produces bit-identical screen
// coordinates, so redundant calls are harmless.
func (s *Scene) Sync() {
	t := NewTransform(s.Grid, s.vp)
	s.rebuildGrid(t)
	s.reprojectTiles(t)
	s.surf.Redraw()
}

// rebuildGrid replaces the background rectangle and grid lines with
// ones matching the current transform. Line positions are interpolated
// between the projected world edges rather than accumulated step by
// step, so they stay drift-free at any grid size.
func (s *Scene) rebuildGrid(t Transform) {
	if s.background != 0 {
		s.surf.Remove(s.background)
	}
	for _, h := range s.gridLines {
		s.surf.Remove(h)
	}
	s.gridLines = s.gridLines[:0]

	min := t.Project(geom.Point{X: 0, Y: 0})
	max := t.Project(geom.Point{X: s.Grid.WorldWidth(), Y: s.Grid.WorldHeight()})
	s.background = s.surf.AddRect(min, max.X-min.X, max.Y-min.Y, BackgroundFill)

	xs := floats.Span(make([]float64, s.Grid.Columns+1), min.X, max.X)
	for _, x := range xs {
		h := s.surf.AddLine(
			geom.Point{X: x, Y: min.Y},
			geom.Point{X: x, Y: max.Y},
			GridLineColor, GridLineWidth)
		s.gridLines = append(s.gridLines, h)
	}
	ys := floats.Span(make([]float64, s.Grid.Rows+1), min.Y, max.Y)
	for _, y := range ys {
		h := s.surf.AddLine(
			geom.Point{X: min.X, Y: y},
			geom.Point{X: max.X, Y: y},
			GridLineColor, GridLineWidth)
		s.gridLines = append(s.gridLines, h)
	}
}

// reprojectTiles re-derives every tile's screen vertices from its
// retained world vertices and replaces its drawn polygon, keeping the
// fill and stroke styling. Recreating a shape resets its draw order, so
// each tile is brought back to the front, keeping tiles above the grid
// visuals.
func (s *Scene) reprojectTiles(t Transform) {
	for _, tile := range s.tiles {
		if h, ok := s.tileShapes[tile]; ok {
			s.surf.Remove(h)
		}
		screen := t.ProjectPolygon(tile.Vertices())
		h := s.surf.AddPolygon(screen, true, tile.Fill(), TileStroke, TileStrokeWidth)
		s.tileShapes[tile] = h
		s.surf.BringToFront(h)
	}
}
