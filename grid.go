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

import "github.com/ctessum/geom"

// Default grid geometry at startup.
const (
	DefaultColumns  = 10
	DefaultRows     = 7
	DefaultTileSize = 300.
)

// Grid defines the logical world rectangle as Columns × Rows square cells,
// each TileSize world units on a side. The world rectangle has its origin
// at (0, 0) and extends to (WorldWidth, WorldHeight).
//
// Columns and Rows are always at least 1; mutations that would go below
// that floor are silently ignored.
type Grid struct {
	Columns  int
	Rows     int
	TileSize float64
}

// NewGrid returns a grid with the default geometry.
func NewGrid() Grid {
	return Grid{Columns: DefaultColumns, Rows: DefaultRows, TileSize: DefaultTileSize}
}

// WorldWidth returns the width of the world rectangle in world units.
func (g Grid) WorldWidth() float64 { return float64(g.Columns) * g.TileSize }

// WorldHeight returns the height of the world rectangle in world units.
func (g Grid) WorldHeight() float64 { return float64(g.Rows) * g.TileSize }

// AddColumn widens the grid by one column.
func (g *Grid) AddColumn() { g.Columns++ }

// RemoveColumn narrows the grid by one column. It is a no-op when the
// grid is already a single column wide.
func (g *Grid) RemoveColumn() {
	if g.Columns > 1 {
		g.Columns--
	}
}

// AddRow heightens the grid by one row.
func (g *Grid) AddRow() { g.Rows++ }

// RemoveRow shortens the grid by one row. It is a no-op when the grid is
// already a single row tall.
func (g *Grid) RemoveRow() {
	if g.Rows > 1 {
		g.Rows--
	}
}

// SetTileSize changes the cell edge length. Non-positive sizes are
// silently ignored.
func (g *Grid) SetTileSize(size float64) {
	if size > 0 {
		g.TileSize = size
	}
}

// CellBounds returns the world rectangle of the cell in column col and
// row row, both zero-indexed from the world origin. It returns nil if
// the cell is outside the grid.
func (g Grid) CellBounds(col, row int) *geom.Bounds {
	if col < 0 || col >= g.Columns || row < 0 || row >= g.Rows {
		return nil
	}
	return &geom.Bounds{
		Min: geom.Point{X: float64(col) * g.TileSize, Y: float64(row) * g.TileSize},
		Max: geom.Point{X: float64(col+1) * g.TileSize, Y: float64(row+1) * g.TileSize},
	}
}
