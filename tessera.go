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
	"errors"

	"github.com/sirupsen/logrus"
)

// Version gives the tessera version number.
const Version = "0.1.0"

// Config specifies a scene's initial geometry. Zero fields take the
// package defaults.
type Config struct {
	Columns  int     // grid columns at startup
	Rows     int     // grid rows at startup
	TileSize float64 // cell edge length in world units
	Viewport Viewport
}

func (c *Config) setDefaults() {
	if c.Columns < 1 {
		c.Columns = DefaultColumns
	}
	if c.Rows < 1 {
		c.Rows = DefaultRows
	}
	if c.TileSize <= 0 {
		c.TileSize = DefaultTileSize
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		c.Viewport = DefaultViewport
	}
}

// Scene is the single source of truth for the world: the grid geometry
// and the loaded tiles. It keeps a drawing surface synchronized with
// that state; every mutating operation runs the full two-phase
// synchronization (grid visuals first, then tile reprojection) before
// returning.
//
// A Scene is not safe for concurrent use. All operations are expected
// to run on one event loop.
type Scene struct {
	Grid Grid

	// Log receives row-level parse diagnostics and load summaries.
	Log logrus.FieldLogger

	vp    Viewport
	surf  Surface
	tiles []*Tile

	// Handles of the shapes this scene has created on the surface.
	background Handle
	gridLines  []Handle
	tileShapes map[*Tile]Handle

	cells *cellIndex
}

// NewScene creates a scene rendering to surf and draws the initial
// (empty) grid.
func NewScene(c Config, surf Surface) (*Scene, error) {
	if surf == nil {
		return nil, errors.New("tessera: nil drawing surface")
	}
	c.setDefaults()
	s := &Scene{
		Grid:       Grid{Columns: c.Columns, Rows: c.Rows, TileSize: c.TileSize},
		Log:        logrus.StandardLogger(),
		vp:         c.Viewport,
		surf:       surf,
		tileShapes: make(map[*Tile]Handle),
	}
	s.Sync()
	return s, nil
}

// Viewport returns the fixed pixel size of the scene's surface.
func (s *Scene) Viewport() Viewport { return s.vp }

// Tiles returns the loaded tiles in load order. The returned slice is
// the scene's own storage and must not be modified.
func (s *Scene) Tiles() []*Tile { return s.tiles }

// Transform returns the current world-to-viewport transform. It is
// recomputed from the grid on every call; transforms are never cached
// across grid mutations.
func (s *Scene) Transform() Transform { return NewTransform(s.Grid, s.vp) }

// AddColumn widens the grid by one column and resynchronizes.
func (s *Scene) AddColumn() {
	s.Grid.AddColumn()
	s.Sync()
}

// RemoveColumn narrows the grid by one column and resynchronizes. At
// the single-column floor it only resynchronizes.
func (s *Scene) RemoveColumn() {
	s.Grid.RemoveColumn()
	s.Sync()
}

// AddRow heightens the grid by one row and resynchronizes.
func (s *Scene) AddRow() {
	s.Grid.AddRow()
	s.Sync()
}

// RemoveRow shortens the grid by one row and resynchronizes. At the
// single-row floor it only resynchronizes.
func (s *Scene) RemoveRow() {
	s.Grid.RemoveRow()
	s.Sync()
}

// SetTileSize changes the cell edge length and resynchronizes.
// Non-positive sizes leave the grid unchanged.
func (s *Scene) SetTileSize(size float64) {
	s.Grid.SetTileSize(size)
	s.Sync()
}

// clearTiles forgets every loaded tile and removes all shapes from the
// surface; the next Sync recreates the grid visuals.
func (s *Scene) clearTiles() {
	s.surf.Clear()
	s.tiles = nil
	s.tileShapes = make(map[*Tile]Handle)
	s.background = 0
	s.gridLines = nil
	s.cells = nil
}
