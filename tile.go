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
	"fmt"
	"image/color"

	"github.com/ctessum/geom"
)

// Tile outline styling. Every tile is stroked the same way; only the
// fill comes from the input record.
var (
	TileStroke      = color.NRGBA{A: 255}
	TileStrokeWidth = 1.0
)

// A Tile is one loaded polygon: an ordered ring of at least three
// world-space vertices (closed implicitly, last vertex joining back to
// the first) and a fill color. The world vertices are copied at
// construction and never mutated afterward; screen-space geometry is
// derived from them on every layout pass and is never stored here.
type Tile struct {
	ring geom.Polygon
	fill color.NRGBA
}

// NewTile creates a tile from a world-space vertex ring and a fill
// color. The vertices are copied.
func NewTile(vertices []geom.Point, fill color.NRGBA) (*Tile, error) {
	if len(vertices) < 3 {
		return nil, fmt.Errorf("tessera: polygon has %d vertices; at least 3 are required", len(vertices))
	}
	ring := make([]geom.Point, len(vertices))
	copy(ring, vertices)
	return &Tile{ring: geom.Polygon{ring}, fill: fill}, nil
}

// Vertices returns the tile's world-space vertex ring. The returned
// slice is the tile's own storage and must not be modified.
func (t *Tile) Vertices() []geom.Point { return t.ring[0] }

// Fill returns the tile's fill color.
func (t *Tile) Fill() color.NRGBA { return t.fill }

// Bounds returns the tile's world-space bounding box.
func (t *Tile) Bounds() *geom.Bounds { return t.ring.Bounds() }
