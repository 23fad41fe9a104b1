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

import "github.com/ctessum/geom/index/rtree"

// cellIndex is a spatial index over tile world bounds. It depends only
// on the tile set, not on the grid, so grid mutations never invalidate
// it; loads do.
type cellIndex struct {
	tree *rtree.Rtree
}

func newCellIndex(tiles []*Tile) *cellIndex {
	t := rtree.NewTree(25, 50)
	for _, tile := range tiles {
		t.Insert(tile)
	}
	return &cellIndex{tree: t}
}

// TilesInCell returns the tiles whose world bounding boxes overlap the
// grid cell in column col and row row, in load order. Cells outside the
// grid return nil. The index is built lazily on first use after a load.
func (s *Scene) TilesInCell(col, row int) []*Tile {
	b := s.Grid.CellBounds(col, row)
	if b == nil {
		return nil
	}
	if s.cells == nil {
		s.cells = newCellIndex(s.tiles)
	}
	hit := make(map[*Tile]bool)
	for _, item := range s.cells.tree.SearchIntersect(b) {
		hit[item.(*Tile)] = true
	}
	var out []*Tile
	for _, t := range s.tiles {
		if hit[t] {
			out = append(out, t)
		}
	}
	return out
}
