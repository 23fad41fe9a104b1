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
	"strings"
	"testing"
)

// Three tiles on the default 300-unit grid: one inside cell (0,0), one
// inside cell (1,0), and one straddling the boundary between them.
const cellsCSV = `polygon_coordinates,color_r,color_g,color_b
"[[10, 10], [50, 10], [50, 50]]",1,2,3
"[[310, 10], [350, 10], [350, 50]]",1,2,3
"[[250, 100], [350, 100], [350, 150], [250, 150]]",1,2,3
`

func sameTiles(a, b []*Tile) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTilesInCell(t *testing.T) {
	s, _ := newTestScene(t, Config{})
	if _, err := s.LoadAppend(strings.NewReader(cellsCSV)); err != nil {
		t.Fatal(err)
	}
	tiles := s.Tiles()

	if have := s.TilesInCell(0, 0); !sameTiles(have, []*Tile{tiles[0], tiles[2]}) {
		t.Errorf("cell (0,0): have %d tiles, want tiles 0 and 2 in load order", len(have))
	}
	if have := s.TilesInCell(1, 0); !sameTiles(have, []*Tile{tiles[1], tiles[2]}) {
		t.Errorf("cell (1,0): have %d tiles, want tiles 1 and 2 in load order", len(have))
	}
	if have := s.TilesInCell(5, 5); len(have) != 0 {
		t.Errorf("cell (5,5): have %d tiles, want none", len(have))
	}
}

func TestTilesInCellOutsideGrid(t *testing.T) {
	s, _ := newTestScene(t, Config{})
	if _, err := s.LoadAppend(strings.NewReader(cellsCSV)); err != nil {
		t.Fatal(err)
	}
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {DefaultColumns, 0}, {0, DefaultRows}} {
		if have := s.TilesInCell(c[0], c[1]); have != nil {
			t.Errorf("cell (%d,%d): have %v, want nil", c[0], c[1], have)
		}
	}
}

func TestTilesInCellSeesNewLoads(t *testing.T) {
	s, _ := newTestScene(t, Config{})
	if _, err := s.LoadAppend(strings.NewReader(cellsCSV)); err != nil {
		t.Fatal(err)
	}
	if have := s.TilesInCell(0, 0); len(have) != 2 {
		t.Fatalf("cell (0,0): have %d tiles, want 2", len(have))
	}
	extra := `polygon_coordinates,color_r,color_g,color_b
"[[100, 200], [150, 200], [150, 250]]",1,2,3
`
	if _, err := s.LoadAppend(strings.NewReader(extra)); err != nil {
		t.Fatal(err)
	}
	if have := s.TilesInCell(0, 0); len(have) != 3 {
		t.Errorf("cell (0,0) after another load: have %d tiles, want 3", len(have))
	}
	if _, err := s.LoadReplace(strings.NewReader(extra)); err != nil {
		t.Fatal(err)
	}
	if have := s.TilesInCell(0, 0); len(have) != 1 {
		t.Errorf("cell (0,0) after replace: have %d tiles, want 1", len(have))
	}
}

func TestTilesInCellTracksGridChanges(t *testing.T) {
	s, _ := newTestScene(t, Config{})
	if _, err := s.LoadAppend(strings.NewReader(cellsCSV)); err != nil {
		t.Fatal(err)
	}
	// Doubling the tile size puts the first two tiles and the
	// straddler all inside cell (0,0).
	s.SetTileSize(600)
	if have := s.TilesInCell(0, 0); len(have) != 3 {
		t.Errorf("cell (0,0) at size 600: have %d tiles, want 3", len(have))
	}
}
