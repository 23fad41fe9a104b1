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
	"testing"

	"github.com/ctessum/geom"
)

func TestNewTileVertexFloor(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}}
	for n := 0; n <= len(pts); n++ {
		_, err := NewTile(pts[:n], color.NRGBA{A: 255})
		if n < 3 && err == nil {
			t.Errorf("%d vertices: want an error", n)
		}
		if n >= 3 && err != nil {
			t.Errorf("%d vertices: %v", n, err)
		}
	}
}

func TestTileCopiesVertices(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}}
	tile, err := NewTile(pts, color.NRGBA{A: 255})
	if err != nil {
		t.Fatal(err)
	}
	pts[0].X = 99
	if tile.Vertices()[0].X != 0 {
		t.Errorf("vertex mutated through the input slice: have %g, want 0", tile.Vertices()[0].X)
	}
}

func TestTileFillAndBounds(t *testing.T) {
	fill := color.NRGBA{R: 10, G: 200, B: 30, A: 255}
	tile, err := NewTile([]geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}}, fill)
	if err != nil {
		t.Fatal(err)
	}
	if tile.Fill() != fill {
		t.Errorf("fill: have %#v, want %#v", tile.Fill(), fill)
	}
	b := tile.Bounds()
	want := geom.Bounds{Max: geom.Point{X: 4, Y: 3}}
	if *b != want {
		t.Errorf("bounds: have %#v, want %#v", *b, want)
	}
}
