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
	"math"
	"testing"

	"github.com/ctessum/geom"
)

func TestNewTransformFitsAndCenters(t *testing.T) {
	cases := []struct {
		name string
		g    Grid
		vp   Viewport
	}{
		{"wide world", Grid{Columns: 10, Rows: 7, TileSize: 300}, Viewport{Width: 800, Height: 600}},
		{"tall world", Grid{Columns: 2, Rows: 7, TileSize: 300}, Viewport{Width: 800, Height: 600}},
		{"tiny world", Grid{Columns: 1, Rows: 1, TileSize: 50}, Viewport{Width: 800, Height: 600}},
		{"square world in wide viewport", Grid{Columns: 4, Rows: 4, TileSize: 100}, Viewport{Width: 1000, Height: 500}},
	}
	near := func(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
	for _, c := range cases {
		tr := NewTransform(c.g, c.vp)
		w, h := c.g.WorldWidth(), c.g.WorldHeight()
		if want := math.Min(c.vp.Width/w, c.vp.Height/h); tr.Scale != want {
			t.Errorf("%s: scale: have %g, want %g", c.name, tr.Scale, want)
		}
		if w*tr.Scale > c.vp.Width+1e-9 || h*tr.Scale > c.vp.Height+1e-9 {
			t.Errorf("%s: scaled world %gx%g exceeds viewport %gx%g",
				c.name, w*tr.Scale, h*tr.Scale, c.vp.Width, c.vp.Height)
		}
		if !near(w*tr.Scale, c.vp.Width) && !near(h*tr.Scale, c.vp.Height) {
			t.Errorf("%s: neither axis fills the viewport (%g of %g, %g of %g)",
				c.name, w*tr.Scale, c.vp.Width, h*tr.Scale, c.vp.Height)
		}
		center := tr.Project(geom.Point{X: w / 2, Y: h / 2})
		if !near(center.X, c.vp.Width/2) || !near(center.Y, c.vp.Height/2) {
			t.Errorf("%s: world center lands at %v, want viewport center (%g, %g)",
				c.name, center, c.vp.Width/2, c.vp.Height/2)
		}
	}
}

func TestProject(t *testing.T) {
	tr := Transform{Scale: 2, OffsetX: 10, OffsetY: 20}
	have := tr.Project(geom.Point{X: 3, Y: 4})
	want := geom.Point{X: 16, Y: 28}
	if have != want {
		t.Errorf("have %#v, want %#v", have, want)
	}
}

func TestProjectPolygonLeavesInputAlone(t *testing.T) {
	world := []geom.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}
	tr := Transform{Scale: 2}
	screen := tr.ProjectPolygon(world)
	if len(screen) != len(world) {
		t.Fatalf("length: have %d, want %d", len(screen), len(world))
	}
	screen[0].X = 99
	if world[0].X != 1 {
		t.Errorf("input mutated: have %g, want 1", world[0].X)
	}
}
