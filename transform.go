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

	"github.com/ctessum/geom"
)

// Viewport is the fixed pixel size of the drawing surface.
type Viewport struct {
	Width  float64
	Height float64
}

// DefaultViewport is the canvas size used when none is configured.
var DefaultViewport = Viewport{Width: 800, Height: 600}

// Transform maps world coordinates onto the viewport: a uniform scale
// that fits the whole world rectangle, plus an offset that centers the
// scaled rectangle. There is no independent scaling of the two axes, so
// the aspect ratio of world content is always preserved.
type Transform struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// NewTransform computes the transform fitting g's world rectangle inside
// vp. It is a pure function of its arguments and must be recomputed
// after any grid mutation; a cached transform is stale as soon as the
// world rectangle changes.
func NewTransform(g Grid, vp Viewport) Transform {
	w := g.WorldWidth()
	h := g.WorldHeight()
	s := math.Min(vp.Width/w, vp.Height/h)
	return Transform{
		Scale:   s,
		OffsetX: (vp.Width - w*s) / 2,
		OffsetY: (vp.Height - h*s) / 2,
	}
}

// Project maps a world-space point to viewport pixels.
func (t Transform) Project(p geom.Point) geom.Point {
	return geom.Point{
		X: t.OffsetX + p.X*t.Scale,
		Y: t.OffsetY + p.Y*t.Scale,
	}
}

// ProjectPolygon maps a world-space vertex sequence to viewport pixels,
// returning a new slice and leaving the input untouched.
func (t Transform) ProjectPolygon(world []geom.Point) []geom.Point {
	screen := make([]geom.Point, len(world))
	for i, p := range world {
		screen[i] = t.Project(p)
	}
	return screen
}
