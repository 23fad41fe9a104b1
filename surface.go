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
)

// A Handle identifies a shape previously created on a Surface. Handles
// are only meaningful to the Surface that issued them. The zero Handle
// is never issued and means "no shape".
type Handle int

// Surface is the vector-drawing service the layout engine renders to.
// All coordinates are viewport pixels with the Y axis pointing down.
// Implementations are not required to be safe for concurrent use; the
// layout engine is single-threaded.
//
// Shapes are drawn in creation order unless reordered with BringToFront.
// Drawing is allowed to be deferred until Redraw is requested.
type Surface interface {
	// AddPolygon creates a polygon from the vertex sequence. If closed
	// is true the last vertex connects back to the first. strokeWidth
	// is in pixels.
	AddPolygon(vertices []geom.Point, closed bool, fill, stroke color.NRGBA, strokeWidth float64) Handle

	// AddLine creates a line segment from p1 to p2.
	AddLine(p1, p2 geom.Point, c color.NRGBA, width float64) Handle

	// AddRect creates an axis-aligned filled rectangle with its top-left
	// corner at origin.
	AddRect(origin geom.Point, width, height float64, fill color.NRGBA) Handle

	// Remove deletes the shape h. Removing an unknown handle is a no-op.
	Remove(h Handle)

	// Clear deletes every shape.
	Clear()

	// BringToFront moves the shape h above all others.
	BringToFront(h Handle)

	// Redraw requests that the current shape set be rendered.
	Redraw()
}
