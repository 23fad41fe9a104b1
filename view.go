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

// Zoom behavior constants.
const (
	ZoomStep = 1.05
	ZoomMin  = 0.05
	ZoomMax  = 20.
)

// View is the camera applied over already-projected content: a zoom
// factor and the content point shown at the middle of the viewport.
// It is independent of the Transform; panning and zooming only change
// how projected content is displayed and never rewrite stored world- or
// screen-space vertex data.
type View struct {
	Zoom   float64
	Center geom.Point
}

// NewView returns a camera at zoom 1 centered on vp's midpoint, showing
// the fitted world rectangle in full.
func NewView(vp Viewport) View {
	return View{Zoom: 1, Center: geom.Point{X: vp.Width / 2, Y: vp.Height / 2}}
}

// Reset restores the fitted framing: zoom 1, centered on vp's midpoint.
func (v *View) Reset(vp Viewport) { *v = NewView(vp) }

// ZoomIn magnifies by one step, anchored at cursor (in the same
// projected-content coordinates as Center).
func (v *View) ZoomIn(cursor geom.Point) { v.zoomTo(cursor, v.Zoom*ZoomStep) }

// ZoomOut shrinks by one step, anchored at cursor.
func (v *View) ZoomOut(cursor geom.Point) { v.zoomTo(cursor, v.Zoom/ZoomStep) }

func (v *View) zoomTo(cursor geom.Point, zoom float64) {
	if zoom > ZoomMax {
		zoom = ZoomMax
	}
	if zoom < ZoomMin {
		zoom = ZoomMin
	}
	// Recenter so the content under the cursor stays put.
	r := v.Zoom / zoom
	v.Center.X = cursor.X - (cursor.X-v.Center.X)*r
	v.Center.Y = cursor.Y - (cursor.Y-v.Center.Y)*r
	v.Zoom = zoom
}

// Pan translates the center by the negative of the pointer's movement
// delta, so content follows the pointer. The delta is in
// projected-content coordinates.
func (v *View) Pan(dx, dy float64) {
	v.Center.X -= dx
	v.Center.Y -= dy
}
