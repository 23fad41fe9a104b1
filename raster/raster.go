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

// Package raster draws tessera scenes onto an in-memory image.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/ctessum/geom"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/mosaictools/tessera"
)

type shapeKind int

const (
	kindPolygon shapeKind = iota
	kindLine
	kindRect
)

// shape is one retained display-list entry. pts holds the polygon
// vertices, the line endpoints, or the rectangle's min and max corners,
// in viewport pixels.
type shape struct {
	kind   shapeKind
	pts    []geom.Point
	closed bool
	fill   color.NRGBA
	stroke color.NRGBA
	width  float64
}

// Surface renders tessera shapes onto an image.RGBA through a vector
// graphics canvas. Shapes are retained in a display list; Redraw wipes
// the image and replays the list back to front, so Remove and
// BringToFront take effect on the next redraw.
//
// Incoming coordinates are viewport pixels with Y pointing down; they
// are converted to the canvas's bottom-up point coordinates internally.
type Surface struct {
	draw.Canvas
	img *image.RGBA
	vp  tessera.Viewport
	ppx float64 // canvas points per viewport pixel

	order  []tessera.Handle
	shapes map[tessera.Handle]*shape
	lastID tessera.Handle
}

var _ tessera.Surface = (*Surface)(nil)

// New creates a surface with a backing image of vp's size.
func New(vp tessera.Viewport) *Surface {
	img := image.NewRGBA(image.Rect(0, 0, int(vp.Width), int(vp.Height)))
	dc := draw.New(vgimg.NewWith(vgimg.UseImage(img)))
	return &Surface{
		Canvas: dc,
		img:    img,
		vp:     vp,
		ppx:    float64(dc.Max.X-dc.Min.X) / vp.Width,
		shapes: make(map[tessera.Handle]*shape),
	}
}

// Image returns the backing image. Its pixels are current as of the
// last Redraw.
func (s *Surface) Image() *image.RGBA { return s.img }

// WriteTo encodes the backing image as PNG.
func (s *Surface) WriteTo(w io.Writer) error {
	return png.Encode(w, s.img)
}

// AddPolygon creates a polygon shape from the vertex sequence. The
// vertices are copied.
func (s *Surface) AddPolygon(vertices []geom.Point, closed bool, fill, stroke color.NRGBA, strokeWidth float64) tessera.Handle {
	pts := make([]geom.Point, len(vertices))
	copy(pts, vertices)
	return s.add(&shape{
		kind:   kindPolygon,
		pts:    pts,
		closed: closed,
		fill:   fill,
		stroke: stroke,
		width:  strokeWidth,
	})
}

// AddLine creates a line segment shape.
func (s *Surface) AddLine(p1, p2 geom.Point, c color.NRGBA, width float64) tessera.Handle {
	return s.add(&shape{
		kind:   kindLine,
		pts:    []geom.Point{p1, p2},
		stroke: c,
		width:  width,
	})
}

// AddRect creates a filled axis-aligned rectangle shape with its
// top-left corner at origin.
func (s *Surface) AddRect(origin geom.Point, width, height float64, fill color.NRGBA) tessera.Handle {
	return s.add(&shape{
		kind: kindRect,
		pts: []geom.Point{
			origin,
			{X: origin.X + width, Y: origin.Y + height},
		},
		fill: fill,
	})
}

func (s *Surface) add(sh *shape) tessera.Handle {
	s.lastID++
	s.shapes[s.lastID] = sh
	s.order = append(s.order, s.lastID)
	return s.lastID
}

// Remove deletes the shape h; unknown handles are ignored.
func (s *Surface) Remove(h tessera.Handle) {
	if _, ok := s.shapes[h]; !ok {
		return
	}
	delete(s.shapes, h)
	for i, id := range s.order {
		if id == h {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Clear deletes every shape.
func (s *Surface) Clear() {
	s.order = s.order[:0]
	s.shapes = make(map[tessera.Handle]*shape)
}

// BringToFront moves the shape h to the top of the draw order.
func (s *Surface) BringToFront(h tessera.Handle) {
	if _, ok := s.shapes[h]; !ok {
		return
	}
	for i, id := range s.order {
		if id == h {
			s.order = append(s.order[:i], s.order[i+1:]...)
			s.order = append(s.order, h)
			break
		}
	}
}

// Redraw wipes the image and replays the display list back to front.
func (s *Surface) Redraw() {
	s.Push()
	s.SetColor(color.White)
	s.Fill(s.rectPath(geom.Point{X: 0, Y: 0}, geom.Point{X: s.vp.Width, Y: s.vp.Height}))
	s.Pop()
	for _, id := range s.order {
		s.draw(s.shapes[id])
	}
}

func (s *Surface) draw(sh *shape) {
	switch sh.kind {
	case kindPolygon:
		var path vg.Path
		for i, p := range sh.pts {
			if i == 0 {
				path.Move(s.pt(p))
			} else {
				path.Line(s.pt(p))
			}
		}
		if sh.closed {
			path.Close()
		}
		if sh.fill.A != 0 {
			s.Push()
			s.SetColor(sh.fill)
			s.Fill(path)
			s.Pop()
		}
		if sh.stroke.A != 0 && sh.width > 0 {
			s.stroke(path, sh.stroke, sh.width)
		}
	case kindLine:
		var path vg.Path
		path.Move(s.pt(sh.pts[0]))
		path.Line(s.pt(sh.pts[1]))
		if sh.stroke.A != 0 && sh.width > 0 {
			s.stroke(path, sh.stroke, sh.width)
		}
	case kindRect:
		if sh.fill.A != 0 {
			s.Push()
			s.SetColor(sh.fill)
			s.Fill(s.rectPath(sh.pts[0], sh.pts[1]))
			s.Pop()
		}
	}
}

func (s *Surface) stroke(path vg.Path, c color.NRGBA, width float64) {
	s.SetLineStyle(draw.LineStyle{
		Color: c,
		Width: vg.Length(width * s.ppx),
	})
	s.Stroke(path)
}

func (s *Surface) rectPath(min, max geom.Point) vg.Path {
	var path vg.Path
	path.Move(s.pt(min))
	path.Line(s.pt(geom.Point{X: max.X, Y: min.Y}))
	path.Line(s.pt(max))
	path.Line(s.pt(geom.Point{X: min.X, Y: max.Y}))
	path.Close()
	return path
}

// pt converts viewport pixels (Y down) to canvas points (Y up).
func (s *Surface) pt(p geom.Point) vg.Point {
	return vg.Point{
		X: s.Min.X + vg.Length(p.X*s.ppx),
		Y: s.Min.Y + vg.Length((s.vp.Height-p.Y)*s.ppx),
	}
}
