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

// Package viewer hosts an interactive window showing a tessera scene.
//
// The scene is rendered into an off-screen frame; the window applies
// the pan and zoom camera on top of that frame, so navigating never
// touches the scene's stored geometry. Controls:
//
//	C / shift-C     add / remove a grid column
//	R / shift-R     add / remove a grid row
//	= / -           grow / shrink the tile size
//	L / shift-L     load polygons from the input file (append / replace)
//	home or F       reset pan and zoom
//	S               save a PNG snapshot of the frame
//	mouse wheel         zoom about the cursor
//	left/middle drag    pan
//	escape              quit
package viewer

import (
	"image"
	"image/color"
	"io"
	"os"

	"github.com/ctessum/geom"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/mosaictools/tessera"
)

// TileSizeStep is the world-unit increment applied by the tile size
// keys.
const TileSizeStep = 10.

// Frame is the rendered scene image the viewer displays and snapshots.
// *raster.Surface satisfies it.
type Frame interface {
	Image() *image.RGBA
	WriteTo(w io.Writer) error
}

// Config holds the viewer's window and file settings.
type Config struct {
	Title    string  // window title
	File     string  // polygon source read by the load keys
	Snapshot string  // path written by the snapshot key
	Scale    float64 // window size multiplier; content stays at viewport resolution
}

// Viewer is an ebiten game that displays a scene and routes input to
// its operations.
type Viewer struct {
	// Log receives load and snapshot diagnostics.
	Log logrus.FieldLogger

	scene *tessera.Scene
	frame Frame
	view  tessera.View
	cfg   Config

	tex    *ebiten.Image
	dirty  bool
	drag   bool
	dragX  int
	dragY  int
}

// New creates a viewer for scene, whose surface must be frame.
func New(scene *tessera.Scene, frame Frame, cfg Config) *Viewer {
	if cfg.Title == "" {
		cfg.Title = "tessera"
	}
	if cfg.Snapshot == "" {
		cfg.Snapshot = "tessera.png"
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	return &Viewer{
		Log:   logrus.StandardLogger(),
		scene: scene,
		frame: frame,
		view:  tessera.NewView(scene.Viewport()),
		cfg:   cfg,
		dirty: true,
	}
}

// Run opens the window and blocks until it is closed.
func (v *Viewer) Run() error {
	vp := v.scene.Viewport()
	ebiten.SetWindowTitle(v.cfg.Title)
	ebiten.SetWindowSize(int(vp.Width*v.cfg.Scale), int(vp.Height*v.cfg.Scale))
	return ebiten.RunGame(v)
}

func shift() bool {
	return ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
}

// Update applies one tick of input to the scene and the camera.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if shift() {
			v.scene.RemoveColumn()
		} else {
			v.scene.AddColumn()
		}
		v.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if shift() {
			v.scene.RemoveRow()
		} else {
			v.scene.AddRow()
		}
		v.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		v.scene.SetTileSize(v.scene.Grid.TileSize + TileSizeStep)
		v.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		v.scene.SetTileSize(v.scene.Grid.TileSize - TileSizeStep)
		v.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		v.loadFile(shift())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) || inpututil.IsKeyJustPressed(ebiten.KeyF) {
		v.view.Reset(v.scene.Viewport())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		v.snapshot()
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		x, y := ebiten.CursorPosition()
		cursor := v.contentAt(x, y)
		if wy > 0 {
			v.view.ZoomIn(cursor)
		} else {
			v.view.ZoomOut(cursor)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		v.drag = true
		v.dragX, v.dragY = ebiten.CursorPosition()
	}
	held := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if v.drag && held {
		x, y := ebiten.CursorPosition()
		// Window pixel deltas shrink by the zoom factor in frame
		// coordinates.
		v.view.Pan(float64(x-v.dragX)/v.view.Zoom, float64(y-v.dragY)/v.view.Zoom)
		v.dragX, v.dragY = x, y
	} else {
		v.drag = false
	}
	return nil
}

// contentAt maps a window pixel to the frame coordinates the camera is
// showing there.
func (v *Viewer) contentAt(x, y int) geom.Point {
	vp := v.scene.Viewport()
	return geom.Point{
		X: v.view.Center.X + (float64(x)-vp.Width/2)/v.view.Zoom,
		Y: v.view.Center.Y + (float64(y)-vp.Height/2)/v.view.Zoom,
	}
}

func (v *Viewer) loadFile(replace bool) {
	f, err := os.Open(v.cfg.File)
	if err != nil {
		v.Log.WithFields(logrus.Fields{"error": err}).Error("tessera: opening polygon file")
		return
	}
	defer f.Close()
	if replace {
		_, err = v.scene.LoadReplace(f)
	} else {
		_, err = v.scene.LoadAppend(f)
	}
	if err != nil {
		v.Log.WithFields(logrus.Fields{
			"file":  v.cfg.File,
			"error": err,
		}).Error("tessera: loading polygons")
		return
	}
	v.dirty = true
}

func (v *Viewer) snapshot() {
	f, err := os.Create(v.cfg.Snapshot)
	if err != nil {
		v.Log.WithFields(logrus.Fields{"error": err}).Error("tessera: creating snapshot file")
		return
	}
	defer f.Close()
	if err := v.frame.WriteTo(f); err != nil {
		v.Log.WithFields(logrus.Fields{"error": err}).Error("tessera: writing snapshot")
		return
	}
	v.Log.WithFields(logrus.Fields{"file": v.cfg.Snapshot}).Info("tessera: snapshot saved")
}

// Draw blits the frame with the camera transform applied.
func (v *Viewer) Draw(screen *ebiten.Image) {
	img := v.frame.Image()
	if v.tex == nil {
		b := img.Bounds()
		v.tex = ebiten.NewImage(b.Dx(), b.Dy())
	}
	if v.dirty {
		v.tex.WritePixels(img.Pix)
		v.dirty = false
	}
	screen.Fill(color.NRGBA{R: 40, G: 40, B: 40, A: 255})
	vp := v.scene.Viewport()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-v.view.Center.X, -v.view.Center.Y)
	op.GeoM.Scale(v.view.Zoom, v.view.Zoom)
	op.GeoM.Translate(vp.Width/2, vp.Height/2)
	screen.DrawImage(v.tex, op)
}

// Layout fixes the logical screen to the scene's viewport size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := v.scene.Viewport()
	return int(vp.Width), int(vp.Height)
}
