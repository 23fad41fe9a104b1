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
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ctessum/geom"
	"github.com/sirupsen/logrus"
)

// ErrNoCoordsColumn reports that the input has no column matching the
// coordinates rule and does not fit the fixed headerless layout either.
// The load that returns it produced no result.
var ErrNoCoordsColumn = errors.New("tessera: no coordinates column in input")

// LoadResult reports the outcome of one batch load.
type LoadResult struct {
	Accepted int // tiles created
	Rejected int // malformed records skipped
}

// LoadAppend parses polygon records from r and adds the resulting tiles
// to the scene, keeping the tiles already loaded. Malformed records are
// skipped and counted, never aborting the batch; see LoadReplace for
// the failure modes that abort the whole load.
func (s *Scene) LoadAppend(r io.Reader) (LoadResult, error) {
	return s.load(r, false)
}

// LoadReplace parses polygon records from r and replaces the scene's
// tiles with the result. The existing tiles are cleared only after the
// whole input has been read and parsed, so a failed load (an unreadable
// source, or no resolvable coordinates column) leaves the prior scene
// intact.
func (s *Scene) LoadReplace(r io.Reader) (LoadResult, error) {
	return s.load(r, true)
}

// load is the one parse routine behind both entry points; replace
// selects whether the parsed batch replaces or extends the tile set.
func (s *Scene) load(r io.Reader, replace bool) (LoadResult, error) {
	tiles, rejected, err := s.parseRecords(r)
	if err != nil {
		return LoadResult{}, err
	}
	if replace {
		s.clearTiles()
	}
	s.tiles = append(s.tiles, tiles...)
	s.cells = nil
	s.Sync()
	res := LoadResult{Accepted: len(tiles), Rejected: rejected}
	s.Log.WithFields(logrus.Fields{
		"accepted": res.Accepted,
		"rejected": res.Rejected,
		"replace":  replace,
	}).Info("tessera: loaded polygons")
	return res, nil
}

// schema maps record fields to their meaning. An index is -1 when the
// column is absent.
type schema struct {
	coords  int
	r, g, b int
	a       int
}

// fixedSchema is the headerless (coords, r, g, b) layout.
var fixedSchema = schema{coords: 0, r: 1, g: 2, b: 3, a: -1}

// minFields is the field count a record needs to cover every resolved
// column.
func (sc schema) minFields() int {
	n := sc.coords + 1
	for _, i := range []int{sc.r, sc.g, sc.b, sc.a} {
		if i+1 > n {
			n = i + 1
		}
	}
	return n
}

// resolveSchema scans a header row for the known columns. Matching is a
// case-insensitive substring test: the coordinates column contains
// "coordinates" or "polygon_coords", the color columns contain
// "color_r", "color_g" and "color_b", and the optional alpha column
// contains "color_a". The boolean reports whether a coordinates column
// was found; without one there is no schema.
func resolveSchema(header []string) (schema, bool) {
	sc := schema{coords: -1, r: -1, g: -1, b: -1, a: -1}
	for i, name := range header {
		n := strings.ToLower(name)
		switch {
		case strings.Contains(n, "coordinates") || strings.Contains(n, "polygon_coords"):
			if sc.coords == -1 {
				sc.coords = i
			}
		case strings.Contains(n, "color_r"):
			sc.r = i
		case strings.Contains(n, "color_g"):
			sc.g = i
		case strings.Contains(n, "color_b"):
			sc.b = i
		case strings.Contains(n, "color_a"):
			sc.a = i
		}
	}
	return sc, sc.coords != -1
}

// parseRecords reads the whole input and turns it into tiles. It
// returns the tiles, the count of records rejected along the way, and
// an error only for whole-load failures: an unreadable source, or input
// matching neither the schema-driven nor the fixed headerless variant.
func (s *Scene) parseRecords(r io.Reader) ([]*Tile, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("tessera: reading records: %v", err)
	}
	if len(rows) == 0 {
		return nil, 0, ErrNoCoordsColumn
	}

	sc, ok := resolveSchema(rows[0])
	data := rows[1:]
	if !ok {
		// No header. The first row is data if it fits the fixed
		// (coords, r, g, b) layout.
		if len(rows[0]) >= fixedSchema.minFields() {
			if _, err := parseCoordinates(rows[0][fixedSchema.coords]); err == nil {
				sc = fixedSchema
				data = rows
				ok = true
			}
		}
	}
	if !ok {
		return nil, 0, ErrNoCoordsColumn
	}

	var tiles []*Tile
	rejected := 0
	for i, rec := range data {
		t, err := parseRecord(rec, sc)
		if err != nil {
			rejected++
			s.Log.WithFields(logrus.Fields{
				"row":   i + 1,
				"error": err,
			}).Warn("tessera: skipping record")
			continue
		}
		tiles = append(tiles, t)
	}
	return tiles, rejected, nil
}

// parseRecord turns one record into a tile.
func parseRecord(rec []string, sc schema) (*Tile, error) {
	if len(rec) < sc.minFields() {
		return nil, fmt.Errorf("tessera: record has %d fields; the schema requires %d", len(rec), sc.minFields())
	}
	verts, err := parseCoordinates(rec[sc.coords])
	if err != nil {
		return nil, err
	}
	return NewTile(verts, parseFill(rec, sc))
}

// parseCoordinates decodes a coordinate field in either accepted
// encoding: a nested pair list like [[x1, y1], [x2, y2], ...], where
// paren tuples such as (x1, y1) are rewritten to brackets before
// decoding, or a flat parenthesized list like (x1, y1, x2, y2, ...)
// whose numbers pair up consecutively. A trailing unpaired number in
// the flat form is dropped.
func parseCoordinates(field string) ([]geom.Point, error) {
	str := strings.TrimSpace(field)
	str = strings.Trim(str, `"'`)
	str = strings.ReplaceAll(str, "(", "[")
	str = strings.ReplaceAll(str, ")", "]")
	if str == "" {
		return nil, errors.New("tessera: empty coordinate field")
	}

	var pairs [][]float64
	if err := json.Unmarshal([]byte(str), &pairs); err == nil {
		pts := make([]geom.Point, len(pairs))
		for i, pr := range pairs {
			if len(pr) < 2 {
				return nil, fmt.Errorf("tessera: coordinate pair has %d values; 2 are required", len(pr))
			}
			pts[i] = geom.Point{X: pr[0], Y: pr[1]}
		}
		return pts, nil
	}

	var flat []float64
	if err := json.Unmarshal([]byte(str), &flat); err != nil {
		return nil, fmt.Errorf("tessera: unparsable coordinate field %q", field)
	}
	pts := make([]geom.Point, 0, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		pts = append(pts, geom.Point{X: flat[i], Y: flat[i+1]})
	}
	return pts, nil
}

// parseFill resolves a record's fill color. Channels may be 0–255
// values or 0–1 fractions; when all three of r, g and b are ≤ 1 each is
// scaled as floor(channel × 255). A resolved all-zero color is coerced
// to white: fully black-or-transparent input is treated as a visibility
// defect of the data, and the coercion is a documented quirk of the
// format rather than a fidelity guarantee. Absent or unparsable color
// columns fall back to gray.
func parseFill(rec []string, sc schema) color.NRGBA {
	r, okR := channel(rec, sc.r)
	g, okG := channel(rec, sc.g)
	b, okB := channel(rec, sc.b)
	if !okR || !okG || !okB {
		return color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	}
	if r <= 1 && g <= 1 && b <= 1 {
		r = math.Floor(r * 255)
		g = math.Floor(g * 255)
		b = math.Floor(b * 255)
	}
	if r == 0 && g == 0 && b == 0 {
		r, g, b = 255, 255, 255
	}
	a := 255.
	if v, ok := channel(rec, sc.a); ok {
		if v <= 1 {
			v = math.Floor(v * 255)
		}
		a = v
	}
	return color.NRGBA{R: clamp8(r), G: clamp8(g), B: clamp8(b), A: clamp8(a)}
}

// channel parses the color channel in field i, reporting whether a
// value was present and numeric.
func channel(rec []string, i int) (float64, bool) {
	if i < 0 || i >= len(rec) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(rec[i]), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
