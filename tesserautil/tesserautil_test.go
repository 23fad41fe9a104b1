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

package tesserautil

import (
	"fmt"
	"os"
	"testing"

	"github.com/mosaictools/tessera"
)

func TestViewerConfigDefaults(t *testing.T) {
	sc, vc := ViewerConfig(Cfg)
	want := tessera.Config{
		Columns:  tessera.DefaultColumns,
		Rows:     tessera.DefaultRows,
		TileSize: tessera.DefaultTileSize,
		Viewport: tessera.DefaultViewport,
	}
	if sc != want {
		t.Errorf("scene config: have %#v, want %#v", sc, want)
	}
	if vc.Title != "tessera" || vc.Snapshot != "tessera.png" || vc.File != "" {
		t.Errorf("viewer config: have %#v", vc)
	}
	if vc.Scale != 1 {
		t.Errorf("scale: have %g, want 1", vc.Scale)
	}
}

func TestSetConfigFile(t *testing.T) {
	f, err := os.Create("tmp_config.toml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove("tmp_config.toml")
	fmt.Fprint(f, "columns = 12\ntilesize = 150.0\ntitle = \"mosaic\"\n")
	f.Close()

	Cfg.Set("config", "tmp_config.toml")
	defer Cfg.Set("config", "")
	if err := setConfig(); err != nil {
		t.Fatal(err)
	}
	sc, vc := ViewerConfig(Cfg)
	if sc.Columns != 12 {
		t.Errorf("columns: have %d, want 12", sc.Columns)
	}
	if sc.TileSize != 150 {
		t.Errorf("tilesize: have %g, want 150", sc.TileSize)
	}
	if vc.Title != "mosaic" {
		t.Errorf("title: have %q, want %q", vc.Title, "mosaic")
	}
	// Keys the file does not define keep their defaults.
	if sc.Rows != tessera.DefaultRows {
		t.Errorf("rows: have %d, want %d", sc.Rows, tessera.DefaultRows)
	}
	if vc.Snapshot != "tessera.png" {
		t.Errorf("snapshot: have %q, want %q", vc.Snapshot, "tessera.png")
	}
}

func TestSetConfigMissingFile(t *testing.T) {
	Cfg.Set("config", "no_such_config.toml")
	defer Cfg.Set("config", "")
	if err := setConfig(); err == nil {
		t.Error("want an error for a missing configuration file")
	}
}

func TestSetLogLevel(t *testing.T) {
	if err := setLogLevel(); err != nil {
		t.Errorf("default level: %v", err)
	}
	Cfg.Set("loglevel", "nonsense")
	defer Cfg.Set("loglevel", "info")
	if err := setLogLevel(); err == nil {
		t.Error("want an error for an unknown log level")
	}
}
