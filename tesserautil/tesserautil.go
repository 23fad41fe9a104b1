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

// Package tesserautil holds the configuration and commands behind the
// tessera executable.
package tesserautil

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mosaictools/tessera"
	"github.com/mosaictools/tessera/raster"
	"github.com/mosaictools/tessera/viewer"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to tessera.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "loglevel",
			usage: `
              loglevel specifies the logging threshold: debug, info,
              warning, error, fatal or panic.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "columns",
			usage: `
              columns specifies the number of grid columns at startup.`,
			defaultVal: tessera.DefaultColumns,
			flagsets:   []*pflag.FlagSet{viewCmd.Flags()},
		},
		{
			name: "rows",
			usage: `
              rows specifies the number of grid rows at startup.`,
			defaultVal: tessera.DefaultRows,
			flagsets:   []*pflag.FlagSet{viewCmd.Flags()},
		},
		{
			name: "tilesize",
			usage: `
              tilesize specifies the cell edge length in world units.`,
			defaultVal: tessera.DefaultTileSize,
			flagsets:   []*pflag.FlagSet{viewCmd.Flags()},
		},
		{
			name: "width",
			usage: `
              width specifies the viewport width in pixels.`,
			defaultVal: int(tessera.DefaultViewport.Width),
			flagsets:   []*pflag.FlagSet{viewCmd.Flags()},
		},
		{
			name: "height",
			usage: `
              height specifies the viewport height in pixels.`,
			defaultVal: int(tessera.DefaultViewport.Height),
			flagsets:   []*pflag.FlagSet{viewCmd.Flags()},
		},
		{
			name: "file",
			usage: `
              file specifies the delimited text file the load keys read
              polygons from. When set, it is also loaded at startup.`,
			shorthand:  "f",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{viewCmd.Flags()},
		},
		{
			name: "title",
			usage: `
              title specifies the window title.`,
			defaultVal: "tessera",
			flagsets:   []*pflag.FlagSet{viewCmd.Flags()},
		},
		{
			name: "snapshot",
			usage: `
              snapshot specifies the path the snapshot key writes the
              rendered frame to as PNG.`,
			defaultVal: "tessera.png",
			flagsets:   []*pflag.FlagSet{viewCmd.Flags()},
		},
		{
			name: "scale",
			usage: `
              scale multiplies the window size. Content is still rendered
              at the viewport resolution.`,
			defaultVal: 1.,
			flagsets:   []*pflag.FlagSet{viewCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("TESSERA")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(viewCmd)
}

// FileConfig mirrors the keys a TOML configuration file may set. Keys
// are lowercase, matching the flag names.
type FileConfig struct {
	Columns  int
	Rows     int
	TileSize float64
	Width    int
	Height   int
	File     string
	Title    string
	Snapshot string
	Scale    float64
	LogLevel string
}

// setConfig finds and reads in the configuration file, if there is one.
// File values sit below flags and environment variables in precedence,
// so only keys the file actually defines are applied.
func setConfig() error {
	cfgpath := Cfg.GetString("config")
	if cfgpath == "" {
		return nil
	}
	f, err := os.Open(os.ExpandEnv(cfgpath))
	if err != nil {
		return fmt.Errorf("tessera: problem reading configuration file: %v", err)
	}
	defer f.Close()
	var c FileConfig
	md, err := toml.DecodeReader(f, &c)
	if err != nil {
		return fmt.Errorf("tessera: problem parsing configuration file: %v", err)
	}
	for key, val := range map[string]interface{}{
		"columns":  c.Columns,
		"rows":     c.Rows,
		"tilesize": c.TileSize,
		"width":    c.Width,
		"height":   c.Height,
		"file":     c.File,
		"title":    c.Title,
		"snapshot": c.Snapshot,
		"scale":    c.Scale,
		"loglevel": c.LogLevel,
	} {
		if md.IsDefined(key) {
			Cfg.SetDefault(key, val)
		}
	}
	return nil
}

// setLogLevel applies the configured logging threshold.
func setLogLevel() error {
	level, err := logrus.ParseLevel(Cfg.GetString("loglevel"))
	if err != nil {
		return fmt.Errorf("tessera: problem parsing log level: %v", err)
	}
	logrus.SetLevel(level)
	return nil
}

// ViewerConfig assembles the scene and window configuration from cfg.
func ViewerConfig(cfg *viper.Viper) (tessera.Config, viewer.Config) {
	vp := tessera.Viewport{
		Width:  cast.ToFloat64(cfg.Get("width")),
		Height: cast.ToFloat64(cfg.Get("height")),
	}
	// The surface is sized from the viewport before the scene applies
	// its own defaults, so guard it here too.
	if vp.Width <= 0 || vp.Height <= 0 {
		vp = tessera.DefaultViewport
	}
	sc := tessera.Config{
		Columns:  cast.ToInt(cfg.Get("columns")),
		Rows:     cast.ToInt(cfg.Get("rows")),
		TileSize: cast.ToFloat64(cfg.Get("tilesize")),
		Viewport: vp,
	}
	vc := viewer.Config{
		Title:    cast.ToString(cfg.Get("title")),
		File:     os.ExpandEnv(cast.ToString(cfg.Get("file"))),
		Snapshot: os.ExpandEnv(cast.ToString(cfg.Get("snapshot"))),
		Scale:    cast.ToFloat64(cfg.Get("scale")),
	}
	return sc, vc
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "tessera",
	Short: "A polygon mosaic grid viewer.",
	Long: `tessera renders colored polygons from delimited text files onto a
logical grid of square cells. Use the subcommands specified below to access
the functionality.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'TESSERA_var' where 'var'
is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error {
		if err := setConfig(); err != nil {
			return err
		}
		return setLogLevel()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of tessera.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("tessera v%s\n", tessera.Version)
	},
	DisableAutoGenTag: true,
}

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive grid window.",
	Long: `view opens a window showing the logical grid and the polygons loaded
over it. Grid changes, loads, panning and zooming all happen in the window;
the flags below only choose the starting state.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sceneCfg, viewerCfg := ViewerConfig(Cfg)
		surf := raster.New(sceneCfg.Viewport)
		scene, err := tessera.NewScene(sceneCfg, surf)
		if err != nil {
			return err
		}
		if viewerCfg.File != "" {
			if err := loadStartupFile(scene, viewerCfg.File); err != nil {
				return err
			}
		}
		return viewer.New(scene, surf, viewerCfg).Run()
	},
	DisableAutoGenTag: true,
}

// loadStartupFile fills the scene from the configured polygon file
// before the window opens.
func loadStartupFile(scene *tessera.Scene, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("tessera: opening polygon file: %v", err)
	}
	defer f.Close()
	_, err = scene.LoadReplace(f)
	return err
}
