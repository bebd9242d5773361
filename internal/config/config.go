package config

import (
	"image/color"
	"log"
	"os"

	"github.com/BurntSushi/toml"

	"InkPad/internal/scene"
)

// DefaultFile is looked for in the working directory when no path is
// given on the command line.
const DefaultFile = "inkpad.toml"

// Config carries the user-tunable settings. Anything missing from the
// file keeps its default; a missing file is not an error.
type Config struct {
	WindowWidth  float32 `toml:"window_width"`
	WindowHeight float32 `toml:"window_height"`
	DefaultColor string  `toml:"default_color"`
	DefaultWidth float32 `toml:"default_width"`
	ExportDir    string  `toml:"export_dir"`
}

func Default() Config {
	return Config{
		WindowWidth:  1100,
		WindowHeight: 760,
		DefaultColor: "#000000",
		DefaultWidth: 3,
		ExportDir:    ".",
	}
}

// Load reads the file at path, or DefaultFile when path is empty. Any
// problem falls back to Default and is logged, never fatal.
func Load(path string) Config {
	if path == "" {
		path = DefaultFile
	}
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			log.Printf("[config] no %s, using defaults", path)
		} else {
			log.Printf("[config] %s: %v (using defaults)", path, err)
		}
		return Default()
	}
	cfg.sanitize()
	log.Printf("[config] loaded %s", path)
	return cfg
}

// Color returns the configured pen color, falling back to black when the
// hex value does not parse.
func (c Config) Color() color.NRGBA {
	col, err := scene.ParseHexColor(c.DefaultColor)
	if err != nil {
		log.Printf("[config] %v, using black", err)
		return color.NRGBA{A: 0xff}
	}
	return col
}

// sanitize pulls out-of-range values back to their defaults. The width
// range matches the toolbar slider.
func (c *Config) sanitize() {
	def := Default()
	if c.WindowWidth <= 0 {
		c.WindowWidth = def.WindowWidth
	}
	if c.WindowHeight <= 0 {
		c.WindowHeight = def.WindowHeight
	}
	if c.DefaultWidth < 1 || c.DefaultWidth > 50 {
		c.DefaultWidth = def.DefaultWidth
	}
	if c.ExportDir == "" {
		c.ExportDir = def.ExportDir
	}
	if c.DefaultColor == "" {
		c.DefaultColor = def.DefaultColor
	}
}
