// Package config loads the frame configuration from TOML files.
//
// A configuration file overrides any subset of the reference frame:
//
//	font = "latin-modern"
//
//	[frame]
//	width = 640
//	height = 560
//	padding = 30
//
//	[style]
//	panel = "#fafafa"
//	border_width = 2
//
// Keys that are absent keep their defaults; unknown keys are an error.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/shapeframe"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid")

// Config is the on-disk form of the compositor options.
type Config struct {
	Font  shapeframe.FontFamily `toml:"font"`
	Frame shapeframe.Frame      `toml:"frame"`
	Style shapeframe.Style      `toml:"style"`
}

// Default returns the reference frame configuration.
func Default() Config {
	return Config{
		Font:  shapeframe.FamilyGo,
		Frame: shapeframe.DefaultFrame(),
		Style: shapeframe.DefaultStyle(),
	}
}

// Load reads and validates the file at path. A leading ~ is expanded to the
// user's home directory.
func Load(path string) (Config, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: expand %q: %w", path, err)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", expanded, err)
	}
	return cfg, nil
}

// Parse decodes TOML on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("config: %s", strict.String())
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first problem with c, wrapped in ErrInvalid.
func (c Config) Validate() error {
	if !slices.Contains(shapeframe.Families(), c.Font) {
		return fmt.Errorf("%w: font %q", ErrInvalid, c.Font)
	}
	if c.Frame.Width <= 0 || c.Frame.Height <= 0 {
		return fmt.Errorf("%w: frame %dx%d", ErrInvalid, c.Frame.Width, c.Frame.Height)
	}
	if c.Frame.Padding < 0 {
		return fmt.Errorf("%w: padding %g", ErrInvalid, c.Frame.Padding)
	}

	colors := []struct{ key, value string }{
		{"panel", c.Style.Panel},
		{"title_color", c.Style.TitleColor},
		{"description_color", c.Style.DescriptionColor},
		{"border_color", c.Style.BorderColor},
	}
	for _, col := range colors {
		if !validHex(col.value) {
			return fmt.Errorf("%w: %s %q is not a hex colour", ErrInvalid, col.key, col.value)
		}
	}

	metrics := []struct {
		key   string
		value float64
	}{
		{"border_width", c.Style.BorderWidth},
		{"title_size", c.Style.TitleSize},
		{"description_size", c.Style.DescriptionSize},
		{"line_height", c.Style.LineHeight},
	}
	for _, m := range metrics {
		if m.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalid, m.key, m.value)
		}
	}
	return nil
}

// Options converts c into compositor options.
func (c Config) Options() []shapeframe.Option {
	return []shapeframe.Option{
		shapeframe.WithFrame(c.Frame),
		shapeframe.WithStyle(c.Style),
		shapeframe.WithFontFamily(c.Font),
	}
}

// validHex accepts #rgb, #rgba, #rrggbb and #rrggbbaa.
func validHex(s string) bool {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	_, err := strconv.ParseUint(s, 16, 32)
	return err == nil
}
