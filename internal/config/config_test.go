package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/shapeframe"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseOverrides(t *testing.T) {
	cfg, err := Parse([]byte(`
font = "latin-modern"

[frame]
width = 640
padding = 20

[style]
panel = "#fafafa"
border_width = 2
`))
	require.NoError(t, err)

	assert.Equal(t, shapeframe.FamilyLatinModern, cfg.Font)
	assert.Equal(t, shapeframe.Frame{Width: 640, Height: 500, Padding: 20}, cfg.Frame)
	assert.Equal(t, "#fafafa", cfg.Style.Panel)
	assert.Equal(t, 2.0, cfg.Style.BorderWidth)
	assert.Equal(t, "#111", cfg.Style.TitleColor)
	assert.Equal(t, 22.0, cfg.Style.LineHeight)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		invalid bool
	}{
		{"syntax", "font = ", false},
		{"unknown key", "colour = \"red\"", false},
		{"unknown font", `font = "comic"`, true},
		{"zero width", "[frame]\nwidth = 0", true},
		{"negative padding", "[frame]\npadding = -1", true},
		{"bad colour", "[style]\npanel = \"white\"", true},
		{"bad colour length", "[style]\nborder_color = \"#12345\"", true},
		{"negative line height", "[style]\nline_height = -4", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalid)
			} else {
				assert.NotErrorIs(t, err, ErrInvalid)
			}
		})
	}
}

func TestValidHex(t *testing.T) {
	for _, s := range []string{"#fff", "#ffff", "#ffffff", "#ffffff80", "000"} {
		assert.True(t, validHex(s), s)
	}
	for _, s := range []string{"", "#", "#ff", "#fffff", "#ggg", "red"} {
		assert.False(t, validHex(s), s)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.toml")
	require.NoError(t, os.WriteFile(path, []byte("[frame]\nheight = 600\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 600, cfg.Frame.Height)
	assert.Equal(t, 500, cfg.Frame.Width)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOptionsBuildCompositor(t *testing.T) {
	cfg := Default()
	cfg.Frame = shapeframe.Frame{Width: 300, Height: 320, Padding: 10}
	cfg.Style.Panel = "#eee"

	c, err := shapeframe.New(cfg.Options()...)
	require.NoError(t, err)
	assert.Equal(t, cfg.Frame, c.Frame())
	assert.Equal(t, "#eee", c.Style().Panel)
}
