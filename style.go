package shapeframe

import "github.com/gogpu/gg"

// Layout constants of the frame. They are fixed; only the canvas size,
// padding and Style are configurable.
const (
	// TextSlotSize is the image slot size when a title or description is present.
	TextSlotSize = 270
	// PlainSlotSize is the image slot size when there is no text.
	PlainSlotSize = 420

	slotTopGap        = 10
	titleOffset       = 40
	descriptionOffset = 70
	descriptionInset  = 20
)

// Frame describes the canvas a frame is rendered on.
type Frame struct {
	Width   int     `toml:"width"`
	Height  int     `toml:"height"`
	Padding float64 `toml:"padding"`
}

// DefaultFrame returns a 500x500 canvas with a padding of 30.
func DefaultFrame() Frame {
	return Frame{Width: 500, Height: 500, Padding: 30}
}

// Panel returns the padded background rectangle.
func (f Frame) Panel() Rect {
	p := f.Padding
	return Rect{
		Min: gg.Pt(p, p),
		Max: gg.Pt(float64(f.Width)-p, float64(f.Height)-p),
	}
}

// Style holds the colours and text metrics of a frame.
// Colours are hex strings accepted by gg.Hex ("#rgb", "#rrggbb", ...).
type Style struct {
	Panel            string  `toml:"panel"`
	TitleColor       string  `toml:"title_color"`
	DescriptionColor string  `toml:"description_color"`
	BorderColor      string  `toml:"border_color"`
	BorderWidth      float64 `toml:"border_width"`
	TitleSize        float64 `toml:"title_size"`
	DescriptionSize  float64 `toml:"description_size"`
	LineHeight       float64 `toml:"line_height"`
}

// DefaultStyle returns the white panel, dark title, grey description and
// light grey 4 unit border of the reference frame.
func DefaultStyle() Style {
	return Style{
		Panel:            "#ffffff",
		TitleColor:       "#111",
		DescriptionColor: "#555",
		BorderColor:      "#dcdcdc",
		BorderWidth:      4,
		TitleSize:        20,
		DescriptionSize:  16,
		LineHeight:       22,
	}
}
