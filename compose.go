package shapeframe

import (
	"fmt"
	"image"
	"log/slog"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/text/unicode/norm"
)

// Request is the input of one render.
// Image and Shape are required; Render panics if either is nil.
type Request struct {
	Image       image.Image
	Shape       Shape
	Title       string
	Description string
}

// FrameLayout is the geometry of one render. It depends only on the
// request text, the frame, the style and the fonts.
type FrameLayout struct {
	HasText bool
	Panel   Rect
	Slot    Slot

	// Title is the trimmed title; empty when there is none.
	Title  string
	TitleY float64

	// Lines is the wrapped description; nil when there is none.
	Lines            []Line
	DescriptionY     float64
	DescriptionWidth float64
	LineHeight       float64
}

// Compositor renders framed, shape-masked images.
// A Compositor is immutable after New and may be shared between goroutines;
// the gg.Context passed to Render must not be.
type Compositor struct {
	frame Frame
	style Style
	fonts *Fonts
}

// New creates a Compositor. Without options it renders the reference frame.
func New(opts ...Option) (*Compositor, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f := o.frame
	if f.Width <= 0 || f.Height <= 0 || f.Padding < 0 {
		return nil, fmt.Errorf("%w: %dx%d padding %g", ErrInvalidFrame, f.Width, f.Height, f.Padding)
	}

	fonts := o.fonts
	if fonts == nil {
		var err error
		fonts, err = LoadFonts(o.family, o.style.TitleSize, o.style.DescriptionSize)
		if err != nil {
			return nil, err
		}
	}

	return &Compositor{frame: f, style: o.style, fonts: fonts}, nil
}

// Frame returns the canvas configuration.
func (c *Compositor) Frame() Frame {
	return c.frame
}

// Style returns the resolved style.
func (c *Compositor) Style() Style {
	return c.style
}

// NewCanvas returns a transparent context sized to the frame.
func (c *Compositor) NewCanvas() *gg.Context {
	return gg.NewContext(c.frame.Width, c.frame.Height)
}

// Plan computes the layout of req without drawing anything.
func (c *Compositor) Plan(req Request) FrameLayout {
	title := cleanText(req.Title)
	desc := cleanText(req.Description)
	hasText := title != "" || desc != ""

	size := float64(PlainSlotSize)
	if hasText {
		size = TextSlotSize
	}
	w := float64(c.frame.Width)
	p := c.frame.Padding
	slot := Slot{X: (w - size) / 2, Y: p + slotTopGap, Size: size}

	l := FrameLayout{
		HasText:          hasText,
		Panel:            c.frame.Panel(),
		Slot:             slot,
		Title:            title,
		TitleY:           slot.Bottom() + titleOffset,
		DescriptionY:     slot.Bottom() + descriptionOffset,
		DescriptionWidth: w - 2*p - descriptionInset,
		LineHeight:       c.style.LineHeight,
	}
	if desc != "" {
		l.Lines = LayoutText(desc, l.DescriptionWidth, l.LineHeight, l.DescriptionY, c.MeasureDescription)
	}

	Logger().Debug("render plan",
		slog.Bool("has_text", hasText),
		slog.Float64("slot_x", slot.X),
		slog.Float64("slot_y", slot.Y),
		slog.Float64("slot_size", slot.Size),
		slog.Int("lines", len(l.Lines)))
	return l
}

// MeasureDescription returns the advance width of s in the description face.
func (c *Compositor) MeasureDescription(s string) float64 {
	return c.fonts.Description.Advance(s)
}

// Render draws the frame for req into dc and returns its layout.
// dc is expected to have the frame's dimensions (see NewCanvas).
func (c *Compositor) Render(dc *gg.Context, req Request) FrameLayout {
	l := c.Plan(req)
	clip := BuildClipPath(req.Shape, l.Slot)
	centerX := float64(c.frame.Width) / 2

	dc.ClearPath()
	dc.Clear()

	dc.SetHexColor(c.style.Panel)
	dc.DrawRectangle(l.Panel.Min.X, l.Panel.Min.Y, l.Panel.Width(), l.Panel.Height())
	_ = dc.Fill()

	drawClipped(dc, req.Image, clip, l.Slot)

	if l.Title != "" {
		dc.SetFont(c.fonts.Title)
		dc.SetHexColor(c.style.TitleColor)
		dc.DrawStringAnchored(l.Title, centerX, l.TitleY, 0.5, 0)
	}

	if len(l.Lines) > 0 {
		dc.SetFont(c.fonts.Description)
		dc.SetHexColor(c.style.DescriptionColor)
		for _, line := range l.Lines {
			dc.DrawStringAnchored(line.Text, centerX, line.Y, 0.5, 0)
		}
	}

	dc.SetHexColor(c.style.BorderColor)
	dc.SetLineWidth(c.style.BorderWidth)
	dc.DrawRectangle(l.Panel.Min.X, l.Panel.Min.Y, l.Panel.Width(), l.Panel.Height())
	_ = dc.Stroke()

	return l
}

// cleanText trims s and normalises it to NFC so that equal-looking input
// measures the same.
func cleanText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
