package shapeframe

// Option configures a Compositor during creation.
//
// Example:
//
//	// Reference frame: 500x500 canvas, Go fonts
//	comp, err := shapeframe.New()
//
//	// Wider canvas with Latin Modern text
//	comp, err := shapeframe.New(
//	    shapeframe.WithFrame(shapeframe.Frame{Width: 640, Height: 560, Padding: 30}),
//	    shapeframe.WithFontFamily(shapeframe.FamilyLatinModern),
//	)
type Option func(*options)

// options holds optional configuration for Compositor creation.
type options struct {
	frame  Frame
	style  Style
	family FontFamily
	fonts  *Fonts
}

// defaultOptions returns the reference frame configuration.
func defaultOptions() options {
	return options{
		frame:  DefaultFrame(),
		style:  DefaultStyle(),
		family: FamilyGo,
		fonts:  nil, // loaded from family in New
	}
}

// WithFrame sets the canvas size and padding.
func WithFrame(f Frame) Option {
	return func(o *options) {
		o.frame = f
	}
}

// WithStyle sets colours, border width and text metrics.
// Zero numeric fields and empty colours keep their defaults.
func WithStyle(s Style) Option {
	return func(o *options) {
		o.style = mergeStyle(o.style, s)
	}
}

// WithFontFamily selects a bundled font family. It is ignored when
// WithFonts is also given.
func WithFontFamily(f FontFamily) Option {
	return func(o *options) {
		o.family = f
	}
}

// WithFonts injects preloaded faces, for example faces loaded from a file
// with text.NewFontSourceFromFile.
func WithFonts(f *Fonts) Option {
	return func(o *options) {
		o.fonts = f
	}
}

func mergeStyle(base, override Style) Style {
	out := base
	if override.Panel != "" {
		out.Panel = override.Panel
	}
	if override.TitleColor != "" {
		out.TitleColor = override.TitleColor
	}
	if override.DescriptionColor != "" {
		out.DescriptionColor = override.DescriptionColor
	}
	if override.BorderColor != "" {
		out.BorderColor = override.BorderColor
	}
	if override.BorderWidth > 0 {
		out.BorderWidth = override.BorderWidth
	}
	if override.TitleSize > 0 {
		out.TitleSize = override.TitleSize
	}
	if override.DescriptionSize > 0 {
		out.DescriptionSize = override.DescriptionSize
	}
	if override.LineHeight > 0 {
		out.LineHeight = override.LineHeight
	}
	return out
}
