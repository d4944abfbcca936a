package shapeframe

import (
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"math"

	"github.com/anthonynsimon/bild/transform"
	"github.com/gogpu/gg"
)

// coverageMask exposes a gg.Mask as an image.Image for image/draw.
type coverageMask struct {
	m *gg.Mask
}

func (c coverageMask) ColorModel() color.Model { return color.AlphaModel }

func (c coverageMask) Bounds() image.Rectangle { return c.m.Bounds() }

func (c coverageMask) At(x, y int) color.Color { return color.Alpha{A: c.m.At(x, y)} }

// rasterizeClip fills the clip path on a scratch context of the given size
// and returns its anti-aliased coverage.
func rasterizeClip(p *ClipPath, width, height int) *gg.Mask {
	dc := gg.NewContext(width, height)
	defer func() { _ = dc.Close() }()
	p.Replay(dc)
	return dc.AsMask()
}

// slotRect snaps a slot to whole pixels.
func slotRect(s Slot) image.Rectangle {
	x0 := int(math.Round(s.X))
	y0 := int(math.Round(s.Y))
	x1 := int(math.Round(s.X + s.Size))
	y1 := int(math.Round(s.Y + s.Size))
	return image.Rect(x0, y0, x1, y1)
}

// drawClipped stretches img over the slot and composites it into dc through
// the coverage of clip. The part of the slot outside the canvas is dropped.
func drawClipped(dc *gg.Context, img image.Image, clip *ClipPath, s Slot) {
	dst := slotRect(s)
	visible := dst.Intersect(image.Rect(0, 0, dc.Width(), dc.Height()))
	if visible.Empty() {
		return
	}

	mask := coverageMask{m: rasterizeClip(clip, dc.Width(), dc.Height())}
	scaled := transform.Resize(img, dst.Dx(), dst.Dy(), transform.Linear)

	layer := image.NewNRGBA(image.Rect(0, 0, visible.Dx(), visible.Dy()))
	draw.DrawMask(layer, layer.Bounds(), scaled, visible.Min.Sub(dst.Min), mask, visible.Min, draw.Src)

	dc.DrawImage(gg.ImageBufFromImage(layer), float64(visible.Min.X), float64(visible.Min.Y))

	Logger().Debug("image composited",
		slog.Int("src_w", img.Bounds().Dx()),
		slog.Int("src_h", img.Bounds().Dy()),
		slog.String("visible", visible.String()))
}
