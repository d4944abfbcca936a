package shapeframe

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"log/slog"

	"github.com/gogpu/gg"
)

// Export settings. The encoding is fixed.
const (
	ExportName    = "shaped-image.jpg"
	ExportMIME    = "image/jpeg"
	ExportQuality = 100
)

// Download is an encoded frame ready to be handed to the user.
type Download struct {
	Name string
	MIME string
	Data []byte
}

// Export encodes img as a maximum quality JPEG download.
// JPEG has no alpha channel: transparent pixels, such as the band outside
// the panel, come out black.
func Export(img image.Image) (*Download, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: ExportQuality}); err != nil {
		return nil, fmt.Errorf("shapeframe: encode %s: %w", ExportName, err)
	}
	return newDownload(buf.Bytes()), nil
}

// ExportCanvas encodes the current contents of dc. See Export.
func ExportCanvas(dc *gg.Context) (*Download, error) {
	if dc.Width() <= 0 || dc.Height() <= 0 {
		return nil, ErrEmptyImage
	}
	var buf bytes.Buffer
	if err := dc.EncodeJPEG(&buf, ExportQuality); err != nil {
		return nil, fmt.Errorf("shapeframe: encode %s: %w", ExportName, err)
	}
	return newDownload(buf.Bytes()), nil
}

func newDownload(data []byte) *Download {
	Logger().Debug("frame exported", slog.String("name", ExportName), slog.Int("bytes", len(data)))
	return &Download{Name: ExportName, MIME: ExportMIME, Data: data}
}
