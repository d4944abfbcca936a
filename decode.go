package shapeframe

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"log/slog"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

var (
	errEmptyInput = errors.New("empty input")
	errNotImage   = errors.New("not an image")
)

// Decode reads all of r and decodes it. See DecodeBytes.
func Decode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &DecodeError{Format: "unknown", Err: err}
	}
	return DecodeBytes(data)
}

// DecodeBytes turns uploaded bytes into an image.
// The file type is sniffed from its magic bytes before decoding;
// PNG, JPEG, GIF, BMP, TIFF and WebP are supported.
// Every failure is returned as a *DecodeError.
func DecodeBytes(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, &DecodeError{Format: "unknown", Err: errEmptyInput}
	}

	format := "unknown"
	if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
		format = kind.Extension
	}
	if !filetype.IsImage(data) {
		return nil, &DecodeError{Format: format, Err: errNotImage}
	}

	img, name, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Format: format, Err: err}
	}
	if img.Bounds().Empty() {
		return nil, &DecodeError{Format: name, Err: ErrEmptyImage}
	}

	Logger().Debug("image decoded",
		slog.String("format", name),
		slog.Int("width", img.Bounds().Dx()),
		slog.Int("height", img.Bounds().Dy()))
	return img, nil
}
