package shapeframe

import (
	"fmt"

	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontFamily selects one of the bundled font families.
type FontFamily string

// Bundled font families.
const (
	// FamilyGo is the Go font family from golang.org/x/image.
	FamilyGo FontFamily = "go"
	// FamilyLatinModern is Latin Modern Roman 10.
	FamilyLatinModern FontFamily = "latin-modern"
)

// Families returns the bundled font families.
func Families() []FontFamily {
	return []FontFamily{FamilyGo, FamilyLatinModern}
}

// Fonts holds the faces used for the title and the description.
type Fonts struct {
	Title       text.Face
	Description text.Face
}

// LoadFonts creates the bold title face and the regular description face of
// a bundled family at the given sizes (in points, which equal pixels at the
// 72 DPI gg renders text at).
func LoadFonts(family FontFamily, titleSize, descriptionSize float64) (*Fonts, error) {
	var bold, regular []byte
	switch family {
	case FamilyGo, "":
		bold, regular = gobold.TTF, goregular.TTF
	case FamilyLatinModern:
		bold, regular = lmroman10bold.TTF, lmroman10regular.TTF
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFontFamily, family)
	}

	titleSrc, err := text.NewFontSource(bold)
	if err != nil {
		return nil, fmt.Errorf("shapeframe: load %s bold font: %w", family, err)
	}
	descSrc, err := text.NewFontSource(regular)
	if err != nil {
		return nil, fmt.Errorf("shapeframe: load %s regular font: %w", family, err)
	}
	return &Fonts{
		Title:       titleSrc.Face(titleSize),
		Description: descSrc.Face(descriptionSize),
	}, nil
}
