package shapeframe

import (
	"fmt"
	"strings"
)

// Shape is one of the masks an image can be cut into.
//
// The set is closed: Circle, Square, Rectangle, Triangle and Star are the
// only implementations, and each one knows how to trace its own clip path.
type Shape interface {
	// Name returns the lowercase name used by ParseShape.
	Name() string

	appendClip(p *ClipPath, s Slot)
}

// Circle masks the image to the circle inscribed in the slot.
type Circle struct{}

// Square masks the image to the whole slot.
type Square struct{}

// Rectangle masks the image to a landscape band that is 80 units wider and
// 80 units shorter than the slot.
type Rectangle struct{}

// Triangle masks the image to an isosceles triangle with its apex at the
// top centre of the slot.
type Triangle struct{}

// Star masks the image to a point-up five-pointed star.
type Star struct{}

// Name implements Shape.
func (Circle) Name() string { return "circle" }

// Name implements Shape.
func (Square) Name() string { return "square" }

// Name implements Shape.
func (Rectangle) Name() string { return "rectangle" }

// Name implements Shape.
func (Triangle) Name() string { return "triangle" }

// Name implements Shape.
func (Star) Name() string { return "star" }

func (Circle) appendClip(p *ClipPath, s Slot) {
	cx, cy := s.Center()
	p.Arc(cx, cy, s.Size/2, 0, fullTurn)
	p.Close()
}

func (Square) appendClip(p *ClipPath, s Slot) {
	p.Rect(s.X, s.Y, s.Size, s.Size)
}

// rectangleInset is how far the rectangle band reaches past the slot
// horizontally and how far it is inset vertically.
const rectangleInset = 40

// appendClip traces the band. When s.Size <= 2*rectangleInset the height is
// zero or negative; the rectangle is traced anyway and the resulting
// region is degenerate (empty at exactly 80, a flipped band below it).
func (Rectangle) appendClip(p *ClipPath, s Slot) {
	p.Rect(s.X-rectangleInset, s.Y+rectangleInset, s.Size+2*rectangleInset, s.Size-2*rectangleInset)
}

func (Triangle) appendClip(p *ClipPath, s Slot) {
	cx, _ := s.Center()
	p.MoveTo(cx, s.Y)
	p.LineTo(s.X, s.Y+s.Size)
	p.LineTo(s.X+s.Size, s.Y+s.Size)
	p.Close()
}

func (Star) appendClip(p *ClipPath, s Slot) {
	cx, cy := s.Center()
	pts := StarPoints(cx, cy, s.Size/2, StarSpikes)
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
			continue
		}
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
}

// Shapes returns every shape in the order a picker presents them.
func Shapes() []Shape {
	return []Shape{Circle{}, Square{}, Rectangle{}, Triangle{}, Star{}}
}

// ParseShape returns the shape with the given name. Matching ignores case
// and surrounding whitespace.
func ParseShape(name string) (Shape, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, s := range Shapes() {
		if s.Name() == key {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}
