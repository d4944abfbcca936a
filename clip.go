package shapeframe

import (
	"math"

	"github.com/gogpu/gg"
)

const fullTurn = 2 * math.Pi

// PathOp identifies a clip path command.
type PathOp uint8

// Clip path commands.
const (
	OpMoveTo PathOp = iota
	OpLineTo
	OpArc
	OpClose
)

func (op PathOp) String() string {
	switch op {
	case OpMoveTo:
		return "MoveTo"
	case OpLineTo:
		return "LineTo"
	case OpArc:
		return "Arc"
	case OpClose:
		return "Close"
	default:
		return "PathOp(?)"
	}
}

// PathCommand is a single clip path command.
// Point is the target of MoveTo and LineTo and the centre of Arc.
// Radius, Start and End are only used by Arc.
type PathCommand struct {
	Op     PathOp
	Point  gg.Point
	Radius float64
	Start  float64
	End    float64
}

// ClipPath is an ordered list of path commands outlining a mask region.
// The zero value is an empty path ready to use.
type ClipPath struct {
	cmds []PathCommand
}

// Slot is the square the source image is stretched into.
type Slot struct {
	X, Y float64
	Size float64
}

// Center returns the centre of the slot.
func (s Slot) Center() (x, y float64) {
	return s.X + s.Size/2, s.Y + s.Size/2
}

// Bottom returns the y coordinate of the lower slot edge.
func (s Slot) Bottom() float64 {
	return s.Y + s.Size
}

// Rect is an axis-aligned rectangle given by its corners.
type Rect struct {
	Min, Max gg.Point
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Contains reports whether o lies inside r, allowing tol of slack on every side.
func (r Rect) Contains(o Rect, tol float64) bool {
	return o.Min.X >= r.Min.X-tol && o.Min.Y >= r.Min.Y-tol &&
		o.Max.X <= r.Max.X+tol && o.Max.Y <= r.Max.Y+tol
}

// BuildClipPath traces the outline of shape for the given slot.
func BuildClipPath(shape Shape, slot Slot) *ClipPath {
	p := &ClipPath{}
	shape.appendClip(p, slot)
	return p
}

// MoveTo starts a new subpath at (x, y).
func (p *ClipPath) MoveTo(x, y float64) {
	p.cmds = append(p.cmds, PathCommand{Op: OpMoveTo, Point: gg.Pt(x, y)})
}

// LineTo adds a straight segment to (x, y).
func (p *ClipPath) LineTo(x, y float64) {
	p.cmds = append(p.cmds, PathCommand{Op: OpLineTo, Point: gg.Pt(x, y)})
}

// Arc adds a circular arc centred on (cx, cy) sweeping from start to end.
func (p *ClipPath) Arc(cx, cy, r, start, end float64) {
	p.cmds = append(p.cmds, PathCommand{Op: OpArc, Point: gg.Pt(cx, cy), Radius: r, Start: start, End: end})
}

// Close closes the current subpath.
func (p *ClipPath) Close() {
	p.cmds = append(p.cmds, PathCommand{Op: OpClose})
}

// Rect adds a closed rectangle subpath. Negative sizes are kept as given.
func (p *ClipPath) Rect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Len returns the number of commands.
func (p *ClipPath) Len() int {
	return len(p.cmds)
}

// Commands returns a copy of the commands.
func (p *ClipPath) Commands() []PathCommand {
	out := make([]PathCommand, len(p.cmds))
	copy(out, p.cmds)
	return out
}

// Bounds returns the exact bounding box of the path, including arc extrema.
// An empty path has a zero Rect.
func (p *ClipPath) Bounds() Rect {
	var (
		r     Rect
		first = true
	)
	add := func(pt gg.Point) {
		if first {
			r = Rect{Min: pt, Max: pt}
			first = false
			return
		}
		r.Min.X = math.Min(r.Min.X, pt.X)
		r.Min.Y = math.Min(r.Min.Y, pt.Y)
		r.Max.X = math.Max(r.Max.X, pt.X)
		r.Max.Y = math.Max(r.Max.Y, pt.Y)
	}
	for _, c := range p.cmds {
		switch c.Op {
		case OpMoveTo, OpLineTo:
			add(c.Point)
		case OpArc:
			for _, pt := range arcExtrema(c) {
				add(pt)
			}
		}
	}
	return r
}

// arcExtrema returns the arc endpoints plus every axis crossing inside the sweep.
func arcExtrema(c PathCommand) []gg.Point {
	start, end := c.Start, c.End
	for end < start {
		end += fullTurn
	}
	at := func(a float64) gg.Point {
		return gg.Pt(c.Point.X+c.Radius*math.Cos(a), c.Point.Y+c.Radius*math.Sin(a))
	}
	pts := []gg.Point{at(start), at(end)}
	k := math.Ceil(start / (math.Pi / 2))
	for a := k * math.Pi / 2; a <= end; a += math.Pi / 2 {
		pts = append(pts, at(a))
	}
	return pts
}

// Replay appends the path to the current path of dc.
func (p *ClipPath) Replay(dc *gg.Context) {
	for _, c := range p.cmds {
		switch c.Op {
		case OpMoveTo:
			dc.MoveTo(c.Point.X, c.Point.Y)
		case OpLineTo:
			dc.LineTo(c.Point.X, c.Point.Y)
		case OpArc:
			dc.MoveTo(c.Point.X+c.Radius*math.Cos(c.Start), c.Point.Y+c.Radius*math.Sin(c.Start))
			dc.DrawArc(c.Point.X, c.Point.Y, c.Radius, c.Start, c.End)
		case OpClose:
			dc.ClosePath()
		}
	}
}
