package shapeframe

import (
	"math"

	"github.com/gogpu/gg"
)

// StarSpikes is the number of points of the Star shape.
const StarSpikes = 5

// StarPoints returns the outline of a point-up star centred on (cx, cy).
//
// The first point is the explicit start (cx, cy-outerRadius). It is
// followed by 2*spikes vertices that alternate between outerRadius and
// outerRadius/2, walking clockwise from the top spike. The first vertex
// after the start coincides with it. Returns nil if spikes < 1.
func StarPoints(cx, cy, outerRadius float64, spikes int) []gg.Point {
	if spikes < 1 {
		return nil
	}
	inner := outerRadius / 2
	step := math.Pi / float64(spikes)
	rot := math.Pi / 2 * 3

	pts := make([]gg.Point, 0, 2*spikes+1)
	pts = append(pts, gg.Pt(cx, cy-outerRadius))
	for i := 0; i < spikes; i++ {
		pts = append(pts, gg.Pt(cx+math.Cos(rot)*outerRadius, cy+math.Sin(rot)*outerRadius))
		rot += step
		pts = append(pts, gg.Pt(cx+math.Cos(rot)*inner, cy+math.Sin(rot)*inner))
		rot += step
	}
	return pts
}
