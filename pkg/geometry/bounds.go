package geometry

import "github.com/jbeda/geom"

// LineBounds returns the bounding rectangle of the segment a-b.
func LineBounds(a, b Point) geom.Rect {
	r := geom.Rect{Min: a, Max: a}
	r.ExpandToContainCoord(b)
	return r
}

// CircleBounds returns the bounding rectangle of a full circle.
// Arcs are bounded by their whole circle, which is exact for the 0-360
// singleton caps and a safe over-approximation for partial caps.
func CircleBounds(center Point, radius float64) geom.Rect {
	d := Point{X: radius, Y: radius}
	return geom.Rect{Min: center.Minus(d), Max: center.Plus(d)}
}
