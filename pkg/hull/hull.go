// Package hull computes 2D convex hulls as index sequences.
//
// The layout engine needs to know which of an edge's member vertices lie on
// the outline, not just where the outline is, so [Indices] returns positions
// into the caller's slice rather than copies of the points.
package hull

import (
	"slices"

	"github.com/matzehuels/hullviz/pkg/geometry"
)

// Indices returns the indices of points that form their convex hull, in
// counter-clockwise order starting from the lowest-leftmost point.
//
// Collinear points along a hull side are not part of the boundary. Inputs
// with fewer than three distinct, non-collinear points yield fewer than three
// indices; see [Degenerate]. Indices does not modify points.
func Indices(points []geometry.Point) []int {
	n := len(points)
	if n == 0 {
		return nil
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		pa, pb := points[a], points[b]
		switch {
		case pa.X < pb.X:
			return -1
		case pa.X > pb.X:
			return 1
		case pa.Y < pb.Y:
			return -1
		case pa.Y > pb.Y:
			return 1
		}
		return 0
	})
	order = dedupe(points, order)
	if len(order) < 3 {
		return order
	}

	lower := make([]int, 0, len(order))
	for _, i := range order {
		for len(lower) >= 2 && cross(points[lower[len(lower)-2]], points[lower[len(lower)-1]], points[i]) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, i)
	}

	upper := make([]int, 0, len(order))
	for k := len(order) - 1; k >= 0; k-- {
		i := order[k]
		for len(upper) >= 2 && cross(points[upper[len(upper)-2]], points[upper[len(upper)-1]], points[i]) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, i)
	}

	// Each chain ends where the other begins.
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

// Degenerate reports whether a hull has too few vertices to enclose an area.
func Degenerate(boundary []int) bool {
	return len(boundary) < 3
}

// Closed returns boundary with its first index appended, so consecutive
// pairs walk every side of the polygon exactly once.
func Closed(boundary []int) []int {
	if len(boundary) == 0 {
		return nil
	}
	loop := make([]int, len(boundary)+1)
	copy(loop, boundary)
	loop[len(boundary)] = boundary[0]
	return loop
}

// dedupe drops coincident points from a sorted index list, keeping the
// first occurrence.
func dedupe(points []geometry.Point, sorted []int) []int {
	out := sorted[:0]
	for k, i := range sorted {
		if k > 0 && points[i] == points[out[len(out)-1]] {
			continue
		}
		out = append(out, i)
	}
	return out
}

// cross returns the z component of (b-a) x (c-a); positive for a
// counter-clockwise turn.
func cross(a, b, c geometry.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
