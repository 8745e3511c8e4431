package layout

import (
	"github.com/jbeda/geom"

	"github.com/matzehuels/hullviz/pkg/geometry"
)

// DefaultRadiusIncrement is the fraction of a vertex's size added to its
// effective radius each time an edge containing it is laid out.
const DefaultRadiusIncrement = 0.3

// Input describes one layout problem.
type Input struct {
	VertexCount     int
	Edges           [][]int
	Positions       []geometry.Point
	VertexSizes     []float64
	RadiusIncrement float64
}

// Line is a straight outline segment.
type Line struct {
	Start geometry.Point `json:"start"`
	End   geometry.Point `json:"end"`
}

// Arc is a circular outline cap. Theta1 and Theta2 are in degrees, measured
// counter-clockwise from the positive X axis; the arc runs from Theta1 to
// Theta2.
type Arc struct {
	Center geometry.Point `json:"center"`
	Theta1 float64        `json:"theta1"`
	Theta2 float64        `json:"theta2"`
	Radius float64        `json:"radius"`
}

// IsFullCircle reports whether the arc spans a whole turn.
func (a Arc) IsFullCircle() bool {
	return a.Theta1 == 0 && a.Theta2 == 360
}

// Hull records the outline loop of one multi-vertex edge.
type Hull struct {
	// Edge is the index of the edge in Input.Edges.
	Edge int `json:"edge"`
	// Boundary holds edge-local member positions (indices into
	// Input.Edges[Edge]), closed by repeating the first entry.
	Boundary []int `json:"boundary"`
}

// Vertices maps the boundary to global vertex indices, without the closing
// repeat.
func (h Hull) Vertices(edge []int) []int {
	if len(h.Boundary) == 0 {
		return nil
	}
	out := make([]int, len(h.Boundary)-1)
	for i, local := range h.Boundary[:len(h.Boundary)-1] {
		out[i] = edge[local]
	}
	return out
}

// Result is the outline geometry for every edge.
type Result struct {
	// Lines and Arcs are indexed like Input.Edges.
	Lines [][]Line `json:"lines"`
	Arcs  [][]Arc  `json:"arcs"`

	// Hulls lists the loops of edges with three or more vertices in the
	// order they were laid out.
	Hulls []Hull `json:"hulls"`

	// Radii is the radius table after every edge has been laid out.
	Radii []float64 `json:"radii"`

	// Order is the sequence in which edges were laid out.
	Order []int `json:"order"`
}

// Bounds returns the smallest rectangle containing every line and arc
// circle. ok is false when the result holds no geometry.
func (r *Result) Bounds() (b geom.Rect, ok bool) {
	add := func(x geom.Rect) {
		if !ok {
			b, ok = x, true
			return
		}
		b.ExpandToContainRect(x)
	}
	for _, lines := range r.Lines {
		for _, l := range lines {
			add(geometry.LineBounds(l.Start, l.End))
		}
	}
	for _, arcs := range r.Arcs {
		for _, a := range arcs {
			add(geometry.CircleBounds(a.Center, a.Radius))
		}
	}
	return b, ok
}
