package layout

import (
	"math"
	"slices"

	"github.com/matzehuels/hullviz/pkg/errors"
	"github.com/matzehuels/hullviz/pkg/geometry"
	"github.com/matzehuels/hullviz/pkg/hull"
)

// Compute lays out every edge of in and returns the outline geometry.
//
// Invalid input is rejected with an INVALID_* coded error before any work is
// done; see [Validate]. Geometric degeneracies (coincident or collinear
// members) never fail: coincident tangent ends collapse to a stable angle and
// collinear hulls fall back to input order. Coordinates so far apart that
// their differences overflow yield a NUMERIC error instead of NaN geometry.
func Compute(in Input) (*Result, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}

	e := newEngine(in)
	res := &Result{
		Lines: make([][]Line, len(in.Edges)),
		Arcs:  make([][]Arc, len(in.Edges)),
		Hulls: []Hull{},
		Order: processingOrder(in.Edges),
	}

	for _, ei := range res.Order {
		edge := in.Edges[ei]
		if len(edge) == 1 {
			res.Lines[ei] = []Line{}
			res.Arcs[ei] = []Arc{e.circle(edge[0])}
			e.grow(edge)
			continue
		}

		boundary := e.boundary(edge)
		loop := hull.Closed(boundary)
		res.Lines[ei], res.Arcs[ei] = e.outline(edge, loop)
		e.grow(edge)

		if len(edge) >= 3 {
			res.Hulls = append(res.Hulls, Hull{Edge: ei, Boundary: loop})
		}
	}

	if err := checkFinite(res); err != nil {
		return nil, err
	}
	res.Radii = e.radii
	return res, nil
}

// checkFinite rejects results carrying NaN or infinite coordinates, angles
// or radii.
func checkFinite(res *Result) error {
	finite := func(vs ...float64) bool {
		for _, v := range vs {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
		return true
	}
	for ei := range res.Lines {
		for _, l := range res.Lines[ei] {
			if !finite(l.Start.X, l.Start.Y, l.End.X, l.End.Y) {
				return errors.New(errors.ErrCodeNumeric, "edge %d: tangent line is not finite", ei)
			}
		}
		for _, a := range res.Arcs[ei] {
			if !finite(a.Center.X, a.Center.Y, a.Theta1, a.Theta2, a.Radius) {
				return errors.New(errors.ErrCodeNumeric, "edge %d: arc is not finite", ei)
			}
		}
	}
	return nil
}

// Validate checks the preconditions of [Compute].
func Validate(in Input) error {
	if in.VertexCount <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "vertex count must be positive, got %d", in.VertexCount)
	}
	if len(in.Positions) != in.VertexCount {
		return errors.New(errors.ErrCodeInvalidPosition,
			"got %d positions for %d vertices", len(in.Positions), in.VertexCount)
	}
	if len(in.VertexSizes) != in.VertexCount {
		return errors.New(errors.ErrCodeInvalidRadius,
			"got %d vertex sizes for %d vertices", len(in.VertexSizes), in.VertexCount)
	}
	for i, p := range in.Positions {
		if err := errors.ValidateCoordinate(i, p.X, p.Y); err != nil {
			return err
		}
	}
	if err := errors.ValidateRadii("vertex size", in.VertexSizes); err != nil {
		return err
	}
	if err := errors.ValidateIncrement(in.RadiusIncrement); err != nil {
		return err
	}
	for i, edge := range in.Edges {
		if err := errors.ValidateEdge(i, edge, in.VertexCount); err != nil {
			return err
		}
	}
	return nil
}

// processingOrder returns edge indices sorted by ascending cardinality,
// ties kept in input order.
func processingOrder(edges [][]int) []int {
	order := make([]int, len(edges))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return len(edges[a]) - len(edges[b])
	})
	return order
}

// engine owns the per-call radius table.
type engine struct {
	positions []geometry.Point
	radii     []float64
	increment []float64
}

func newEngine(in Input) *engine {
	e := &engine{
		positions: in.Positions,
		radii:     make([]float64, in.VertexCount),
		increment: make([]float64, in.VertexCount),
	}
	for v, size := range in.VertexSizes {
		e.increment[v] = size * in.RadiusIncrement
		e.radii[v] = size + e.increment[v]
	}
	return e
}

func (e *engine) circle(v int) Arc {
	return Arc{Center: e.positions[v], Theta1: 0, Theta2: 360, Radius: e.radii[v]}
}

// grow inflates every member of edge once.
func (e *engine) grow(edge []int) {
	for _, v := range edge {
		e.radii[v] += e.increment[v]
	}
}

// boundary returns the edge-local indices of the outline loop, unclosed.
func (e *engine) boundary(edge []int) []int {
	if len(edge) == 2 {
		return []int{0, 1}
	}

	pts := make([]geometry.Point, len(edge))
	for i, v := range edge {
		pts[i] = e.positions[v]
	}
	if b := hull.Indices(pts); !hull.Degenerate(b) {
		return b
	}

	fallback := make([]int, len(edge))
	for i := range fallback {
		fallback[i] = i
	}
	return fallback
}

// outline walks a closed loop of edge-local indices and returns one tangent
// line per side and one cap per loop vertex.
func (e *engine) outline(edge, loop []int) ([]Line, []Arc) {
	n := len(loop) - 1
	lines := make([]Line, 0, n)
	thetas := make([]float64, 0, n)

	for i := 0; i < n; i++ {
		v1, v2 := edge[loop[i]], edge[loop[i+1]]
		r1, r2 := e.radii[v1], e.radii[v2]
		p1, p2 := e.positions[v1], e.positions[v2]

		dp := p2.Minus(p1)
		beta := geometry.RadianFromAtan(dp.X, dp.Y)
		alpha := geometry.CommonTangentRadian(r1, r2, geometry.VectorLength(dp))
		theta := beta - alpha

		lines = append(lines, Line{
			Start: geometry.PolarPosition(r1, theta, p1),
			End:   geometry.PolarPosition(r2, theta, p2),
		})
		thetas = append(thetas, theta)
	}

	arcs := make([]Arc, 0, n)
	for i := 0; i < n; i++ {
		prev := thetas[(i+n-1)%n]
		v := edge[loop[i]]
		arcs = append(arcs, Arc{
			Center: e.positions[v],
			Theta1: geometry.RadToDeg(prev),
			Theta2: geometry.RadToDeg(thetas[i]),
			Radius: e.radii[v],
		})
	}
	return lines, arcs
}
