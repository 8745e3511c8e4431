package hypergraph

import (
	"github.com/matzehuels/hullviz/pkg/errors"
	"github.com/matzehuels/hullviz/pkg/geometry"
)

// Hypergraph is a set of vertices 0..VertexCount-1 and hyperedges over them.
type Hypergraph struct {
	VertexCount int       `json:"vertex_count" yaml:"vertex_count"`
	Edges       [][]int   `json:"edges" yaml:"edges"`
	Weights     []float64 `json:"weights,omitempty" yaml:"weights,omitempty"`
	Labels      []string  `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// EdgeCount returns the number of hyperedges.
func (h *Hypergraph) EdgeCount() int { return len(h.Edges) }

// Validate checks structural constraints: a positive vertex count, edges
// that are non-empty with in-range unique indices, and weights and labels
// that match their element counts when present.
func (h *Hypergraph) Validate() error {
	if h.VertexCount <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "vertex count must be positive, got %d", h.VertexCount)
	}
	for i, e := range h.Edges {
		if err := errors.ValidateEdge(i, e, h.VertexCount); err != nil {
			return err
		}
	}
	if len(h.Weights) > 0 && len(h.Weights) != len(h.Edges) {
		return errors.New(errors.ErrCodeInvalidInput, "got %d weights for %d edges", len(h.Weights), len(h.Edges))
	}
	if len(h.Labels) > 0 && len(h.Labels) != h.VertexCount {
		return errors.New(errors.ErrCodeInvalidInput, "got %d labels for %d vertices", len(h.Labels), h.VertexCount)
	}
	return nil
}

// Degrees returns the number of edges each vertex belongs to.
func (h *Hypergraph) Degrees() []int {
	deg := make([]int, h.VertexCount)
	for _, e := range h.Edges {
		for _, v := range e {
			deg[v]++
		}
	}
	return deg
}

// IncidenceMatrix returns the VertexCount × EdgeCount matrix whose entry
// [v][e] is 1 when vertex v belongs to edge e.
func (h *Hypergraph) IncidenceMatrix() [][]float64 {
	m := make([][]float64, h.VertexCount)
	for v := range m {
		m[v] = make([]float64, len(h.Edges))
	}
	for e, edge := range h.Edges {
		for _, v := range edge {
			m[v][e] = 1
		}
	}
	return m
}

// EdgeCenters returns, for every column of the incidence matrix, the mean
// position of the vertices in that column. Columns without members yield
// NaN coordinates.
func EdgeCenters(incidence [][]float64, positions []geometry.Point) ([]geometry.Point, error) {
	if len(incidence) != len(positions) {
		return nil, errors.New(errors.ErrCodeInvalidPosition,
			"incidence matrix has %d rows for %d positions", len(incidence), len(positions))
	}
	if len(incidence) == 0 {
		return nil, nil
	}

	edges := len(incidence[0])
	sum := make([]geometry.Point, edges)
	weight := make([]float64, edges)
	for v, row := range incidence {
		if len(row) != edges {
			return nil, errors.New(errors.ErrCodeInvalidInput, "incidence row %d has %d columns, want %d", v, len(row), edges)
		}
		for e, w := range row {
			sum[e] = sum[e].Plus(positions[v].Times(w))
			weight[e] += w
		}
	}

	centers := make([]geometry.Point, edges)
	for e := range centers {
		centers[e] = geometry.Point{X: sum[e].X / weight[e], Y: sum[e].Y / weight[e]}
	}
	return centers, nil
}
