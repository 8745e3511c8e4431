package hypergraph

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/matzehuels/hullviz/pkg/geometry"
	"github.com/matzehuels/hullviz/pkg/layout"
	"github.com/matzehuels/hullviz/pkg/sizes"
)

// =============================================================================
// Layout - Renderer Exchange Format
// =============================================================================

// Layout is the serialization format handed to an external renderer. Points
// are [x, y] pairs and angles are in degrees.
type Layout struct {
	VertexCount int       `json:"vertex_count"`
	Edges       [][]int   `json:"edges"`
	Labels      []string  `json:"labels,omitempty"`
	Weights     []float64 `json:"weights,omitempty"`

	Positions       [][2]float64 `json:"positions"`
	RadiusIncrement float64      `json:"radius_increment"`
	Sizes           sizes.Sizes  `json:"sizes"`

	// Lines and Arcs are indexed like Edges.
	Lines [][]Segment `json:"lines"`
	Arcs  [][]Cap     `json:"arcs"`

	Hulls       []layout.Hull `json:"hulls"`
	Radii       []float64     `json:"radii"`
	Order       []int         `json:"order"`
	EdgeCenters [][2]float64  `json:"edge_centers,omitempty"`

	// Bounds is [min_x, min_y, max_x, max_y]; nil when there is no geometry.
	Bounds *[4]float64 `json:"bounds,omitempty"`
}

// Segment is a straight outline line.
type Segment struct {
	Start [2]float64 `json:"start"`
	End   [2]float64 `json:"end"`
}

// Cap is a circular outline arc.
type Cap struct {
	Center [2]float64 `json:"center"`
	Theta1 float64    `json:"theta1"`
	Theta2 float64    `json:"theta2"`
	Radius float64    `json:"radius"`
}

// NewLayout assembles the exchange format from a document, its layout
// result and the sizes used to compute it. The document must carry
// positions.
func NewLayout(doc *Document, res *layout.Result, sz sizes.Sizes, increment float64) (Layout, error) {
	pts, err := doc.Points()
	if err != nil {
		return Layout{}, err
	}

	l := Layout{
		VertexCount:     doc.VertexCount,
		Edges:           doc.Edges,
		Labels:          doc.Labels,
		Weights:         doc.Weights,
		Positions:       pairs(pts),
		RadiusIncrement: increment,
		Sizes:           sz,
		Lines:           make([][]Segment, len(res.Lines)),
		Arcs:            make([][]Cap, len(res.Arcs)),
		Hulls:           res.Hulls,
		Radii:           res.Radii,
		Order:           res.Order,
	}
	for i, lines := range res.Lines {
		l.Lines[i] = make([]Segment, len(lines))
		for j, s := range lines {
			l.Lines[i][j] = Segment{Start: pair(s.Start), End: pair(s.End)}
		}
	}
	for i, arcs := range res.Arcs {
		l.Arcs[i] = make([]Cap, len(arcs))
		for j, a := range arcs {
			l.Arcs[i][j] = Cap{Center: pair(a.Center), Theta1: a.Theta1, Theta2: a.Theta2, Radius: a.Radius}
		}
	}

	if len(doc.Edges) > 0 {
		centers, err := EdgeCenters(doc.IncidenceMatrix(), pts)
		if err != nil {
			return Layout{}, err
		}
		l.EdgeCenters = pairs(centers)
	}
	if b, ok := res.Bounds(); ok {
		l.Bounds = &[4]float64{b.Min.X, b.Min.Y, b.Max.X, b.Max.Y}
	}
	return l, nil
}

func pair(p geometry.Point) [2]float64 { return [2]float64{p.X, p.Y} }

func pairs(pts []geometry.Point) [][2]float64 {
	out := make([][2]float64, len(pts))
	for i, p := range pts {
		out[i] = pair(p)
	}
	return out
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}
	if len(l.Lines) != len(l.Edges) || len(l.Arcs) != len(l.Edges) {
		return Layout{}, fmt.Errorf("layout has %d edges but %d line and %d arc groups",
			len(l.Edges), len(l.Lines), len(l.Arcs))
	}
	return l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
