package hypergraph

import (
	"github.com/matzehuels/hullviz/pkg/errors"
	"github.com/matzehuels/hullviz/pkg/geometry"
)

// Document is a hypergraph together with optional drawing inputs. It is the
// on-disk input format and the body of API layout requests.
type Document struct {
	Hypergraph `yaml:",inline"`

	// Positions holds one [x, y] pair per vertex.
	Positions [][]float64 `json:"positions,omitempty" yaml:"positions,omitempty"`

	// VertexSizes holds one base radius per vertex.
	VertexSizes []float64 `json:"vertex_sizes,omitempty" yaml:"vertex_sizes,omitempty"`
}

// HasPositions reports whether the document carries vertex positions.
func (d *Document) HasPositions() bool { return len(d.Positions) > 0 }

// HasSizes reports whether the document carries vertex sizes.
func (d *Document) HasSizes() bool { return len(d.VertexSizes) > 0 }

// Validate checks the hypergraph and, when present, that positions and
// sizes cover every vertex.
func (d *Document) Validate() error {
	if err := d.Hypergraph.Validate(); err != nil {
		return err
	}
	if d.HasPositions() {
		if _, err := d.Points(); err != nil {
			return err
		}
	}
	if d.HasSizes() {
		if len(d.VertexSizes) != d.VertexCount {
			return errors.New(errors.ErrCodeInvalidRadius,
				"got %d vertex sizes for %d vertices", len(d.VertexSizes), d.VertexCount)
		}
		if err := errors.ValidateRadii("vertex size", d.VertexSizes); err != nil {
			return err
		}
	}
	return nil
}

// Points converts Positions to geometry points.
func (d *Document) Points() ([]geometry.Point, error) {
	if len(d.Positions) != d.VertexCount {
		return nil, errors.New(errors.ErrCodeInvalidPosition,
			"got %d positions for %d vertices", len(d.Positions), d.VertexCount)
	}
	pts := make([]geometry.Point, len(d.Positions))
	for i, p := range d.Positions {
		if len(p) != 2 {
			return nil, errors.New(errors.ErrCodeInvalidPosition, "position %d has %d components, want 2", i, len(p))
		}
		if err := errors.ValidateCoordinate(i, p[0], p[1]); err != nil {
			return nil, err
		}
		pts[i] = geometry.Point{X: p[0], Y: p[1]}
	}
	return pts, nil
}

// SetPoints replaces Positions with pts.
func (d *Document) SetPoints(pts []geometry.Point) {
	d.Positions = make([][]float64, len(pts))
	for i, p := range pts {
		d.Positions[i] = []float64{p.X, p.Y}
	}
}
