package pipeline

import (
	"encoding/json"

	"github.com/matzehuels/hullviz/pkg/cache"
	"github.com/matzehuels/hullviz/pkg/geometry"
	"github.com/matzehuels/hullviz/pkg/hypergraph"
	"github.com/matzehuels/hullviz/pkg/layout"
	"github.com/matzehuels/hullviz/pkg/sizes"
)

// =============================================================================
// Input Preparation
// =============================================================================

// Prepare returns a copy of doc with positions and vertex sizes filled in,
// along with the full size set. The caller's document is not modified.
//
// Documents that carry sizes keep them, scaled by opts.VertexSize. Documents
// without sizes get the count-based default.
func Prepare(doc *hypergraph.Document, opts Options) (*hypergraph.Document, sizes.Sizes, bool) {
	out := *doc
	generated := false

	if !doc.HasPositions() {
		center := geometry.Point{X: opts.Center[0], Y: opts.Center[1]}
		out.SetPoints(hypergraph.InitPositions(doc.VertexCount, center, opts.Scale, hypergraph.NewRand(opts.PositionSeed())))
		generated = true
	}

	sz := sizes.Construct(sizes.Request{
		VertexCount:     doc.VertexCount,
		EdgeCount:       len(doc.Edges),
		VertexSize:      opts.VertexSize,
		VertexLineWidth: opts.VertexLineWidth,
		EdgeLineWidth:   opts.EdgeLineWidth,
		FontScale:       opts.FontScale,
	})
	if doc.HasSizes() {
		factors := sizes.Fill(opts.VertexSize, 1, doc.VertexCount)
		sz.VertexSize = make([]float64, doc.VertexCount)
		for i, s := range doc.VertexSizes {
			sz.VertexSize[i] = s * factors[i]
		}
	}
	out.VertexSizes = sz.VertexSize

	return &out, sz, generated
}

// =============================================================================
// Layout Generation
// =============================================================================

// GenerateLayout runs the layout engine on a prepared document and builds
// the exchange format.
func GenerateLayout(doc *hypergraph.Document, sz sizes.Sizes, increment float64) (hypergraph.Layout, error) {
	pts, err := doc.Points()
	if err != nil {
		return hypergraph.Layout{}, err
	}

	res, err := layout.Compute(layout.Input{
		VertexCount:     doc.VertexCount,
		Edges:           doc.Edges,
		Positions:       pts,
		VertexSizes:     doc.VertexSizes,
		RadiusIncrement: increment,
	})
	if err != nil {
		return hypergraph.Layout{}, err
	}
	return hypergraph.NewLayout(doc, res, sz, increment)
}

// sizesHash fingerprints the drawing sizes that do not affect geometry but
// are carried in the layout output.
func sizesHash(sz sizes.Sizes) string {
	data, _ := json.Marshal(sz)
	return cache.Hash(data)
}
