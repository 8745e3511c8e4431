package sizes

// Request describes the graph being sized and any caller overrides.
type Request struct {
	VertexCount int
	EdgeCount   int

	VertexSize      *Override
	VertexLineWidth *Override
	EdgeLineWidth   *Override
	FontScale       *float64
}

// Sizes holds per-element sizes ready for layout and drawing.
type Sizes struct {
	VertexSize      []float64 `json:"vertex_size"`
	VertexLineWidth []float64 `json:"vertex_line_width"`
	EdgeLineWidth   []float64 `json:"edge_line_width"`
	FontSize        float64   `json:"font_size"`
}

// Construct computes defaults from the graph dimensions and applies the
// request's overrides.
func Construct(r Request) Sizes {
	font := FontSize(r.VertexCount)
	if r.FontScale != nil {
		font *= *r.FontScale
	}
	return Sizes{
		VertexSize:      Fill(r.VertexSize, VertexSize(r.VertexCount), r.VertexCount),
		VertexLineWidth: Fill(r.VertexLineWidth, VertexLineWidth(r.VertexCount), r.VertexCount),
		EdgeLineWidth:   Fill(r.EdgeLineWidth, EdgeLineWidth(r.EdgeCount), r.EdgeCount),
		FontSize:        font,
	}
}
