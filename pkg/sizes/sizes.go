// Package sizes derives default visual sizes from graph dimensions.
//
// Dense graphs get proportionally smaller markers: every default is a smooth,
// non-increasing function of the vertex or edge count. Callers can scale the
// defaults per element with [Fill] or all at once with [Construct].
package sizes

import "math"

// ArrowHeadScale is the arrow head width as a fraction of the edge line width.
const ArrowHeadScale = 0.015

// VertexSize returns the default vertex radius for n vertices.
func VertexSize(n int) float64 {
	return 1 / math.Sqrt(float64(n)+10) * 0.1
}

// VertexLineWidth returns the default vertex outline width for n vertices.
func VertexLineWidth(n int) float64 {
	return math.Exp(-float64(n) / 50)
}

// EdgeLineWidth returns the default edge outline width for m edges.
func EdgeLineWidth(m int) float64 {
	return math.Exp(-float64(m) / 120)
}

// FontSize returns the default label font size for n vertices.
func FontSize(n int) float64 {
	return 20 * math.Exp(-float64(n)/100)
}

// CLog returns the logarithm of n in base m.
func CLog(n, m float64) float64 {
	return math.Log(n) / math.Log(m)
}

// ArrowHeadWidth returns one arrow head width per edge. Without arrows every
// width is zero and edgeCount decides the length.
func ArrowHeadWidth(lineWidths []float64, show bool, edgeCount int) []float64 {
	if !show {
		return make([]float64, edgeCount)
	}
	out := make([]float64, len(lineWidths))
	for i, w := range lineWidths {
		out[i] = ArrowHeadScale * w
	}
	return out
}
