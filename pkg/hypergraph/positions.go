package hypergraph

import (
	"math/rand/v2"

	"github.com/matzehuels/hullviz/pkg/geometry"
)

// NewRand returns a deterministic random source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// InitPositions places n vertices uniformly at random in the square
// [-scale, scale]² shifted by center. A nil rng uses a source seeded with 0.
func InitPositions(n int, center geometry.Point, scale float64, rng *rand.Rand) []geometry.Point {
	if rng == nil {
		rng = NewRand(0)
	}
	out := make([]geometry.Point, n)
	for i := range out {
		x := (rng.Float64()*2 - 1) * scale
		y := (rng.Float64()*2 - 1) * scale
		out[i] = geometry.Point{X: x, Y: y}.Plus(center)
	}
	return out
}
