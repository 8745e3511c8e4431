package geometry

import (
	"math"

	"github.com/jbeda/geom"

	"github.com/matzehuels/hullviz/pkg/errors"
)

// Point is a 2D position or vector.
type Point = geom.Coord

// DefaultJitter is the denominator offset used by [SafeDiv] when callers have
// no better value.
const DefaultJitter = 1e-6

// VectorLength returns the Euclidean norm of v.
func VectorLength(v Point) float64 {
	return v.Magnitude()
}

// RadianFromAtan returns the direction of the vector (x, y) in [0, 2π).
// The zero vector maps to 3π/2.
func RadianFromAtan(x, y float64) float64 {
	if x == 0 {
		if y > 0 {
			return math.Pi / 2
		}
		return 3 * math.Pi / 2
	}
	if y == 0 {
		if x > 0 {
			return 0
		}
		return math.Pi
	}

	r := math.Atan(y / x)
	switch {
	case x > 0 && y > 0:
		return r
	case x > 0:
		return r + 2*math.Pi
	default:
		return r + math.Pi
	}
}

// CommonTangentRadian returns the angle between the center line of two
// circles (radii r1 and r2, center distance d) and the radius of the first
// circle that touches their external common tangent.
//
// Equal radii give π/2. A non-positive distance has no tangent and returns
// π/2 as well; the acos argument is clamped so that nearly touching circles
// whose radius difference exceeds d do not produce NaN.
func CommonTangentRadian(r1, r2, d float64) float64 {
	if d <= 0 {
		return math.Pi / 2
	}
	alpha := math.Acos(clamp(math.Abs(r1-r2)/d, -1, 1))
	if r1 > r2 {
		return alpha
	}
	return math.Pi - alpha
}

// PolarPosition returns origin moved by r along direction theta.
func PolarPosition(r, theta float64, origin Point) Point {
	return Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)}.Plus(origin)
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Direction returns the sign of d as +1, -1 or 0.
func Direction(d float64) float64 {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	default:
		return 0
	}
}

// SafeDiv divides each vector in a by the matching scalar in b offset by
// jitter, typically normalizing direction vectors by their lengths without
// dividing by zero.
func SafeDiv(a []Point, b []float64, jitter float64) ([]Point, error) {
	if len(a) != len(b) {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"safe div: %d vectors but %d divisors", len(a), len(b))
	}
	out := make([]Point, len(a))
	for i, v := range a {
		den := b[i] + jitter
		out[i] = Point{X: v.X / den, Y: v.Y / den}
	}
	return out, nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
