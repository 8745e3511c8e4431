// Package geometry provides the trigonometric primitives used by the hull
// layout engine.
//
// All functions are pure and operate on [Point] values, an alias for
// geom.Coord from github.com/jbeda/geom, so callers can combine results with
// that package's vector arithmetic (Plus, Minus, Times, Unit).
//
// # Angle Convention
//
// Angles are radians measured counter-clockwise from the positive X axis and
// normalized into [0, 2π). [RadianFromAtan] produces angles in this convention
// and [PolarPosition] consumes them, so a direction computed from a vector can
// be used directly to project a point along it:
//
//	beta := geometry.RadianFromAtan(dp.X, dp.Y)
//	p := geometry.PolarPosition(r, beta, origin)
//
// The zero vector has no direction; [RadianFromAtan] returns 3π/2 for it.
//
// # Common Tangents
//
// [CommonTangentRadian] gives the angular offset between the center line of
// two circles and the radius that touches their external common tangent.
// Subtracting it from the center-line direction yields the tangent point angle
// on the right-hand side of travel, which is the outside of a
// counter-clockwise loop.
package geometry
