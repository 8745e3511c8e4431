// Package layout computes padded "blob" outlines around hyperedges.
//
// Given vertex positions, vertex radii and a list of hyperedges, [Compute]
// produces for every edge a set of straight [Line] segments and circular
// [Arc] caps that together trace a rounded outline enclosing the edge's
// members. Drawing the result is left to the caller.
//
// # Edge Shapes
//
// Edges are handled by cardinality:
//
//   - One vertex: a full circle around the vertex.
//   - Two vertices: a capsule made of two tangent lines and two caps.
//   - Three or more: the convex hull of the members, with each hull side
//     replaced by the external tangent of its two end circles and each hull
//     vertex rounded by an arc.
//
// When the members of a larger edge are collinear their hull has no area; the
// members are then connected in input order as a closed loop instead.
//
// # Radius Inflation
//
// Every vertex carries an effective radius that starts at
// size*(1+increment) and grows by size*increment each time an edge containing
// the vertex is laid out. Edges are processed from smallest to largest
// (stable on input order), so larger edges wrap around the outlines of the
// smaller ones they share vertices with instead of crossing them. All members
// of an edge grow, including interior vertices that are not on its hull.
//
// # Concurrency
//
// Compute keeps its radius table local to the call. Independent calls may run
// concurrently.
package layout
