// Package hypergraph defines the hypergraph data model and its file formats.
//
// # Core Types
//
//   - [Hypergraph]: vertex count plus a list of hyperedges (vertex index sets)
//   - [Document]: a hypergraph with optional positions and vertex sizes, as
//     read from disk or received by the API
//   - [Layout]: the serialized outline geometry handed to a renderer
//
// # Documents
//
// Documents are JSON or YAML. Positions and sizes are optional; the pipeline
// fills in seeded random positions and count-based default sizes when they
// are missing.
//
//	{
//	  "vertex_count": 4,
//	  "edges": [[0, 1], [1, 2, 3], [0]],
//	  "positions": [[0, 0], [1, 0], [1, 1], [0, 1]]
//	}
//
// Common operations:
//
//	doc, _ := hypergraph.ReadFile("graph.yaml")  // File → Document
//	data, _ := hypergraph.MarshalDocument(doc)   // Document → canonical JSON
//	hypergraph.WriteLayoutFile(l, "out.json")    // Layout → File
//
// # Derived Data
//
// [Hypergraph.IncidenceMatrix] and [EdgeCenters] compute the vertex-edge
// incidence matrix and the mean member position of every edge, which
// renderers use to place edge labels.
package hypergraph
