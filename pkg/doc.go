// Package pkg provides the core libraries for hullviz, a hypergraph hull
// layout tool.
//
// # Overview
//
// Hullviz draws each hyperedge as a smooth outline around its member
// vertices: straight tangent segments joined by circular arcs, with vertices
// that belong to many edges wrapped in progressively larger rings so nested
// outlines stay apart. The pkg directory is organized into four areas:
//
//  1. Geometry - [geometry] primitives and the [hull] convex hull.
//  2. Layout - the [layout] engine and [sizes] policy helpers.
//  3. Data - the [hypergraph] model, document IO and layout exchange format.
//  4. Orchestration - [pipeline], [cache], [observability] and the HTTP [api].
//
// # Architecture
//
// The typical data flow:
//
//	JSON/YAML document
//	         ↓
//	    [hypergraph] package (parse + validate)
//	         ↓
//	    [pipeline] package (fill positions and sizes, cache lookup)
//	         ↓
//	    [layout] package (tangent lines, arcs, hull boundaries)
//	         ↓
//	    layout JSON
//
// # Quick Start
//
//	doc, _ := hypergraph.ReadFile("graph.yaml")
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, nil)
//	res, _ := runner.Layout(ctx, doc, pipeline.Options{})
//	_ = hypergraph.WriteLayoutFile(res.Layout, "graph.layout.json")
//
// Or use the engine directly:
//
//	res, _ := layout.Compute(layout.Input{
//	    VertexCount:     3,
//	    Edges:           [][]int{{0, 1, 2}},
//	    Positions:       pts,
//	    VertexSizes:     []float64{0.03, 0.03, 0.03},
//	    RadiusIncrement: layout.DefaultRadiusIncrement,
//	})
//
// # Testing
//
//	go test ./pkg/...                        # All tests
//	HULLVIZ_TEST_REDIS=localhost:6379 go test ./pkg/cache/
//
// [geometry]: https://pkg.go.dev/github.com/matzehuels/hullviz/pkg/geometry
// [hull]: https://pkg.go.dev/github.com/matzehuels/hullviz/pkg/hull
// [layout]: https://pkg.go.dev/github.com/matzehuels/hullviz/pkg/layout
// [sizes]: https://pkg.go.dev/github.com/matzehuels/hullviz/pkg/sizes
// [hypergraph]: https://pkg.go.dev/github.com/matzehuels/hullviz/pkg/hypergraph
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/hullviz/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/hullviz/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/hullviz/pkg/observability
// [api]: https://pkg.go.dev/github.com/matzehuels/hullviz/pkg/api
package pkg
