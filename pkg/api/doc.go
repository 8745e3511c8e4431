// Package api serves the hull layout over HTTP.
//
// # Endpoints
//
//   - POST /v1/layout: lay out a hypergraph document
//   - GET /healthz: liveness probe
//   - GET /metrics: Prometheus metrics
//
// A layout request is a hypergraph document with an optional "options"
// object (see pipeline.Options):
//
//	{
//	  "vertex_count": 3,
//	  "edges": [[0, 1], [0, 1, 2]],
//	  "options": {"radius_increment": 0.3, "seed": 7}
//	}
//
// Every response carries an X-Request-ID header; error bodies repeat it:
//
//	{"code": "INVALID_EDGE", "message": "edge 0 is empty", "request_id": "..."}
//
// Invalid input maps to 400 and everything else to 500.
package api
