package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/matzehuels/hullviz/pkg/buildinfo"
	"github.com/matzehuels/hullviz/pkg/errors"
	"github.com/matzehuels/hullviz/pkg/hypergraph"
	"github.com/matzehuels/hullviz/pkg/pipeline"
)

// LayoutRequest is the body of POST /v1/layout.
type LayoutRequest struct {
	hypergraph.Document
	Options *pipeline.Options `json:"options,omitempty"`
}

// LayoutResponse is the body of a successful POST /v1/layout.
type LayoutResponse struct {
	RequestID string            `json:"request_id"`
	InputHash string            `json:"input_hash"`
	CacheHit  bool              `json:"cache_hit"`
	Stats     StatsResponse     `json:"stats"`
	Layout    hypergraph.Layout `json:"layout"`
}

// StatsResponse mirrors pipeline.Stats for JSON.
type StatsResponse struct {
	VertexCount        int     `json:"vertex_count"`
	EdgeCount          int     `json:"edge_count"`
	HullCount          int     `json:"hull_count"`
	GeneratedPositions bool    `json:"generated_positions"`
	LayoutSeconds      float64 `json:"layout_seconds"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code      errors.Code `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var req LayoutRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		s.fail(w, r, errors.New(errors.ErrCodeInvalidFormat, "decode request body: %v", err))
		return
	}

	opts := s.defaults
	if req.Options != nil {
		opts = mergeOptions(s.defaults, *req.Options)
	}
	opts.Logger = s.logger.With("request_id", reqID)

	res, err := s.runner.Layout(r.Context(), &req.Document, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	status := statusComputed
	if res.CacheHit {
		status = statusCached
	}
	s.metrics.RecordLayout(status, res.Stats.EdgeCount)

	err = writeJSON(w, http.StatusOK, LayoutResponse{
		RequestID: reqID,
		InputHash: res.InputHash,
		CacheHit:  res.CacheHit,
		Stats: StatsResponse{
			VertexCount:        res.Stats.VertexCount,
			EdgeCount:          res.Stats.EdgeCount,
			HullCount:          res.Stats.HullCount,
			GeneratedPositions: res.Stats.GeneratedPositions,
			LayoutSeconds:      res.Stats.LayoutTime.Seconds(),
		},
		Layout: res.Layout,
	})
	if err != nil {
		s.logger.Error("encode layout response", "request_id", reqID, "error", err)
	}
}

// fail maps err to a status code and writes the error body.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	reqID := RequestIDFromContext(r.Context())
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}

	httpStatus := statusFor(err)
	if httpStatus == http.StatusBadRequest || httpStatus == http.StatusUnprocessableEntity {
		s.metrics.RecordLayout(statusInvalid, 0)
		s.logger.Debug("rejected layout request", "request_id", reqID, "code", code, "error", err)
	} else {
		s.metrics.RecordLayout(statusError, 0)
		s.logger.Error("layout request failed", "request_id", reqID, "error", err)
	}

	writeJSON(w, httpStatus, ErrorResponse{
		Code:      code,
		Message:   errors.UserMessage(err),
		RequestID: reqID,
	})
}

// statusFor maps invalid-input codes to 400, unrepresentable geometry to
// 422, timeouts to 504 and everything else to 500.
func statusFor(err error) int {
	switch code := errors.GetCode(err); {
	case code.Invalid():
		return http.StatusBadRequest
	case code == errors.ErrCodeNumeric:
		return http.StatusUnprocessableEntity
	case code == errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

// mergeOptions overlays request options on server defaults field by field.
func mergeOptions(def, req pipeline.Options) pipeline.Options {
	out := req
	if out.RadiusIncrement == nil {
		out.RadiusIncrement = def.RadiusIncrement
	}
	if out.Seed == nil {
		out.Seed = def.Seed
	}
	if out.Scale == 0 {
		out.Scale = def.Scale
	}
	if out.Center == [2]float64{} {
		out.Center = def.Center
	}
	if out.VertexSize == nil {
		out.VertexSize = def.VertexSize
	}
	if out.VertexLineWidth == nil {
		out.VertexLineWidth = def.VertexLineWidth
	}
	if out.EdgeLineWidth == nil {
		out.EdgeLineWidth = def.EdgeLineWidth
	}
	if out.FontScale == nil {
		out.FontScale = def.FontScale
	}
	return out
}

// writeJSON encodes v before committing status, so an unencodable value
// becomes a 500 with an error body instead of an empty 200.
func writeJSON(w http.ResponseWriter, status int, v any) error {
	var buf bytes.Buffer
	err := json.NewEncoder(&buf).Encode(v)
	if err != nil {
		status = http.StatusInternalServerError
		buf.Reset()
		fmt.Fprintf(&buf, "{\"code\":%q,\"message\":\"encode response\"}\n", errors.ErrCodeInternal)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
	return err
}
