// Package pipeline runs the hull layout end to end for the CLI and the HTTP
// server.
//
// A run takes a [hypergraph.Document], fills in whatever drawing inputs the
// document leaves out, and lays it out:
//
//  1. Positions: seeded random placement when the document has none
//  2. Sizes: count-based defaults scaled by any overrides
//  3. Layout: the hull layout engine, behind a content-addressed cache
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Layout(ctx, doc, pipeline.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	hypergraph.WriteLayoutFile(res.Layout, "out.layout.json")
//
// The cache key covers the filled-in document and every option that changes
// the result, so equal requests hit the cache regardless of which entry
// point made them.
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/hullviz/pkg/cache"
	"github.com/matzehuels/hullviz/pkg/errors"
	"github.com/matzehuels/hullviz/pkg/hypergraph"
	"github.com/matzehuels/hullviz/pkg/layout"
	"github.com/matzehuels/hullviz/pkg/sizes"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultRadiusIncrement is the per-edge inflation factor.
	DefaultRadiusIncrement = layout.DefaultRadiusIncrement

	// DefaultSeed seeds initial positions for documents without them.
	DefaultSeed = uint64(42)

	// DefaultScale is the half-width of the square initial positions are
	// drawn from.
	DefaultScale = 1.0

	// MaxVertices bounds the vertex count accepted by the pipeline.
	MaxVertices = 100_000

	// MaxEdges bounds the edge count accepted by the pipeline.
	MaxEdges = 100_000
)

// validate is the shared validator instance; it caches struct metadata.
var validate = validator.New()

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures one layout run. It supports JSON for API requests and
// TOML for the CLI config file.
type Options struct {
	// RadiusIncrement is nil for the default. Zero is a valid value that
	// disables inflation.
	RadiusIncrement *float64 `json:"radius_increment,omitempty" toml:"radius_increment" validate:"omitempty,gte=0,lte=10"`

	// Seed, Scale and Center control generated positions. Seed is nil for
	// the default; zero is a valid seed.
	Seed   *uint64    `json:"seed,omitempty" toml:"seed"`
	Scale  float64    `json:"scale,omitempty" toml:"scale" validate:"gte=0,lte=1e9"`
	Center [2]float64 `json:"center,omitempty" toml:"center"`

	// Size overrides scale the count-based defaults.
	VertexSize      *sizes.Override `json:"vertex_size,omitempty" toml:"vertex_size"`
	VertexLineWidth *sizes.Override `json:"vertex_line_width,omitempty" toml:"vertex_line_width"`
	EdgeLineWidth   *sizes.Override `json:"edge_line_width,omitempty" toml:"edge_line_width"`
	FontScale       *float64        `json:"font_scale,omitempty" toml:"font_scale" validate:"omitempty,gt=0"`

	// Refresh bypasses the cache lookup; the result is still stored.
	Refresh bool `json:"refresh,omitempty" toml:"-"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" toml:"-" validate:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the input with positions and vertex sizes filled in.
	Document *hypergraph.Document

	// InputHash is the content hash of Document.
	InputHash string

	// Layout is the renderer exchange format.
	Layout hypergraph.Layout

	// Stats contains timing and size information.
	Stats Stats

	// CacheHit reports whether Layout came from the cache.
	CacheHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	VertexCount        int
	EdgeCount          int
	HullCount          int
	GeneratedPositions bool
	LayoutTime         time.Duration
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills unset fields. It is idempotent.
func (o *Options) SetDefaults() {
	if o.RadiusIncrement == nil {
		inc := DefaultRadiusIncrement
		o.RadiusIncrement = &inc
	}
	if o.Seed == nil {
		seed := DefaultSeed
		o.Seed = &seed
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks option ranges. Call SetDefaults first.
func (o *Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// Increment returns the radius increment, or the default when unset.
func (o *Options) Increment() float64 {
	if o.RadiusIncrement == nil {
		return DefaultRadiusIncrement
	}
	return *o.RadiusIncrement
}

// PositionSeed returns the seed for generated positions, or the default
// when unset.
func (o *Options) PositionSeed() uint64 {
	if o.Seed == nil {
		return DefaultSeed
	}
	return *o.Seed
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts(sizesHash string) cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		RadiusIncrement: o.Increment(),
		Seed:            o.PositionSeed(),
		SizesHash:       sizesHash,
	}
}

// ValidateDocument checks a document against the pipeline's size limits
// and structural rules.
func ValidateDocument(doc *hypergraph.Document) error {
	if doc == nil {
		return errors.New(errors.ErrCodeInvalidInput, "document is required")
	}
	if doc.VertexCount > MaxVertices {
		return errors.New(errors.ErrCodeInvalidInput, "vertex count %d exceeds limit %d", doc.VertexCount, MaxVertices)
	}
	if len(doc.Edges) > MaxEdges {
		return errors.New(errors.ErrCodeInvalidInput, "edge count %d exceeds limit %d", len(doc.Edges), MaxEdges)
	}
	return doc.Validate()
}

// formatValidationError converts the first validator failure into an
// INVALID_INPUT error naming the field.
func formatValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
	}

	e := verrs[0]
	field := e.Namespace()
	switch e.Tag() {
	case "gte":
		return errors.New(errors.ErrCodeInvalidInput, "%s: must be at least %s", field, e.Param())
	case "gt":
		return errors.New(errors.ErrCodeInvalidInput, "%s: must be greater than %s", field, e.Param())
	case "lte":
		return errors.New(errors.ErrCodeInvalidInput, "%s: must not exceed %s", field, e.Param())
	default:
		return errors.New(errors.ErrCodeInvalidInput, "%s: validation failed (%s)", field, e.Tag())
	}
}

// describe renders options for debug logs.
func (o *Options) describe() string {
	return fmt.Sprintf("increment=%g seed=%d scale=%g", o.Increment(), o.PositionSeed(), o.Scale)
}
