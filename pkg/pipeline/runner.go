package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hullviz/pkg/cache"
	"github.com/matzehuels/hullviz/pkg/errors"
	"github.com/matzehuels/hullviz/pkg/hypergraph"
	"github.com/matzehuels/hullviz/pkg/observability"
)

// cacheKeyType labels layout entries in cache hooks.
const cacheKeyType = "layout"

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL is how long computed layouts stay cached. Zero means
	// cache.TTLLayout.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Layout validates doc, fills in missing drawing inputs and lays it out,
// consulting the cache first unless opts.Refresh is set.
//
// Cache failures are logged and never fail the run.
func (r *Runner) Layout(ctx context.Context, doc *hypergraph.Document, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateDocument(doc); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeTimeout, err, "layout canceled")
	}

	prepared, sz, generated := Prepare(doc, opts)
	input, err := hypergraph.MarshalDocument(prepared)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Document:  prepared,
		InputHash: cache.Hash(input),
		Stats: Stats{
			VertexCount:        prepared.VertexCount,
			EdgeCount:          len(prepared.Edges),
			GeneratedPositions: generated,
		},
	}
	key := r.Keyer.LayoutKey(result.InputHash, opts.LayoutKeyOpts(sizesHash(sz)))
	opts.Logger.Debug("layout request", "key", key, "options", opts.describe(), "generated_positions", generated)

	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		switch {
		case err != nil:
			opts.Logger.Warn("cache lookup failed", "error", err)
		case hit:
			if cached, err := hypergraph.UnmarshalLayout(data); err == nil {
				observability.Cache().OnCacheHit(ctx, cacheKeyType)
				result.Layout = cached
				result.CacheHit = true
				result.Stats.HullCount = len(cached.Hulls)
				opts.Logger.Debug("layout cache hit", "key", key)
				return result, nil
			}
			opts.Logger.Warn("discarding unreadable cache entry", "key", key)
		}
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
	}

	done := observability.StartLayout(ctx, result.Stats.VertexCount, result.Stats.EdgeCount)
	start := time.Now()
	l, err := GenerateLayout(prepared, sz, opts.Increment())
	done(err)
	if err != nil {
		return nil, err
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(start)
	result.Stats.HullCount = len(l.Hulls)

	opts.Logger.Info("computed layout",
		"vertices", result.Stats.VertexCount,
		"edges", result.Stats.EdgeCount,
		"hulls", result.Stats.HullCount,
		"duration", result.Stats.LayoutTime)

	data, err := hypergraph.MarshalLayout(l)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNumeric, err, "encode layout")
	}
	if err := r.Cache.Set(ctx, key, data, r.ttl()); err != nil {
		opts.Logger.Warn("cache store failed", "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, cacheKeyType, len(data))
	}
	return result, nil
}

func (r *Runner) ttl() time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return cache.TTLLayout
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
