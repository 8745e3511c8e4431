// Package observability lets libraries report layout and cache events
// without importing a metrics backend.
//
// The pipeline reports through [Pipeline] and [Cache]. Both default to
// no-ops; `hullviz serve` installs Prometheus-backed hooks at startup.
//
//	done := observability.StartLayout(ctx, vertices, edges)
//	res, err := layout.Compute(in)
//	done(err)
package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// PipelineHooks receives layout events.
type PipelineHooks interface {
	OnLayoutStart(ctx context.Context, vertexCount, edgeCount int)
	OnLayoutComplete(ctx context.Context, edgeCount int, duration time.Duration, err error)
}

// CacheHooks receives cache lookups made by the pipeline. keyType names the
// kind of entry, such as "layout".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	// OnCacheSet reports a write of size bytes.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLayoutStart(context.Context, int, int)                     {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, int, time.Duration, error) {}

type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

type pipelineBox struct{ PipelineHooks }
type cacheBox struct{ CacheHooks }

var (
	pipelineHooks atomic.Pointer[pipelineBox]
	cacheHooks    atomic.Pointer[cacheBox]
)

func init() { Reset() }

// SetPipelineHooks installs h. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h != nil {
		pipelineHooks.Store(&pipelineBox{h})
	}
}

// SetCacheHooks installs h. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		cacheHooks.Store(&cacheBox{h})
	}
}

func Pipeline() PipelineHooks { return pipelineHooks.Load().PipelineHooks }

func Cache() CacheHooks { return cacheHooks.Load().CacheHooks }

// StartLayout reports the start of a layout and returns the function that
// reports its completion with the elapsed time.
func StartLayout(ctx context.Context, vertexCount, edgeCount int) func(error) {
	h := Pipeline()
	h.OnLayoutStart(ctx, vertexCount, edgeCount)
	start := time.Now()
	return func(err error) {
		h.OnLayoutComplete(ctx, edgeCount, time.Since(start), err)
	}
}

// Reset restores the no-op hooks.
func Reset() {
	pipelineHooks.Store(&pipelineBox{NoopPipelineHooks{}})
	cacheHooks.Store(&cacheBox{NoopCacheHooks{}})
}
