package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

type recordingHooks struct {
	NoopPipelineHooks
	started  [2]int
	edges    int
	duration time.Duration
	err      error
}

func (r *recordingHooks) OnLayoutStart(_ context.Context, v, e int) {
	r.started = [2]int{v, e}
}

func (r *recordingHooks) OnLayoutComplete(_ context.Context, e int, d time.Duration, err error) {
	r.edges, r.duration, r.err = e, d, err
}

type testCacheHooks struct{ NoopCacheHooks }

func TestRegistryDefaultsAndReset(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should default to NoopPipelineHooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should default to NoopCacheHooks")
	}

	p, c := &recordingHooks{}, &testCacheHooks{}
	SetPipelineHooks(p)
	SetCacheHooks(c)
	SetPipelineHooks(nil)
	SetCacheHooks(nil)
	if Pipeline() != p || Cache() != c {
		t.Error("installed hooks not returned, or nil replaced them")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}

func TestStartLayout(t *testing.T) {
	rec := &recordingHooks{}
	SetPipelineHooks(rec)
	t.Cleanup(Reset)

	done := StartLayout(context.Background(), 12, 4)
	if rec.started != [2]int{12, 4} {
		t.Errorf("start = %v, want [12 4]", rec.started)
	}
	time.Sleep(time.Millisecond)
	failure := errors.New("degenerate")
	done(failure)

	if rec.edges != 4 || rec.err != failure {
		t.Errorf("complete = (%d, %v), want (4, degenerate)", rec.edges, rec.err)
	}
	if rec.duration <= 0 {
		t.Error("duration should be positive")
	}
}

func TestNoopHooks(t *testing.T) {
	Reset()
	done := StartLayout(context.Background(), 1, 1)
	done(nil)
	Cache().OnCacheHit(context.Background(), "layout")
	Cache().OnCacheSet(context.Background(), "layout", 10)
}
