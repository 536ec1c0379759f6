// Package observability routes pipeline, cache, editor and HTTP events to
// pluggable hooks.
//
// Libraries emit events through the registered hooks; main decides where
// they go. The defaults are no-ops:
//
//	observability.Install(observability.NewLogHooks(logger))
//
// Emitting an event:
//
//	observability.Pipeline().OnLayoutStart(ctx, "chevron", len(items))
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives layout and render events.
type PipelineHooks interface {
	OnLayoutStart(ctx context.Context, shape string, itemCount int)
	OnLayoutComplete(ctx context.Context, shape string, rowCount int, duration time.Duration, err error)
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// CacheHooks receives cache lookups and writes. keyType is "frame" or
// "artifact".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// EditorHooks receives handle drag sessions.
type EditorHooks interface {
	// OnEditBegin fires when a handle is grabbed on item.
	OnEditBegin(ctx context.Context, item, param string)

	// OnEditEnd fires when a drag is committed with the persisted value.
	OnEditEnd(ctx context.Context, item, param string, value float64, held time.Duration)

	// OnEditExpired reports idle sessions dropped by a sweep.
	OnEditExpired(ctx context.Context, count int)
}

// HTTPHooks receives preview server requests, keyed by route pattern.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, route string)
	OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration)
	OnError(ctx context.Context, method, route string, err error)
}

type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLayoutStart(context.Context, string, int)                          {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                             {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error)    {}

type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

type NoopEditorHooks struct{}

func (NoopEditorHooks) OnEditBegin(context.Context, string, string)                       {}
func (NoopEditorHooks) OnEditEnd(context.Context, string, string, float64, time.Duration) {}
func (NoopEditorHooks) OnEditExpired(context.Context, int)                                {}

type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, error)                 {}

type registry struct {
	mu       sync.RWMutex
	pipeline PipelineHooks
	cache    CacheHooks
	editor   EditorHooks
	http     HTTPHooks
}

var hooks = newRegistry()

func newRegistry() *registry {
	return &registry{
		pipeline: NoopPipelineHooks{},
		cache:    NoopCacheHooks{},
		editor:   NoopEditorHooks{},
		http:     NoopHTTPHooks{},
	}
}

// Install registers h for every hook interface it implements and reports
// how many that was.
func Install(h any) int {
	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	n := 0
	if p, ok := h.(PipelineHooks); ok {
		hooks.pipeline, n = p, n+1
	}
	if c, ok := h.(CacheHooks); ok {
		hooks.cache, n = c, n+1
	}
	if e, ok := h.(EditorHooks); ok {
		hooks.editor, n = e, n+1
	}
	if x, ok := h.(HTTPHooks); ok {
		hooks.http, n = x, n+1
	}
	return n
}

// SetPipelineHooks registers pipeline hooks. nil is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h != nil {
		set(func(r *registry) { r.pipeline = h })
	}
}

func SetCacheHooks(h CacheHooks) {
	if h != nil {
		set(func(r *registry) { r.cache = h })
	}
}

func SetEditorHooks(h EditorHooks) {
	if h != nil {
		set(func(r *registry) { r.editor = h })
	}
}

func SetHTTPHooks(h HTTPHooks) {
	if h != nil {
		set(func(r *registry) { r.http = h })
	}
}

func set(fn func(*registry)) {
	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	fn(hooks)
}

func Pipeline() PipelineHooks {
	hooks.mu.RLock()
	defer hooks.mu.RUnlock()
	return hooks.pipeline
}

func Cache() CacheHooks {
	hooks.mu.RLock()
	defer hooks.mu.RUnlock()
	return hooks.cache
}

func Editor() EditorHooks {
	hooks.mu.RLock()
	defer hooks.mu.RUnlock()
	return hooks.editor
}

func HTTP() HTTPHooks {
	hooks.mu.RLock()
	defer hooks.mu.RUnlock()
	return hooks.http
}

// Reset restores the no-op defaults.
func Reset() {
	fresh := newRegistry()
	set(func(r *registry) {
		r.pipeline, r.cache, r.editor, r.http = fresh.pipeline, fresh.cache, fresh.editor, fresh.http
	})
}
