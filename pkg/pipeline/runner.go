package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/buttonstrip/pkg/cache"
	"github.com/matzehuels/buttonstrip/pkg/frame"
	"github.com/matzehuels/buttonstrip/pkg/observability"
	"github.com/matzehuels/buttonstrip/pkg/settings"
	"github.com/matzehuels/buttonstrip/pkg/sink"
	"github.com/matzehuels/buttonstrip/pkg/textmetrics"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner doesn't store pipeline results. Multiple goroutines can
// safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	facesOnce sync.Once
	faces     *textmetrics.Faces
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

// Execute runs compute and render with caching.
func (r *Runner) Execute(ctx context.Context, in frame.Input, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	computeStart := time.Now()
	f, hash, frameHit, err := r.compute(ctx, in, opts)
	if err != nil {
		return nil, err
	}
	result.Frame = f
	result.InputHash = hash
	result.Stats.ComputeTime = time.Since(computeStart)
	result.Stats.ItemCount = len(f.Drawables)
	result.Stats.RowCount = f.RowCount
	result.CacheInfo.FrameHit = frameHit

	opts.Logger.Debug("computed frame",
		"items", len(f.Drawables),
		"rows", f.RowCount,
		"cached", frameHit,
		"duration", result.Stats.ComputeTime)

	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, f, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	opts.Logger.Debug("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ComputeWithCacheInfo builds the frame for in and reports whether it came
// from the cache. Inputs with a drag in progress are never cached.
func (r *Runner) ComputeWithCacheInfo(ctx context.Context, in frame.Input, opts Options) (frame.Frame, bool, error) {
	f, _, hit, err := r.compute(ctx, in, opts)
	return f, hit, err
}

// Compute is ComputeWithCacheInfo without the cache hit info.
func (r *Runner) Compute(ctx context.Context, in frame.Input, opts Options) (frame.Frame, error) {
	f, _, err := r.ComputeWithCacheInfo(ctx, in, opts)
	return f, err
}

func (r *Runner) compute(ctx context.Context, in frame.Input, opts Options) (frame.Frame, string, bool, error) {
	if err := opts.ValidateForCompute(); err != nil {
		return frame.Frame{}, "", false, err
	}

	inputData, err := json.Marshal(in)
	if err != nil {
		return frame.Frame{}, "", false, fmt.Errorf("serialize input for cache key: %w", err)
	}
	hash := cache.Hash(inputData)
	cacheable := in.Drag == nil
	cacheKey := r.Keyer.FrameKey(hash, opts.FrameKeyOpts(in))

	if cacheable && !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if f, err := sink.ReadJSON(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "frame")
				return f, hash, true, nil
			}
		} else if err != nil {
			r.Logger.Warn("cache read failed", "err", err)
		}
		observability.Cache().OnCacheMiss(ctx, "frame")
	}

	shape := settings.Default().Layout.Shape.String()
	if in.Settings != nil {
		shape = in.Settings.Layout.Shape.String()
	}
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, shape, len(in.Items))
	start := time.Now()
	f, err := frame.Compute(in, r.measurer(opts.Measurer))
	hooks.OnLayoutComplete(ctx, shape, f.RowCount, time.Since(start), err)
	if err != nil {
		return frame.Frame{}, hash, false, err
	}

	if cacheable {
		if data, err := sink.RenderJSON(f, sink.WithCompactJSON(), sink.WithJSONHandles()); err == nil {
			if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLFrame); err == nil {
				observability.Cache().OnCacheSet(ctx, "frame", len(data))
			}
		}
	}
	return f, hash, false, nil
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, f frame.Frame, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	frameData, err := sink.RenderJSON(f, sink.WithCompactJSON(), sink.WithJSONHandles())
	if err != nil {
		return nil, false, fmt.Errorf("serialize frame for cache key: %w", err)
	}
	frameHash := cache.Hash(frameData)

	artifacts := make(map[string][]byte, len(opts.Formats))
	if !opts.Refresh {
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(frameHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				observability.Cache().OnCacheMiss(ctx, "artifact")
				break
			}
			observability.Cache().OnCacheHit(ctx, "artifact")
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := Render(f, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(frameHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}
	return rendered, false, nil
}

// Render is RenderWithCacheInfo without the cache hit info.
func (r *Runner) Render(ctx context.Context, f frame.Frame, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, f, opts)
	return artifacts, err
}

// Measurer returns the text measurer for name. Unknown names use Approx.
func (r *Runner) Measurer(name string) textmetrics.Measurer {
	return r.measurer(name)
}

func (r *Runner) measurer(name string) textmetrics.Measurer {
	if name != MeasurerFaces {
		return textmetrics.Approx{}
	}
	r.facesOnce.Do(func() { r.faces = textmetrics.NewFaces() })
	return r.faces
}

// Close releases resources held by the runner.
func (r *Runner) Close() error {
	if r.faces != nil {
		_ = r.faces.Close()
	}
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
