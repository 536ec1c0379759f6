package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes events to a logger at debug level, failures at warn
// level and completed requests and edits at info level. It implements
// every hook interface, so one [Install] call routes everything.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger}
}

func (h *LogHooks) OnLayoutStart(_ context.Context, shape string, itemCount int) {
	h.logger.Debug("layout start", "shape", shape, "items", itemCount)
}

func (h *LogHooks) OnLayoutComplete(_ context.Context, shape string, rowCount int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("layout failed", "shape", shape, "err", err)
		return
	}
	h.logger.Debug("layout done", "shape", shape, "rows", rowCount, "took", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("render start", "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("render failed", "formats", formats, "err", err)
		return
	}
	h.logger.Debug("render done", "formats", formats, "took", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "kind", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "kind", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "kind", keyType, "bytes", size)
}

func (h *LogHooks) OnEditBegin(_ context.Context, item, param string) {
	h.logger.Debug("edit begin", "item", item, "param", param)
}

func (h *LogHooks) OnEditEnd(_ context.Context, item, param string, value float64, held time.Duration) {
	h.logger.Info("edit committed", "item", item, "param", param, "value", value, "held", held.Round(time.Millisecond))
}

func (h *LogHooks) OnEditExpired(_ context.Context, count int) {
	h.logger.Debug("edit sessions expired", "count", count)
}

func (h *LogHooks) OnRequest(_ context.Context, method, route string) {
	h.logger.Debug("request", "method", method, "route", route)
}

func (h *LogHooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	h.logger.Info("response", "method", method, "route", route, "status", status, "took", d)
}

func (h *LogHooks) OnError(_ context.Context, method, route string, err error) {
	h.logger.Warn("handler error", "method", method, "route", route, "err", err)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ EditorHooks   = (*LogHooks)(nil)
	_ HTTPHooks     = (*LogHooks)(nil)
)
