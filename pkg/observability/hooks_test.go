package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

type recordingEditorHooks struct {
	NoopEditorHooks
	expired int
}

func (r *recordingEditorHooks) OnEditExpired(_ context.Context, n int) { r.expired += n }

type testPipelineHooks struct{ NoopPipelineHooks }
type testCacheHooks struct{ NoopCacheHooks }

func TestDefaultsAreNoop(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Errorf("Pipeline() = %T, want NoopPipelineHooks", Pipeline())
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() = %T, want NoopCacheHooks", Cache())
	}
	if _, ok := Editor().(NoopEditorHooks); !ok {
		t.Errorf("Editor() = %T, want NoopEditorHooks", Editor())
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Errorf("HTTP() = %T, want NoopHTTPHooks", HTTP())
	}
}

func TestInstall(t *testing.T) {
	t.Cleanup(Reset)

	tests := []struct {
		name  string
		hooks any
		want  int
	}{
		{"log hooks", NewLogHooks(log.New(&bytes.Buffer{})), 4},
		{"pipeline only", &testPipelineHooks{}, 1},
		{"editor only", &recordingEditorHooks{}, 1},
		{"unrelated", "not hooks", 0},
	}
	for _, tt := range tests {
		Reset()
		if got := Install(tt.hooks); got != tt.want {
			t.Errorf("%s: Install() = %d, want %d", tt.name, got, tt.want)
		}
	}

	Reset()
	rec := &recordingEditorHooks{}
	Install(rec)
	Editor().OnEditExpired(context.Background(), 2)
	Editor().OnEditExpired(context.Background(), 1)
	if rec.expired != 3 {
		t.Errorf("expired = %d, want 3", rec.expired)
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Install() should leave unimplemented hooks untouched")
	}
}

func TestSetHooks(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	p := &testPipelineHooks{}
	SetPipelineHooks(p)
	SetPipelineHooks(nil)
	if Pipeline() != p {
		t.Error("SetPipelineHooks(nil) should keep the registered hooks")
	}

	c := &testCacheHooks{}
	SetCacheHooks(c)
	if Cache() != c {
		t.Error("SetCacheHooks() did not register")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	h := NewLogHooks(log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}))
	ctx := context.Background()

	h.OnLayoutComplete(ctx, "tab", 2, time.Millisecond, nil)
	h.OnCacheMiss(ctx, "artifact")
	h.OnRenderComplete(ctx, []string{"png"}, 0, errors.New("boom"))
	h.OnEditEnd(ctx, "home", "parallelogramAngle", 30, 1500*time.Millisecond)
	h.OnEditExpired(ctx, 2)

	out := buf.String()
	for _, want := range []string{
		"layout done", "shape=tab",
		"cache miss", "kind=artifact",
		"render failed", "boom",
		"edit committed", "param=parallelogramAngle", "value=30",
		"edit sessions expired", "count=2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
