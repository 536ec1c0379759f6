package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/buttonstrip/pkg/geometry"
	"github.com/matzehuels/buttonstrip/pkg/observability"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level     log.Level
		wantDebug bool
	}{
		{LogDebug, true},
		{LogInfo, false},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		l := newLogger(&buf, tt.level)
		l.Debug("layout start", "items", 4)
		if got := strings.Contains(buf.String(), "layout start"); got != tt.wantDebug {
			t.Errorf("level %v: debug written = %v, want %v", tt.level, got, tt.wantDebug)
		}
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(newLogger(&buf, LogInfo))
	p.done("Rendered 2 artifacts")

	out := buf.String()
	if !strings.Contains(out, "Rendered 2 artifacts (") {
		t.Errorf("done() output = %q, want message with elapsed time", out)
	}
	if !strings.Contains(out, "s)") {
		t.Errorf("done() output = %q, want a duration", out)
	}
}

func TestLoggerContext(t *testing.T) {
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("loggerFromContext() without logger should return log.Default()")
	}

	l := newLogger(io.Discard, LogInfo)
	ctx := withLogger(context.Background(), l)
	if got := loggerFromContext(ctx); got != l {
		t.Error("loggerFromContext() did not return the attached logger")
	}
}

func TestVerboseRoutesPipelineEvents(t *testing.T) {
	t.Cleanup(observability.Reset)
	stripPath, _ := writeStrip(t, geometry.Rectangle)

	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"-v", "layout", stripPath, "--measurer", "approx"})
	root.SetOut(io.Discard)
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("layout -v: %v", err)
	}

	if _, ok := observability.Pipeline().(*observability.LogHooks); !ok {
		t.Errorf("Pipeline() = %T, want *observability.LogHooks", observability.Pipeline())
	}
	if _, ok := observability.Cache().(*observability.LogHooks); !ok {
		t.Errorf("Cache() = %T, want *observability.LogHooks", observability.Cache())
	}
	for _, want := range []string{"layout start", "layout done"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log missing %q:\n%s", want, buf.String())
		}
	}
}

func TestSetLogLevelInfoResetsHooks(t *testing.T) {
	t.Cleanup(observability.Reset)

	c := New(io.Discard, LogInfo)
	c.SetLogLevel(LogDebug)
	c.SetLogLevel(LogInfo)

	if _, ok := observability.Pipeline().(observability.NoopPipelineHooks); !ok {
		t.Errorf("Pipeline() = %T, want NoopPipelineHooks", observability.Pipeline())
	}
	if got := c.Logger.GetLevel(); got != LogInfo {
		t.Errorf("GetLevel() = %v, want %v", got, LogInfo)
	}
}
