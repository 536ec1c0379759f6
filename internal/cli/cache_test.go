package cli

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/matzehuels/buttonstrip/pkg/cache"
	"github.com/matzehuels/buttonstrip/pkg/geometry"
)

func runArgs(t *testing.T, args ...string) error {
	t.Helper()
	root := testCLI().RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	return root.ExecuteContext(context.Background())
}

func TestCacheClearKind(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)
	stripPath, _ := writeStrip(t, geometry.Rectangle)

	if err := runArgs(t, "render", stripPath, "-f", "svg", "--measurer", "approx"); err != nil {
		t.Fatalf("render: %v", err)
	}
	fc, err := cache.NewFileCache(filepath.Join(xdg, "buttonstrip"))
	if err != nil {
		t.Fatal(err)
	}
	usage := func(kind string) int {
		u, err := fc.Usage(kind)
		if err != nil {
			t.Fatalf("Usage(%q): %v", kind, err)
		}
		return u.Entries
	}
	if usage(cache.KindFrame) == 0 || usage(cache.KindArtifact) == 0 {
		t.Fatalf("render should cache a frame and an artifact")
	}

	if err := runArgs(t, "cache", "info"); err != nil {
		t.Errorf("cache info: %v", err)
	}
	if err := runArgs(t, "cache", "clear", "--kind", "frame"); err != nil {
		t.Fatalf("cache clear --kind frame: %v", err)
	}
	if got := usage(cache.KindFrame); got != 0 {
		t.Errorf("frames after clear = %d, want 0", got)
	}
	if usage(cache.KindArtifact) == 0 {
		t.Error("artifacts should survive clearing frames")
	}

	if err := runArgs(t, "cache", "clear", "--kind", "fonts"); err == nil {
		t.Error("cache clear --kind fonts should fail")
	}
}
