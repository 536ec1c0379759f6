package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/buttonstrip/pkg/geometry"
)

func TestPlural(t *testing.T) {
	tests := []struct {
		n    int
		noun string
		want string
	}{
		{0, "row", "0 rows"},
		{1, "row", "1 row"},
		{4, "button", "4 buttons"},
		{2, "entry", "2 entries"},
		{3, "key", "3 keys"},
	}
	for _, tt := range tests {
		if got := plural(tt.n, tt.noun); got != tt.want {
			t.Errorf("plural(%d, %q) = %q, want %q", tt.n, tt.noun, got, tt.want)
		}
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{3 << 20, "3.0 MB"},
	}
	for _, tt := range tests {
		if got := formatSize(tt.n); got != tt.want {
			t.Errorf("formatSize(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestStatsLine(t *testing.T) {
	line := statsLine(3, 1, geometry.Chevron, true)
	for _, want := range []string{"3 buttons", "1 row", geometry.Chevron.String(), "cached"} {
		if !strings.Contains(line, want) {
			t.Errorf("statsLine() = %q, missing %q", line, want)
		}
	}
	if line := statsLine(1, 2, geometry.Rectangle, false); !strings.Contains(line, "fresh") {
		t.Errorf("statsLine() = %q, want fresh marker", line)
	}
}

func TestArtifactLine(t *testing.T) {
	line := artifactLine("png", "out/strip.png", 2048)
	for _, want := range []string{"png", "out/strip.png", "(2.0 KB)"} {
		if !strings.Contains(line, want) {
			t.Errorf("artifactLine() = %q, missing %q", line, want)
		}
	}
}
