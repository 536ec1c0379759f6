package sink

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/matzehuels/buttonstrip/pkg/frame"
	"github.com/matzehuels/buttonstrip/pkg/geometry"
	"github.com/matzehuels/buttonstrip/pkg/layout"
	"github.com/matzehuels/buttonstrip/pkg/settings"
)

func testFrame(t *testing.T, edit bool) frame.Frame {
	t.Helper()
	s := settings.Default()
	s.Layout.Shape = geometry.Chevron
	s.Effects.Shadow = true
	f, err := frame.Compute(frame.Input{
		Items:    []frame.Item{{ID: "home", Text: "Home"}, {ID: "r&d", Text: "R&D <lab>"}},
		Selected: []string{"home"},
		Hovered:  "r&d",
		Viewport: layout.Viewport{Width: 200, Height: 50},
		Settings: s,
		Edit:     edit,
	}, nil)
	if err != nil {
		t.Fatalf("frame.Compute() error = %v", err)
	}
	return f
}

func TestRenderSVG(t *testing.T) {
	f := testFrame(t, true)

	tests := []struct {
		name    string
		opts    []SVGOption
		want    []string
		notWant []string
	}{
		{
			name: "default",
			want: []string{
				`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 50"`,
				`class="button selected" data-id="home"`,
				`class="button hovered" data-id="r&amp;d"`,
				`R&amp;D &lt;lab&gt;`,
				`filter="url(#effects-0)"`,
				`<feDropShadow`,
				`.button { cursor: pointer; }`,
			},
			notWant: []string{`class="handle"`, `@font-face`},
		},
		{
			name: "handles",
			opts: []SVGOption{WithHandles()},
			want: []string{`class="handle" data-id="home" data-axis="x" data-param="chevronAngle"`},
		},
		{
			name: "embedded fonts",
			opts: []SVGOption{WithEmbeddedFonts()},
			want: []string{`@font-face { font-family: 'Go'; src: url(data:font/ttf;base64,`},
		},
		{
			name:    "no interaction",
			opts:    []SVGOption{WithoutInteraction()},
			notWant: []string{`cursor: pointer`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := string(RenderSVG(f, tt.opts...))
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("RenderSVG() missing %q", w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(out, w) {
					t.Errorf("RenderSVG() contains %q", w)
				}
			}
		})
	}
}

func TestRenderSVGEmpty(t *testing.T) {
	out := string(RenderSVG(frame.Frame{Viewport: layout.Viewport{Width: 10, Height: 10}}))
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Errorf("RenderSVG(empty) = %q", out)
	}
	if strings.Contains(out, "<defs>") {
		t.Error("RenderSVG(empty) has defs without effects")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	f := testFrame(t, true)

	data, err := RenderJSON(f)
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}
	if strings.Contains(string(data), `"handles"`) {
		t.Error("RenderJSON() kept handles without WithJSONHandles")
	}
	if len(f.Drawables[0].Outline.Handles) == 0 {
		t.Error("RenderJSON() modified the input frame")
	}

	back, err := ReadJSON(data)
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	again, err := RenderJSON(back)
	if err != nil {
		t.Fatalf("RenderJSON(ReadJSON()) error = %v", err)
	}
	if !bytes.Equal(data, again) {
		t.Errorf("JSON round trip changed output:\n%s\n---\n%s", data, again)
	}
	if got, want := back.Drawables[1].Outline.Fill.String(), f.Drawables[1].Outline.Fill.String(); got != want {
		t.Errorf("fill path = %q, want %q", got, want)
	}

	withHandles, _ := RenderJSON(f, WithJSONHandles(), WithCompactJSON())
	if !strings.Contains(string(withHandles), `"handles":[`) {
		t.Error("RenderJSON(WithJSONHandles) dropped handles")
	}
}

func TestReadJSONInvalid(t *testing.T) {
	if _, err := ReadJSON([]byte(`{"drawables": [{"outline": {"fill": "Q 1 2"}}]}`)); err == nil {
		t.Error("ReadJSON() with bad path data = nil error")
	}
}

func TestRenderPNG(t *testing.T) {
	data, err := RenderPNG(testFrame(t, false), WithScale(2))
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	b := img.Bounds()
	if b.Dx() < 399 || b.Dx() > 401 || b.Dy() < 99 || b.Dy() > 101 {
		t.Errorf("PNG size = %dx%d, want about 400x100", b.Dx(), b.Dy())
	}

	if _, err := RenderPNG(testFrame(t, false), WithScale(0)); err == nil {
		t.Error("RenderPNG(scale 0) error = nil")
	}
}

func TestRenderPDF(t *testing.T) {
	data, err := RenderPDF(testFrame(t, false), WithTitle("Nav"))
	if err != nil {
		t.Fatalf("RenderPDF() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("RenderPDF() output starts with %q", data[:min(8, len(data))])
	}
}

func TestPaintColor(t *testing.T) {
	tests := []struct {
		hex     string
		opacity float64
		wantA   uint32
	}{
		{"#ff0000", 1, 0xffff},
		{"#ff0000", 0, 0},
		{"", 1, 0},
		{"red", 1, 0},
	}
	for _, tt := range tests {
		_, _, _, a := paintColor(tt.hex, tt.opacity).RGBA()
		if a != tt.wantA {
			t.Errorf("paintColor(%q, %v) alpha = %#x, want %#x", tt.hex, tt.opacity, a, tt.wantA)
		}
	}
}
