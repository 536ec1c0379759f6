package geometry

import (
	"math"
	"strings"
	"testing"
)

var unitBox = Box{X: 0, Y: 0, W: 100, H: 50}

func TestOutlinePaths(t *testing.T) {
	tests := []struct {
		name   string
		spec   Spec
		box    Box
		fill   string
		stroke string
	}{
		{
			name: "rectangle",
			spec: NewRectangle(0),
			box:  unitBox,
			fill: "M 0 0 L 100 0 L 100 50 L 0 50 Z",
		},
		{
			name: "rounded rectangle",
			spec: NewRectangle(10),
			box:  unitBox,
			fill: "M 10 0 L 90 0 A 10 10 0 0 1 100 10 L 100 40 A 10 10 0 0 1 90 50 " +
				"L 10 50 A 10 10 0 0 1 0 40 L 0 10 A 10 10 0 0 1 10 0 Z",
		},
		{
			name: "parallelogram",
			spec: NewParallelogram(45, 0),
			box:  unitBox,
			fill: "M 50 0 L 100 0 L 50 50 L 0 50 Z",
		},
		{
			name: "parallelogram vertical",
			spec: Spec{Kind: ParallelogramVertical, Angle: 45},
			box:  Box{X: 0, Y: 0, W: 20, H: 100},
			fill: "M 0 0 L 20 20 L 20 100 L 0 80 Z",
		},
		{
			name: "chevron",
			spec: NewChevron(45, 0),
			box:  unitBox,
			fill: "M 0 0 L 75 0 L 100 25 L 75 50 L 0 50 L 25 25 Z",
		},
		{
			name: "chevron vertical",
			spec: Spec{Kind: ChevronVertical, Angle: 45},
			box:  Box{X: 0, Y: 0, W: 40, H: 100},
			fill: "M 0 0 L 20 20 L 40 0 L 40 80 L 20 100 L 0 80 Z",
		},
		{
			name: "pentagon",
			spec: NewPentagon(45, 0),
			box:  unitBox,
			fill: "M 0 0 L 75 0 L 100 25 L 75 50 L 0 50 Z",
		},
		{
			name: "hexagon",
			spec: NewHexagon(45, 0),
			box:  unitBox,
			fill: "M 25 0 L 75 0 L 100 25 L 75 50 L 25 50 L 0 25 Z",
		},
		{
			name: "ellipse",
			spec: NewEllipse(),
			box:  unitBox,
			fill: "M 0 25 A 50 25 0 1 0 100 25 A 50 25 0 1 0 0 25 Z",
		},
		{
			name:   "tab rounded corners",
			spec:   NewTabRoundedCorners(),
			box:    unitBox,
			fill:   "M 0 50 L 0 20 A 20 20 0 0 1 20 0 L 80 0 A 20 20 0 0 1 100 20 L 100 50 Z",
			stroke: "M 0 50 L 0 20 A 20 20 0 0 1 20 0 L 80 0 A 20 20 0 0 1 100 20 L 100 50",
		},
		{
			name:   "tab cut corners",
			spec:   NewTabCutCorners(10),
			box:    unitBox,
			fill:   "M 0 50 L 0 10 L 10 0 L 90 0 L 100 10 L 100 50 Z",
			stroke: "M 0 50 L 0 10 L 10 0 L 90 0 L 100 10 L 100 50",
		},
		{
			name:   "tab cut corner",
			spec:   NewTabCutCorner(10),
			box:    Box{X: 10, Y: 5, W: 100, H: 50},
			fill:   "M 10 55 L 10 5 L 100 5 L 110 15 L 110 55 Z",
			stroke: "M 10 55 L 10 5 L 100 5 L 110 15 L 110 55",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Outline(tt.spec, tt.box, Options{})
			if got := g.Fill.String(); got != tt.fill {
				t.Errorf("Fill = %q, want %q", got, tt.fill)
			}
			wantStroke := tt.stroke
			if wantStroke == "" {
				wantStroke = tt.fill
			}
			if got := g.Stroke.String(); got != wantStroke {
				t.Errorf("Stroke = %q, want %q", got, wantStroke)
			}
		})
	}
}

func TestCornerRadiusClamped(t *testing.T) {
	g := Outline(NewRectangle(100), unitBox, Options{})
	s := g.Fill.String()
	if !strings.Contains(s, "A 25 25 0 0 1") {
		t.Errorf("Fill = %q, want arcs clamped to radius 25", s)
	}
	if strings.Contains(s, "A 100") {
		t.Errorf("Fill = %q, radius not clamped", s)
	}
}

func TestCornerArcsMeet(t *testing.T) {
	g := Outline(NewRectangle(80), unitBox, Options{})
	want := "M 25 0 L 75 0 A 25 25 0 0 1 100 25 A 25 25 0 0 1 75 50 " +
		"L 25 50 A 25 25 0 0 1 0 25 A 25 25 0 0 1 25 0 Z"
	if got := g.Fill.String(); got != want {
		t.Errorf("Fill = %q, want %q", got, want)
	}
}

func TestTrim(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		box  Box
		want float64
	}{
		{"rectangle", NewRectangle(5), unitBox, 0},
		{"ellipse", NewEllipse(), unitBox, 0},
		{"parallelogram 45", NewParallelogram(45, 0), unitBox, 50},
		{"parallelogram 60", NewParallelogram(60, 0), unitBox, 50 / math.Sqrt(3)},
		{"parallelogram vertical", Spec{Kind: ParallelogramVertical, Angle: 45}, unitBox, 100},
		{"chevron", NewChevron(45, 0), unitBox, 25},
		{"chevron vertical", Spec{Kind: ChevronVertical, Angle: 45}, unitBox, 50},
		{"pentagon", NewPentagon(45, 0), unitBox, 25},
		{"hexagon", NewHexagon(45, 0), unitBox, 25},
		{"obtuse angle", NewParallelogram(135, 0), unitBox, -50},
		{"cut corners", NewTabCutCorners(12), unitBox, 12},
		{"cut corners clamped", NewTabCutCorners(80), unitBox, 50},
		{"cut corner clamped", NewTabCutCorner(80), unitBox, 50},
		{"negative cut", NewTabCutCorner(-3), unitBox, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.Trim(tt.box); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Trim() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrimDegenerateAngles(t *testing.T) {
	for _, angle := range []float64{0, -30, 180, 720, math.NaN(), math.Inf(1)} {
		for _, spec := range []Spec{NewParallelogram(angle, 0), NewChevron(angle, 0), NewPentagon(angle, 0), NewHexagon(angle, 0)} {
			z := spec.Trim(unitBox)
			if math.IsNaN(z) || math.IsInf(z, 0) {
				t.Errorf("%v angle %v: Trim() = %v, want finite", spec.Kind, angle, z)
			}
			g := Outline(spec, unitBox, Options{})
			if s := g.Fill.String(); strings.Contains(s, "NaN") || strings.Contains(s, "Inf") {
				t.Errorf("%v angle %v: Fill = %q", spec.Kind, angle, s)
			}
		}
	}
}

func TestInverseParamRoundTrip(t *testing.T) {
	kinds := []Kind{Parallelogram, ParallelogramVertical, Chevron, ChevronVertical, Pentagon, Hexagon}
	boxes := []Box{unitBox, {X: 3, Y: 7, W: 40, H: 120}}
	for _, k := range kinds {
		for _, b := range boxes {
			for angle := 5.5; angle < 175; angle += 2.5 {
				spec := Spec{Kind: k, Angle: angle}
				got := InverseParam(k, b, spec.Trim(b))
				if math.Abs(got-angle) > 1e-9 {
					t.Errorf("%v: InverseParam(Trim(%v)) = %v", k, angle, got)
				}
			}
		}
	}

	if got := InverseParam(TabCutCorner, unitBox, 12.5); got != 12.5 {
		t.Errorf("InverseParam(TabCutCorner) = %v, want 12.5", got)
	}
	if got := InverseParam(TabCutCorners, unitBox, -4); got != 0 {
		t.Errorf("InverseParam(TabCutCorners, -4) = %v, want 0", got)
	}
}

func TestContentRect(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want Box
	}{
		{"rectangle", NewRectangle(0), unitBox},
		{"ellipse", NewEllipse(), unitBox},
		{"tab", NewTabCutCorners(10), unitBox},
		{"parallelogram", NewParallelogram(45, 0), Box{X: 50, Y: 0, W: 0, H: 50}},
		{"chevron", NewChevron(45, 0), Box{X: 25, Y: 0, W: 50, H: 50}},
		{"pentagon", NewPentagon(45, 0), Box{X: 0, Y: 0, W: 75, H: 50}},
		{"hexagon", NewHexagon(45, 0), Box{X: 25, Y: 0, W: 50, H: 50}},
		{"chevron vertical", Spec{Kind: ChevronVertical, Angle: 45}, Box{X: 0, Y: 50, W: 100, H: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Outline(tt.spec, unitBox, Options{}).Content
			if !boxNear(got, tt.want) {
				t.Errorf("Content = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOutlineDragFreezesTrim(t *testing.T) {
	spec := NewParallelogram(45, 0)
	g := Outline(spec, unitBox, Options{DragInProgress: true, Trim: 20})
	if g.Trim != 20 {
		t.Errorf("Trim = %v, want 20", g.Trim)
	}
	if got, want := g.Fill.String(), "M 20 0 L 100 0 L 80 50 L 0 50 Z"; got != want {
		t.Errorf("Fill = %q, want %q", got, want)
	}

	// Without a drag the frozen value is ignored.
	g = Outline(spec, unitBox, Options{Trim: 20})
	if math.Abs(g.Trim-50) > 1e-9 {
		t.Errorf("Trim = %v, want 50", g.Trim)
	}

	// Untrimmed shapes ignore the frozen trim entirely.
	g = Outline(NewRectangle(0), unitBox, Options{DragInProgress: true, Trim: 20})
	if g.Trim != 0 {
		t.Errorf("rectangle Trim = %v, want 0", g.Trim)
	}
}

func TestOutlineDegenerateBox(t *testing.T) {
	boxes := []Box{
		{},
		{X: 0, Y: 0, W: -10, H: 20},
		{X: math.NaN(), Y: 0, W: math.NaN(), H: math.Inf(1)},
	}
	for _, b := range boxes {
		for k := range kindNames {
			g := Outline(Spec{Kind: k, Angle: 30, CutLength: 10, CornerRadius: 4}, b, Options{})
			if g.Box.W < 0 || g.Box.H < 0 || g.Content.W < 0 || g.Content.H < 0 {
				t.Errorf("%v %+v: negative size in %+v", k, b, g)
			}
			if s := g.Fill.String(); strings.Contains(s, "NaN") {
				t.Errorf("%v %+v: Fill = %q", k, b, s)
			}
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{-0.0001, "0"},
		{12, "12"},
		{2.5, "2.5"},
		{1.23456, "1.235"},
		{-7.1, "-7.1"},
		{50.00000000000001, "50"},
		{math.NaN(), "0"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParsePathRoundTrip(t *testing.T) {
	for k := range kindNames {
		g := Outline(Spec{Kind: k, Angle: 60, CutLength: 8, CornerRadius: 6}, Box{X: 2.5, Y: 4, W: 120, H: 48}, Options{})
		for _, p := range []Path{g.Fill, g.Stroke} {
			s := p.String()
			parsed, err := ParsePath(s)
			if err != nil {
				t.Fatalf("%v: ParsePath(%q) error = %v", k, s, err)
			}
			if got := parsed.String(); got != s {
				t.Errorf("%v: ParsePath(%q).String() = %q", k, s, got)
			}
		}
	}
}

func TestParsePathErrors(t *testing.T) {
	for _, in := range []string{"M 1", "Q 1 2 3 4", "L a b", "A 1 2 3"} {
		if _, err := ParsePath(in); err == nil {
			t.Errorf("ParsePath(%q) error = nil, want error", in)
		}
	}

	p, err := ParsePath("M1,2 L-3.5,4e1 Z")
	if err != nil {
		t.Fatalf("ParsePath() error = %v", err)
	}
	if got, want := p.String(), "M 1 2 L -3.5 40 Z"; got != want {
		t.Errorf("ParsePath().String() = %q, want %q", got, want)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"rectangle", Rectangle},
		{"tab_cutCorners", TabCutCorners},
		{"tab-cut-corner", TabCutCorner},
		{"tab_roundedCorners", TabRoundedCorners},
		{"Chevron", Chevron},
		{"parallelogram-vertical", ParallelogramVertical},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseKind(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseKind("star"); err == nil {
		t.Error(`ParseKind("star") error = nil, want error`)
	}
}

func TestForArrangement(t *testing.T) {
	tests := []struct {
		in       Kind
		vertical bool
		want     Kind
	}{
		{Parallelogram, true, ParallelogramVertical},
		{Chevron, true, ChevronVertical},
		{Pentagon, true, Pentagon},
		{ParallelogramVertical, false, Parallelogram},
		{ChevronVertical, false, Chevron},
		{Rectangle, false, Rectangle},
	}
	for _, tt := range tests {
		if got := (Spec{Kind: tt.in}).ForArrangement(tt.vertical).Kind; got != tt.want {
			t.Errorf("ForArrangement(%v, %v) = %v, want %v", tt.in, tt.vertical, got, tt.want)
		}
	}
}

func boxNear(a, b Box) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps &&
		math.Abs(a.W-b.W) < eps && math.Abs(a.H-b.H) < eps
}
