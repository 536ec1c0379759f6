package textmetrics

import (
	"math"
	"reflect"
	"testing"
)

func TestApproxMeasure(t *testing.T) {
	a := Approx{CharWidth: 0.5, LineHeight: 1}
	// 12pt = 16px, so each rune is 8px wide and each line 16px tall.
	tests := []struct {
		name string
		text string
		wrap float64
		want Size
	}{
		{"empty", "", 0, Size{}},
		{"single line", "Home", 0, Size{Width: 32, Height: 16}},
		{"wraps", "Sales Report", 50, Size{Width: 48, Height: 32}},
		{"fits", "Sales Report", 200, Size{Width: 96, Height: 16}},
		{"long word", "Administration x", 40, Size{Width: 112, Height: 32}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Measure(tt.text, "", 12, tt.wrap); got != tt.want {
				t.Errorf("Measure() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFacesMeasure(t *testing.T) {
	f := NewFaces()
	defer f.Close()

	short := f.Measure("Home", "", 12, 0)
	long := f.Measure("Home Home", "", 12, 0)
	if short.Width <= 0 || short.Height <= 0 {
		t.Fatalf("Measure(Home) = %+v, want positive size", short)
	}
	if long.Width <= short.Width {
		t.Errorf("Measure(Home Home).Width = %v, want > %v", long.Width, short.Width)
	}

	bigger := f.Measure("Home", "", 24, 0)
	if math.Abs(bigger.Width-2*short.Width) > 1 {
		t.Errorf("24pt width = %v, want about %v", bigger.Width, 2*short.Width)
	}

	wrapped := f.Measure("Home Home", "", 12, short.Width+1)
	if math.Abs(wrapped.Height-2*short.Height) > 1e-9 {
		t.Errorf("wrapped height = %v, want %v", wrapped.Height, 2*short.Height)
	}

	if got := f.Measure("", "", 12, 0); got != (Size{}) {
		t.Errorf("Measure(\"\") = %+v, want zero", got)
	}
	if got := f.Measure("x", "", 0, 0); got != (Size{}) {
		t.Errorf("Measure at 0pt = %+v, want zero", got)
	}
}

func TestFacesMonoWidths(t *testing.T) {
	f := NewFaces()
	defer f.Close()

	i := f.Measure("iiii", "monospace", 14, 0)
	m := f.Measure("mmmm", "monospace", 14, 0)
	if math.Abs(i.Width-m.Width) > 1e-9 {
		t.Errorf("mono widths differ: %v vs %v", i.Width, m.Width)
	}
}

func TestPtToPx(t *testing.T) {
	if got := PtToPx(12); got != 16 {
		t.Errorf("PtToPx(12) = %v, want 16", got)
	}
}

type fixedMeasurer struct{}

func (fixedMeasurer) Measure(string, string, float64, float64) Size { return Size{Width: 1, Height: 1} }

func TestLines(t *testing.T) {
	// 12pt is 16px, so each rune is 8px wide.
	a := Approx{CharWidth: 0.5}
	tests := []struct {
		name string
		m    Measurer
		text string
		wrap float64
		want []string
	}{
		{"no wrap", a, "alpha beta", 0, []string{"alpha beta"}},
		{"wrap", a, "alpha beta gamma", 90, []string{"alpha beta", "gamma"}},
		{"long word", a, "extraordinary", 16, []string{"extraordinary"}},
		{"empty", a, "", 50, nil},
		{"plain measurer", fixedMeasurer{}, "alpha beta", 10, []string{"alpha beta"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lines(tt.m, tt.text, "", 12, tt.wrap)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Lines(%q, %v) = %q, want %q", tt.text, tt.wrap, got, tt.want)
			}
		})
	}
}
