package geometry

import (
	"fmt"
	"math"
	"strings"
)

// Kind identifies a button shape.
type Kind int

const (
	Rectangle Kind = iota
	Parallelogram
	ParallelogramVertical
	Chevron
	ChevronVertical
	Pentagon
	Hexagon
	Ellipse
	TabRoundedCorners
	TabCutCorners
	TabCutCorner
)

var kindNames = map[Kind]string{
	Rectangle:             "rectangle",
	Parallelogram:         "parallelogram",
	ParallelogramVertical: "parallelogram-vertical",
	Chevron:               "chevron",
	ChevronVertical:       "chevron-vertical",
	Pentagon:              "pentagon",
	Hexagon:               "hexagon",
	Ellipse:               "ellipse",
	TabRoundedCorners:     "tab-rounded-corners",
	TabCutCorners:         "tab-cut-corners",
	TabCutCorner:          "tab-cut-corner",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind parses a shape name. Underscores and camel case are accepted,
// so "tab_cutCorners" and "tab-cut-corners" name the same shape.
func ParseKind(s string) (Kind, error) {
	norm := normalizeName(s)
	for k, name := range kindNames {
		if normalizeName(name) == norm {
			return k, nil
		}
	}
	return Rectangle, fmt.Errorf("unknown shape %q", s)
}

func normalizeName(s string) string {
	r := strings.NewReplacer("-", "", "_", "", " ", "")
	return strings.ToLower(r.Replace(s))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Vertical reports whether k slants along the vertical axis.
func (k Kind) Vertical() bool {
	return k == ParallelogramVertical || k == ChevronVertical
}

// Angled reports whether k is parametrized by a slant angle.
func (k Kind) Angled() bool {
	switch k {
	case Parallelogram, ParallelogramVertical, Chevron, ChevronVertical, Pentagon, Hexagon:
		return true
	}
	return false
}

// Cut reports whether k is parametrized by a cut length.
func (k Kind) Cut() bool {
	return k == TabCutCorners || k == TabCutCorner
}

// Trimmed reports whether outlines of kind k are inset from their box.
func (k Kind) Trimmed() bool {
	return k.Angled() || k.Cut()
}

// Interlocks reports whether neighbouring buttons of kind k are packed
// together by their trim so the slanted edges meet.
func (k Kind) Interlocks() bool {
	switch k {
	case Parallelogram, ParallelogramVertical, Chevron, ChevronVertical:
		return true
	}
	return false
}

// Axis returns the axis along which the trim is measured.
func (k Kind) Axis() Axis {
	if k.Vertical() {
		return AxisY
	}
	return AxisX
}

// Param returns the persisted settings property edited by the kind's handle,
// or "" when the kind has no handle.
func (k Kind) Param() string {
	switch k {
	case Parallelogram, ParallelogramVertical:
		return "parallelogramAngle"
	case Chevron, ChevronVertical:
		return "chevronAngle"
	case Pentagon:
		return "pentagonAngle"
	case Hexagon:
		return "hexagonAngle"
	case TabCutCorners:
		return "tabCutCornersLength"
	case TabCutCorner:
		return "tabCutCornerLength"
	}
	return ""
}

// Spec describes a shape. Angle is used by angled kinds, CutLength by cut
// tabs, and CornerRadius by every kind except ellipses and tabs.
type Spec struct {
	Kind         Kind    `json:"kind"`
	Angle        float64 `json:"angle,omitempty"`
	CutLength    float64 `json:"cut_length,omitempty"`
	CornerRadius float64 `json:"corner_radius,omitempty"`
}

// NewRectangle returns a rectangle spec.
func NewRectangle(radius float64) Spec {
	return Spec{Kind: Rectangle, CornerRadius: radius}
}

// NewParallelogram returns a parallelogram slanting along the x axis.
func NewParallelogram(angle, radius float64) Spec {
	return Spec{Kind: Parallelogram, Angle: angle, CornerRadius: radius}
}

// NewChevron returns a chevron pointing right.
func NewChevron(angle, radius float64) Spec {
	return Spec{Kind: Chevron, Angle: angle, CornerRadius: radius}
}

// NewPentagon returns a pentagon pointing right.
func NewPentagon(angle, radius float64) Spec {
	return Spec{Kind: Pentagon, Angle: angle, CornerRadius: radius}
}

// NewHexagon returns a hexagon with points on the left and right.
func NewHexagon(angle, radius float64) Spec {
	return Spec{Kind: Hexagon, Angle: angle, CornerRadius: radius}
}

// NewEllipse returns an ellipse spec.
func NewEllipse() Spec { return Spec{Kind: Ellipse} }

// NewTabRoundedCorners returns a tab with rounded top corners.
func NewTabRoundedCorners() Spec { return Spec{Kind: TabRoundedCorners} }

// NewTabCutCorners returns a tab with both top corners cut.
func NewTabCutCorners(length float64) Spec {
	return Spec{Kind: TabCutCorners, CutLength: length}
}

// NewTabCutCorner returns a tab with the top-right corner cut.
func NewTabCutCorner(length float64) Spec {
	return Spec{Kind: TabCutCorner, CutLength: length}
}

// ForArrangement returns the variant of s suited to a vertical or
// horizontal arrangement. Only parallelograms and chevrons have vertical
// variants.
func (s Spec) ForArrangement(vertical bool) Spec {
	switch {
	case vertical && s.Kind == Parallelogram:
		s.Kind = ParallelogramVertical
	case vertical && s.Kind == Chevron:
		s.Kind = ChevronVertical
	case !vertical && s.Kind == ParallelogramVertical:
		s.Kind = Parallelogram
	case !vertical && s.Kind == ChevronVertical:
		s.Kind = Chevron
	}
	return s
}

// Param returns the current value of the handle-edited parameter.
func (s Spec) Param() float64 {
	if s.Kind.Cut() {
		return s.CutLength
	}
	return s.Angle
}

// WithParam returns s with the handle-edited parameter set to v.
func (s Spec) WithParam(v float64) Spec {
	if s.Kind.Cut() {
		s.CutLength = v
	} else if s.Kind.Angled() {
		s.Angle = v
	}
	return s
}

const (
	minAngle = 1.0
	maxAngle = 179.0
)

// ClampAngle limits a slant angle in degrees to [1, 179]. NaN maps to 90,
// which produces no slant.
func ClampAngle(deg float64) float64 {
	if math.IsNaN(deg) {
		return 90
	}
	return math.Max(minAngle, math.Min(maxAngle, deg))
}

func tanDeg(deg float64) float64 {
	return math.Tan(ClampAngle(deg) * math.Pi / 180)
}
