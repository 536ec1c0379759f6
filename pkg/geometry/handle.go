package geometry

import "math"

// Axis is the direction a handle moves along.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
)

// handleInset keeps the vertical parallelogram handle inside the right edge.
const handleInset = 5

// Handle is a draggable control that edits a shape's trim.
//
// The handle sits at Origin + Direction*Trim along Axis. Dragging it to a
// position p yields the trim Direction*(p - Origin); on release the trim is
// converted back to the persisted shape parameter named by Param.
type Handle struct {
	Kind      Kind    `json:"kind"`
	Param     string  `json:"param"`
	Axis      Axis    `json:"axis"`
	AnchorX   float64 `json:"anchor_x"`
	AnchorY   float64 `json:"anchor_y"`
	Origin    float64 `json:"origin"`
	Direction float64 `json:"direction"`
	Trim      float64 `json:"trim"`
	Box       Box     `json:"box"`
}

func newHandle(k Kind, b Box, z float64) (Handle, bool) {
	h := Handle{Kind: k, Param: k.Param(), Axis: AxisX, Box: b, Direction: 1}
	switch k {
	case Parallelogram:
		h.Origin, h.AnchorY = b.X, b.Y
	case ParallelogramVertical:
		h.Axis, h.Origin, h.AnchorX = AxisY, b.Y, b.Right()-handleInset
	case ChevronVertical:
		h.Axis, h.Origin, h.AnchorX = AxisY, b.Y, b.CenterX()
	case Chevron, Pentagon, Hexagon, TabCutCorners, TabCutCorner:
		h.Origin, h.Direction, h.AnchorY = b.Right(), -1, b.Y
	default:
		return Handle{}, false
	}
	return h.At(z), true
}

// At returns the handle moved so that it encodes trim z.
func (h Handle) At(z float64) Handle {
	h.Trim = z
	pos := h.Origin + h.Direction*z
	if h.Axis == AxisY {
		h.AnchorY = pos
	} else {
		h.AnchorX = pos
	}
	return h
}

// TrimAt converts a drag position along the handle's axis into a trim.
// Cut lengths stay within the handle's box.
func (h Handle) TrimAt(pos float64) float64 {
	z := h.Direction * (finite(pos) - h.Origin)
	if h.Kind.Cut() {
		z = clampCut(z, cutLimit(h.Kind, h.Box))
	}
	return z
}

// Position picks the coordinate of (x, y) that lies on the handle's axis.
func (h Handle) Position(x, y float64) float64 {
	if h.Axis == AxisY {
		return y
	}
	return x
}

// Value returns the exact shape parameter encoded by trim z.
func (h Handle) Value(z float64) float64 {
	return InverseParam(h.Kind, h.Box, z)
}

// Persisted returns the shape parameter for trim z rounded to a whole
// number, as stored in settings.
func (h Handle) Persisted(z float64) float64 {
	return math.Round(h.Value(z))
}
