package geometry

import "math"

// TabCornerRadius is the fixed radius of rounded tab corners.
const TabCornerRadius = 20

// Options controls a single [Outline] call.
type Options struct {
	// DragInProgress freezes the trim at Trim instead of deriving it from
	// the box and the shape parameter.
	DragInProgress bool
	Trim           float64
}

// Geometry is the drawable result for one button.
type Geometry struct {
	Kind    Kind     `json:"kind"`
	Box     Box      `json:"box"`
	Fill    Path     `json:"fill"`
	Stroke  Path     `json:"stroke"`
	Content Box      `json:"content"`
	Trim    float64  `json:"trim"`
	Handles []Handle `json:"handles,omitempty"`
}

// Outline computes the outline of s inside box b. It never fails: degenerate
// boxes are clamped to zero size and out-of-range angles are clamped before
// the trim is derived.
func Outline(s Spec, b Box, opts Options) Geometry {
	b = b.Sanitize()
	z := s.Trim(b)
	if opts.DragInProgress && s.Kind.Trimmed() {
		z = finite(opts.Trim)
		if s.Kind.Cut() {
			z = clampCut(z, cutLimit(s.Kind, b))
		}
	}

	g := Geometry{Kind: s.Kind, Box: b, Trim: z, Content: b}
	r := math.Max(0, finite(s.CornerRadius))
	x, y, w, h := b.X, b.Y, b.W, b.H

	switch s.Kind {
	case Parallelogram:
		g.Fill = polygon(r, pt(x+z, y), pt(x+w, y), pt(x+w-z, y+h), pt(x, y+h))
		g.Content = insetX(b, math.Abs(z), math.Abs(z))
	case ParallelogramVertical:
		g.Fill = polygon(r, pt(x, y), pt(x+w, y+z), pt(x+w, y+h), pt(x, y+h-z))
		g.Content = insetY(b, math.Abs(z), math.Abs(z))
	case Chevron:
		g.Fill = polygon(r, pt(x, y), pt(x+w-z, y), pt(x+w, y+h/2), pt(x+w-z, y+h), pt(x, y+h), pt(x+z, y+h/2))
		g.Content = insetX(b, math.Abs(z), math.Abs(z))
	case ChevronVertical:
		g.Fill = polygon(r, pt(x, y), pt(x+w/2, y+z), pt(x+w, y), pt(x+w, y+h-z), pt(x+w/2, y+h), pt(x, y+h-z))
		g.Content = insetY(b, math.Abs(z), math.Abs(z))
	case Pentagon:
		g.Fill = polygon(r, pt(x, y), pt(x+w-z, y), pt(x+w, y+h/2), pt(x+w-z, y+h), pt(x, y+h))
		g.Content = insetX(b, 0, math.Abs(z))
	case Hexagon:
		g.Fill = polygon(r, pt(x+z, y), pt(x+w-z, y), pt(x+w, y+h/2), pt(x+w-z, y+h), pt(x+z, y+h), pt(x, y+h/2))
		g.Content = insetX(b, math.Abs(z), math.Abs(z))
	case Ellipse:
		g.Fill = ellipse(b)
	case TabRoundedCorners:
		g.Fill = polyline(TabCornerRadius, pt(x, y+h), pt(x, y), pt(x+w, y), pt(x+w, y+h))
		g.Fill.Close()
	case TabCutCorners:
		g.Fill = polygon(0, pt(x, y+h), pt(x, y+z), pt(x+z, y), pt(x+w-z, y), pt(x+w, y+z), pt(x+w, y+h))
	case TabCutCorner:
		g.Fill = polygon(0, pt(x, y+h), pt(x, y), pt(x+w-z, y), pt(x+w, y+z), pt(x+w, y+h))
	default:
		g.Fill = polygon(r, pt(x, y), pt(x+w, y), pt(x+w, y+h), pt(x, y+h))
	}

	switch s.Kind {
	case TabRoundedCorners, TabCutCorners, TabCutCorner:
		g.Stroke = g.Fill.Open()
	default:
		g.Stroke = g.Fill
	}

	if h, ok := newHandle(s.Kind, b, z); ok {
		g.Handles = []Handle{h}
	}
	return g
}

func ellipse(b Box) Path {
	var p Path
	rx, ry := b.W/2, b.H/2
	cy := b.CenterY()
	p.MoveTo(b.X, cy)
	p.ArcTo(rx, ry, 0, true, false, b.Right(), cy)
	p.ArcTo(rx, ry, 0, true, false, b.X, cy)
	p.Close()
	return p
}

func insetX(b Box, left, right float64) Box {
	return Box{X: b.X + left, Y: b.Y, W: nonNegative(b.W - left - right), H: b.H}
}

func insetY(b Box, top, bottom float64) Box {
	return Box{X: b.X, Y: b.Y + top, W: b.W, H: nonNegative(b.H - top - bottom)}
}
