package geometry

import (
	"math"
	"strconv"
	"strings"
)

// Op is a path command letter.
type Op byte

const (
	MoveTo Op = 'M'
	LineTo Op = 'L'
	ArcTo  Op = 'A'
	Close  Op = 'Z'
)

// Command is one path segment. RX, RY, Rotation, LargeArc and Sweep are
// used by ArcTo only.
type Command struct {
	Op       Op
	X, Y     float64
	RX, RY   float64
	Rotation float64
	LargeArc bool
	Sweep    bool
}

// Path is a sequence of absolute path commands.
type Path []Command

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	*p = append(*p, Command{Op: MoveTo, X: x, Y: y})
}

// LineTo draws a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) {
	*p = append(*p, Command{Op: LineTo, X: x, Y: y})
}

// ArcTo draws an elliptical arc to (x, y).
func (p *Path) ArcTo(rx, ry, rotation float64, largeArc, sweep bool, x, y float64) {
	*p = append(*p, Command{Op: ArcTo, RX: rx, RY: ry, Rotation: rotation, LargeArc: largeArc, Sweep: sweep, X: x, Y: y})
}

// Close closes the current subpath.
func (p *Path) Close() {
	*p = append(*p, Command{Op: Close})
}

// Closed reports whether the path ends with a close command.
func (p Path) Closed() bool {
	return len(p) > 0 && p[len(p)-1].Op == Close
}

// Open returns a copy of the path without its trailing close command.
func (p Path) Open() Path {
	n := len(p)
	if p.Closed() {
		n--
	}
	out := make(Path, n)
	copy(out, p[:n])
	return out
}

// Bounds returns the bounding box of the path's end points. Arc bulges are
// not included.
func (p Path) Bounds() Box {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range p {
		if c.Op == Close {
			continue
		}
		minX, maxX = math.Min(minX, c.X), math.Max(maxX, c.X)
		minY, maxY = math.Min(minY, c.Y), math.Max(maxY, c.Y)
	}
	if math.IsInf(minX, 1) {
		return Box{}
	}
	return Box{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// String renders the path in SVG path syntax, for example
// "M 0 0 L 100 0 L 100 50 L 0 50 Z".
func (p Path) String() string {
	var sb strings.Builder
	for i, c := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte(c.Op))
		switch c.Op {
		case MoveTo, LineTo:
			writeNums(&sb, c.X, c.Y)
		case ArcTo:
			writeNums(&sb, c.RX, c.RY, c.Rotation, flag(c.LargeArc), flag(c.Sweep), c.X, c.Y)
		}
	}
	return sb.String()
}

func writeNums(sb *strings.Builder, vs ...float64) {
	for _, v := range vs {
		sb.WriteByte(' ')
		sb.WriteString(FormatNumber(v))
	}
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// FormatNumber formats v rounded to three decimals without trailing zeros.
// Negative zero and non-finite values are written as 0.
func FormatNumber(v float64) string {
	v = math.Round(finite(v)*1000) / 1000
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// polygon builds a closed path through pts, rounding every corner by radius.
func polygon(radius float64, pts ...point) Path {
	return roundCorners(pts, radius, true)
}

// polyline builds an open path through pts, rounding interior corners by radius.
func polyline(radius float64, pts ...point) Path {
	return roundCorners(pts, radius, false)
}

type point struct{ x, y float64 }

func pt(x, y float64) point { return point{x, y} }
