package geometry

import "math"

type corner struct {
	at         point
	start, end point
	radius     float64
	sweep      bool
	rounded    bool
}

// roundCorners replaces each selected vertex of a polyline with a circular
// arc tangent to both adjacent segments. The tangent length is limited to
// half of each adjacent segment, so neighbouring arcs never overlap and a
// rectangle ends up with 2r <= min(w, h).
func roundCorners(pts []point, radius float64, closed bool) Path {
	var p Path
	n := len(pts)
	if n == 0 {
		return p
	}

	corners := make([]corner, n)
	for i, v := range pts {
		corners[i] = corner{at: v, start: v, end: v}
		if radius <= 0 || (!closed && (i == 0 || i == n-1)) || n < 3 {
			continue
		}
		prev := pts[(i-1+n)%n]
		next := pts[(i+1)%n]
		corners[i] = fillet(prev, v, next, radius)
	}

	cur := corners[0].end
	p.MoveTo(cur.x, cur.y)
	for i := 1; i < n; i++ {
		emitCorner(&p, corners[i], &cur)
	}
	if closed {
		if corners[0].rounded {
			emitCorner(&p, corners[0], &cur)
		}
		p.Close()
	}
	return p
}

// emitCorner draws up to c and advances cur. The straight run is skipped
// when the arcs on both sides of a segment already meet.
func emitCorner(p *Path, c corner, cur *point) {
	if !c.rounded {
		p.LineTo(c.at.x, c.at.y)
		*cur = c.at
		return
	}
	if !samePoint(*cur, c.start) {
		p.LineTo(c.start.x, c.start.y)
	}
	p.ArcTo(c.radius, c.radius, 0, false, c.sweep, c.end.x, c.end.y)
	*cur = c.end
}

func samePoint(a, b point) bool {
	return math.Abs(a.x-b.x) < 1e-9 && math.Abs(a.y-b.y) < 1e-9
}

func fillet(prev, v, next point, radius float64) corner {
	c := corner{at: v, start: v, end: v}

	ax, ay := prev.x-v.x, prev.y-v.y
	bx, by := next.x-v.x, next.y-v.y
	la, lb := math.Hypot(ax, ay), math.Hypot(bx, by)
	if la == 0 || lb == 0 {
		return c
	}

	cos := (ax*bx + ay*by) / (la * lb)
	theta := math.Acos(math.Max(-1, math.Min(1, cos)))
	half := math.Tan(theta / 2)
	if theta < 1e-6 || math.Pi-theta < 1e-6 || half == 0 {
		return c
	}

	d := math.Min(radius/half, math.Min(la, lb)/2)
	c.radius = d * half
	c.start = point{v.x + ax/la*d, v.y + ay/la*d}
	c.end = point{v.x + bx/lb*d, v.y + by/lb*d}

	// In screen coordinates (y down) a positive cross product of the incoming
	// and outgoing directions is a clockwise turn.
	inX, inY := v.x-prev.x, v.y-prev.y
	c.sweep = inX*by-inY*bx > 0
	c.rounded = true
	return c
}
