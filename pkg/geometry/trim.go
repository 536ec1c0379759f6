package geometry

import "math"

// Trim returns the inset z that s introduces for box b. Kinds without a
// slant or cut return 0.
func (s Spec) Trim(b Box) float64 {
	b = b.Sanitize()
	switch s.Kind {
	case Parallelogram:
		return b.H / tanDeg(s.Angle)
	case ParallelogramVertical:
		return b.W / tanDeg(s.Angle)
	case Chevron, Pentagon, Hexagon:
		return 0.5 * b.H / tanDeg(s.Angle)
	case ChevronVertical:
		return 0.5 * b.W / tanDeg(s.Angle)
	case TabCutCorners, TabCutCorner:
		return clampCut(s.CutLength, cutLimit(s.Kind, b))
	}
	return 0
}

// InverseParam converts a trim back into the shape parameter that produces
// it for box b: the slant angle in degrees for angled kinds, the cut length
// for cut tabs. It is the exact inverse of [Spec.Trim] for angles within
// [1, 179].
func InverseParam(k Kind, b Box, z float64) float64 {
	b = b.Sanitize()
	z = finite(z)
	var rad float64
	switch k {
	case Parallelogram:
		rad = math.Atan2(b.H, z)
	case ParallelogramVertical:
		rad = math.Atan2(b.W, z)
	case Chevron, Pentagon, Hexagon:
		rad = math.Atan2(b.H, 2*z)
	case ChevronVertical:
		rad = math.Atan2(b.W, 2*z)
	case TabCutCorners, TabCutCorner:
		return clampCut(z, cutLimit(k, b))
	default:
		return 0
	}
	return ClampAngle(rad * 180 / math.Pi)
}

// cutLimit is the longest cut that keeps the outline of a cut tab simple.
func cutLimit(k Kind, b Box) float64 {
	if k == TabCutCorners {
		return math.Min(b.W/2, b.H)
	}
	return math.Min(b.W, b.H)
}

func clampCut(v, limit float64) float64 {
	v = finite(v)
	if v < 0 {
		return 0
	}
	return math.Min(v, limit)
}
