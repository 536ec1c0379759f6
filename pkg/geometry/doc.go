// Package geometry turns button boxes into drawable outlines.
//
// # Shapes
//
// A [Spec] names a shape kind and carries its parameters: a slant angle for
// parallelograms, chevrons, pentagons and hexagons, a cut length for the cut
// tab variants, and an optional corner radius. [Outline] is the single entry
// point: given a spec and a [Box] it returns the fill path, the stroke path,
// the content rectangle available for text and icons, the trim, and the
// interactive handles.
//
// # Trim
//
// Slanted and cut shapes inset part of their outline from the bounding box.
// That inset, the trim, is a function of the box and the shape parameter:
//
//	parallelogram:               z = h / tan(angle)
//	parallelogram (vertical):    z = w / tan(angle)
//	chevron, pentagon, hexagon:  z = h/2 / tan(angle)
//	chevron (vertical):          z = w/2 / tan(angle)
//	cut tabs:                    z = cut length
//
// Angles are clamped to [1°, 179°] before the tangent is taken, so the trim
// is always finite. While a handle is being dragged the caller passes the
// dragged trim through [Options] and every outline in the pass uses it
// verbatim, which keeps the slanted edges of siblings aligned.
//
// # Paths
//
// Paths use absolute SVG commands (M, L, A, Z). [Path.String] formats
// coordinates with at most three decimals and [ParsePath] reads the same
// grammar back, which lets stored frames be re-rendered by raster sinks.
package geometry
