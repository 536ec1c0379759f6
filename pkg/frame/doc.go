// Package frame turns items, interaction state and settings into drawable
// buttons.
//
// [Compute] is one render pass: it resolves the per-state settings, picks
// the style of every button from its selection and hover state, measures
// the labels, lays the strip out and computes each button's outline and
// label placement. The resulting [Frame] is plain data; the sink package
// turns it into SVG, PNG, PDF or JSON.
//
// While a shape handle is dragged the caller passes a [Drag] so the pass
// reuses the trim under the pointer instead of deriving it from the shape
// parameter. Without that the buttons would jump back on every repaint.
package frame
