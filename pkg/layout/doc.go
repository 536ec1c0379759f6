// Package layout places a strip of buttons inside a viewport.
//
// # Rows
//
// Buttons are assigned to rows by the effective row length: all buttons
// share one row in a horizontal arrangement, each button gets its own row in
// a vertical arrangement, and a grid wraps after [Policy.RowLength] buttons.
// Every [Item] carries its row number, its index within the row and the
// number of buttons in its row; the last row of a grid may be short.
//
// # Sizing
//
// Three sizing methods are supported:
//
//   - [Uniform]: every button gets an equal share of the viewport.
//   - [Fixed]: buttons use the policy's fixed size and are aligned left,
//     center or right within each row.
//   - [Dynamic]: widths are proportional to each button's measured text
//     width so the row exactly fills the viewport. A row whose text is all
//     empty falls back to equal widths.
//
// # Interlocking shapes
//
// Parallelograms and chevrons are packed by their trim: the effective
// padding on the slant axis is the nominal padding minus the trim, so the
// slanted edges of neighbours run parallel at the nominal distance instead
// of leaving a triangular gap. The trim is derived once from the first
// button's box (or taken from [WithFrozenTrim] during a handle drag) and
// shared by the whole pass.
//
// Compute never fails. Zero buttons produce an empty layout, row lengths
// below one are treated as one, negative padding as zero, and all sizes are
// clamped to be non-negative.
package layout
