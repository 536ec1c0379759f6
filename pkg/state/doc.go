// Package state reconciles per-state style records.
//
// Every style attribute of a button (fill color, font size, text margin, ...)
// carries up to four values: one for all states and one each for selected,
// unselected and hovered buttons. Settings editors expose one of those
// values at a time, selected by the record's active state, so a stored
// record can drift into an inconsistent shape: an "all" value that no longer
// matches the per-state values, or per-state values that agree but were
// never summarized.
//
// [Resolve] levels a [Record] back into a consistent shape:
//
//   - With the "all" state active and an "all" value present, that value is
//     copied to every per-state field.
//   - Otherwise, when the per-state values agree, they collapse upward into
//     the "all" field.
//   - Otherwise the "all" field is cleared.
//
// The [Result] records which fields changed so callers can persist a minimal
// [Patch] instead of rewriting whole settings objects. Divergent per-state
// values are the normal steady state and are not reported as errors.
//
// Values are strings (colors, font families, enum names) or numbers (sizes,
// margins, percentages). A string value exists when it is non-empty; a
// numeric value exists when it is non-negative. See [Exists] and [Empty].
package state
