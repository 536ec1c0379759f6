// Package settings holds the persisted button strip settings and derives
// per-button styles from them.
//
// Settings are split into groups: button fill, stroke, text, icon, effects
// and layout. Every styling attribute of the first five groups is a
// four-state [state.Record]; each of those groups also stores the state
// currently being edited and whether hover styling is enabled. Layout
// settings apply to the strip as a whole and are not per state.
//
// # Persisted shape
//
// On disk every group is a flat object. A state record for attribute "color"
// is stored as colorA, colorS, colorU and colorH (all, selected, unselected
// and hover) next to the group's "state" and "hover" keys:
//
//	[button]
//	state = "selected"
//	hover = true
//	colorA = ""
//	colorS = "#1f6feb"
//	colorU = "#f6f8fa"
//	colorH = "#dbe9ff"
//
// [Load] and [Settings.Save] read and write TOML or JSON files with that shape;
// [Settings.Decode] and [Settings.Encode] work on the flat objects directly.
//
// # Resolution
//
// [Settings.Resolve] levels every record with [state.Resolve] and returns a
// [Patch] containing only the keys whose values changed, grouped by settings
// object. It must run after settings are loaded and before styles are
// derived with [Settings.StyleFor].
package settings
