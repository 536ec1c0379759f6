package layout

import (
	"fmt"
	"strings"
)

// Sizing selects how button sizes are derived.
type Sizing string

const (
	Uniform Sizing = "uniform"
	Fixed   Sizing = "fixed"
	Dynamic Sizing = "dynamic"
)

// Arrangement selects how buttons wrap into rows.
type Arrangement string

const (
	Horizontal Arrangement = "horizontal"
	Vertical   Arrangement = "vertical"
	Grid       Arrangement = "grid"
)

// Alignment positions fixed-size buttons within a row.
type Alignment string

const (
	Left   Alignment = "left"
	Center Alignment = "center"
	Right  Alignment = "right"
)

// ParseSizing parses a sizing method name.
func ParseSizing(s string) (Sizing, error) {
	switch v := Sizing(strings.ToLower(s)); v {
	case Uniform, Fixed, Dynamic:
		return v, nil
	}
	return Uniform, fmt.Errorf("unknown sizing method %q", s)
}

// ParseArrangement parses an arrangement name.
func ParseArrangement(s string) (Arrangement, error) {
	switch v := Arrangement(strings.ToLower(s)); v {
	case Horizontal, Vertical, Grid:
		return v, nil
	}
	return Horizontal, fmt.Errorf("unknown layout %q", s)
}

// ParseAlignment parses an alignment name.
func ParseAlignment(s string) (Alignment, error) {
	switch v := Alignment(strings.ToLower(s)); v {
	case Left, Center, Right:
		return v, nil
	}
	return Left, fmt.Errorf("unknown alignment %q", s)
}

// Default policy values.
const (
	DefaultRowLength   = 2
	DefaultFixedWidth  = 150
	DefaultFixedHeight = 75
	DefaultPadding     = 10
)

// Policy controls sizing and placement.
//
// RowLength is only consulted for [Grid] arrangements. FixedWidth,
// FixedHeight and Alignment only apply to [Fixed] sizing. EffectSpace is the
// room reserved around each button for stroke, shadow and glow.
type Policy struct {
	Sizing      Sizing      `json:"sizing" toml:"sizing"`
	Arrangement Arrangement `json:"arrangement" toml:"arrangement"`
	RowLength   int         `json:"row_length" toml:"row_length"`
	FixedWidth  float64     `json:"fixed_width" toml:"fixed_width"`
	FixedHeight float64     `json:"fixed_height" toml:"fixed_height"`
	Alignment   Alignment   `json:"alignment" toml:"alignment"`
	Padding     float64     `json:"padding" toml:"padding"`
	EffectSpace float64     `json:"effect_space" toml:"effect_space"`
}

// DefaultPolicy returns a horizontal strip of uniformly sized buttons.
func DefaultPolicy() Policy {
	return Policy{
		Sizing:      Uniform,
		Arrangement: Horizontal,
		RowLength:   DefaultRowLength,
		FixedWidth:  DefaultFixedWidth,
		FixedHeight: DefaultFixedHeight,
		Alignment:   Left,
		Padding:     DefaultPadding,
	}
}

// RowLengthFor returns the effective row length for n buttons: n for a
// horizontal strip, 1 for a vertical one, and RowLength (at least 1) for a
// grid. The result is never below 1.
func (p Policy) RowLengthFor(n int) int {
	switch p.Arrangement {
	case Vertical:
		return 1
	case Grid:
		return max(1, p.RowLength)
	default:
		return max(1, n)
	}
}

// Viewport is the drawing area in pixels.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
