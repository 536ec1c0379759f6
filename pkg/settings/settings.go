package settings

import (
	"github.com/matzehuels/buttonstrip/pkg/fonts"
	"github.com/matzehuels/buttonstrip/pkg/geometry"
	"github.com/matzehuels/buttonstrip/pkg/layout"
	"github.com/matzehuels/buttonstrip/pkg/state"
)

// Group names as they appear in persisted settings.
const (
	GroupButton  = "button"
	GroupStroke  = "stroke"
	GroupText    = "text"
	GroupIcon    = "icon"
	GroupEffects = "effects"
	GroupLayout  = "layout"
)

// Groups lists every settings group in persistence order.
var Groups = []string{GroupButton, GroupStroke, GroupText, GroupIcon, GroupEffects, GroupLayout}

// Editor is the editing state shared by every styling group: which state's
// values the editor shows, and whether hover styling is enabled.
type Editor struct {
	State state.State
	Hover bool
}

// Button holds the fill of the button shape.
type Button struct {
	Editor
	Color        state.Record[string]
	Transparency state.Record[float64]
}

// Stroke holds the outline of the button shape.
type Stroke struct {
	Editor
	Color state.Record[string]
	Width state.Record[float64]
}

// Text holds the label style.
type Text struct {
	Editor
	Color        state.Record[string]
	Transparency state.Record[float64]
	FontSize     state.Record[float64]
	FontFamily   state.Record[string]
	Alignment    state.Record[string]
	HMargin      state.Record[float64]
	BMargin      state.Record[float64]
}

// Icon placements.
const (
	IconLeft  = "left"
	IconAbove = "above"
	IconBelow = "below"
)

// Icon holds the optional icon drawn next to the label.
type Icon struct {
	Editor
	Show         bool
	Placement    state.Record[string]
	Width        state.Record[float64]
	HMargin      state.Record[float64]
	TopMargin    state.Record[float64]
	BottomMargin state.Record[float64]
	Transparency state.Record[float64]
}

// Effects holds shadow, glow and corner rounding.
type Effects struct {
	Editor
	Shadow             bool
	ShadowColor        state.Record[string]
	ShadowTransparency state.Record[float64]
	ShadowDirection    state.Record[string]
	ShadowDistance     state.Record[float64]
	ShadowStrength     state.Record[float64]
	Glow               bool
	GlowColor          state.Record[string]
	GlowTransparency   state.Record[float64]
	GlowStrength       state.Record[float64]
	CornerRadius       float64
}

// Layout holds strip-wide sizing, arrangement and shape parameters.
type Layout struct {
	Sizing              layout.Sizing
	Arrangement         layout.Arrangement
	RowLength           int
	ButtonWidth         float64
	ButtonHeight        float64
	Alignment           layout.Alignment
	Padding             float64
	Shape               geometry.Kind
	ParallelogramAngle  float64
	ChevronAngle        float64
	PentagonAngle       float64
	HexagonAngle        float64
	TabCutCornersLength float64
	TabCutCornerLength  float64
}

// Settings is the complete persisted configuration of a button strip.
type Settings struct {
	Button  Button
	Stroke  Stroke
	Text    Text
	Icon    Icon
	Effects Effects
	Layout  Layout
}

// Default returns the settings of a freshly created strip.
func Default() *Settings {
	u := state.Uniform[string]
	n := state.Uniform[float64]
	all := Editor{State: state.All}
	p := layout.DefaultPolicy()

	return &Settings{
		Button: Button{Editor: all, Color: u("#f3f3f3"), Transparency: n(0)},
		Stroke: Stroke{Editor: all, Color: u("#000000"), Width: n(2)},
		Text: Text{
			Editor:       all,
			Color:        u("#000000"),
			Transparency: n(0),
			FontSize:     n(14),
			FontFamily:   u(fonts.DefaultFamily),
			Alignment:    u("center"),
			HMargin:      n(5),
			BMargin:      n(0),
		},
		Icon: Icon{
			Editor:       all,
			Placement:    u(IconLeft),
			Width:        n(40),
			HMargin:      n(10),
			TopMargin:    n(10),
			BottomMargin: n(10),
			Transparency: n(0),
		},
		Effects: Effects{
			Editor:             all,
			ShadowColor:        u("#000000"),
			ShadowTransparency: n(70),
			ShadowDirection:    u(string(BottomRight)),
			ShadowDistance:     n(2),
			ShadowStrength:     n(10),
			GlowColor:          u("#000000"),
			GlowTransparency:   n(70),
			GlowStrength:       n(10),
		},
		Layout: Layout{
			Sizing:              p.Sizing,
			Arrangement:         p.Arrangement,
			RowLength:           p.RowLength,
			ButtonWidth:         p.FixedWidth,
			ButtonHeight:        p.FixedHeight,
			Alignment:           p.Alignment,
			Padding:             p.Padding,
			Shape:               geometry.Rectangle,
			ParallelogramAngle:  63,
			ChevronAngle:        63,
			PentagonAngle:       63,
			HexagonAngle:        63,
			TabCutCornersLength: 10,
			TabCutCornerLength:  10,
		},
	}
}

// Clone returns a deep copy of s.
func (s *Settings) Clone() *Settings {
	c := *s
	return &c
}
