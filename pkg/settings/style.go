package settings

import (
	"math"

	"github.com/matzehuels/buttonstrip/pkg/geometry"
	"github.com/matzehuels/buttonstrip/pkg/layout"
	"github.com/matzehuels/buttonstrip/pkg/state"
)

// Style is the fully resolved look of a single button.
type Style struct {
	Fill        string  `json:"fill"`
	FillOpacity float64 `json:"fill_opacity"`
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"stroke_width"`

	TextColor   string  `json:"text_color"`
	TextOpacity float64 `json:"text_opacity"`
	FontSize    float64 `json:"font_size"`
	FontFamily  string  `json:"font_family"`
	TextAlign   string  `json:"text_align"`
	TextHMargin float64 `json:"text_hmargin"`
	TextBMargin float64 `json:"text_bmargin"`

	Icon   *IconStyle `json:"icon,omitempty"`
	Shadow *Shadow    `json:"shadow,omitempty"`
	Glow   *Glow      `json:"glow,omitempty"`
}

// IconStyle places an icon next to the label.
type IconStyle struct {
	Placement    string  `json:"placement"`
	Width        float64 `json:"width"`
	HMargin      float64 `json:"hmargin"`
	TopMargin    float64 `json:"top_margin"`
	BottomMargin float64 `json:"bottom_margin"`
	Opacity      float64 `json:"opacity"`
}

// Shadow is a drop shadow offset by (DX, DY).
type Shadow struct {
	Color    string  `json:"color"`
	Opacity  float64 `json:"opacity"`
	DX       float64 `json:"dx"`
	DY       float64 `json:"dy"`
	Strength float64 `json:"strength"`
}

// Glow is a blur around the shape.
type Glow struct {
	Color    string  `json:"color"`
	Opacity  float64 `json:"opacity"`
	Strength float64 `json:"strength"`
}

// StyleFor returns the style of a button in the given interaction state.
// Selection wins over hover, and hover only applies to groups with hover
// styling enabled.
func (s *Settings) StyleFor(selected, hovered bool) Style {
	str := func(r state.Record[string], ed Editor) string { return r.For(selected, hovered, ed.Hover) }
	num := func(r state.Record[float64], ed Editor) float64 { return r.For(selected, hovered, ed.Hover) }

	b, st, t := s.Button, s.Stroke, s.Text
	style := Style{
		Fill:        str(b.Color, b.Editor),
		FillOpacity: opacity(num(b.Transparency, b.Editor)),
		Stroke:      str(st.Color, st.Editor),
		StrokeWidth: math.Max(0, num(st.Width, st.Editor)),
		TextColor:   str(t.Color, t.Editor),
		TextOpacity: opacity(num(t.Transparency, t.Editor)),
		FontSize:    num(t.FontSize, t.Editor),
		FontFamily:  str(t.FontFamily, t.Editor),
		TextAlign:   str(t.Alignment, t.Editor),
		TextHMargin: num(t.HMargin, t.Editor),
		TextBMargin: num(t.BMargin, t.Editor),
	}

	if i := s.Icon; i.Show {
		style.Icon = &IconStyle{
			Placement:    str(i.Placement, i.Editor),
			Width:        num(i.Width, i.Editor),
			HMargin:      num(i.HMargin, i.Editor),
			TopMargin:    num(i.TopMargin, i.Editor),
			BottomMargin: num(i.BottomMargin, i.Editor),
			Opacity:      opacity(num(i.Transparency, i.Editor)),
		}
	}

	e := s.Effects
	if e.Shadow {
		dx, dy := Direction(str(e.ShadowDirection, e.Editor)).Coords()
		d := num(e.ShadowDistance, e.Editor)
		style.Shadow = &Shadow{
			Color:    str(e.ShadowColor, e.Editor),
			Opacity:  opacity(num(e.ShadowTransparency, e.Editor)),
			DX:       dx * d,
			DY:       dy * d,
			Strength: num(e.ShadowStrength, e.Editor),
		}
	}
	if e.Glow {
		style.Glow = &Glow{
			Color:    str(e.GlowColor, e.Editor),
			Opacity:  opacity(num(e.GlowTransparency, e.Editor)),
			Strength: num(e.GlowStrength, e.Editor),
		}
	}
	return style
}

// opacity converts a transparency percentage into an opacity in [0, 1].
func opacity(transparency float64) float64 {
	if math.IsNaN(transparency) {
		return 1
	}
	return math.Max(0, math.Min(1, 1-transparency/100))
}

// EffectSpace is the room reserved around every button for stroke, shadow
// and glow. It takes the largest value over all states so the layout does
// not shift when selection or hover changes.
func (s *Settings) EffectSpace() float64 {
	e := s.Effects
	var shadow, glow float64
	if e.Shadow {
		shadow = 3 * (peak(e.ShadowDistance) + peak(e.ShadowStrength))
	}
	if e.Glow {
		glow = 3 * peak(e.GlowStrength)
	}
	return math.Max(0, math.Max(shadow, math.Max(glow, peak(s.Stroke.Width))))
}

func peak(r state.Record[float64]) float64 {
	return math.Max(r.Selected, math.Max(r.Unselected, r.Hover))
}

// Policy returns the layout policy described by s.
func (s *Settings) Policy() layout.Policy {
	l := s.Layout
	return layout.Policy{
		Sizing:      l.Sizing,
		Arrangement: l.Arrangement,
		RowLength:   l.RowLength,
		FixedWidth:  l.ButtonWidth,
		FixedHeight: l.ButtonHeight,
		Alignment:   l.Alignment,
		Padding:     l.Padding,
		EffectSpace: s.EffectSpace(),
	}
}

// ShapeSpec returns the button shape described by s, using the vertical
// variant of slanted shapes in a vertical arrangement.
func (s *Settings) ShapeSpec() geometry.Spec {
	l := s.Layout
	r := s.Effects.CornerRadius
	var spec geometry.Spec
	switch l.Shape {
	case geometry.Parallelogram, geometry.ParallelogramVertical:
		spec = geometry.NewParallelogram(l.ParallelogramAngle, r)
	case geometry.Chevron, geometry.ChevronVertical:
		spec = geometry.NewChevron(l.ChevronAngle, r)
	case geometry.Pentagon:
		spec = geometry.NewPentagon(l.PentagonAngle, r)
	case geometry.Hexagon:
		spec = geometry.NewHexagon(l.HexagonAngle, r)
	case geometry.Ellipse:
		spec = geometry.NewEllipse()
	case geometry.TabRoundedCorners:
		spec = geometry.NewTabRoundedCorners()
	case geometry.TabCutCorners:
		spec = geometry.NewTabCutCorners(l.TabCutCornersLength)
	case geometry.TabCutCorner:
		spec = geometry.NewTabCutCorner(l.TabCutCornerLength)
	default:
		spec = geometry.NewRectangle(r)
	}
	return spec.ForArrangement(l.Arrangement == layout.Vertical)
}

// ParamPatch returns the patch persisting value as the parameter edited by
// the handle of kind k.
func ParamPatch(k geometry.Kind, value float64) Patch {
	key := k.Param()
	if key == "" {
		return Patch{}
	}
	return Patch{GroupLayout: state.Patch{key: value}}
}
