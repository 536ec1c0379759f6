package frame

import (
	"math"
	"strconv"

	"github.com/matzehuels/buttonstrip/pkg/errors"
	"github.com/matzehuels/buttonstrip/pkg/geometry"
	"github.com/matzehuels/buttonstrip/pkg/layout"
	"github.com/matzehuels/buttonstrip/pkg/settings"
	"github.com/matzehuels/buttonstrip/pkg/textmetrics"
)

// Compute runs one render pass. A nil measurer uses [textmetrics.Approx];
// nil settings use [settings.Default]. The input settings are not modified.
func Compute(in Input, m textmetrics.Measurer) (Frame, error) {
	if err := errors.ValidateViewport(in.Viewport.Width, in.Viewport.Height); err != nil {
		return Frame{}, err
	}
	if err := errors.ValidateItemCount(len(in.Items)); err != nil {
		return Frame{}, err
	}
	if m == nil {
		m = textmetrics.Approx{}
	}

	s := settings.Default()
	if in.Settings != nil {
		s = in.Settings.Clone()
	}
	patch, _ := s.Resolve()

	items, err := normalizeItems(in.Items)
	if err != nil {
		return Frame{}, err
	}
	if in.Drag != nil && (in.Drag.Item < 0 || in.Drag.Item >= len(items)) {
		return Frame{}, errors.New(errors.ErrCodeItemNotFound, "drag item %d out of range", in.Drag.Item)
	}

	selected := make(map[string]bool, len(in.Selected))
	for _, id := range in.Selected {
		selected[id] = true
	}

	n := len(items)
	styles := make([]settings.Style, n)
	widths := make([]float64, n)
	margins := make([]float64, n)
	for i, it := range items {
		st := s.StyleFor(selected[it.ID], it.ID == in.Hovered && in.Hovered != "")
		styles[i] = st
		widths[i] = m.Measure(it.Text, st.FontFamily, st.FontSize, 0).Width
		margins[i] = st.TextHMargin
	}

	policy := s.Policy()
	opts := []layout.Option{layout.WithShape(s.ShapeSpec()), layout.WithText(widths, margins)}
	if in.Drag != nil {
		opts = append(opts, layout.WithFrozenTrim(in.Drag.Trim))
	}
	l := layout.Compute(n, policy, in.Viewport, opts...)

	f := Frame{
		Viewport:    in.Viewport,
		Shape:       l.Shape,
		Trim:        l.Trim,
		EffectSpace: policy.EffectSpace,
		RowCount:    l.RowCount,
		Drawables:   make([]Drawable, 0, n),
	}
	if !patch.Empty() {
		f.Patch = patch
	}

	outlineOpts := geometry.Options{DragInProgress: in.Drag != nil, Trim: l.Trim}
	for i, li := range l.Items {
		it := items[i]
		g := geometry.Outline(l.Shape, li.Box, outlineOpts)
		if !in.Edit {
			g.Handles = nil
		}
		d := Drawable{
			Item:     it,
			Index:    i,
			Row:      li.Row,
			Selected: selected[it.ID],
			Hovered:  in.Hovered != "" && it.ID == in.Hovered,
			Outline:  g,
			Style:    styles[i],
		}
		d.Label, d.Icon = place(it, styles[i], g.Content, m)
		f.Drawables = append(f.Drawables, d)
	}
	return f, nil
}

// normalizeItems fills in missing IDs with the item index and rejects
// invalid or duplicate IDs.
func normalizeItems(in []Item) ([]Item, error) {
	out := make([]Item, len(in))
	seen := make(map[string]bool, len(in))
	for i, it := range in {
		if it.ID == "" {
			it.ID = strconv.Itoa(i)
		}
		if err := errors.ValidateItemID(it.ID); err != nil {
			return nil, err
		}
		if seen[it.ID] {
			return nil, errors.New(errors.ErrCodeInvalidInput, "duplicate item id %q", it.ID)
		}
		seen[it.ID] = true
		out[i] = it
	}
	return out, nil
}

// place positions the label and icon of a button inside its content box.
func place(it Item, st settings.Style, content geometry.Box, m textmetrics.Measurer) (Label, *Icon) {
	icon := st.Icon
	if it.Icon == "" {
		icon = nil
	}

	inner := geometry.Box{X: content.X + st.TextHMargin, Y: content.Y, W: math.Max(0, content.W-2*st.TextHMargin), H: content.H}
	wrap := inner.W
	if icon != nil && icon.Placement == settings.IconLeft {
		wrap -= icon.Width + icon.HMargin
	}
	wrap = math.Max(1, math.Floor(wrap))

	lines := textmetrics.Lines(m, it.Text, st.FontFamily, st.FontSize, wrap)
	size := m.Measure(it.Text, st.FontFamily, st.FontSize, wrap)
	lbl := Label{Lines: lines, FontSize: textmetrics.PtToPx(st.FontSize)}
	if len(lines) > 0 {
		lbl.LineHeight = size.Height / float64(len(lines))
	}
	blockH := size.Height + st.TextBMargin

	if icon == nil {
		lbl.Box = alignBox(inner, size.Width, st.TextAlign)
		lbl.Box.Y = content.Y + (content.H-blockH)/2
		lbl.Box.H = size.Height
		lbl.X, lbl.Anchor = anchor(lbl.Box, st.TextAlign)
		return lbl, nil
	}

	out := &Icon{URL: it.Icon, Opacity: icon.Opacity}
	switch icon.Placement {
	case settings.IconAbove, settings.IconBelow:
		room := math.Max(0, content.H-blockH-icon.TopMargin-icon.BottomMargin)
		w := math.Max(0, math.Min(icon.Width, content.W-2*icon.HMargin))
		out.Box = geometry.Box{X: content.CenterX() - w/2, W: w, H: room}

		lbl.Box = alignBox(inner, size.Width, st.TextAlign)
		lbl.Box.H = size.Height
		if icon.Placement == settings.IconAbove {
			out.Box.Y = content.Y + icon.TopMargin
			lbl.Box.Y = out.Box.Bottom() + icon.BottomMargin
		} else {
			lbl.Box.Y = content.Y
			out.Box.Y = content.Y + blockH + icon.TopMargin
		}
		lbl.X, lbl.Anchor = anchor(lbl.Box, st.TextAlign)
	default:
		group := alignBox(inner, icon.Width+icon.HMargin+size.Width, st.TextAlign)
		out.Box = geometry.Box{X: group.X, Y: content.CenterY() - icon.Width/2, W: icon.Width, H: icon.Width}
		lbl.Box = geometry.Box{
			X: group.X + icon.Width + icon.HMargin,
			Y: content.Y + (content.H-blockH)/2,
			W: size.Width,
			H: size.Height,
		}
		lbl.X, lbl.Anchor = lbl.Box.X, "start"
	}
	return lbl, out
}

// alignBox places a block of width w inside b.
func alignBox(b geometry.Box, w float64, align string) geometry.Box {
	out := geometry.Box{X: b.X, Y: b.Y, W: w, H: b.H}
	switch align {
	case "right":
		out.X = b.Right() - w
	case "left":
	default:
		out.X = b.X + (b.W-w)/2
	}
	return out
}

func anchor(b geometry.Box, align string) (float64, string) {
	switch align {
	case "left":
		return b.X, "start"
	case "right":
		return b.Right(), "end"
	}
	return b.CenterX(), "middle"
}
