package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/matzehuels/buttonstrip/pkg/fonts"
	"github.com/matzehuels/buttonstrip/pkg/frame"
	"github.com/matzehuels/buttonstrip/pkg/geometry"
)

const interactionCSS = `
    .button { cursor: pointer; }
    .button .fill { transition: fill 0.15s ease, fill-opacity 0.15s ease; }
    .handle { fill: #ffffff; stroke: #1f6feb; stroke-width: 1.5; }
    .handle[data-axis="x"] { cursor: ew-resize; }
    .handle[data-axis="y"] { cursor: ns-resize; }`

const handleRadius = 5

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	handles bool
	embed   bool
	css     bool
}

// WithHandles draws the shape handles present in the frame.
func WithHandles() SVGOption { return func(r *svgRenderer) { r.handles = true } }

// WithEmbeddedFonts embeds the Go faces used by the labels as @font-face
// data URLs so text renders the same without installed fonts.
func WithEmbeddedFonts() SVGOption { return func(r *svgRenderer) { r.embed = true } }

// WithoutInteraction leaves out the interaction stylesheet.
func WithoutInteraction() SVGOption { return func(r *svgRenderer) { r.css = false } }

// RenderSVG renders f as a standalone SVG document.
func RenderSVG(f frame.Frame, opts ...SVGOption) []byte {
	r := svgRenderer{css: true}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := f.Viewport.Width, f.Viewport.Height
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		num(w), num(h), num(w), num(h))

	r.renderDefs(&buf, f)
	for _, d := range f.Drawables {
		renderButton(&buf, d)
	}
	if r.handles {
		for _, d := range f.Drawables {
			for _, hd := range d.Outline.Handles {
				renderHandle(&buf, d, hd)
			}
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r svgRenderer) renderDefs(buf *bytes.Buffer, f frame.Frame) {
	var css strings.Builder
	if r.embed {
		for _, face := range usedFaces(f) {
			fmt.Fprintf(&css, "\n    @font-face { font-family: '%s'; src: url(data:font/ttf;base64,%s) format('truetype'); }",
				face.Name(), face.Base64())
		}
	}
	if r.css {
		css.WriteString(interactionCSS)
	}
	if css.Len() > 0 {
		fmt.Fprintf(buf, "  <style>%s\n  </style>\n", css.String())
	}

	var filters bytes.Buffer
	for _, d := range f.Drawables {
		renderFilter(&filters, d)
	}
	if filters.Len() > 0 {
		buf.WriteString("  <defs>\n")
		buf.Write(filters.Bytes())
		buf.WriteString("  </defs>\n")
	}
}

func usedFaces(f frame.Frame) []fonts.Face {
	seen := map[fonts.Face]bool{}
	var out []fonts.Face
	for _, d := range f.Drawables {
		face := fonts.Resolve(d.Style.FontFamily)
		if !seen[face] {
			seen[face] = true
			out = append(out, face)
		}
	}
	return out
}

func renderFilter(buf *bytes.Buffer, d frame.Drawable) {
	st := d.Style
	if st.Shadow == nil && st.Glow == nil {
		return
	}
	fmt.Fprintf(buf, `    <filter id="%s" x="-50%%" y="-50%%" width="200%%" height="200%%">`+"\n", filterID(d))
	if g := st.Glow; g != nil {
		fmt.Fprintf(buf, `      <feDropShadow dx="0" dy="0" stdDeviation="%s" flood-color="%s" flood-opacity="%s"/>`+"\n",
			num(g.Strength/2), escape(g.Color), num(g.Opacity))
	}
	if s := st.Shadow; s != nil {
		fmt.Fprintf(buf, `      <feDropShadow dx="%s" dy="%s" stdDeviation="%s" flood-color="%s" flood-opacity="%s"/>`+"\n",
			num(s.DX), num(s.DY), num(s.Strength/2), escape(s.Color), num(s.Opacity))
	}
	buf.WriteString("    </filter>\n")
}

func filterID(d frame.Drawable) string { return fmt.Sprintf("effects-%d", d.Index) }

func renderButton(buf *bytes.Buffer, d frame.Drawable) {
	st := d.Style
	class := "button"
	if d.Selected {
		class += " selected"
	}
	if d.Hovered {
		class += " hovered"
	}
	fmt.Fprintf(buf, `  <g class="%s" data-id="%s" data-index="%d">`+"\n", class, escape(d.Item.ID), d.Index)

	filter := ""
	if st.Shadow != nil || st.Glow != nil {
		filter = fmt.Sprintf(` filter="url(#%s)"`, filterID(d))
	}
	fmt.Fprintf(buf, `    <path class="fill" d="%s" fill="%s" fill-opacity="%s" stroke="none"%s/>`+"\n",
		d.Outline.Fill, paint(st.Fill), num(st.FillOpacity), filter)
	if st.StrokeWidth > 0 {
		fmt.Fprintf(buf, `    <path class="stroke" d="%s" fill="none" stroke="%s" stroke-width="%s" stroke-linejoin="round"/>`+"\n",
			d.Outline.Stroke, paint(st.Stroke), num(st.StrokeWidth))
	}

	if ic := d.Icon; ic != nil && ic.Box.W > 0 && ic.Box.H > 0 {
		fmt.Fprintf(buf, `    <image class="icon" href="%s" x="%s" y="%s" width="%s" height="%s" opacity="%s" preserveAspectRatio="xMidYMid meet"/>`+"\n",
			escape(ic.URL), num(ic.Box.X), num(ic.Box.Y), num(ic.Box.W), num(ic.Box.H), num(ic.Opacity))
	}
	renderLabel(buf, d)
	buf.WriteString("  </g>\n")
}

func renderLabel(buf *bytes.Buffer, d frame.Drawable) {
	lbl, st := d.Label, d.Style
	if len(lbl.Lines) == 0 {
		return
	}
	fmt.Fprintf(buf, `    <text class="label" font-family="%s" font-size="%s" fill="%s" fill-opacity="%s" text-anchor="%s" dominant-baseline="central">`,
		escape(fonts.CSSFamily(st.FontFamily)), num(lbl.FontSize), paint(st.TextColor), num(st.TextOpacity), lbl.Anchor)
	for i, line := range lbl.Lines {
		y := lbl.Box.Y + lbl.LineHeight*(float64(i)+0.5)
		fmt.Fprintf(buf, `<tspan x="%s" y="%s">%s</tspan>`, num(lbl.X), num(y), escape(line))
	}
	buf.WriteString("</text>\n")
}

func renderHandle(buf *bytes.Buffer, d frame.Drawable, h geometry.Handle) {
	fmt.Fprintf(buf, `  <circle class="handle" data-id="%s" data-axis="%s" data-param="%s" cx="%s" cy="%s" r="%d"/>`+"\n",
		escape(d.Item.ID), h.Axis, h.Param, num(h.AnchorX), num(h.AnchorY), handleRadius)
}

func paint(color string) string {
	if color == "" {
		return "none"
	}
	return escape(color)
}

func num(v float64) string { return geometry.FormatNumber(v) }

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
