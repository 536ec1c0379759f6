package sink

import (
	"image/color"
	"sync"

	"github.com/tdewolff/canvas"

	"github.com/matzehuels/buttonstrip/pkg/errors"
	"github.com/matzehuels/buttonstrip/pkg/fonts"
	"github.com/matzehuels/buttonstrip/pkg/frame"
	"github.com/matzehuels/buttonstrip/pkg/geometry"
)

// mmPerPx converts frame pixels (1/96 inch) into canvas millimetres.
const mmPerPx = 25.4 / 96

var transparent = color.RGBA{0, 0, 0, 0}

var (
	familyMu sync.Mutex
	families = map[fonts.Face]*canvas.FontFamily{}
)

func fontFamily(face fonts.Face) (*canvas.FontFamily, error) {
	familyMu.Lock()
	defer familyMu.Unlock()
	if f, ok := families[face]; ok {
		return f, nil
	}
	f := canvas.NewFontFamily(face.Name())
	if err := f.LoadFont(face.TTF(), 0, canvas.FontRegular); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load font %s", face.Name())
	}
	families[face] = f
	return f, nil
}

// drawFrame draws f onto a new canvas sized to the viewport.
func drawFrame(f frame.Frame) (*canvas.Canvas, error) {
	c := canvas.New(f.Viewport.Width*mmPerPx, f.Viewport.Height*mmPerPx)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)

	for _, d := range f.Drawables {
		if err := drawButton(ctx, d); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func drawButton(ctx *canvas.Context, d frame.Drawable) error {
	st := d.Style
	fill, err := toCanvasPath(d.Outline.Fill)
	if err != nil {
		return err
	}

	if s := st.Shadow; s != nil {
		ctx.SetFillColor(paintColor(s.Color, s.Opacity))
		ctx.SetStrokeColor(transparent)
		ctx.DrawPath(s.DX*mmPerPx, s.DY*mmPerPx, fill)
	}

	ctx.SetFillColor(paintColor(st.Fill, st.FillOpacity))
	ctx.SetStrokeColor(transparent)
	ctx.DrawPath(0, 0, fill)

	if st.StrokeWidth > 0 {
		stroke, err := toCanvasPath(d.Outline.Stroke)
		if err != nil {
			return err
		}
		ctx.SetFillColor(transparent)
		ctx.SetStrokeColor(paintColor(st.Stroke, 1))
		ctx.SetStrokeWidth(st.StrokeWidth * mmPerPx)
		ctx.SetStrokeJoiner(canvas.RoundJoin)
		ctx.DrawPath(0, 0, stroke)
	}

	return drawLabel(ctx, d)
}

func drawLabel(ctx *canvas.Context, d frame.Drawable) error {
	lbl, st := d.Label, d.Style
	if len(lbl.Lines) == 0 || st.FontSize <= 0 {
		return nil
	}
	family, err := fontFamily(fonts.Resolve(st.FontFamily))
	if err != nil {
		return err
	}
	face := family.Face(st.FontSize, paintColor(st.TextColor, st.TextOpacity), canvas.FontRegular, canvas.FontNormal)
	m := face.Metrics()

	align := canvas.Center
	switch lbl.Anchor {
	case "start":
		align = canvas.Left
	case "end":
		align = canvas.Right
	}
	for i, line := range lbl.Lines {
		center := (lbl.Box.Y + lbl.LineHeight*(float64(i)+0.5)) * mmPerPx
		baseline := center + (m.Ascent-m.Descent)/2
		ctx.DrawText(lbl.X*mmPerPx, baseline, canvas.NewTextLine(face, line, align))
	}
	return nil
}

func toCanvasPath(p geometry.Path) (*canvas.Path, error) {
	if len(p) == 0 {
		return &canvas.Path{}, nil
	}
	cp, err := canvas.ParseSVGPath(p.String())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "convert outline")
	}
	return cp.Transform(canvas.Identity.Scale(mmPerPx, mmPerPx)), nil
}

// paintColor parses a #rgb or #rrggbb color and applies opacity. Empty and
// unparsable colors are transparent.
func paintColor(hex string, opacity float64) color.Color {
	if hex == "" || hex == "none" || hex[0] != '#' {
		return transparent
	}
	c := canvas.Hex(hex)
	a := max(0, min(1, opacity)) * float64(c.A) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(255 * a),
	}
}
