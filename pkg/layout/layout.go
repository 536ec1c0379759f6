package layout

import (
	"math"

	"github.com/matzehuels/buttonstrip/pkg/geometry"
)

// Item is the placement of one button.
type Item struct {
	Index      int          `json:"index"`
	Row        int          `json:"row"`
	IndexInRow int          `json:"index_in_row"`
	ItemsInRow int          `json:"items_in_row"`
	Box        geometry.Box `json:"box"`
}

// Layout is the result of one layout pass.
type Layout struct {
	Items     []Item        `json:"items"`
	RowCount  int           `json:"row_count"`
	RowLength int           `json:"row_length"`
	Shape     geometry.Spec `json:"shape"`
	Trim      float64       `json:"trim"`
	HPadding  float64       `json:"h_padding"`
	VPadding  float64       `json:"v_padding"`
}

// Bounds returns the smallest box containing every button.
func (l Layout) Bounds() geometry.Box {
	if len(l.Items) == 0 {
		return geometry.Box{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, it := range l.Items {
		minX, minY = math.Min(minX, it.Box.X), math.Min(minY, it.Box.Y)
		maxX, maxY = math.Max(maxX, it.Box.Right()), math.Max(maxY, it.Box.Bottom())
	}
	return geometry.Box{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// HitTest returns the index of the button whose box contains (x, y).
func (l Layout) HitTest(x, y float64) (int, bool) {
	for _, it := range l.Items {
		if it.Box.Contains(x, y) {
			return it.Index, true
		}
	}
	return -1, false
}

// Option configures a layout pass.
type Option func(*engine)

// WithShape sets the button shape. Interlocking shapes tighten the padding on
// their slant axis. Parallelograms and chevrons switch to their vertical
// variants in a vertical arrangement.
func WithShape(s geometry.Spec) Option { return func(e *engine) { e.shape = s } }

// WithText supplies the measured text width and horizontal text margin of
// each button, used by [Dynamic] sizing. Missing entries count as zero.
func WithText(widths, margins []float64) Option {
	return func(e *engine) { e.textWidths, e.textMargins = widths, margins }
}

// WithFrozenTrim fixes the trim for the pass instead of deriving it from the
// first button. Used while a shape handle is being dragged.
func WithFrozenTrim(z float64) Option {
	return func(e *engine) { e.frozen, e.trim = true, z }
}

type engine struct {
	policy      Policy
	viewport    Viewport
	shape       geometry.Spec
	textWidths  []float64
	textMargins []float64
	frozen      bool
	trim        float64

	n, rowLength, rowCount int
	hPad, vPad             float64
}

// Compute lays out n buttons in the viewport.
func Compute(n int, policy Policy, vp Viewport, opts ...Option) Layout {
	e := &engine{policy: sanitizePolicy(policy), viewport: sanitizeViewport(vp)}
	for _, opt := range opts {
		opt(e)
	}
	e.shape = e.shape.ForArrangement(e.policy.Arrangement == Vertical)
	if n <= 0 {
		return Layout{Items: []Item{}, RowLength: e.policy.RowLengthFor(0), Shape: e.shape}
	}
	return e.run(n)
}

func (e *engine) run(n int) Layout {
	p := e.policy
	e.n = n
	e.rowLength = p.RowLengthFor(n)
	e.rowCount = (n + e.rowLength - 1) / e.rowLength
	e.hPad, e.vPad = p.Padding, p.Padding

	if !e.frozen {
		first := e.size()
		if ws := e.rowWidths(0, e.itemsInRow(0)); len(ws) > 0 {
			first.W = ws[0]
		}
		e.trim = e.shape.Trim(first)
	}
	if e.shape.Kind.Interlocks() {
		if e.shape.Kind.Axis() == geometry.AxisY {
			e.vPad -= e.trim
		} else {
			e.hPad -= e.trim
		}
	}

	base := e.size()
	items := make([]Item, 0, n)
	for row := 0; row < e.rowCount; row++ {
		start := row * e.rowLength
		k := e.itemsInRow(start)
		widths := e.rowWidths(start, k)

		var widthSoFar float64
		for idx := 0; idx < k; idx++ {
			b := base
			if widths != nil {
				b.W = widths[idx]
			}
			b.X = e.x(idx, k, b.W, widthSoFar)
			b.Y = float64(row)*(b.H+e.vPad+p.EffectSpace) + p.EffectSpace/2
			widthSoFar += b.W

			items = append(items, Item{
				Index:      start + idx,
				Row:        row,
				IndexInRow: idx,
				ItemsInRow: k,
				Box:        b.Sanitize(),
			})
		}
	}

	return Layout{
		Items:     items,
		RowCount:  e.rowCount,
		RowLength: e.rowLength,
		Shape:     e.shape,
		Trim:      e.trim,
		HPadding:  e.hPad,
		VPadding:  e.vPad,
	}
}

func (e *engine) itemsInRow(i int) int {
	row := i / e.rowLength
	if row == e.rowCount-1 && e.n%e.rowLength != 0 {
		return e.n % e.rowLength
	}
	return e.rowLength
}

// size returns the button size shared by every item under the current
// padding. Dynamic widths are filled in per row by rowWidths.
func (e *engine) size() geometry.Box {
	p, vp := e.policy, e.viewport
	if p.Sizing == Fixed {
		return geometry.Box{W: p.FixedWidth, H: p.FixedHeight}
	}

	rl, rows := float64(e.rowLength), float64(e.rowCount)
	w := (vp.Width-e.hPad*(rl-1))/rl - p.EffectSpace
	h := (vp.Height-e.vPad*(rows-1))/rows - p.EffectSpace
	return geometry.Box{W: clamp(w), H: clamp(h)}
}

// rowWidths distributes the row's available width in proportion to text
// width. It returns nil unless the policy uses dynamic sizing.
func (e *engine) rowWidths(start, k int) []float64 {
	p := e.policy
	if p.Sizing != Dynamic {
		return nil
	}

	var total, margins float64
	for i := start; i < start+k; i++ {
		total += at(e.textWidths, i)
		margins += 2 * at(e.textMargins, i)
	}

	widths := make([]float64, k)
	gaps := float64(k-1) * e.hPad
	if total <= 0 {
		// No text to weigh by: the row falls back to uniform sizing.
		uniform := e.size().W
		for idx := range widths {
			widths[idx] = uniform
		}
		return widths
	}

	available := e.viewport.Width - gaps - margins
	for idx := range widths {
		i := start + idx
		w := at(e.textWidths, i)*(available/total) + 2*at(e.textMargins, i) - p.EffectSpace
		widths[idx] = clamp(w)
	}
	return widths
}

func (e *engine) x(idx, k int, w, widthSoFar float64) float64 {
	p := e.policy
	fi := float64(idx)
	half := p.EffectSpace / 2

	switch p.Sizing {
	case Fixed:
		areaTaken := float64(k)*w + float64(k-1)*e.hPad
		areaRemaining := e.viewport.Width - areaTaken
		var offset float64
		switch p.Alignment {
		case Right:
			offset = areaRemaining
		case Center:
			offset = areaRemaining / 2
		}
		return offset + fi*(w+e.hPad) + half
	case Dynamic:
		return widthSoFar + fi*(e.hPad+p.EffectSpace) + half
	default:
		return fi*(w+e.hPad+p.EffectSpace) + half
	}
}

func at(vs []float64, i int) float64 {
	if i < 0 || i >= len(vs) {
		return 0
	}
	return clamp(vs[i])
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func sanitizePolicy(p Policy) Policy {
	p.Padding = clamp(p.Padding)
	p.EffectSpace = clamp(p.EffectSpace)
	p.FixedWidth = clamp(p.FixedWidth)
	p.FixedHeight = clamp(p.FixedHeight)
	switch p.Sizing {
	case Uniform, Fixed, Dynamic:
	default:
		p.Sizing = Uniform
	}
	switch p.Arrangement {
	case Horizontal, Vertical, Grid:
	default:
		p.Arrangement = Horizontal
	}
	return p
}

func sanitizeViewport(vp Viewport) Viewport {
	return Viewport{Width: clamp(vp.Width), Height: clamp(vp.Height)}
}
