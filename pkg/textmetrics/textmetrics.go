// Package textmetrics measures rendered label text.
//
// Dynamic button sizing needs the width of each label as it will be drawn.
// [Faces] measures with real glyph advances from the embedded Go fonts;
// [Approx] is a dependency-free estimate for callers that cannot load fonts.
package textmetrics

import (
	"math"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/buttonstrip/pkg/fonts"
)

// DPI converts point sizes to pixels (CSS pixels are 1/96 inch).
const DPI = 96

// Size is a measured text extent in pixels.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Measurer reports the rendered size of text in a font family and size.
// A wrapWidth greater than zero wraps the text at word boundaries.
type Measurer interface {
	Measure(text, family string, sizePt, wrapWidth float64) Size
}

// Wrapper is implemented by measurers that can report where text breaks.
type Wrapper interface {
	Wrap(text, family string, sizePt, wrapWidth float64) []string
}

// Lines returns text broken into lines as m would measure it. Measurers
// that do not implement [Wrapper] keep the text on one line.
func Lines(m Measurer, text, family string, sizePt, wrapWidth float64) []string {
	if w, ok := m.(Wrapper); ok {
		return w.Wrap(text, family, sizePt, wrapWidth)
	}
	if text == "" {
		return nil
	}
	return []string{text}
}

// PtToPx converts a font size in points to pixels.
func PtToPx(pt float64) float64 { return pt * DPI / 72 }

type faceKey struct {
	face fonts.Face
	size float64
}

// Faces measures text with opentype faces. Parsed fonts and sized faces are
// cached; a Faces value is safe for concurrent use.
type Faces struct {
	mu    sync.Mutex
	fonts map[fonts.Face]*opentype.Font
	faces map[faceKey]font.Face
}

// NewFaces returns an empty face cache.
func NewFaces() *Faces {
	return &Faces{
		fonts: make(map[fonts.Face]*opentype.Font),
		faces: make(map[faceKey]font.Face),
	}
}

// Measure implements Measurer.
func (f *Faces) Measure(text, family string, sizePt, wrapWidth float64) Size {
	if text == "" || sizePt <= 0 || math.IsNaN(sizePt) {
		return Size{}
	}
	face, err := f.face(fonts.Resolve(family), sizePt)
	if err != nil {
		return Approx{}.Measure(text, family, sizePt, wrapWidth)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	lineHeight := fixedToFloat(face.Metrics().Height)
	advance := func(s string) float64 { return fixedToFloat(font.MeasureString(face, s)) }
	return layoutLines(text, wrapWidth, lineHeight, advance)
}

// Wrap implements Wrapper.
func (f *Faces) Wrap(text, family string, sizePt, wrapWidth float64) []string {
	if text == "" {
		return nil
	}
	face, err := f.face(fonts.Resolve(family), sizePt)
	if err != nil {
		return Approx{}.Wrap(text, family, sizePt, wrapWidth)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return breakLines(text, wrapWidth, func(s string) float64 { return fixedToFloat(font.MeasureString(face, s)) })
}

func (f *Faces) face(which fonts.Face, sizePt float64) (font.Face, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := faceKey{which, sizePt}
	if face, ok := f.faces[key]; ok {
		return face, nil
	}
	parsed, ok := f.fonts[which]
	if !ok {
		var err error
		parsed, err = opentype.Parse(which.TTF())
		if err != nil {
			return nil, err
		}
		f.fonts[which] = parsed
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    sizePt,
		DPI:     DPI,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	f.faces[key] = face
	return face, nil
}

// Close releases cached faces.
func (f *Faces) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for k, face := range f.faces {
		_ = face.Close()
		delete(f.faces, k)
	}
	return nil
}

// Approx estimates text size from the rune count. CharWidth and LineHeight
// are ratios of the pixel font size; zero values use 0.55 and 1.2.
type Approx struct {
	CharWidth  float64
	LineHeight float64
}

// Measure implements Measurer.
func (a Approx) Measure(text, _ string, sizePt, wrapWidth float64) Size {
	if text == "" || sizePt <= 0 || math.IsNaN(sizePt) {
		return Size{}
	}
	cw, lh := a.CharWidth, a.LineHeight
	if cw <= 0 {
		cw = 0.55
	}
	if lh <= 0 {
		lh = 1.2
	}
	px := PtToPx(sizePt)
	advance := func(s string) float64 { return float64(utf8.RuneCountInString(s)) * px * cw }
	return layoutLines(text, wrapWidth, px*lh, advance)
}

// Wrap implements Wrapper.
func (a Approx) Wrap(text, _ string, sizePt, wrapWidth float64) []string {
	if text == "" {
		return nil
	}
	cw := a.CharWidth
	if cw <= 0 {
		cw = 0.55
	}
	px := PtToPx(sizePt)
	return breakLines(text, wrapWidth, func(s string) float64 { return float64(utf8.RuneCountInString(s)) * px * cw })
}

// layoutLines measures the lines produced by breakLines.
func layoutLines(text string, wrapWidth, lineHeight float64, advance func(string) float64) Size {
	lines := breakLines(text, wrapWidth, advance)
	var width float64
	for _, l := range lines {
		width = math.Max(width, advance(l))
	}
	return Size{Width: width, Height: float64(len(lines)) * lineHeight}
}

// breakLines greedily fills lines no wider than wrapWidth, breaking at
// spaces. Words wider than the wrap width occupy a line of their own.
func breakLines(text string, wrapWidth float64, advance func(string) float64) []string {
	if wrapWidth <= 0 || math.IsNaN(wrapWidth) {
		return []string{text}
	}

	var lines []string
	var cur string
	for _, word := range strings.Fields(text) {
		if cur == "" {
			cur = word
			continue
		}
		if candidate := cur + " " + word; advance(candidate) <= wrapWidth {
			cur = candidate
			continue
		}
		lines = append(lines, cur)
		cur = word
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
