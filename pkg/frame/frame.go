package frame

import (
	"github.com/matzehuels/buttonstrip/pkg/geometry"
	"github.com/matzehuels/buttonstrip/pkg/layout"
	"github.com/matzehuels/buttonstrip/pkg/settings"
)

// Item is one button's content.
type Item struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Icon string `json:"icon,omitempty"`
}

// Drag freezes the trim of the strip while the handle of Item is moved.
type Drag struct {
	Item int     `json:"item"`
	Trim float64 `json:"trim"`
}

// Input is everything a render pass depends on.
type Input struct {
	Items    []Item             `json:"items"`
	Selected []string           `json:"selected,omitempty"`
	Hovered  string             `json:"hovered,omitempty"`
	Viewport layout.Viewport    `json:"viewport"`
	Settings *settings.Settings `json:"settings,omitempty"`
	Drag     *Drag              `json:"drag,omitempty"`

	// Edit keeps shape handles in the frame.
	Edit bool `json:"edit,omitempty"`
}

// Label is the placed, wrapped text of a button. Box is the text block;
// lines are LineHeight apart starting at its top. Anchor is "start",
// "middle" or "end" and X the matching horizontal anchor position.
type Label struct {
	Lines      []string     `json:"lines"`
	Box        geometry.Box `json:"box"`
	X          float64      `json:"x"`
	Anchor     string       `json:"anchor"`
	LineHeight float64      `json:"line_height"`
	FontSize   float64      `json:"font_size"`
}

// Icon is a placed icon image.
type Icon struct {
	URL     string       `json:"url"`
	Box     geometry.Box `json:"box"`
	Opacity float64      `json:"opacity"`
}

// Drawable is a fully resolved button.
type Drawable struct {
	Item     Item              `json:"item"`
	Index    int               `json:"index"`
	Row      int               `json:"row"`
	Selected bool              `json:"selected,omitempty"`
	Hovered  bool              `json:"hovered,omitempty"`
	Outline  geometry.Geometry `json:"outline"`
	Style    settings.Style    `json:"style"`
	Label    Label             `json:"label"`
	Icon     *Icon             `json:"icon,omitempty"`
}

// Frame is the output of one render pass.
type Frame struct {
	Viewport    layout.Viewport `json:"viewport"`
	Shape       geometry.Spec   `json:"shape"`
	Trim        float64         `json:"trim"`
	EffectSpace float64         `json:"effect_space"`
	RowCount    int             `json:"row_count"`
	Drawables   []Drawable      `json:"drawables"`

	// Patch holds the settings changes made by resolution in this pass.
	// Hosts persist it when it is not empty.
	Patch settings.Patch `json:"patch,omitempty"`
}

// Find returns the drawable with the given item ID.
func (f Frame) Find(id string) (Drawable, bool) {
	for _, d := range f.Drawables {
		if d.Item.ID == id {
			return d, true
		}
	}
	return Drawable{}, false
}

// HitTest returns the drawable whose box contains (x, y).
func (f Frame) HitTest(x, y float64) (Drawable, bool) {
	for _, d := range f.Drawables {
		if d.Outline.Box.Contains(x, y) {
			return d, true
		}
	}
	return Drawable{}, false
}
