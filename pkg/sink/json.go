package sink

import (
	"encoding/json"

	"github.com/matzehuels/buttonstrip/pkg/errors"
	"github.com/matzehuels/buttonstrip/pkg/frame"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	compact bool
	handles bool
}

// WithCompactJSON writes the frame without indentation.
func WithCompactJSON() JSONOption { return func(r *jsonRenderer) { r.compact = true } }

// WithJSONHandles keeps shape handles in the output. They are dropped by
// default since they only matter to interactive editors.
func WithJSONHandles() JSONOption { return func(r *jsonRenderer) { r.handles = true } }

// RenderJSON exports the frame. [ReadJSON] reads the output back.
func RenderJSON(f frame.Frame, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	if !r.handles {
		ds := make([]frame.Drawable, len(f.Drawables))
		for i, d := range f.Drawables {
			d.Outline.Handles = nil
			ds[i] = d
		}
		f.Drawables = ds
	}

	if r.compact {
		return json.Marshal(f)
	}
	return json.MarshalIndent(f, "", "  ")
}

// ReadJSON parses a frame written by [RenderJSON].
func ReadJSON(data []byte) (frame.Frame, error) {
	var f frame.Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return frame.Frame{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse frame json")
	}
	return f, nil
}
