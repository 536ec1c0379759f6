package settings

import (
	"math"

	"github.com/matzehuels/buttonstrip/pkg/errors"
	"github.com/matzehuels/buttonstrip/pkg/geometry"
	"github.com/matzehuels/buttonstrip/pkg/layout"
	"github.com/matzehuels/buttonstrip/pkg/state"
)

// Patch is a minimal settings update keyed by group name.
type Patch map[string]state.Patch

// Empty reports whether p changes nothing.
func (p Patch) Empty() bool {
	for _, gp := range p {
		if len(gp) > 0 {
			return false
		}
	}
	return true
}

// Merge copies every entry of other into p.
func (p Patch) Merge(other Patch) {
	for name, gp := range other {
		if len(gp) == 0 {
			continue
		}
		if p[name] == nil {
			p[name] = state.Patch{}
		}
		p[name].Merge(gp)
	}
}

// Resolve levels every state record of s in place and returns the patch
// that persists the result. The editor state of each group decides which
// slot is authoritative; when hover styling is disabled the hover slot is
// left alone. The bool reports whether anything changed.
func (s *Settings) Resolve() (Patch, bool) {
	patch := Patch{}
	for _, g := range s.groups() {
		if g.editor == nil {
			continue
		}
		gp := state.Patch{}
		for _, a := range g.strs {
			resolveInto(gp, a.name, a.rec, *g.editor)
		}
		for _, a := range g.nums {
			resolveInto(gp, a.name, a.rec, *g.editor)
		}
		if len(gp) > 0 {
			patch[g.name] = gp
		}
	}
	return patch, !patch.Empty()
}

func resolveInto[T state.Value](p state.Patch, attr string, rec *state.Record[T], ed Editor) {
	rec.Active = ed.State
	rec.NoHover = !ed.Hover
	res := state.Resolve(*rec)
	*rec = res.Record
	res.AppendTo(p, attr)
}

// Validate checks that s describes a drawable strip.
func (s *Settings) Validate() error {
	for _, g := range s.groups() {
		if g.editor == nil {
			continue
		}
		if _, err := state.ParseState(string(g.editor.State)); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidSettings, err, "%s.state", g.name)
		}
		for _, a := range g.nums {
			for _, st := range state.States {
				v := a.rec.Get(st)
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return errors.New(errors.ErrCodeInvalidSettings, "%s.%s is not a finite number", g.name, state.Key(a.name, st))
				}
			}
		}
	}

	l := s.Layout
	if _, err := layout.ParseSizing(string(l.Sizing)); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidSettings, err, "layout.sizingMethod")
	}
	if _, err := layout.ParseArrangement(string(l.Arrangement)); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidSettings, err, "layout.buttonLayout")
	}
	if _, err := layout.ParseAlignment(string(l.Alignment)); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidSettings, err, "layout.buttonAlignment")
	}
	if _, err := geometry.ParseKind(l.Shape.String()); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidShape, err, "layout.buttonShape")
	}
	for _, f := range []struct {
		key string
		v   float64
	}{
		{"buttonWidth", l.ButtonWidth},
		{"buttonHeight", l.ButtonHeight},
		{"padding", l.Padding},
		{"tabCutCornersLength", l.TabCutCornersLength},
		{"tabCutCornerLength", l.TabCutCornerLength},
	} {
		if math.IsNaN(f.v) || f.v < 0 {
			return errors.New(errors.ErrCodeInvalidLayout, "layout.%s must be a non-negative number", f.key)
		}
	}
	if l.RowLength < 1 {
		return errors.New(errors.ErrCodeInvalidLayout, "layout.rowLength must be at least 1")
	}
	return nil
}
