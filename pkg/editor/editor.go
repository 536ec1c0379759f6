// Package editor drives the interactive handle drag loop.
//
// A [Session] starts from a frame computed in edit mode. Every pointer
// move yields a [frame.Drag] that the host threads into the next render
// pass, which keeps the trim frozen across the strip while the handle
// moves. Ending the session converts the final trim back into the shape
// parameter and returns the settings patch to persist.
//
//	sess, err := editor.Begin(f, "home")
//	in.Drag = sess.Move(x, y)
//	f, _ = frame.Compute(in, m)
//	sess.Track(f)
//	value, patch := sess.End()
package editor

import (
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/buttonstrip/pkg/errors"
	"github.com/matzehuels/buttonstrip/pkg/frame"
	"github.com/matzehuels/buttonstrip/pkg/geometry"
	"github.com/matzehuels/buttonstrip/pkg/settings"
)

// Session is one drag of one handle.
type Session struct {
	ID      uuid.UUID       `json:"id"`
	Item    string          `json:"item"`
	Index   int             `json:"index"`
	Handle  geometry.Handle `json:"handle"`
	Trim    float64         `json:"trim"`
	Started time.Time       `json:"started"`

	// LastSeen is refreshed by the store on every update; idle sessions
	// expire relative to it.
	LastSeen time.Time `json:"last_seen"`

	// Input is the render input the session was started from. Hosts that
	// re-render on every move keep it here.
	Input frame.Input `json:"-"`
}

// Begin starts a session on the handle of itemID. The frame must have been
// computed in edit mode so that it carries handles.
func Begin(f frame.Frame, itemID string) (*Session, error) {
	d, ok := f.Find(itemID)
	if !ok {
		return nil, errors.New(errors.ErrCodeItemNotFound, "item %q not in frame", itemID)
	}
	if len(d.Outline.Handles) == 0 {
		if !d.Outline.Kind.Trimmed() {
			return nil, errors.New(errors.ErrCodeInvalidShape, "shape %s has no handle", d.Outline.Kind)
		}
		return nil, errors.New(errors.ErrCodeInvalidInput, "frame has no handles; compute it in edit mode")
	}
	h := d.Outline.Handles[0]
	now := time.Now()
	return &Session{
		ID:       uuid.New(),
		Item:     itemID,
		Index:    d.Index,
		Handle:   h,
		Trim:     h.Trim,
		Started:  now,
		LastSeen: now,
	}, nil
}

// Move drags the handle to (x, y). Only the coordinate on the handle's
// axis is used.
func (s *Session) Move(x, y float64) frame.Drag {
	s.Trim = s.Handle.TrimAt(s.Handle.Position(x, y))
	s.Handle = s.Handle.At(s.Trim)
	return s.Drag()
}

// Drag returns the drag state to pass into the next render pass.
func (s *Session) Drag() frame.Drag {
	return frame.Drag{Item: s.Index, Trim: s.Trim}
}

// Track re-anchors the handle on the item's box in f, which may have moved
// when the row was re-laid out with the new trim.
func (s *Session) Track(f frame.Frame) {
	d, ok := f.Find(s.Item)
	if !ok || len(d.Outline.Handles) == 0 {
		return
	}
	s.Handle = d.Outline.Handles[0].At(s.Trim)
}

// Value is the exact shape parameter encoded by the current trim.
func (s *Session) Value() float64 {
	return s.Handle.Value(s.Trim)
}

// End converts the final trim to the persisted shape parameter and returns
// it with the patch that stores it.
func (s *Session) End() (float64, settings.Patch) {
	v := s.Handle.Persisted(s.Trim)
	return v, settings.ParamPatch(s.Handle.Kind, v)
}
