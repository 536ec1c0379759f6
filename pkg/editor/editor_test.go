package editor

import (
	"math"
	"testing"
	"time"

	"github.com/matzehuels/buttonstrip/pkg/errors"
	"github.com/matzehuels/buttonstrip/pkg/frame"
	"github.com/matzehuels/buttonstrip/pkg/geometry"
	"github.com/matzehuels/buttonstrip/pkg/layout"
	"github.com/matzehuels/buttonstrip/pkg/settings"
)

func editInput(shape geometry.Kind, edit bool) frame.Input {
	s := settings.Default()
	s.Layout.Shape = shape
	s.Layout.ParallelogramAngle = 45
	s.Layout.ChevronAngle = 60
	return frame.Input{
		Items: []frame.Item{
			{ID: "home", Text: "Home"},
			{ID: "about", Text: "About"},
		},
		Viewport: layout.Viewport{Width: 500, Height: 100},
		Settings: s,
		Edit:     edit,
	}
}

func mustCompute(t *testing.T, in frame.Input) frame.Frame {
	t.Helper()
	f, err := frame.Compute(in, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	return f
}

func TestBegin(t *testing.T) {
	f := mustCompute(t, editInput(geometry.Parallelogram, true))
	s, err := Begin(f, "about")
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if s.Index != 1 {
		t.Errorf("Index = %d, want 1", s.Index)
	}
	if s.Trim != f.Trim {
		t.Errorf("Trim = %v, want frame trim %v", s.Trim, f.Trim)
	}
	if s.Handle.Param != "parallelogramAngle" {
		t.Errorf("Handle.Param = %q, want parallelogramAngle", s.Handle.Param)
	}
	if s.ID.String() == "" {
		t.Error("session should have an ID")
	}
}

func TestBeginErrors(t *testing.T) {
	tests := []struct {
		name  string
		shape geometry.Kind
		edit  bool
		item  string
		code  errors.Code
	}{
		{"unknown item", geometry.Parallelogram, true, "nope", errors.ErrCodeItemNotFound},
		{"no handle shape", geometry.Rectangle, true, "home", errors.ErrCodeInvalidShape},
		{"not edit mode", geometry.Parallelogram, false, "home", errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mustCompute(t, editInput(tt.shape, tt.edit))
			if _, err := Begin(f, tt.item); !errors.Is(err, tt.code) {
				t.Errorf("Begin() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestDragLoop(t *testing.T) {
	in := editInput(geometry.Parallelogram, true)
	f := mustCompute(t, in)
	s, err := Begin(f, "home")
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}

	origin := s.Handle.Origin
	drag := s.Move(origin+20, 999)
	if drag.Item != 0 || drag.Trim != 20 {
		t.Errorf("Move() = %+v, want {0 20}", drag)
	}
	if s.Handle.AnchorX != origin+20 {
		t.Errorf("AnchorX = %v, want %v", s.Handle.AnchorX, origin+20)
	}

	in.Drag = &drag
	f = mustCompute(t, in)
	if f.Trim != 20 {
		t.Errorf("frame Trim = %v, want frozen 20", f.Trim)
	}
	s.Track(f)
	if s.Handle.Trim != 20 {
		t.Errorf("tracked handle Trim = %v, want 20", s.Handle.Trim)
	}

	value, patch := s.End()
	want := math.Round(math.Atan2(s.Handle.Box.H, 20) * 180 / math.Pi)
	if value != want {
		t.Errorf("End() value = %v, want %v", value, want)
	}
	if got := patch[settings.GroupLayout]["parallelogramAngle"]; got != want {
		t.Errorf("End() patch = %v, want parallelogramAngle %v", patch, want)
	}
	if math.Abs(s.Value()-want) > 0.5 {
		t.Errorf("Value() = %v, want about %v", s.Value(), want)
	}
}

func TestMoveUsesHandleAxis(t *testing.T) {
	in := editInput(geometry.Chevron, true)
	in.Settings.Layout.Arrangement = layout.Vertical
	f := mustCompute(t, in)
	s, err := Begin(f, "home")
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if s.Handle.Axis != geometry.AxisY {
		t.Fatalf("Axis = %v, want y", s.Handle.Axis)
	}
	d := s.Move(-500, s.Handle.Origin+7)
	if d.Trim != 7 {
		t.Errorf("Move() trim = %v, want 7", d.Trim)
	}
}

func TestStore(t *testing.T) {
	st := NewStore(time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return now }

	f := mustCompute(t, editInput(geometry.Parallelogram, true))
	s, err := Begin(f, "home")
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	s.Started = now
	st.Put(s)

	if err := st.Update(s.ID.String(), func(s *Session) error {
		s.Move(s.Handle.Origin+3, 0)
		return nil
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := st.Take(s.ID.String())
	if err != nil {
		t.Fatalf("Take: %v", err)
	}
	if got.Trim != 3 {
		t.Errorf("Trim = %v, want 3", got.Trim)
	}
	if _, err := st.Take(s.ID.String()); !errors.Is(err, errors.ErrCodeSessionNotFound) {
		t.Errorf("second Take() error = %v, want SESSION_NOT_FOUND", err)
	}
	if err := st.Update("not-a-uuid", func(*Session) error { return nil }); !errors.Is(err, errors.ErrCodeSessionNotFound) {
		t.Errorf("Update(bad id) error = %v, want SESSION_NOT_FOUND", err)
	}
}

func TestStoreExpiry(t *testing.T) {
	st := NewStore(time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return now }

	f := mustCompute(t, editInput(geometry.Parallelogram, true))
	s, _ := Begin(f, "home")
	s.Started = now
	st.Put(s)
	if st.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", st.Len())
	}

	now = now.Add(2 * time.Minute)
	if st.Len() != 0 {
		t.Errorf("Len() after ttl = %d, want 0", st.Len())
	}
	if _, err := st.Take(s.ID.String()); !errors.Is(err, errors.ErrCodeSessionNotFound) {
		t.Errorf("Take() error = %v, want SESSION_NOT_FOUND", err)
	}
}

func TestStoreSweep(t *testing.T) {
	st := NewStore(time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return now }

	f := mustCompute(t, editInput(geometry.Parallelogram, true))
	old, _ := Begin(f, "home")
	old.Started = now
	st.Put(old)

	now = now.Add(90 * time.Second)
	fresh, _ := Begin(f, "about")
	fresh.Started = now
	st.Put(fresh)

	if n := st.Sweep(); n != 0 {
		t.Errorf("Sweep() = %d, want 0 (Put already evicted)", n)
	}
	now = now.Add(2 * time.Minute)
	if n := st.Sweep(); n != 1 {
		t.Errorf("Sweep() = %d, want 1", n)
	}
	if st.Len() != 0 {
		t.Errorf("Len() = %d, want 0", st.Len())
	}
}

func TestDragClampsCutLength(t *testing.T) {
	in := editInput(geometry.TabCutCorners, true)
	in.Settings.Layout.TabCutCornersLength = 10
	f := mustCompute(t, in)
	s, err := Begin(f, "about")
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	box := s.Handle.Box
	limit := math.Min(box.W/2, box.H)

	drag := s.Move(s.Handle.AnchorX-400, s.Handle.AnchorY)
	if drag.Trim != limit {
		t.Errorf("drag trim = %v, want %v", drag.Trim, limit)
	}

	in.Drag = &drag
	live := mustCompute(t, in)
	d, _ := live.Find("about")
	b := d.Outline.Fill.Bounds()
	if b.X < box.X-1e-9 || b.Right() > box.Right()+1e-9 || b.Y < box.Y-1e-9 || b.Y+b.H > box.Y+box.H+1e-9 {
		t.Errorf("Fill %q leaves box %+v", d.Outline.Fill, box)
	}
	s.Track(live)

	v, patch := s.End()
	if v != math.Round(limit) {
		t.Errorf("End() value = %v, want %v", v, math.Round(limit))
	}
	if got := patch[settings.GroupLayout]["tabCutCornersLength"]; got != math.Round(limit) {
		t.Errorf("patch tabCutCornersLength = %v, want %v", got, math.Round(limit))
	}
}

func TestStoreKeepsActiveSession(t *testing.T) {
	st := NewStore(time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return now }

	f := mustCompute(t, editInput(geometry.Parallelogram, true))
	s, _ := Begin(f, "home")
	st.Put(s)

	// A move every 40s keeps the drag alive well past the ttl.
	for i := 0; i < 5; i++ {
		now = now.Add(40 * time.Second)
		if err := st.Update(s.ID.String(), func(*Session) error { return nil }); err != nil {
			t.Fatalf("Update() on move %d = %v", i, err)
		}
	}
	if st.Sweep() != 0 {
		t.Error("Sweep() removed an active session")
	}

	now = now.Add(2 * time.Minute)
	if _, err := st.Take(s.ID.String()); !errors.Is(err, errors.ErrCodeSessionNotFound) {
		t.Errorf("Take() after idle = %v, want SESSION_NOT_FOUND", err)
	}
}
