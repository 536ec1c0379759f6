package state

// Record holds one style attribute across all states.
//
// NoHover marks three-way records (all, selected, unselected) whose hover
// slot is ignored by resolution and never written.
type Record[T Value] struct {
	All        T
	Selected   T
	Unselected T
	Hover      T
	Active     State
	NoHover    bool
}

// Uniform returns a record with every slot set to v and the "all" state active.
func Uniform[T Value](v T) Record[T] {
	return Record[T]{All: v, Selected: v, Unselected: v, Hover: v, Active: All}
}

// Get returns the value stored for s.
func (r Record[T]) Get(s State) T {
	switch s {
	case Selected:
		return r.Selected
	case Unselected:
		return r.Unselected
	case Hover:
		return r.Hover
	default:
		return r.All
	}
}

// Set stores v in the slot for s.
func (r *Record[T]) Set(s State, v T) {
	switch s {
	case Selected:
		r.Selected = v
	case Unselected:
		r.Unselected = v
	case Hover:
		r.Hover = v
	default:
		r.All = v
	}
}

// Current returns the value of the active state, as shown by a settings editor.
func (r Record[T]) Current() T {
	return r.Get(r.Active)
}

// For returns the effective value for a button.
//
// Selection takes precedence over hover; hover applies only when hover
// styling is enabled for the attribute's group. When the chosen per-state
// slot is empty the "all" value is used.
func (r Record[T]) For(selected, hovered, hoverEnabled bool) T {
	var v T
	switch {
	case selected:
		v = r.Selected
	case hovered && hoverEnabled && !r.NoHover && Exists(r.Hover):
		v = r.Hover
	default:
		v = r.Unselected
	}
	if !Exists(v) {
		return r.All
	}
	return v
}

func (r Record[T]) perStateAgree() bool {
	if r.Selected != r.Unselected {
		return false
	}
	return r.NoHover || r.Selected == r.Hover
}
