package state

// Changes flags the record slots modified by [Resolve].
type Changes struct {
	All        bool
	Selected   bool
	Unselected bool
	Hover      bool
}

// Any reports whether at least one slot changed.
func (c Changes) Any() bool {
	return c.All || c.Selected || c.Unselected || c.Hover
}

// Has reports whether the slot for s changed.
func (c Changes) Has(s State) bool {
	switch s {
	case Selected:
		return c.Selected
	case Unselected:
		return c.Unselected
	case Hover:
		return c.Hover
	default:
		return c.All
	}
}

// Result is a resolved record together with the slots that changed.
type Result[T Value] struct {
	Record  Record[T]
	Changed Changes
}

// DidChange reports whether resolution modified the input record.
func (r Result[T]) DidChange() bool {
	return r.Changed.Any()
}

// Resolve levels a record into a consistent shape. It is pure and idempotent:
// resolving an already resolved record reports no changes.
func Resolve[T Value](in Record[T]) Result[T] {
	out := in
	switch {
	case in.Active == All && Exists(in.All):
		out.Selected = in.All
		out.Unselected = in.All
		if !in.NoHover {
			out.Hover = in.All
		}
	case Exists(in.Selected) && in.perStateAgree():
		out.All = in.Selected
	default:
		out.All = Empty[T]()
	}

	return Result[T]{
		Record: out,
		Changed: Changes{
			All:        out.All != in.All,
			Selected:   out.Selected != in.Selected,
			Unselected: out.Unselected != in.Unselected,
			Hover:      !in.NoHover && out.Hover != in.Hover,
		},
	}
}
