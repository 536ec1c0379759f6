package state

// Patch is a minimal settings update keyed by persisted property name, such
// as "colorS" or "fontSizeA".
type Patch map[string]any

// Key returns the persisted property name for attr in state s.
func Key(attr string, s State) string {
	return attr + s.Suffix()
}

// AppendTo writes the changed slots of r into p under attr's persisted keys.
// Unchanged slots are left out.
func (r Result[T]) AppendTo(p Patch, attr string) {
	for _, s := range States {
		if r.Changed.Has(s) {
			p[Key(attr, s)] = r.Record.Get(s)
		}
	}
}

// Merge copies every entry of other into p.
func (p Patch) Merge(other Patch) {
	for k, v := range other {
		p[k] = v
	}
}
