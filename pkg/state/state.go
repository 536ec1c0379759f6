package state

import (
	"fmt"
	"strings"
)

// State selects one slot of a [Record].
type State string

const (
	All        State = "all"
	Selected   State = "selected"
	Unselected State = "unselected"
	Hover      State = "hover"
)

// States lists every state in persistence order.
var States = []State{All, Selected, Unselected, Hover}

// ParseState parses a state name case-insensitively.
func ParseState(s string) (State, error) {
	switch State(strings.ToLower(strings.TrimSpace(s))) {
	case All, "":
		return All, nil
	case Selected:
		return Selected, nil
	case Unselected:
		return Unselected, nil
	case Hover:
		return Hover, nil
	}
	return All, fmt.Errorf("unknown state %q", s)
}

// Suffix returns the single-letter key suffix used in persisted settings.
func (s State) Suffix() string {
	switch s {
	case Selected:
		return "S"
	case Unselected:
		return "U"
	case Hover:
		return "H"
	default:
		return "A"
	}
}

func (s State) String() string { return string(s) }

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	if s == "" {
		return []byte(All), nil
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(b []byte) error {
	v, err := ParseState(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Value is the set of types a [Record] can hold.
type Value interface {
	string | float64 | int
}

// Exists reports whether v carries a value: a non-empty string or a
// non-negative number.
func Exists[T Value](v T) bool {
	switch x := any(v).(type) {
	case string:
		return x != ""
	case float64:
		return x >= 0
	case int:
		return x >= 0
	}
	return false
}

// Empty returns the empty value for T: "" for strings, -1 for numbers.
func Empty[T Value]() T {
	var v T
	switch p := any(&v).(type) {
	case *float64:
		*p = -1
	case *int:
		*p = -1
	}
	return v
}
