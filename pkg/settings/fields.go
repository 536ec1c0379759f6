package settings

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/matzehuels/buttonstrip/pkg/geometry"
	"github.com/matzehuels/buttonstrip/pkg/layout"
	"github.com/matzehuels/buttonstrip/pkg/state"
)

type strAttr struct {
	name string
	rec  *state.Record[string]
}

type numAttr struct {
	name string
	rec  *state.Record[float64]
}

// field is a single persisted key that is not part of a state record.
type field struct {
	key string
	get func() any
	set func(any) error
}

// group binds the persisted keys of one settings group to its fields.
type group struct {
	name   string
	editor *Editor
	strs   []strAttr
	nums   []numAttr
	flat   []field
}

func (s *Settings) groups() []*group {
	b, st, t, i, e, l := &s.Button, &s.Stroke, &s.Text, &s.Icon, &s.Effects, &s.Layout
	return []*group{
		{
			name:   GroupButton,
			editor: &b.Editor,
			strs:   []strAttr{{"color", &b.Color}},
			nums:   []numAttr{{"transparency", &b.Transparency}},
		},
		{
			name:   GroupStroke,
			editor: &st.Editor,
			strs:   []strAttr{{"color", &st.Color}},
			nums:   []numAttr{{"width", &st.Width}},
		},
		{
			name:   GroupText,
			editor: &t.Editor,
			strs:   []strAttr{{"color", &t.Color}, {"fontFamily", &t.FontFamily}, {"alignment", &t.Alignment}},
			nums: []numAttr{
				{"transparency", &t.Transparency}, {"fontSize", &t.FontSize},
				{"hmargin", &t.HMargin}, {"bmargin", &t.BMargin},
			},
		},
		{
			name:   GroupIcon,
			editor: &i.Editor,
			strs:   []strAttr{{"placement", &i.Placement}},
			nums: []numAttr{
				{"width", &i.Width}, {"hmargin", &i.HMargin}, {"topMargin", &i.TopMargin},
				{"bottomMargin", &i.BottomMargin}, {"transparency", &i.Transparency},
			},
			flat: []field{boolField("icons", &i.Show)},
		},
		{
			name:   GroupEffects,
			editor: &e.Editor,
			strs: []strAttr{
				{"shadowColor", &e.ShadowColor}, {"shadowDirection", &e.ShadowDirection}, {"glowColor", &e.GlowColor},
			},
			nums: []numAttr{
				{"shadowTransparency", &e.ShadowTransparency}, {"shadowDistance", &e.ShadowDistance},
				{"shadowStrength", &e.ShadowStrength}, {"glowTransparency", &e.GlowTransparency},
				{"glowStrength", &e.GlowStrength},
			},
			flat: []field{
				boolField("shadow", &e.Shadow),
				boolField("glow", &e.Glow),
				floatField("shapeRoundedCornerRadius", &e.CornerRadius),
			},
		},
		{
			name: GroupLayout,
			flat: []field{
				parsedField("sizingMethod", &l.Sizing, layout.ParseSizing),
				parsedField("buttonLayout", &l.Arrangement, layout.ParseArrangement),
				intField("rowLength", &l.RowLength),
				floatField("buttonWidth", &l.ButtonWidth),
				floatField("buttonHeight", &l.ButtonHeight),
				parsedField("buttonAlignment", &l.Alignment, layout.ParseAlignment),
				floatField("padding", &l.Padding),
				parsedField("buttonShape", &l.Shape, geometry.ParseKind),
				floatField("parallelogramAngle", &l.ParallelogramAngle),
				floatField("chevronAngle", &l.ChevronAngle),
				floatField("pentagonAngle", &l.PentagonAngle),
				floatField("hexagonAngle", &l.HexagonAngle),
				floatField("tabCutCornersLength", &l.TabCutCornersLength),
				floatField("tabCutCornerLength", &l.TabCutCornerLength),
			},
		},
	}
}

func (s *Settings) group(name string) (*group, bool) {
	for _, g := range s.groups() {
		if g.name == name {
			return g, true
		}
	}
	return nil, false
}

// set assigns one persisted key of the group.
func (g *group) set(key string, v any) error {
	if g.editor != nil {
		switch key {
		case "state":
			str, err := asString(v)
			if err != nil {
				return err
			}
			st, err := state.ParseState(str)
			if err != nil {
				return err
			}
			g.editor.State = st
			return nil
		case "hover":
			b, err := asBool(v)
			if err != nil {
				return err
			}
			g.editor.Hover = b
			return nil
		}
	}

	for _, a := range g.strs {
		if st, ok := slotFor(a.name, key); ok {
			str, err := asString(v)
			if err != nil {
				return err
			}
			a.rec.Set(st, str)
			return nil
		}
	}
	for _, a := range g.nums {
		if st, ok := slotFor(a.name, key); ok {
			f, err := asFloat(v)
			if err != nil {
				return err
			}
			a.rec.Set(st, f)
			return nil
		}
	}
	for _, f := range g.flat {
		if f.key == key {
			return f.set(v)
		}
	}
	return fmt.Errorf("unknown property %q", key)
}

// object returns the group as a flat persisted object.
func (g *group) object() Object {
	obj := Object{}
	if g.editor != nil {
		obj["state"] = string(g.editor.State)
		obj["hover"] = g.editor.Hover
	}
	for _, a := range g.strs {
		for _, st := range state.States {
			obj[state.Key(a.name, st)] = a.rec.Get(st)
		}
	}
	for _, a := range g.nums {
		for _, st := range state.States {
			obj[state.Key(a.name, st)] = a.rec.Get(st)
		}
	}
	for _, f := range g.flat {
		obj[f.key] = f.get()
	}
	return obj
}

func slotFor(attr, key string) (state.State, bool) {
	if len(key) != len(attr)+1 || key[:len(attr)] != attr {
		return "", false
	}
	for _, st := range state.States {
		if key[len(attr):] == st.Suffix() {
			return st, true
		}
	}
	return "", false
}

func boolField(key string, p *bool) field {
	return field{key, func() any { return *p }, func(v any) error {
		b, err := asBool(v)
		if err == nil {
			*p = b
		}
		return err
	}}
}

func floatField(key string, p *float64) field {
	return field{key, func() any { return *p }, func(v any) error {
		f, err := asFloat(v)
		if err == nil {
			*p = f
		}
		return err
	}}
}

func intField(key string, p *int) field {
	return field{key, func() any { return *p }, func(v any) error {
		f, err := asFloat(v)
		if err == nil {
			*p = int(f)
		}
		return err
	}}
}

func parsedField[T any](key string, p *T, parse func(string) (T, error)) field {
	return field{key, func() any { return fmt.Sprint(*p) }, func(v any) error {
		str, err := asString(v)
		if err != nil {
			return err
		}
		parsed, err := parse(str)
		if err == nil {
			*p = parsed
		}
		return err
	}}
}

func asString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case fmt.Stringer:
		return x.String(), nil
	}
	return "", fmt.Errorf("expected string, got %T", v)
}

func asFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case json.Number:
		return x.Float64()
	case string:
		return strconv.ParseFloat(x, 64)
	}
	return 0, fmt.Errorf("expected number, got %T", v)
}

func asBool(v any) (bool, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case string:
		return strconv.ParseBool(x)
	}
	return false, fmt.Errorf("expected boolean, got %T", v)
}
