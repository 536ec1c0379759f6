package settings

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/buttonstrip/pkg/errors"
)

// Object is the flat persisted form of one settings group, keyed by
// property name ("colorA", "state", "padding", ...).
type Object map[string]any

// Document is the persisted form of all groups, keyed by group name.
type Document map[string]Object

// Encode returns the persisted form of s.
func (s *Settings) Encode() Document {
	doc := Document{}
	for _, g := range s.groups() {
		doc[g.name] = g.object()
	}
	return doc
}

// Decode overlays doc onto s. Groups and keys missing from doc keep their
// current values; unknown groups or keys are rejected.
func (s *Settings) Decode(doc Document) error {
	for _, name := range sortedKeys(doc) {
		g, ok := s.group(name)
		if !ok {
			return errors.New(errors.ErrCodeInvalidSettings, "unknown settings group %q", name)
		}
		obj := doc[name]
		for _, key := range sortedKeys(obj) {
			if err := g.set(key, obj[key]); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidSettings, err, "%s.%s", name, key)
			}
		}
	}
	return nil
}

// Apply merges a per-group patch into s.
func (s *Settings) Apply(p Patch) error {
	doc := Document{}
	for name, gp := range p {
		doc[name] = Object(gp)
	}
	return s.Decode(doc)
}

// Load reads settings from a TOML or JSON file, chosen by extension, on top
// of the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "settings file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}
	return Parse(data, formatOf(path))
}

// Parse decodes settings in the given format ("toml" or "json") on top of
// the defaults.
func Parse(data []byte, format string) (*Settings, error) {
	doc := Document{}
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse toml settings")
		}
	case "json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse json settings")
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported settings format %q", format)
	}

	s := Default()
	if err := s.Decode(doc); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes s to path as TOML or JSON, chosen by extension.
func (s *Settings) Save(path string) error {
	data, err := s.Marshal(formatOf(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}

// Marshal encodes s as "toml" or "json".
func (s *Settings) Marshal(format string) ([]byte, error) {
	doc := s.Encode()
	switch format {
	case "toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode toml settings")
		}
		return buf.Bytes(), nil
	case "json":
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode json settings")
		}
		return append(data, '\n'), nil
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported settings format %q", format)
}

// MarshalJSON encodes s in its persisted form.
func (s *Settings) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Encode())
}

// UnmarshalJSON overlays a persisted document onto the defaults.
func (s *Settings) UnmarshalJSON(data []byte) error {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*s = *Default()
	return s.Decode(doc)
}

func formatOf(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return "json"
	}
	return "toml"
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
