package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/buttonstrip/pkg/errors"
	"github.com/matzehuels/buttonstrip/pkg/frame"
	"github.com/matzehuels/buttonstrip/pkg/layout"
	"github.com/matzehuels/buttonstrip/pkg/settings"
)

// stripFile is the on-disk description of a strip:
//
//	width = 600
//	height = 80
//	selected = ["home"]
//	settings = "strip.settings.toml"
//
//	[[items]]
//	id = "home"
//	text = "Home"
type stripFile struct {
	Width    float64     `toml:"width" json:"width"`
	Height   float64     `toml:"height" json:"height"`
	Selected []string    `toml:"selected" json:"selected,omitempty"`
	Hovered  string      `toml:"hovered" json:"hovered,omitempty"`
	Settings string      `toml:"settings" json:"settings,omitempty"`
	Items    []stripItem `toml:"items" json:"items"`
}

type stripItem struct {
	ID   string `toml:"id" json:"id"`
	Text string `toml:"text" json:"text"`
	Icon string `toml:"icon" json:"icon,omitempty"`
}

// strip is a loaded strip file with its settings.
type strip struct {
	Input        frame.Input
	SettingsPath string
}

// loadStrip reads a strip file. settingsOverride, when set, replaces the
// settings path named in the file. The file's own reference is resolved
// against the strip file's directory and may not leave it.
func loadStrip(path, settingsOverride string) (*strip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "strip file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}

	var sf stripFile
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &sf)
	} else {
		_, err = toml.Decode(string(data), &sf)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse strip file %s", path)
	}

	s := &strip{
		Input: frame.Input{
			Selected: sf.Selected,
			Hovered:  sf.Hovered,
			Viewport: layout.Viewport{Width: sf.Width, Height: sf.Height},
		},
	}
	for _, it := range sf.Items {
		s.Input.Items = append(s.Input.Items, frame.Item{ID: it.ID, Text: it.Text, Icon: it.Icon})
	}

	s.SettingsPath = settingsOverride
	if s.SettingsPath == "" && sf.Settings != "" {
		if err := errors.ValidatePath(sf.Settings); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "settings reference in %s", path)
		}
		s.SettingsPath = filepath.Join(filepath.Dir(path), filepath.FromSlash(sf.Settings))
	}
	if s.SettingsPath != "" {
		st, err := settings.Load(s.SettingsPath)
		if err != nil {
			return nil, err
		}
		s.Input.Settings = st
	}
	return s, nil
}

// persistPatch applies patch to the strip's settings and saves them. It
// reports whether anything was written.
func (s *strip) persistPatch(patch settings.Patch) (bool, error) {
	if patch.Empty() || s.SettingsPath == "" {
		return false, nil
	}
	st := settings.Default()
	if s.Input.Settings != nil {
		st = s.Input.Settings.Clone()
	}
	if err := st.Apply(patch); err != nil {
		return false, err
	}
	if err := st.Save(s.SettingsPath); err != nil {
		return false, err
	}
	s.Input.Settings = st
	return true, nil
}
