// Package fonts provides the embedded fonts used to measure and draw button
// labels.
//
// The Go font family ships with golang.org/x/image, so labels measure and
// render identically on every machine without system font lookups. CSS
// font-family lists from settings are mapped onto the closest Go face.
package fonts

import (
	"encoding/base64"
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Face is one embedded font face.
type Face int

const (
	Regular Face = iota
	Bold
	Mono
)

// DefaultFamily is the font-family list used when settings leave it empty.
const DefaultFamily = "wf_standard-font, helvetica, arial, sans-serif"

var monoHints = []string{"mono", "courier", "consolas", "menlo", "code"}
var boldHints = []string{"bold", "black", "heavy", "semibold"}

// Resolve maps a CSS font-family list to an embedded face.
func Resolve(family string) Face {
	f := strings.ToLower(family)
	for _, h := range monoHints {
		if strings.Contains(f, h) {
			return Mono
		}
	}
	for _, h := range boldHints {
		if strings.Contains(f, h) {
			return Bold
		}
	}
	return Regular
}

// TTF returns the TrueType data of the face.
func (f Face) TTF() []byte {
	switch f {
	case Bold:
		return gobold.TTF
	case Mono:
		return gomono.TTF
	default:
		return goregular.TTF
	}
}

// Name returns the CSS family name the face is registered under.
func (f Face) Name() string {
	switch f {
	case Bold:
		return "Go Bold"
	case Mono:
		return "Go Mono"
	default:
		return "Go"
	}
}

// CSSFamily returns a font-family value that prefers the embedded face and
// falls back to the requested family list.
func CSSFamily(family string) string {
	if strings.TrimSpace(family) == "" {
		family = DefaultFamily
	}
	return "'" + Resolve(family).Name() + "', " + family
}

// Cache for base64-encoded fonts (computed once per face on first access).
var (
	b64Mu sync.Mutex
	b64   = map[Face]string{}
)

// Base64 returns the face's TTF data as a base64 string, suitable for a
// data URL in an SVG @font-face rule. The result is cached.
func (f Face) Base64() string {
	b64Mu.Lock()
	defer b64Mu.Unlock()
	if s, ok := b64[f]; ok {
		return s
	}
	s := base64.StdEncoding.EncodeToString(f.TTF())
	b64[f] = s
	return s
}
