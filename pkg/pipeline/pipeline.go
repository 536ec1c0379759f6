// Package pipeline runs render passes with caching.
//
// A pass has two stages:
//
//  1. Compute: resolve settings, lay the strip out and build the frame
//     ([frame.Compute]).
//  2. Render: turn the frame into one or more artifacts (SVG, PNG, PDF, JSON).
//
// Both stages are cached by content hash, so the CLI and the preview server
// share behavior and a repeated pass with the same input does no work.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, in, pipeline.Options{
//	    Formats: []string{"svg", "png"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run a stage on its own:
//
//	f, err := runner.Compute(ctx, in, opts)
//	artifacts, err := runner.Render(ctx, f, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/buttonstrip/pkg/cache"
	"github.com/matzehuels/buttonstrip/pkg/errors"
	"github.com/matzehuels/buttonstrip/pkg/frame"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultScale is the PNG pixel density multiplier.
	DefaultScale = 2.0

	// DefaultMeasurer measures text with the embedded font faces.
	DefaultMeasurer = MeasurerFaces

	// DefaultTitle is the PDF document title.
	DefaultTitle = "Button strip"
)

// Measurer names.
const (
	MeasurerFaces  = "faces"
	MeasurerApprox = "approx"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidMeasurers is the set of supported text measurers.
var ValidMeasurers = map[string]bool{
	MeasurerFaces:  true,
	MeasurerApprox: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures a render pass. It supports JSON for server requests.
type Options struct {
	// Compute options
	Measurer string `json:"measurer,omitempty"`
	Refresh  bool   `json:"refresh,omitempty"`

	// Render options
	Formats    []string `json:"formats,omitempty"`
	Handles    bool     `json:"handles,omitempty"`
	EmbedFonts bool     `json:"embed_fonts,omitempty"`
	Scale      float64  `json:"scale,omitempty"`
	Title      string   `json:"title,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Frame is the computed frame.
	Frame frame.Frame

	// InputHash is the content hash of the input.
	InputHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ItemCount   int
	RowCount    int
	ComputeTime time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	FrameHit  bool // Whether the frame came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeUnsupported, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateMeasurer checks that a measurer name is valid.
func ValidateMeasurer(name string) error {
	if !ValidMeasurers[name] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid measurer: %q (must be one of: faces, approx)", name)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForCompute(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForCompute validates and sets defaults for the compute stage.
func (o *Options) ValidateForCompute() error {
	if o.Measurer == "" {
		o.Measurer = DefaultMeasurer
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return ValidateMeasurer(o.Measurer)
}

// ValidateForRender validates and sets defaults for the render stage.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "invalid scale: %v", o.Scale)
	}
	return ValidateFormats(o.Formats)
}

// FrameKeyOpts returns cache key options for the compute stage.
func (o *Options) FrameKeyOpts(in frame.Input) cache.FrameKeyOpts {
	return cache.FrameKeyOpts{Measurer: o.Measurer, Edit: in.Edit}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatSVG:
		k.Handles = o.Handles
		k.EmbeddedFonts = o.EmbedFonts
	case FormatJSON:
		k.Handles = o.Handles
	case FormatPNG:
		k.Scale = o.Scale
	}
	return k
}
