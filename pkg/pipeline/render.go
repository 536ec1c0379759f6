package pipeline

import (
	"github.com/matzehuels/buttonstrip/pkg/errors"
	"github.com/matzehuels/buttonstrip/pkg/frame"
	"github.com/matzehuels/buttonstrip/pkg/sink"
)

// Render generates output artifacts in the requested formats.
func Render(f frame.Frame, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(f, format, opts)
		if err != nil {
			code := errors.GetCode(err)
			if code == "" {
				code = errors.ErrCodeInternal
			}
			return nil, errors.Wrap(code, err, "render %s", format)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(f frame.Frame, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return sink.RenderSVG(f, svgOptions(opts)...), nil
	case FormatPNG:
		return sink.RenderPNG(f, sink.WithScale(opts.Scale))
	case FormatPDF:
		return sink.RenderPDF(f, sink.WithTitle(opts.Title))
	case FormatJSON:
		if opts.Handles {
			return sink.RenderJSON(f, sink.WithJSONHandles())
		}
		return sink.RenderJSON(f)
	default:
		return nil, ValidateFormat(format)
	}
}

func svgOptions(opts Options) []sink.SVGOption {
	var out []sink.SVGOption
	if opts.Handles {
		out = append(out, sink.WithHandles())
	}
	if opts.EmbedFonts {
		out = append(out, sink.WithEmbeddedFonts())
	}
	return out
}
