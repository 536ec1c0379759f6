// Package sink turns a computed [frame.Frame] into output formats.
//
//   - SVG: paths, labels and optional shape handles, with selection and
//     hover classes for host styling
//   - JSON: the frame itself, for external tools and round-trip rendering
//   - PNG and PDF: drawn with github.com/tdewolff/canvas using the embedded
//     Go fonts
//
// Every renderer takes functional options:
//
//	svg := sink.RenderSVG(f, sink.WithHandles(), sink.WithEmbeddedFonts())
//	png, err := sink.RenderPNG(f, sink.WithScale(2))
//
// The raster and PDF sinks draw shadows as offset fills without blur and
// leave icons out, since icon URLs are only resolved by SVG consumers.
//
// [frame.Frame]: github.com/matzehuels/buttonstrip/pkg/frame.Frame
package sink
