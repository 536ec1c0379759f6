// Package pkg provides the core libraries for buttonstrip.
//
// # Overview
//
// buttonstrip lays out a strip of buttons in rows, draws each button in one
// of several shapes and resolves which style applies to a button in its
// current interaction state. The pkg directory is organized as follows:
//
//  1. [layout] - Row layout engine (sizing, arrangement, rows, trim)
//  2. [geometry] - Shape outlines, inner text boxes and drag handles
//  3. [state] and [settings] - Per-state style records and the persisted settings
//  4. [frame] - One render pass: items + settings + viewport → drawables
//  5. [sink] - Output formats (SVG, PNG, PDF, JSON)
//  6. [pipeline] - Orchestration with caching (compute → render)
//
// # Architecture
//
// The typical data flow:
//
//	Strip file + settings
//	         ↓
//	    [settings] package (resolve per-state records, derive policy)
//	         ↓
//	    [layout] package (rows and button boxes)
//	         ↓
//	    [geometry] package (outlines, handles)
//	         ↓
//	    [frame] package (drawables)
//	         ↓
//	    SVG/PNG/PDF/JSON output
//
// # Quick Start
//
//	st := settings.Default()
//	st.Layout.Shape = geometry.Chevron
//
//	f, err := frame.Compute(frame.Input{
//	    Items:    []frame.Item{{ID: "home", Text: "Home"}, {ID: "about", Text: "About"}},
//	    Selected: []string{"home"},
//	    Viewport: layout.Viewport{Width: 600, Height: 80},
//	    Settings: st,
//	}, textmetrics.Approx{})
//
//	svg := sink.RenderSVG(f)
//
// # Supporting Packages
//
// [editor] - The handle drag loop: begin on a handle, move, end with a
// settings patch.
//
// [textmetrics] and [fonts] - Label measurement with the embedded fonts.
//
// [cache] - File, Redis and null backends for frames and artifacts.
//
// [observability] - Hooks for pipeline, cache and HTTP events.
//
// [errors] - Coded errors shared by the CLI and the preview server.
//
// [layout]: https://pkg.go.dev/github.com/matzehuels/buttonstrip/pkg/layout
// [geometry]: https://pkg.go.dev/github.com/matzehuels/buttonstrip/pkg/geometry
// [state]: https://pkg.go.dev/github.com/matzehuels/buttonstrip/pkg/state
// [settings]: https://pkg.go.dev/github.com/matzehuels/buttonstrip/pkg/settings
// [frame]: https://pkg.go.dev/github.com/matzehuels/buttonstrip/pkg/frame
// [sink]: https://pkg.go.dev/github.com/matzehuels/buttonstrip/pkg/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/buttonstrip/pkg/pipeline
// [editor]: https://pkg.go.dev/github.com/matzehuels/buttonstrip/pkg/editor
// [textmetrics]: https://pkg.go.dev/github.com/matzehuels/buttonstrip/pkg/textmetrics
// [fonts]: https://pkg.go.dev/github.com/matzehuels/buttonstrip/pkg/fonts
// [cache]: https://pkg.go.dev/github.com/matzehuels/buttonstrip/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/buttonstrip/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/buttonstrip/pkg/errors
package pkg
