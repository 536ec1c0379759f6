package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/buttonstrip/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file path (or base path for multiple formats)
	formats  []string // output formats: "svg", "png", "pdf", "json"
	settings string   // settings file overriding the one named in the strip
	selected []string // selection override
	hovered  string   // hover override
	width    float64  // viewport width override
	height   float64  // viewport height override
	persist  bool     // save the resolution patch back to the settings file
	noCache  bool
	pipeline pipeline.Options
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{persist: true}

	cmd := &cobra.Command{
		Use:               "render [strip.toml]",
		ValidArgsFunction: stripFileCompletion,
		Short:             "Render a button strip to SVG, PNG, PDF or JSON",
		Long: `Render a button strip.

The strip file lists the items, the viewport and optionally the settings file.
Settings values that resolve to a single value across states are collapsed
and, unless --persist=false, written back to the settings file.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts, cmd.Flags().Changed("selected"))
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVarP(&opts.settings, "settings", "s", "", "settings file (toml or json)")
	cmd.Flags().StringSliceVar(&opts.selected, "selected", nil, "selected item IDs")
	cmd.Flags().StringVar(&opts.hovered, "hovered", "", "hovered item ID")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "viewport width (overrides the strip file)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "viewport height (overrides the strip file)")
	cmd.Flags().BoolVar(&opts.persist, "persist", opts.persist, "write resolved settings back to the settings file")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&opts.pipeline.Measurer, "measurer", pipeline.DefaultMeasurer, "text measurer: faces (default), approx")
	cmd.Flags().BoolVar(&opts.pipeline.Handles, "handles", false, "draw shape handles (svg, json)")
	cmd.Flags().BoolVar(&opts.pipeline.EmbedFonts, "embed-fonts", false, "embed fonts in svg output")
	cmd.Flags().Float64Var(&opts.pipeline.Scale, "scale", pipeline.DefaultScale, "png pixel density")
	cmd.Flags().StringVar(&opts.pipeline.Title, "title", pipeline.DefaultTitle, "pdf document title")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts, selectedSet bool) error {
	s, err := loadStrip(input, opts.settings)
	if err != nil {
		return err
	}
	if selectedSet {
		s.Input.Selected = opts.selected
	}
	if opts.hovered != "" {
		s.Input.Hovered = opts.hovered
	}
	if opts.width > 0 {
		s.Input.Viewport.Width = opts.width
	}
	if opts.height > 0 {
		s.Input.Viewport.Height = opts.height
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	popts := opts.pipeline
	popts.Formats = opts.formats
	popts.Logger = c.Logger
	if popts.Handles {
		s.Input.Edit = true
	}

	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	spin := newStepSpinner(ctx, os.Stderr, 1+len(popts.Formats))
	spin.Start()

	spin.Step("Laying out %d buttons", len(s.Input.Items))
	f, cached, err := runner.ComputeWithCacheInfo(ctx, s.Input, popts)
	if err != nil {
		spin.Fail(err)
		return err
	}

	artifacts := make(map[string][]byte, len(popts.Formats))
	for _, format := range popts.Formats {
		spin.Step("Rendering %s", format)
		one := popts
		one.Formats = []string{format}
		out, hit, err := runner.RenderWithCacheInfo(ctx, f, one)
		if err != nil {
			spin.Fail(err)
			return err
		}
		artifacts[format] = out[format]
		cached = cached && hit
	}
	spin.Stop()
	if spin.Cancelled() || ctx.Err() != nil {
		return ctx.Err()
	}

	paths, err := writeArtifacts(artifacts, popts.Formats, input, opts.output)
	if err != nil {
		return err
	}
	prog.done("Rendered strip")

	printSuccess("Rendered %d buttons", len(f.Drawables))
	for i, p := range paths {
		printArtifact(popts.Formats[i], p, len(artifacts[popts.Formats[i]]))
	}
	printStats(len(f.Drawables), f.RowCount, f.Shape.Kind, cached)

	if opts.persist {
		written, err := s.persistPatch(f.Patch)
		if err != nil {
			return fmt.Errorf("persist settings: %w", err)
		}
		if written {
			printInfo("Collapsed settings saved to %s", s.SettingsPath)
		}
	} else if !f.Patch.Empty() {
		printNewline()
		printNextStep("Collapse settings", "buttonstrip resolve --write "+s.SettingsPath)
	}
	return nil
}

// writeArtifacts writes each format to disk and returns the paths written.
// A single format goes to output (or <input>.<format>); several formats use
// output as the base path.
func writeArtifacts(artifacts map[string][]byte, formats []string, input, output string) ([]string, error) {
	base := output
	if base == "" || len(formats) > 1 {
		if base == "" {
			base = input
		}
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}

	var paths []string
	for _, format := range formats {
		path := base + "." + format
		if len(formats) == 1 && output != "" {
			path = output
		}
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
