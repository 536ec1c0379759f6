package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/buttonstrip/pkg/pipeline"
)

// editCommand creates the edit command.
func (c *CLI) editCommand() *cobra.Command {
	var (
		settingsPath string
		item         string
		measurer     string
	)

	cmd := &cobra.Command{
		Use:               "edit [strip.toml]",
		ValidArgsFunction: stripFileCompletion,
		Short:             "Drag a shape handle interactively",
		Long: `Edit the shape parameter of a strip by dragging a handle.

The handle of the chosen item moves with the arrow keys; every step lays the
strip out again with the trim held fixed. Enter converts the final trim back
into the shape's angle or cut length and saves it to the settings file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEdit(cmd.Context(), args[0], settingsPath, item, measurer)
		},
	}

	cmd.Flags().StringVarP(&settingsPath, "settings", "s", "", "settings file (toml or json)")
	cmd.Flags().StringVar(&item, "item", "", "item whose handle to drag (default: first item)")
	cmd.Flags().StringVar(&measurer, "measurer", pipeline.DefaultMeasurer, "text measurer: faces (default), approx")

	return cmd
}

func (c *CLI) runEdit(ctx context.Context, input, settingsPath, item, measurer string) error {
	s, err := loadStrip(input, settingsPath)
	if err != nil {
		return err
	}
	if item == "" && len(s.Input.Items) > 0 {
		item = s.Input.Items[0].ID
		if item == "" {
			item = "0"
		}
	}

	runner := pipeline.NewRunner(nil, nil, c.Logger)
	defer runner.Close()

	model, err := NewEditModel(ctx, runner, pipeline.Options{Measurer: measurer, Logger: c.Logger}, s.Input, item)
	if err != nil {
		return err
	}
	final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("edit: %w", err)
	}

	m, ok := final.(*EditModel)
	if !ok || !m.Saved {
		printInfo("No changes saved")
		return nil
	}
	written, err := s.persistPatch(m.Patch)
	if err != nil {
		return fmt.Errorf("persist settings: %w", err)
	}
	if !written {
		fmt.Println(patchTable(m.Patch))
		printWarning("No settings file; add one with --settings to save")
		return nil
	}
	printSuccess("Saved %s = %.0f", m.session.Handle.Param, m.Value)
	printFile(s.SettingsPath)
	return nil
}
