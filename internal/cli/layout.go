package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/buttonstrip/pkg/frame"
	"github.com/matzehuels/buttonstrip/pkg/pipeline"
)

// layoutCommand creates the layout command, which prints the computed
// boxes without rendering.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		settingsPath string
		measurer     string
	)

	cmd := &cobra.Command{
		Use:               "layout [strip.toml]",
		ValidArgsFunction: stripFileCompletion,
		Short:             "Print the computed button boxes as a table",
		Args:              cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], settingsPath, measurer)
		},
	}

	cmd.Flags().StringVarP(&settingsPath, "settings", "s", "", "settings file (toml or json)")
	cmd.Flags().StringVar(&measurer, "measurer", pipeline.DefaultMeasurer, "text measurer: faces (default), approx")

	return cmd
}

func (c *CLI) runLayout(ctx context.Context, input, settingsPath, measurer string) error {
	s, err := loadStrip(input, settingsPath)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(nil, nil, c.Logger)
	defer runner.Close()

	f, err := runner.Compute(ctx, s.Input, pipeline.Options{Measurer: measurer, Logger: c.Logger})
	if err != nil {
		return err
	}

	fmt.Println(layoutTable(f))
	printKeyValue("trim", fmt.Sprintf("%.2f", f.Trim))
	printKeyValue("effect space", fmt.Sprintf("%.2f", f.EffectSpace))
	printStats(len(f.Drawables), f.RowCount, f.Shape.Kind, false)
	return nil
}

// layoutTable renders one row per button.
func layoutTable(f frame.Frame) string {
	rows := make([][]string, 0, len(f.Drawables))
	for _, d := range f.Drawables {
		b := d.Outline.Box
		state := ""
		switch {
		case d.Selected:
			state = "selected"
		case d.Hovered:
			state = "hover"
		}
		rows = append(rows, []string{
			fmt.Sprint(d.Index),
			d.Item.ID,
			fmt.Sprint(d.Row),
			fmt.Sprintf("%.1f", b.X),
			fmt.Sprintf("%.1f", b.Y),
			fmt.Sprintf("%.1f", b.W),
			fmt.Sprintf("%.1f", b.H),
			state,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "ID", "Row", "X", "Y", "W", "H", "State").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row < len(f.Drawables) && f.Drawables[row].Selected {
				return lipgloss.NewStyle().Foreground(colorGreen)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		}).
		Render()
}
