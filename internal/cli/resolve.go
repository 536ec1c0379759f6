package cli

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/buttonstrip/pkg/settings"
)

// resolveCommand creates the resolve command.
func (c *CLI) resolveCommand() *cobra.Command {
	var (
		write    bool
		initFile bool
	)

	cmd := &cobra.Command{
		Use:               "resolve [settings.toml]",
		ValidArgsFunction: stripFileCompletion,
		Short:             "Collapse per-state settings values",
		Long: `Resolve a settings file.

Every editor group whose state is "all" has its value copied to every state
slot; per-state groups whose slots agree collapse back to "all". The changes
are printed as a patch and, with --write, saved to the file.

With --init a default settings file is created instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if initFile {
				if err := settings.Default().Save(path); err != nil {
					return err
				}
				printSuccess("Created default settings")
				printFile(path)
				return nil
			}

			st, err := settings.Load(path)
			if err != nil {
				return err
			}
			patch, changed := st.Resolve()
			if !changed {
				printSuccess("Settings are already resolved")
				return nil
			}

			fmt.Println(patchTable(patch))
			if !write {
				printNextStep("Save", "buttonstrip resolve --write "+path)
				return nil
			}
			if err := st.Save(path); err != nil {
				return err
			}
			printSuccess("Saved resolved settings")
			printFile(path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "save the resolved settings")
	cmd.Flags().BoolVar(&initFile, "init", false, "create a default settings file")

	return cmd
}

// patchTable renders one row per changed key, sorted by group and key.
func patchTable(p settings.Patch) string {
	var rows [][]string
	groups := make([]string, 0, len(p))
	for g := range p {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	for _, g := range groups {
		keys := make([]string, 0, len(p[g]))
		for k := range p[g] {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			rows = append(rows, []string{g, k, fmt.Sprint(p[g][k])})
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Group", "Key", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 2 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		}).
		Render()
}
