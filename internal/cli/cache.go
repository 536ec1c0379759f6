package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/buttonstrip/pkg/cache"
)

func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the render cache",
		Long:  `Computed frames and rendered artifacts are cached under $XDG_CACHE_HOME/buttonstrip.`,
	}
	cmd.AddCommand(c.cacheInfoCommand(), c.cacheClearCommand(), c.cachePathCommand())
	return cmd
}

func (c *CLI) cacheInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show cached frames and artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := openFileCache()
			if err != nil {
				return err
			}
			printKeyValue("Directory", fc.Dir())
			for _, kind := range []string{cache.KindFrame, cache.KindArtifact} {
				u, err := fc.Usage(kind)
				if err != nil {
					return err
				}
				printKeyValue(kind+"s", fmt.Sprintf("%s, %s", plural(u.Entries, "entry"), formatSize(int(u.Bytes))))
			}
			return nil
		},
	}
}

func (c *CLI) cacheClearCommand() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear cached frames, artifacts or both",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch kind {
			case "", cache.KindFrame, cache.KindArtifact:
			default:
				return fmt.Errorf("unknown cache kind %q (want frame or artifact)", kind)
			}
			fc, err := openFileCache()
			if err != nil {
				return err
			}
			n, err := fc.Clear(kind)
			if err != nil {
				return err
			}
			if n == 0 {
				printInfo("Cache is empty")
				return nil
			}
			printSuccess("Cleared %s", plural(n, "entry"))
			printDetail("Directory: %s", fc.Dir())
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "only clear one kind: frame or artifact")
	return cmd
}

func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}

func openFileCache() (*cache.FileCache, error) {
	dir, err := cacheDir()
	if err != nil {
		return nil, fmt.Errorf("get cache dir: %w", err)
	}
	return cache.NewFileCache(dir)
}
