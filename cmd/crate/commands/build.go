package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/crate/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compute dependencies and pack the configured bundles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			noCache, _ := cmd.Flags().GetBool("no-cache")
			nonRecursive, _ := cmd.Flags().GetBool("non-recursive")

			plan, err := c.app.Build(cmd.Context(), app.BuildOptions{
				ConfigPath:   configPath,
				NoCache:      noCache,
				NonRecursive: nonRecursive,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "packed %d assets into %d files\n",
				len(plan.AssetToFiles), len(plan.FileToBundle))
			return nil
		},
	}
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass cached dependency records")
	cmd.Flags().Bool("non-recursive", false, "Stop at references owned by other assets in the build")
	return cmd
}
