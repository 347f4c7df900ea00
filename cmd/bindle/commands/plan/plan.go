// Package plan implements the `bindle plan` command.
package plan

import (
	"fmt"

	"github.com/bindle-dev/bindle/pkg/config"
	"github.com/bindle-dev/bindle/pkg/rules"
	"github.com/bindle-dev/bindle/pkg/ui"
	"github.com/spf13/cobra"
)

// NewCommand creates the plan command
func NewCommand() *cobra.Command {
	var configDir string

	cmd := &cobra.Command{
		Use:     "plan <path>...",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configDir)
			if err != nil {
				return err
			}

			resolver := rules.NewResolver(cfg.Module.Rules)
			for _, path := range args {
				steps, err := resolver.Resolve(path)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), ui.RenderPlan(path, steps, ui.FormatAuto))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configDir, "config-dir", ".", "Directory containing the project config")

	return cmd
}
