// Package loaders implements the `bindle loaders` command.
package loaders

import (
	"fmt"

	"github.com/bindle-dev/bindle/pkg/registry"
	"github.com/spf13/cobra"

	_ "github.com/bindle-dev/bindle/pkg/plugins"
	_ "github.com/bindle-dev/bindle/pkg/steps"
)

// NewCommand creates the loaders command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "loaders",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "config",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Steps:")
			for _, name := range registry.ListStepFactories() {
				step, err := registry.NewStep(name, nil)
				if err != nil {
					// Steps with required options cannot be instantiated
					// bare; list the name without a description.
					fmt.Fprintf(out, "  %s\n", name)
					continue
				}
				fmt.Fprintf(out, "  %-10s %s\n", name, step.Description())
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Plugins:")
			for _, name := range registry.ListPluginFactories() {
				plugin, err := registry.NewPlugin(name, nil)
				if err != nil {
					fmt.Fprintf(out, "  %s\n", name)
					continue
				}
				fmt.Fprintf(out, "  %-10s %s\n", name, plugin.Description())
			}

			return nil
		},
	}
}
