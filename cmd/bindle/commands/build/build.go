// Package build implements the `bindle build` command.
package build

import (
	"fmt"

	buildpkg "github.com/bindle-dev/bindle/pkg/build"
	"github.com/bindle-dev/bindle/pkg/config"
	"github.com/bindle-dev/bindle/pkg/logging"
	"github.com/bindle-dev/bindle/pkg/types"
	"github.com/bindle-dev/bindle/pkg/ui"
	"github.com/spf13/cobra"
)

// NewCommand creates the build command
func NewCommand() *cobra.Command {
	var (
		configDir string
		entry     string
		outDir    string
	)

	cmd := &cobra.Command{
		Use:     "build",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.build")

			overrides := map[string]interface{}{}
			if entry != "" {
				overrides["entry"] = entry
			}
			if outDir != "" {
				overrides["output.path"] = outDir
			}

			cfg, err := config.LoadWithOverrides(configDir, overrides)
			if err != nil {
				return err
			}

			logger.Info().
				Str("entry", cfg.Entry).
				Str("output", cfg.Output.Path).
				Msg("starting build")

			result, err := buildpkg.Run(cmd.Context(), cfg, types.NewOSFS(configDir))
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), ui.RenderSummary(result, ui.FormatAuto))
			return nil
		},
	}

	cmd.Flags().StringVar(&configDir, "config-dir", ".", "Directory containing the project config")
	cmd.Flags().StringVar(&entry, "entry", "", "Override the configured entry file")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "Override the configured output directory")

	return cmd
}
