// Package genconfig implements the `bindle gen-config` command.
package genconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bindle-dev/bindle/pkg/config"
	"github.com/bindle-dev/bindle/pkg/errors"
	"github.com/spf13/cobra"
)

// NewCommand creates the gen-config command
func NewCommand() *cobra.Command {
	var (
		format string
		write  bool
	)

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "config",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "toml" && format != "yaml" {
				return errors.Newf(errors.ErrInvalidInput,
					"unsupported format %q, expected toml or yaml", format)
			}

			sample, err := config.GenerateSample(format)
			if err != nil {
				return err
			}

			if !write {
				fmt.Fprint(cmd.OutOrStdout(), string(sample))
				return nil
			}

			name := ".bindle.toml"
			if format == "yaml" {
				name = "bindle.yaml"
			}
			path := filepath.Join(".", name)
			if _, err := os.Stat(path); err == nil {
				return errors.Newf(errors.ErrAlreadyExists, "%s already exists", path)
			}
			if err := os.WriteFile(path, sample, 0644); err != nil {
				return errors.Wrapf(err, errors.ErrOutputWrite, "writing %s", path)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "toml", "Output format (toml or yaml)")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write config to file instead of stdout")

	return cmd
}
