// Package bindle assembles the bindle command-line interface.
package bindle

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/bindle-dev/bindle/cmd/bindle/commands/build"
	"github.com/bindle-dev/bindle/cmd/bindle/commands/genconfig"
	"github.com/bindle-dev/bindle/cmd/bindle/commands/loaders"
	"github.com/bindle-dev/bindle/cmd/bindle/commands/plan"
	"github.com/bindle-dev/bindle/internal/version"
	"github.com/bindle-dev/bindle/pkg/cobrax/topics"
	"github.com/bindle-dev/bindle/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "bindle",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "config",
		Title: "CONFIGURATION:",
	})

	rootCmd.AddCommand(build.NewCommand())
	rootCmd.AddCommand(plan.NewCommand())
	rootCmd.AddCommand(genconfig.NewCommand())
	rootCmd.AddCommand(loaders.NewCommand())
	rootCmd.AddCommand(newVersionCmd())

	// Topic-based help rendered with glamour, served from the embedded docs
	if topicFS, err := fs.Sub(topicFiles, "topics"); err == nil {
		_ = topics.Initialize(rootCmd, topicFS, topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewGlamourRenderer(),
		})
	}

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("bindle version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}
