package main

import (
	"fmt"
	"os"

	bindle "github.com/bindle-dev/bindle/cmd/bindle"
	"github.com/bindle-dev/bindle/pkg/ui"

	// Import packages to ensure their init() functions are called for registration
	_ "github.com/bindle-dev/bindle/pkg/plugins"
	_ "github.com/bindle-dev/bindle/pkg/steps"
)

func main() {
	rootCmd := bindle.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// The root command silences cobra's own error printing, so this is
		// the only place a failure reaches stderr
		fmt.Fprintln(os.Stderr, ui.RenderError(err, ui.FormatAuto))
		os.Exit(1)
	}
}
