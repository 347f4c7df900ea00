package build

// Message constants
const (
	MsgShort = "Build the project"
	MsgLong  = `The 'build' command runs one build: the entry file is resolved, every
source file is passed through the step pipeline its matching rules declare,
and the results are written to the output directory.

Configuration is read from the project config file (.bindle.toml,
bindle.toml, bindle.yaml or bindle.yml), with BINDLE_* environment
variables and command-line flags layered on top.`

	MsgExample = `  # Build using the project config in the current directory
  bindle build

  # Build a project in another directory
  bindle build --config-dir ./examples/vue-app

  # Override the entry and output directory
  bindle build --entry src/index.ts --out-dir public`
)
