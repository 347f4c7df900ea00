package bindle

// Message constants
const (
	MsgRootShort = "A declarative build pipeline runner"
	MsgRootLong  = `bindle turns a declarative configuration into a build: rules map source
files to named step pipelines, plugins hook into the build as a whole, and
the result is written to the output directory.

Configuration lives in .bindle.toml (or bindle.toml / bindle.yaml) in the
project directory; BINDLE_* environment variables and flags layer on top.`

	MsgVersionShort = "Print version information"
	MsgVersionLong  = `Print version information for bindle`

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
)
