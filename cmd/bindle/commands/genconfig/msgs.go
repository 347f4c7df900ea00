package genconfig

// Message constants
const (
	MsgShort = "Generate a sample configuration file"
	MsgLong  = `Output a fully commented sample configuration to stdout or write it to
the project directory. The sample covers the entry, output, resolution,
rules and plugins sections with working values.`

	MsgExample = `  bindle gen-config                    # TOML to stdout
  bindle gen-config --format yaml      # YAML to stdout
  bindle gen-config -w                 # Write to ./.bindle.toml`
)
