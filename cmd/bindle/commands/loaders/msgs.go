package loaders

// Message constants
const (
	MsgShort = "List the available steps and plugins"
	MsgLong  = `Display every step and plugin compiled into this binary, with a short
description of what each one does. These are the names usable in the
'module.rules' and 'plugins' sections of the configuration.`

	MsgExample = `  bindle loaders`
)
