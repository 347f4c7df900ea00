// Package config defines bindle's declarative configuration and its layered
// loading: embedded defaults, then the project file, then environment
// variables, then explicit overrides. The loaded Config is immutable for the
// duration of a build.
package config

import (
	"github.com/bindle-dev/bindle/pkg/errors"
	"github.com/bindle-dev/bindle/pkg/rules"
)

// Output declares where the build artifact goes
type Output struct {
	// Filename is the emitted name of the entry file
	Filename string `koanf:"filename" toml:"filename" yaml:"filename"`

	// Path is the output directory
	Path string `koanf:"path" toml:"path" yaml:"path"`
}

// Resolve declares how import specifiers are resolved to files
type Resolve struct {
	// Extensions are tried, in order, for extensionless specifiers
	Extensions []string `koanf:"extensions" toml:"extensions" yaml:"extensions"`

	// Alias maps specifier prefixes to directories
	Alias map[string]string `koanf:"alias" toml:"alias,omitempty" yaml:"alias,omitempty"`
}

// Module holds the rule set that maps files to step pipelines
type Module struct {
	Rules []rules.Rule `koanf:"rules" toml:"rules" yaml:"rules"`
}

// PluginRef names a plugin to register for the build, with its options
type PluginRef struct {
	Name    string                 `koanf:"name" toml:"name" yaml:"name"`
	Options map[string]interface{} `koanf:"options" toml:"options,omitempty" yaml:"options,omitempty"`
}

// Config is the complete declarative input of one build invocation
type Config struct {
	Entry   string      `koanf:"entry" toml:"entry" yaml:"entry"`
	Output  Output      `koanf:"output" toml:"output" yaml:"output"`
	Resolve Resolve     `koanf:"resolve" toml:"resolve" yaml:"resolve"`
	Module  Module      `koanf:"module" toml:"module" yaml:"module"`
	Plugins []PluginRef `koanf:"plugins" toml:"plugins,omitempty" yaml:"plugins,omitempty"`
}

// Validate checks the loaded configuration before a build is attempted
func (c *Config) Validate() error {
	if c.Entry == "" {
		return errors.New(errors.ErrConfigValid, "entry must not be empty")
	}
	if c.Output.Filename == "" {
		return errors.New(errors.ErrConfigValid, "output.filename must not be empty")
	}
	if c.Output.Path == "" {
		return errors.New(errors.ErrConfigValid, "output.path must not be empty")
	}

	if err := rules.Validate(c.Module.Rules); err != nil {
		return err
	}

	for i, ref := range c.Plugins {
		if ref.Name == "" {
			return errors.Newf(errors.ErrConfigValid, "plugin %d has no name", i)
		}
	}

	return nil
}
