// Package define implements the define plugin: constant name/value pairs are
// injected into the build context before any file is resolved, where later
// steps and plugins can read them.
package define

import (
	"fmt"

	"github.com/bindle-dev/bindle/pkg/logging"
	"github.com/bindle-dev/bindle/pkg/options"
	"github.com/bindle-dev/bindle/pkg/registry"
	"github.com/bindle-dev/bindle/pkg/types"
)

// PluginName is the name used to reference this plugin in config
const PluginName = "define"

// Plugin injects build-time constants
type Plugin struct {
	values map[string]string
}

// New creates a define plugin from its options. `values` is a required
// string-to-string map.
func New(opts map[string]interface{}) (*Plugin, error) {
	if err := options.RejectUnknown(opts, "values"); err != nil {
		return nil, err
	}

	values, ok, err := options.StringMap(opts, "values")
	if err != nil {
		return nil, err
	}
	if !ok || len(values) == 0 {
		return nil, fmt.Errorf("missing required option: values")
	}

	return &Plugin{values: values}, nil
}

// Name returns the registered name of this plugin
func (p *Plugin) Name() string {
	return PluginName
}

// Description returns a human-readable description of this plugin
func (p *Plugin) Description() string {
	return fmt.Sprintf("Defines %d build-time constant(s)", len(p.values))
}

// Before injects the configured constants into the build context
func (p *Plugin) Before(ctx *types.BuildContext) error {
	logger := logging.GetLogger("plugins.define")
	for name, value := range p.values {
		logger.Debug().Str("name", name).Str("value", value).Msg("defining constant")
		ctx.Define(name, value)
	}
	return nil
}

// After does nothing; defines only matter before the build
func (p *Plugin) After(*types.BuildContext) error {
	return nil
}

func init() {
	err := registry.RegisterPluginFactory(PluginName, func(opts map[string]interface{}) (types.Plugin, error) {
		return New(opts)
	})
	if err != nil {
		panic(fmt.Sprintf("failed to register define plugin: %v", err))
	}
}
