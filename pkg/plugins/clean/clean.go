// Package clean implements the clean plugin: the output directory is removed
// before the build emits anything.
package clean

import (
	"fmt"

	"github.com/bindle-dev/bindle/pkg/errors"
	"github.com/bindle-dev/bindle/pkg/logging"
	"github.com/bindle-dev/bindle/pkg/options"
	"github.com/bindle-dev/bindle/pkg/registry"
	"github.com/bindle-dev/bindle/pkg/types"
)

// PluginName is the name used to reference this plugin in config
const PluginName = "clean"

// Plugin removes the output directory before the build
type Plugin struct{}

// New creates a clean plugin. It takes no options.
func New(opts map[string]interface{}) (*Plugin, error) {
	if err := options.RejectUnknown(opts); err != nil {
		return nil, err
	}
	return &Plugin{}, nil
}

// Name returns the registered name of this plugin
func (p *Plugin) Name() string {
	return PluginName
}

// Description returns a human-readable description of this plugin
func (p *Plugin) Description() string {
	return "Removes the output directory before the build"
}

// Before removes the configured output directory
func (p *Plugin) Before(ctx *types.BuildContext) error {
	logger := logging.GetLogger("plugins.clean")
	logger.Debug().Str("dir", ctx.OutputDir).Msg("cleaning output directory")

	if err := ctx.FS.RemoveAll(ctx.OutputDir); err != nil {
		return errors.Wrapf(err, errors.ErrOutputWrite,
			"cleaning output directory %s", ctx.OutputDir)
	}
	return nil
}

// After does nothing
func (p *Plugin) After(*types.BuildContext) error {
	return nil
}

func init() {
	err := registry.RegisterPluginFactory(PluginName, func(opts map[string]interface{}) (types.Plugin, error) {
		return New(opts)
	})
	if err != nil {
		panic(fmt.Sprintf("failed to register clean plugin: %v", err))
	}
}
