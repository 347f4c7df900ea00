package registry

import (
	"github.com/bindle-dev/bindle/pkg/errors"
	"github.com/bindle-dev/bindle/pkg/types"
)

// Global registries for the two kinds of named components bindle knows about.
// Step and plugin packages register their factories in init().
var (
	stepFactoryRegistry   Registry[types.StepFactory]
	pluginFactoryRegistry Registry[types.PluginFactory]
)

func init() {
	stepFactoryRegistry = New[types.StepFactory]()
	pluginFactoryRegistry = New[types.PluginFactory]()
}

// RegisterStepFactory registers a factory function for creating steps
func RegisterStepFactory(name string, factory types.StepFactory) error {
	return stepFactoryRegistry.Register(name, factory)
}

// GetStepFactory retrieves a step factory by name
func GetStepFactory(name string) (types.StepFactory, error) {
	factory, err := stepFactoryRegistry.Get(name)
	if err != nil {
		return nil, errors.Newf(errors.ErrStepNotFound, "step %q is not registered", name)
	}
	return factory, nil
}

// ListStepFactories returns the names of all registered step factories
func ListStepFactories() []string {
	return stepFactoryRegistry.List()
}

// RegisterPluginFactory registers a factory function for creating plugins
func RegisterPluginFactory(name string, factory types.PluginFactory) error {
	return pluginFactoryRegistry.Register(name, factory)
}

// GetPluginFactory retrieves a plugin factory by name
func GetPluginFactory(name string) (types.PluginFactory, error) {
	factory, err := pluginFactoryRegistry.Get(name)
	if err != nil {
		return nil, errors.Newf(errors.ErrPluginNotFound, "plugin %q is not registered", name)
	}
	return factory, nil
}

// ListPluginFactories returns the names of all registered plugin factories
func ListPluginFactories() []string {
	return pluginFactoryRegistry.List()
}

// NewStep creates a step instance by name with the given options
func NewStep(name string, options map[string]interface{}) (types.Step, error) {
	factory, err := GetStepFactory(name)
	if err != nil {
		return nil, err
	}

	step, err := factory(options)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidOptions, "creating step %q", name)
	}
	return step, nil
}

// NewPlugin creates a plugin instance by name with the given options
func NewPlugin(name string, options map[string]interface{}) (types.Plugin, error) {
	factory, err := GetPluginFactory(name)
	if err != nil {
		return nil, err
	}

	plugin, err := factory(options)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidOptions, "creating plugin %q", name)
	}
	return plugin, nil
}
