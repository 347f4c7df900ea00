// Package plugins manages the global build hooks: construction from config
// references, conflict detection, and once-per-build execution in
// declaration order.
package plugins

import (
	"github.com/bindle-dev/bindle/pkg/errors"
	"github.com/bindle-dev/bindle/pkg/logging"
	"github.com/bindle-dev/bindle/pkg/registry"
	"github.com/bindle-dev/bindle/pkg/types"
)

// Ref names a plugin together with its options
type Ref struct {
	Name    string
	Options map[string]interface{}
}

// Set is the ordered collection of plugins registered for one build
type Set struct {
	plugins []types.Plugin
}

// NewSet instantiates the referenced plugins in declaration order. Two
// references to the same plugin name conflict.
func NewSet(refs []Ref) (*Set, error) {
	logger := logging.GetLogger("plugins")

	seen := make(map[string]bool)
	set := &Set{}

	for _, ref := range refs {
		if seen[ref.Name] {
			return nil, errors.Newf(errors.ErrPluginConflict,
				"plugin %q is registered twice", ref.Name)
		}
		seen[ref.Name] = true

		plugin, err := registry.NewPlugin(ref.Name, ref.Options)
		if err != nil {
			return nil, err
		}

		logger.Debug().Str("plugin", ref.Name).Msg("plugin registered")
		set.plugins = append(set.plugins, plugin)
	}

	return set, nil
}

// Names returns the plugin names in registration order
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.plugins))
	for _, p := range s.plugins {
		names = append(names, p.Name())
	}
	return names
}

// Before runs every plugin's Before hook once, in registration order.
// The first failing hook aborts the run.
func (s *Set) Before(ctx *types.BuildContext) error {
	for _, p := range s.plugins {
		if err := p.Before(ctx); err != nil {
			return errors.Wrapf(err, errors.ErrPluginExecute,
				"plugin %q before hook failed", p.Name())
		}
	}
	return nil
}

// After runs every plugin's After hook once, in registration order
func (s *Set) After(ctx *types.BuildContext) error {
	for _, p := range s.plugins {
		if err := p.After(ctx); err != nil {
			return errors.Wrapf(err, errors.ErrPluginExecute,
				"plugin %q after hook failed", p.Name())
		}
	}
	return nil
}
