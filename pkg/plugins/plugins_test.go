// Test Type: Unit Test
// Description: Tests for the plugins package - set construction, conflict detection and hook ordering

package plugins_test

import (
	"testing"

	"github.com/bindle-dev/bindle/pkg/errors"
	"github.com/bindle-dev/bindle/pkg/plugins"
	"github.com/bindle-dev/bindle/pkg/registry"
	"github.com/bindle-dev/bindle/pkg/testutil"
	"github.com/bindle-dev/bindle/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a test plugin that records each hook invocation
type recorder struct {
	name string
	log  *[]string
}

func (r *recorder) Name() string        { return r.name }
func (r *recorder) Description() string { return "records hook calls" }
func (r *recorder) Before(*types.BuildContext) error {
	*r.log = append(*r.log, r.name+".before")
	return nil
}
func (r *recorder) After(*types.BuildContext) error {
	*r.log = append(*r.log, r.name+".after")
	return nil
}

func registerRecorder(t *testing.T, name string, log *[]string) {
	t.Helper()
	require.NoError(t, registry.RegisterPluginFactory(name, func(map[string]interface{}) (types.Plugin, error) {
		return &recorder{name: name, log: log}, nil
	}))
}

func TestNewSet(t *testing.T) {
	t.Run("duplicate_names_conflict", func(t *testing.T) {
		_, err := plugins.NewSet([]plugins.Ref{
			{Name: "clean"},
			{Name: "clean"},
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrPluginConflict))
	})

	t.Run("unknown_plugin", func(t *testing.T) {
		_, err := plugins.NewSet([]plugins.Ref{{Name: "minify-cobol"}})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrPluginNotFound))
	})

	t.Run("declaration_order_preserved", func(t *testing.T) {
		set, err := plugins.NewSet([]plugins.Ref{
			{Name: "clean"},
			{Name: "define", Options: map[string]interface{}{
				"values": map[string]interface{}{"A": "1"},
			}},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"clean", "define"}, set.Names())
	})
}

func TestSet_HookOrdering(t *testing.T) {
	var log []string
	registerRecorder(t, "order-a", &log)
	registerRecorder(t, "order-b", &log)

	set, err := plugins.NewSet([]plugins.Ref{
		{Name: "order-a"},
		{Name: "order-b"},
	})
	require.NoError(t, err)

	env := testutil.NewTestEnvironment(t)
	ctx := &types.BuildContext{FS: env.FS}

	require.NoError(t, set.Before(ctx))
	require.NoError(t, set.After(ctx))

	// Hooks run exactly once each, in declaration order, regardless of how
	// many files the build later resolves
	assert.Equal(t, []string{
		"order-a.before", "order-b.before",
		"order-a.after", "order-b.after",
	}, log)
}
