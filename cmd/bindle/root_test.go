// Test Type: Integration Test
// Description: Tests for the bindle CLI - command wiring and end-to-end runs

package bindle

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func writeProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	cfg := `entry = "src/main.ts"

[output]
filename = "build.js"
path = "dist"

[[module.rules]]
test = "*"

[[module.rules.use]]
name = "copy"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".bindle.toml"), []byte(cfg), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "main.ts"), []byte("const x = 1\n"), 0644))
	return dir
}

func TestRootCmd(t *testing.T) {
	t.Run("no_command_is_an_error", func(t *testing.T) {
		_, err := execute(t)
		assert.Error(t, err)
	})

	t.Run("registers_expected_commands", func(t *testing.T) {
		root := NewRootCmd()

		names := make(map[string]bool)
		for _, cmd := range root.Commands() {
			names[cmd.Name()] = true
		}

		for _, want := range []string{"build", "plan", "gen-config", "loaders", "version", "help"} {
			assert.True(t, names[want], "missing command %q", want)
		}
	})
}

func TestGenConfigCmd(t *testing.T) {
	t.Run("writes_sample_to_stdout", func(t *testing.T) {
		out, err := execute(t, "gen-config")
		require.NoError(t, err)

		assert.Contains(t, out, "entry")
		assert.Contains(t, out, "[output]")
	})

	t.Run("rejects_unknown_format", func(t *testing.T) {
		_, err := execute(t, "gen-config", "--format", "ini")
		assert.Error(t, err)
	})
}

func TestLoadersCmd(t *testing.T) {
	t.Run("lists_steps_and_plugins", func(t *testing.T) {
		out, err := execute(t, "loaders")
		require.NoError(t, err)

		assert.Contains(t, out, "Steps:")
		assert.Contains(t, out, "copy")
		assert.Contains(t, out, "Plugins:")
		assert.Contains(t, out, "clean")
	})
}

func TestPlanCmd(t *testing.T) {
	t.Run("prints_pipeline_for_path", func(t *testing.T) {
		dir := writeProject(t)

		out, err := execute(t, "plan", "--config-dir", dir, "main.ts")
		require.NoError(t, err)

		assert.Contains(t, out, "main.ts")
		assert.Contains(t, out, "1. copy")
	})

	t.Run("requires_a_path", func(t *testing.T) {
		_, err := execute(t, "plan")
		assert.Error(t, err)
	})
}

func TestBuildCmd(t *testing.T) {
	t.Run("builds_project_in_config_dir", func(t *testing.T) {
		dir := writeProject(t)

		out, err := execute(t, "build", "--config-dir", dir)
		require.NoError(t, err)

		emitted, err := os.ReadFile(filepath.Join(dir, "dist", "build.js"))
		require.NoError(t, err)
		assert.Equal(t, "const x = 1\n", string(emitted))
		assert.Contains(t, out, "1 asset(s)")
	})

	t.Run("failures_surface_through_execute", func(t *testing.T) {
		dir := writeProject(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".bindle.toml"), []byte(`entry = "src/main.ts"

[output]
filename = "build.js"
path = "dist"

[[module.rules]]
test = "*.vue"

[[module.rules.use]]
name = "copy"
`), 0644))

		// The root command silences cobra's error printing; main relies on
		// Execute returning the failure so it can write it to stderr itself
		_, err := execute(t, "build", "--config-dir", dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "NO_MATCHING_RULE")
	})

	t.Run("out_dir_flag_overrides_output_path", func(t *testing.T) {
		dir := writeProject(t)

		_, err := execute(t, "build", "--config-dir", dir, "--out-dir", "public")
		require.NoError(t, err)

		assert.FileExists(t, filepath.Join(dir, "public", "build.js"))
	})
}
