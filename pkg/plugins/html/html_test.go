// Test Type: Unit Test
// Description: Tests for the html plugin - shell emission after the build

package html_test

import (
	"strings"
	"testing"

	"github.com/bindle-dev/bindle/pkg/plugins/html"
	"github.com/bindle-dev/bindle/pkg/testutil"
	"github.com/bindle-dev/bindle/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfter_EmitsShell(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	ctx := &types.BuildContext{
		OutputDir:      "dist",
		OutputFilename: "build.js",
		FS:             env.FS,
	}

	plugin, err := html.New(map[string]interface{}{"title": "demo"})
	require.NoError(t, err)

	require.NoError(t, plugin.Before(ctx))
	require.NoError(t, plugin.After(ctx))

	out, err := env.FS.ReadFile("dist/index.html")
	require.NoError(t, err)

	markup := string(out)
	assert.Contains(t, markup, "<!doctype html>")
	assert.Contains(t, markup, "<title>demo</title>")
	assert.Contains(t, markup, `<script src="build.js"></script>`)

	// The shell is recorded as an asset
	require.Len(t, ctx.Assets, 1)
	assert.Equal(t, "index.html", ctx.Assets[0].Path)
}

func TestAfter_MaterializesDefines(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	ctx := &types.BuildContext{
		OutputDir:      "dist",
		OutputFilename: "build.js",
		FS:             env.FS,
	}
	ctx.Define("NODE_ENV", "production")
	ctx.Define("API_URL", "https://api.example.com")

	plugin, err := html.New(nil)
	require.NoError(t, err)
	require.NoError(t, plugin.After(ctx))

	out, err := env.FS.ReadFile("dist/index.html")
	require.NoError(t, err)

	markup := string(out)
	assert.Contains(t, markup, `globalThis.NODE_ENV = "production";`)
	assert.Contains(t, markup, `globalThis.API_URL = "https://api.example.com";`)

	// Globals are assigned before the bundle loads
	assert.Less(t,
		strings.Index(markup, "globalThis.NODE_ENV"),
		strings.Index(markup, `<script src="build.js">`))
}

func TestAfter_TitleFromDefines(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	ctx := &types.BuildContext{
		OutputDir:      "dist",
		OutputFilename: "build.js",
		FS:             env.FS,
	}
	ctx.Define("title", "defined title")

	t.Run("define_wins_when_option_absent", func(t *testing.T) {
		plugin, err := html.New(nil)
		require.NoError(t, err)
		require.NoError(t, plugin.After(ctx))

		out, err := env.FS.ReadFile("dist/index.html")
		require.NoError(t, err)
		assert.Contains(t, string(out), "<title>defined title</title>")
	})

	t.Run("option_wins_over_define", func(t *testing.T) {
		plugin, err := html.New(map[string]interface{}{"title": "from options"})
		require.NoError(t, err)
		require.NoError(t, plugin.After(ctx))

		out, err := env.FS.ReadFile("dist/index.html")
		require.NoError(t, err)
		assert.Contains(t, string(out), "<title>from options</title>")
	})
}

func TestNew_Defaults(t *testing.T) {
	plugin, err := html.New(nil)
	require.NoError(t, err)
	assert.Equal(t, "html", plugin.Name())
}

func TestNew_RejectsUnknownOptions(t *testing.T) {
	_, err := html.New(map[string]interface{}{"favicon": "x.ico"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown option: favicon")
}
