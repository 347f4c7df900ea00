// Test Type: Unit Test
// Description: Tests for the resolve package - import specifier resolution

package resolve_test

import (
	"testing"

	"github.com/bindle-dev/bindle/pkg/errors"
	"github.com/bindle-dev/bindle/pkg/resolve"
	"github.com/bindle-dev/bindle/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectFS(t *testing.T) *testutil.MemoryFS {
	t.Helper()
	env := testutil.NewTestEnvironment(t)
	env.SetupProject(testutil.ProjectConfig{
		Files: map[string]string{
			"src/main.ts":           "import App from '@/App'",
			"src/App.vue":           "<template></template>",
			"src/util.ts":           "export {}",
			"src/components/nav.ts": "export {}",
		},
	})
	return env.FS
}

func TestResolver_Resolve(t *testing.T) {
	extensions := []string{".ts", ".js", ".vue"}
	aliases := map[string]string{"@": "src"}

	t.Run("literal_path", func(t *testing.T) {
		r := resolve.New(extensions, aliases, projectFS(t))

		got, err := r.Resolve("src/main.ts", ".")
		require.NoError(t, err)
		assert.Equal(t, "src/main.ts", got)
	})

	t.Run("extension_appended_in_order", func(t *testing.T) {
		r := resolve.New(extensions, aliases, projectFS(t))

		got, err := r.Resolve("src/App", ".")
		require.NoError(t, err)
		assert.Equal(t, "src/App.vue", got, ".ts and .js miss, .vue hits")
	})

	t.Run("alias_prefix", func(t *testing.T) {
		r := resolve.New(extensions, aliases, projectFS(t))

		got, err := r.Resolve("@/util", ".")
		require.NoError(t, err)
		assert.Equal(t, "src/util.ts", got)
	})

	t.Run("relative_from_dir", func(t *testing.T) {
		r := resolve.New(extensions, aliases, projectFS(t))

		got, err := r.Resolve("./components/nav", "src")
		require.NoError(t, err)
		assert.Equal(t, "src/components/nav.ts", got)
	})

	t.Run("longest_alias_wins", func(t *testing.T) {
		fs := projectFS(t)
		r := resolve.New(extensions, map[string]string{
			"@":            "elsewhere",
			"@/components": "src/components",
		}, fs)

		got, err := r.Resolve("@/components/nav", ".")
		require.NoError(t, err)
		assert.Equal(t, "src/components/nav.ts", got)
	})

	t.Run("miss_is_not_found", func(t *testing.T) {
		r := resolve.New(extensions, aliases, projectFS(t))

		_, err := r.Resolve("src/ghost", ".")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})

	t.Run("empty_specifier", func(t *testing.T) {
		r := resolve.New(extensions, aliases, projectFS(t))

		_, err := r.Resolve("", ".")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("directory_is_not_a_file", func(t *testing.T) {
		r := resolve.New(nil, nil, projectFS(t))

		_, err := r.Resolve("src/components", ".")
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})
}
