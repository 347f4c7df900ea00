// Test Type: Unit Test
// Description: Tests for the rules package - resolver that maps file paths to step pipelines

package rules_test

import (
	"testing"

	"github.com/bindle-dev/bindle/pkg/errors"
	"github.com/bindle-dev/bindle/pkg/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tsVueRules() []rules.Rule {
	return []rules.Rule{
		{Test: "*.ts", Use: []rules.StepRef{{Name: "ts-check"}}},
		{Test: "*.vue", Use: []rules.StepRef{{Name: "template-compile"}}},
	}
}

func stepNames(plan []rules.ResolvedStep) []string {
	names := make([]string, 0, len(plan))
	for _, s := range plan {
		names = append(names, s.Name)
	}
	return names
}

func TestResolver_Resolve(t *testing.T) {
	t.Run("extension_match_ts", func(t *testing.T) {
		resolver := rules.NewResolver(tsVueRules())

		plan, err := resolver.Resolve("main.ts")
		require.NoError(t, err)
		assert.Equal(t, []string{"ts-check"}, stepNames(plan))
	})

	t.Run("extension_match_vue", func(t *testing.T) {
		resolver := rules.NewResolver(tsVueRules())

		plan, err := resolver.Resolve("App.vue")
		require.NoError(t, err)
		assert.Equal(t, []string{"template-compile"}, stepNames(plan))
	})

	t.Run("no_matching_rule", func(t *testing.T) {
		resolver := rules.NewResolver(tsVueRules())

		_, err := resolver.Resolve("main.unknown")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNoMatchingRule))
		assert.Equal(t, "main.unknown", errors.GetErrorDetails(err)["path"])
	})

	t.Run("empty_path", func(t *testing.T) {
		resolver := rules.NewResolver(tsVueRules())

		_, err := resolver.Resolve("")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("exclude_overrides_match", func(t *testing.T) {
		resolver := rules.NewResolver([]rules.Rule{
			{Test: "*.ts", Exclude: "*.d.ts", Use: []rules.StepRef{{Name: "ts-check"}}},
			{Test: "*", Use: []rules.StepRef{{Name: "copy"}}},
		})

		plan, err := resolver.Resolve("vue-shims.d.ts")
		require.NoError(t, err)
		assert.Equal(t, []string{"copy"}, stepNames(plan), "excluded rule must contribute no steps")

		plan, err = resolver.Resolve("main.ts")
		require.NoError(t, err)
		assert.Equal(t, []string{"ts-check", "copy"}, stepNames(plan))
	})

	t.Run("multiple_matches_compose_in_declaration_order", func(t *testing.T) {
		resolver := rules.NewResolver([]rules.Rule{
			{Test: "*.ts", Use: []rules.StepRef{{Name: "ts-check"}, {Name: "banner"}}},
			{Test: "src/*", Use: []rules.StepRef{{Name: "copy"}}},
		})

		plan, err := resolver.Resolve("src/main.ts")
		require.NoError(t, err)
		assert.Equal(t, []string{"ts-check", "banner", "copy"}, stepNames(plan))
		assert.Equal(t, 0, plan[0].Rule)
		assert.Equal(t, 1, plan[2].Rule)
	})

	t.Run("idempotent", func(t *testing.T) {
		resolver := rules.NewResolver(tsVueRules())

		first, err := resolver.Resolve("main.ts")
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, err := resolver.Resolve("main.ts")
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})

	t.Run("options_passed_through", func(t *testing.T) {
		resolver := rules.NewResolver([]rules.Rule{
			{Test: "*.ts", Use: []rules.StepRef{{
				Name:    "suffix",
				Options: map[string]interface{}{"appendSuffixTo": []string{"*.vue"}},
			}}},
		})

		plan, err := resolver.Resolve("main.ts")
		require.NoError(t, err)
		require.Len(t, plan, 1)
		assert.Equal(t, []string{"*.vue"}, plan[0].Options["appendSuffixTo"])
	})

	t.Run("directory_pattern", func(t *testing.T) {
		resolver := rules.NewResolver([]rules.Rule{
			{Test: "assets/", Use: []rules.StepRef{{Name: "copy"}}},
		})

		plan, err := resolver.Resolve("assets/logo.png")
		require.NoError(t, err)
		assert.Equal(t, []string{"copy"}, stepNames(plan))

		_, err = resolver.Resolve("logo.png")
		assert.True(t, errors.IsErrorCode(err, errors.ErrNoMatchingRule))
	})

	t.Run("path_pattern", func(t *testing.T) {
		resolver := rules.NewResolver([]rules.Rule{
			{Test: "src/*.ts", Use: []rules.StepRef{{Name: "ts-check"}}},
		})

		plan, err := resolver.Resolve("src/main.ts")
		require.NoError(t, err)
		assert.Equal(t, []string{"ts-check"}, stepNames(plan))

		_, err = resolver.Resolve("lib/main.ts")
		assert.True(t, errors.IsErrorCode(err, errors.ErrNoMatchingRule))
	})
}

func TestValidate(t *testing.T) {
	t.Run("valid_rules", func(t *testing.T) {
		assert.NoError(t, rules.Validate(tsVueRules()))
	})

	t.Run("empty_test_pattern", func(t *testing.T) {
		err := rules.Validate([]rules.Rule{
			{Test: "", Use: []rules.StepRef{{Name: "copy"}}},
		})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})

	t.Run("rule_without_steps", func(t *testing.T) {
		err := rules.Validate([]rules.Rule{{Test: "*.ts"}})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})

	t.Run("step_without_name", func(t *testing.T) {
		err := rules.Validate([]rules.Rule{
			{Test: "*.ts", Use: []rules.StepRef{{Name: ""}}},
		})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestDefaultRules(t *testing.T) {
	resolver := rules.NewResolver(rules.DefaultRules())

	plan, err := resolver.Resolve("anything.xyz")
	require.NoError(t, err)
	assert.Equal(t, []string{"copy"}, stepNames(plan))
}
