package rules

import (
	"path/filepath"
	"strings"

	"github.com/bindle-dev/bindle/pkg/errors"
	"github.com/bindle-dev/bindle/pkg/logging"
	"github.com/rs/zerolog"
)

// Resolver maps file paths onto their processing pipelines. It is a pure
// function of the rule set it was built with: the same path always yields
// the same plan, and resolution never touches the filesystem.
type Resolver struct {
	rules  []Rule
	logger zerolog.Logger
}

// NewResolver creates a resolver over the given rule set.
// The rules are expected to have passed Validate already.
func NewResolver(ruleSet []Rule) *Resolver {
	return &Resolver{
		rules:  ruleSet,
		logger: logging.GetLogger("rules.resolver"),
	}
}

// Resolve returns the ordered step sequence to run against the file at path.
// Every rule whose Test matches and whose Exclude does not contributes its
// steps, in rule declaration order. A path no rule covers fails with
// NO_MATCHING_RULE; the caller decides whether that is fatal.
func (r *Resolver) Resolve(path string) ([]ResolvedStep, error) {
	if path == "" {
		return nil, errors.New(errors.ErrInvalidInput, "cannot resolve an empty path")
	}

	path = filepath.ToSlash(path)

	var plan []ResolvedStep
	for i, rule := range r.rules {
		if !matchesPattern(rule.Test, path) {
			continue
		}
		if rule.Exclude != "" && matchesPattern(rule.Exclude, path) {
			r.logger.Trace().
				Str("path", path).
				Str("exclude", rule.Exclude).
				Int("rule", i).
				Msg("rule excluded for path")
			continue
		}

		r.logger.Trace().
			Str("path", path).
			Str("test", rule.Test).
			Int("rule", i).
			Msg("rule matched")

		for _, ref := range rule.Use {
			plan = append(plan, ResolvedStep{
				Name:    ref.Name,
				Options: ref.Options,
				Rule:    i,
			})
		}
	}

	if plan == nil {
		return nil, errors.Newf(errors.ErrNoMatchingRule,
			"no rule matches %q", path).WithDetail("path", path)
	}

	return plan, nil
}

// matchesPattern checks a slash-normalized path against a pattern with our
// conventions:
//   - a pattern ending in "/" matches any path under a directory whose name
//     matches the part before the slash
//   - a pattern containing "/" matches against the full path
//   - anything else is a glob against the base name
func matchesPattern(pattern, path string) bool {
	if strings.HasSuffix(pattern, "/") {
		dirPattern := strings.TrimSuffix(pattern, "/")
		for _, segment := range strings.Split(filepath.ToSlash(filepath.Dir(path)), "/") {
			if matched, _ := filepath.Match(dirPattern, segment); matched {
				return true
			}
		}
		return false
	}

	if strings.Contains(pattern, "/") {
		matched, _ := filepath.Match(pattern, path)
		return matched
	}

	matched, _ := filepath.Match(pattern, filepath.Base(path))
	return matched
}
