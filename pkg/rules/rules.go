// Package rules implements bindle's configuration resolver: declarative
// rules mapping file-path patterns onto ordered pipelines of named steps.
package rules

import (
	"github.com/bindle-dev/bindle/pkg/errors"
)

// Validate checks that a rule set is usable before a resolver is built
// from it. Rule order is meaningful and preserved.
func Validate(ruleSet []Rule) error {
	for i, rule := range ruleSet {
		if rule.Test == "" {
			return errors.Newf(errors.ErrConfigValid,
				"rule %d has an empty test pattern", i)
		}
		if len(rule.Use) == 0 {
			return errors.Newf(errors.ErrConfigValid,
				"rule %d (%q) has no steps", i, rule.Test)
		}
		for j, ref := range rule.Use {
			if ref.Name == "" {
				return errors.Newf(errors.ErrConfigValid,
					"rule %d (%q) step %d has no name", i, rule.Test, j)
			}
		}
	}
	return nil
}

// DefaultRules returns the rule set used when the configuration declares
// none: every file is copied through untouched.
func DefaultRules() []Rule {
	return []Rule{
		{Test: "*", Use: []StepRef{{Name: "copy"}}},
	}
}
