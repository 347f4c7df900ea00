// Package suffix implements the suffix step: import specifiers whose target
// matches a configured pattern get an extension appended, so a downstream
// compiler that only understands suffixed paths can pick them up.
package suffix

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/bindle-dev/bindle/pkg/options"
	"github.com/bindle-dev/bindle/pkg/registry"
	"github.com/bindle-dev/bindle/pkg/types"
)

// StepName is the name used to reference this step in rules
const StepName = "suffix"

// DefaultSuffix is appended when the options name no other
const DefaultSuffix = ".ts"

// importRe captures the specifier of `from "..."` and `from '...'` clauses
var importRe = regexp.MustCompile(`(from\s+)(['"])([^'"]+)(['"])`)

// Step rewrites matching import specifiers
type Step struct {
	patterns []string
	suffix   string
}

// New creates a suffix step from its options. `appendSuffixTo` lists glob
// patterns matched against each specifier's base name; `suffix` overrides
// the appended extension.
func New(opts map[string]interface{}) (*Step, error) {
	if err := options.RejectUnknown(opts, "appendSuffixTo", "suffix"); err != nil {
		return nil, err
	}

	patterns, ok, err := options.StringSlice(opts, "appendSuffixTo")
	if err != nil {
		return nil, err
	}
	if !ok || len(patterns) == 0 {
		return nil, fmt.Errorf("missing required option: appendSuffixTo")
	}

	sfx, ok, err := options.String(opts, "suffix")
	if err != nil {
		return nil, err
	}
	if !ok {
		sfx = DefaultSuffix
	}
	if !strings.HasPrefix(sfx, ".") {
		sfx = "." + sfx
	}

	return &Step{patterns: patterns, suffix: sfx}, nil
}

// Name returns the registered name of this step
func (s *Step) Name() string {
	return StepName
}

// Description returns a human-readable description of this step
func (s *Step) Description() string {
	return fmt.Sprintf("Appends %q to imports matching %v", s.suffix, s.patterns)
}

// Transform rewrites import clauses whose specifier matches one of the
// configured patterns and does not already carry the suffix
func (s *Step) Transform(_ context.Context, in []byte) ([]byte, error) {
	out := importRe.ReplaceAllFunc(in, func(m []byte) []byte {
		parts := importRe.FindSubmatch(m)
		specifier := string(parts[3])

		if strings.HasSuffix(specifier, s.suffix) || !s.matches(specifier) {
			return m
		}

		return []byte(string(parts[1]) + string(parts[2]) + specifier + s.suffix + string(parts[4]))
	})
	return out, nil
}

func (s *Step) matches(specifier string) bool {
	base := path.Base(specifier)
	for _, pattern := range s.patterns {
		if matched, _ := path.Match(pattern, base); matched {
			return true
		}
	}
	return false
}

func init() {
	err := registry.RegisterStepFactory(StepName, func(opts map[string]interface{}) (types.Step, error) {
		return New(opts)
	})
	if err != nil {
		panic(fmt.Sprintf("failed to register suffix step: %v", err))
	}
}
