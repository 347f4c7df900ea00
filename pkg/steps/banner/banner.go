// Package banner implements the banner step: a comment line is prepended to
// the file contents.
package banner

import (
	"context"
	"fmt"

	"github.com/bindle-dev/bindle/pkg/options"
	"github.com/bindle-dev/bindle/pkg/registry"
	"github.com/bindle-dev/bindle/pkg/types"
)

// StepName is the name used to reference this step in rules
const StepName = "banner"

// DefaultComment is the comment marker used when none is configured
const DefaultComment = "//"

// Step prepends a comment banner to file contents
type Step struct {
	text    string
	comment string
}

// New creates a banner step from its options. `text` is required;
// `comment` overrides the comment marker.
func New(opts map[string]interface{}) (*Step, error) {
	if err := options.RejectUnknown(opts, "text", "comment"); err != nil {
		return nil, err
	}

	text, err := options.RequiredString(opts, "text")
	if err != nil {
		return nil, err
	}

	comment, ok, err := options.String(opts, "comment")
	if err != nil {
		return nil, err
	}
	if !ok {
		comment = DefaultComment
	}

	return &Step{text: text, comment: comment}, nil
}

// Name returns the registered name of this step
func (s *Step) Name() string {
	return StepName
}

// Description returns a human-readable description of this step
func (s *Step) Description() string {
	return fmt.Sprintf("Prepends the banner %q", s.text)
}

// Transform prepends the banner line
func (s *Step) Transform(_ context.Context, in []byte) ([]byte, error) {
	header := fmt.Sprintf("%s %s\n", s.comment, s.text)
	out := make([]byte, 0, len(header)+len(in))
	out = append(out, header...)
	out = append(out, in...)
	return out, nil
}

func init() {
	err := registry.RegisterStepFactory(StepName, func(opts map[string]interface{}) (types.Step, error) {
		return New(opts)
	})
	if err != nil {
		panic(fmt.Sprintf("failed to register banner step: %v", err))
	}
}
