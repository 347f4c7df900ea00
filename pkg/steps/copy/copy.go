// Package copy implements the passthrough step: matched files are emitted
// exactly as read.
package copy

import (
	"context"
	"fmt"

	"github.com/bindle-dev/bindle/pkg/options"
	"github.com/bindle-dev/bindle/pkg/registry"
	"github.com/bindle-dev/bindle/pkg/types"
)

// StepName is the name used to reference this step in rules
const StepName = "copy"

// Step passes file contents through untouched
type Step struct{}

// New creates a copy step. It takes no options.
func New(opts map[string]interface{}) (*Step, error) {
	if err := options.RejectUnknown(opts); err != nil {
		return nil, err
	}
	return &Step{}, nil
}

// Name returns the registered name of this step
func (s *Step) Name() string {
	return StepName
}

// Description returns a human-readable description of this step
func (s *Step) Description() string {
	return "Emits the file contents unchanged"
}

// Transform returns the input as-is
func (s *Step) Transform(_ context.Context, in []byte) ([]byte, error) {
	return in, nil
}

func init() {
	err := registry.RegisterStepFactory(StepName, func(opts map[string]interface{}) (types.Step, error) {
		return New(opts)
	})
	if err != nil {
		panic(fmt.Sprintf("failed to register copy step: %v", err))
	}
}
