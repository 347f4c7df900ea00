// Package exec implements the exec step: file contents are piped through an
// external processor on stdin/stdout. This is how black-box compilers are
// attached to a pipeline.
package exec

import (
	"bytes"
	"context"
	"fmt"
	osexec "os/exec"

	"github.com/bindle-dev/bindle/pkg/errors"
	"github.com/bindle-dev/bindle/pkg/logging"
	"github.com/bindle-dev/bindle/pkg/options"
	"github.com/bindle-dev/bindle/pkg/registry"
	"github.com/bindle-dev/bindle/pkg/types"
)

// StepName is the name used to reference this step in rules
const StepName = "exec"

// Step pipes file contents through an external command
type Step struct {
	command string
	args    []string
}

// New creates an exec step from its options. `command` is required;
// `args` is an optional argument list.
func New(opts map[string]interface{}) (*Step, error) {
	if err := options.RejectUnknown(opts, "command", "args"); err != nil {
		return nil, err
	}

	command, err := options.RequiredString(opts, "command")
	if err != nil {
		return nil, err
	}

	args, _, err := options.StringSlice(opts, "args")
	if err != nil {
		return nil, err
	}

	return &Step{command: command, args: args}, nil
}

// Name returns the registered name of this step
func (s *Step) Name() string {
	return StepName
}

// Description returns a human-readable description of this step
func (s *Step) Description() string {
	return fmt.Sprintf("Pipes contents through %q", s.command)
}

// Transform runs the external command with the contents on stdin and
// returns its stdout. A non-zero exit fails the step; stderr is carried in
// the error details, not interpreted.
func (s *Step) Transform(ctx context.Context, in []byte) ([]byte, error) {
	logger := logging.GetLogger("steps.exec")
	logger.Debug().
		Str("command", s.command).
		Strs("args", s.args).
		Msg("running external processor")

	cmd := osexec.CommandContext(ctx, s.command, s.args...)
	cmd.Stdin = bytes.NewReader(in)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrStepExecute,
			"processor %q failed", s.command).
			WithDetail("stderr", stderr.String())
	}

	return stdout.Bytes(), nil
}

func init() {
	err := registry.RegisterStepFactory(StepName, func(opts map[string]interface{}) (types.Step, error) {
		return New(opts)
	})
	if err != nil {
		panic(fmt.Sprintf("failed to register exec step: %v", err))
	}
}
