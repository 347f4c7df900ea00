// Test Type: Unit Test
// Description: Tests for the copy step - passthrough emission

package copy_test

import (
	"context"
	"testing"

	"github.com/bindle-dev/bindle/pkg/steps/copy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStep_Transform(t *testing.T) {
	step, err := copy.New(nil)
	require.NoError(t, err)

	in := []byte("exact bytes through")
	out, err := step.Transform(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestNew_RejectsOptions(t *testing.T) {
	_, err := copy.New(map[string]interface{}{"anything": 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown option: anything")
}
