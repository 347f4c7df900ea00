// Test Type: Unit Test
// Description: Tests for the logging package - logger setup and component loggers

package logging_test

import (
	"testing"

	"github.com/bindle-dev/bindle/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger_VerbosityLevels(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		want      zerolog.Level
	}{
		{"default_is_warn", 0, zerolog.WarnLevel},
		{"v_is_info", 1, zerolog.InfoLevel},
		{"vv_is_debug", 2, zerolog.DebugLevel},
		{"vvv_is_trace", 3, zerolog.TraceLevel},
		{"beyond_vvv_is_trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logging.SetupLogger(tt.verbosity)
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestGetLogger(t *testing.T) {
	logger := logging.GetLogger("rules.resolver")
	// The component logger must be usable without further setup
	logger.Debug().Str("path", "src/main.ts").Msg("component logger works")
}

func TestLogOperationStart(t *testing.T) {
	logger := logging.GetLogger("test")
	done := logging.LogOperationStart(logger, "resolve")
	assert.NotNil(t, done)
	done()
}
