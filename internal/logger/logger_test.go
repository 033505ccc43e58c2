package logger

import (
	"testing"

	"github.com/limaJavier/coursetable/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	t.Run("Correct flow", func(t *testing.T) {
		scenarios := []config.LogConfig{
			{Level: "debug", Format: "console"},
			{Level: "warn", Format: "json"},
		}

		for _, scenario := range scenarios {
			logger, err := NewLogger(&scenario)
			require.NoError(t, err)
			level, _ := zapcore.ParseLevel(scenario.Level)
			assert.True(t, logger.Core().Enabled(level))
			assert.False(t, logger.Core().Enabled(level-1))
		}
	})

	t.Run("Invalid level", func(t *testing.T) {
		_, err := NewLogger(&config.LogConfig{Level: "loud"})
		assert.Error(t, err)
	})
}
