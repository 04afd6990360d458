package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/advent2022/internal/logging"
)

func TestNew(t *testing.T) {
	cases := []struct {
		level   string
		verbose bool
		enabled zapcore.Level
		muted   zapcore.Level
	}{
		{"info", false, zapcore.InfoLevel, zapcore.DebugLevel},
		{"warn", false, zapcore.WarnLevel, zapcore.InfoLevel},
		{"error", true, zapcore.DebugLevel, zapcore.DebugLevel - 1},
	}
	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			l, err := logging.New(tc.level, tc.verbose)
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tc.enabled))
			assert.False(t, l.Core().Enabled(tc.muted))
		})
	}
}

func TestNew_BadLevel(t *testing.T) {
	_, err := logging.New("chatty", false)
	require.ErrorIs(t, err, logging.ErrBadLevel)
}
