package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		verbosity  int
		jsonOutput bool
		wantLevel  zapcore.Level
	}{
		{name: "JSON output mode", verbosity: 0, jsonOutput: true, wantLevel: zapcore.WarnLevel},
		{name: "Console output mode", verbosity: 1, jsonOutput: false, wantLevel: zapcore.InfoLevel},
		{name: "Console debug", verbosity: 2, jsonOutput: false, wantLevel: zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Logger = nil
			JSONOutput = false

			require.NoError(t, Initialize(tt.verbosity, tt.jsonOutput))
			require.NotNil(t, Logger)
			assert.Equal(t, tt.jsonOutput, JSONOutput)
			assert.Equal(t, tt.verbosity, Verbosity)
			assert.True(t, Logger.Desugar().Core().Enabled(tt.wantLevel))
			if tt.wantLevel > zapcore.DebugLevel {
				assert.False(t, Logger.Desugar().Core().Enabled(tt.wantLevel-1))
			}

			Cleanup()
		})
	}
}

func TestHelpersToleratesNilLogger(t *testing.T) {
	Logger = nil
	assert.NotPanics(t, func() {
		Infow("info", "k", "v")
		Debugw("debug")
		Warnw("warn")
		Errorw("error")
		Cleanup()
	})
	require.NoError(t, Initialize(0, false))
}

func TestInitializeWriter(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, Initialize(0, false)) })

	t.Run("console", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, InitializeWriter(&buf, 1, false))

		Infow("Generated artifacts", "count", 3)
		Debugw("hidden")

		assert.Equal(t, "INFO Generated artifacts {\"count\": 3}\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, InitializeWriter(&buf, 0, true))

		Warnw("Regeneration failed", "error", "boom")

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "warn", entry["level"])
		assert.Equal(t, "Regeneration failed", entry["msg"])
		assert.Equal(t, "boom", entry["error"])
	})
}

func TestVerbosityToLevel(t *testing.T) {
	assert.Equal(t, zapcore.WarnLevel, VerbosityToLevel(-1))
	assert.Equal(t, zapcore.WarnLevel, VerbosityToLevel(VerbosityUser))
	assert.Equal(t, zapcore.InfoLevel, VerbosityToLevel(VerbosityInfo))
	assert.Equal(t, zapcore.DebugLevel, VerbosityToLevel(VerbosityDebug))
	assert.Equal(t, zapcore.DebugLevel, VerbosityToLevel(7))
}

func TestLevelName(t *testing.T) {
	assert.Equal(t, "User", LevelName(0))
	assert.Equal(t, "Info (-v)", LevelName(1))
	assert.Equal(t, "Debug (-vv)", LevelName(2))
	assert.Equal(t, "Debug (-vv+)", LevelName(5))
}

func TestShouldOutput(t *testing.T) {
	assert.True(t, ShouldOutput(VerbosityUser, OutputResults))
	assert.True(t, ShouldOutput(VerbosityUser, OutputErrors))
	assert.False(t, ShouldOutput(VerbosityUser, OutputHints))
	assert.True(t, ShouldOutput(VerbosityInfo, OutputHints))
	assert.False(t, ShouldOutput(VerbosityInfo, OutputModel))
	assert.True(t, ShouldOutput(VerbosityDebug, OutputTiming))
	assert.False(t, ShouldOutput(VerbosityInfo, OutputCategory(99)))
}
