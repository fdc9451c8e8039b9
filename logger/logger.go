// Package logger holds the process-wide structured logger. Logs go to
// stderr so that stdout stays free for generated artifacts.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is a no-op until Initialize runs.
	Logger = zap.NewNop().Sugar()
	// JSONOutput is set when logs are written as JSON lines
	JSONOutput bool
	// Verbosity is the -v count the logger was initialized with
	Verbosity int
)

// Initialize sets up the global logger for the given -v count and format.
func Initialize(verbosity int, jsonOutput bool) error {
	return InitializeWriter(os.Stderr, verbosity, jsonOutput)
}

// InitializeWriter is Initialize with an explicit destination.
func InitializeWriter(w io.Writer, verbosity int, jsonOutput bool) error {
	JSONOutput = jsonOutput
	Verbosity = verbosity

	encoder := newMinimalEncoder()
	if jsonOutput {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(cfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), VerbosityToLevel(verbosity))
	Logger = zap.New(core).Sugar()
	return nil
}

// Cleanup flushes any buffered log entries
func Cleanup() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// Infow logs an info message with structured fields
func Infow(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Infow(msg, keysAndValues...)
	}
}

// Warnw logs a warning message with structured fields
func Warnw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Warnw(msg, keysAndValues...)
	}
}

// Errorw logs an error message with structured fields
func Errorw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Errorw(msg, keysAndValues...)
	}
}

// Debugw logs a debug message with structured fields
func Debugw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Debugw(msg, keysAndValues...)
	}
}
