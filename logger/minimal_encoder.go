package logger

import (
	"go.uber.org/zap/zapcore"
)

// newMinimalEncoder returns a console encoder without timestamps or callers.
// Generation runs are short; the level and the fields are what matter.
func newMinimalEncoder() zapcore.Encoder {
	return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         "level",
		NameKey:          "logger",
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	})
}
