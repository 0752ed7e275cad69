package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a console logger writing to w. Only warnings and errors are
// logged unless verbose is set.
func New(verbose bool, w io.Writer) *zap.Logger {
	config := zap.NewDevelopmentEncoderConfig()
	config.TimeKey = ""
	config.CallerKey = ""

	level := zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		level.SetLevel(zap.DebugLevel)
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(config),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)
	return zap.New(core)
}
