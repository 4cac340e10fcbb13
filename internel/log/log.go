package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Log = zap.NewNop().Sugar()

func InitLogger(quiet, verbose bool) {
	if quiet {
		Log = zap.NewNop().Sugar()
		return
	}

	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		level.SetLevel(zap.DebugLevel)
	}

	encoder := zap.NewDevelopmentEncoderConfig()
	encoder.TimeKey = ""
	encoder.CallerKey = ""
	encoder.EncodeLevel = zapcore.CapitalLevelEncoder

	logger, err := zap.Config{
		Level:             level,
		Development:       verbose,
		DisableStacktrace: true,
		Encoding:          "console",
		EncoderConfig:     encoder,
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
	}.Build()

	if err != nil {
		panic(err)
	}
	Log = logger.Sugar()
}

// SetLogger replaces the process logger, used by tests to observe output.
func SetLogger(l *zap.Logger) {
	Log = l.Sugar()
}

func Sync() {
	_ = Log.Sync()
}
