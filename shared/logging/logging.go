// Package logging builds the zap loggers used by the client and the headless
// runner.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger at debug level when verbose is set, and a
// JSON logger at info level otherwise.
func New(verbose bool) (*zap.Logger, error) {
	level := zap.InfoLevel
	encoding := "json"
	encoderConfig := zap.NewProductionEncoderConfig()
	if verbose {
		level = zap.DebugLevel
		encoding = "console"
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      verbose,
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    !verbose,
	}
	return config.Build()
}

// Nop discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}
