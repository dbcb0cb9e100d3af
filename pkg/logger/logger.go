package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New constructs a named sugared logger writing to stderr. Standard
// output stays reserved for the checksum itself, so diagnostics never
// mix with the result a caller may be piping somewhere.
func New(name string) *zap.SugaredLogger {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true

	log, err := config.Build()
	if err != nil {
		log = zap.NewNop()
	}

	return log.Sugar().Named(name)
}
