package renderer

import "go.uber.org/zap"

// Logger is the renderer's logging seam, kept the same shape as the
// teacher's pkg/core.Logger (Printf(format, args...)) so call sites written
// against either are interchangeable.
type Logger interface {
	Printf(format string, args ...interface{})
}

// zapLogger backs Logger with a zap.SugaredLogger, the natural upgrade once
// render-progress messages ("tile N/M done", "pass complete") need level
// filtering across a multi-package spectral core rather than the teacher's
// bare fmt.Printf DefaultLogger.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewDefaultLogger builds a Logger backed by zap's production configuration.
func NewDefaultLogger() Logger {
	z, err := zap.NewProduction()
	if err != nil {
		z = zap.NewNop()
	}
	return &zapLogger{sugar: z.Sugar()}
}

func (l *zapLogger) Printf(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}
