package logger

import (
	"go.uber.org/zap"
)

type NewParams struct {
	IsProd bool
}

type Logger struct {
	*zap.SugaredLogger
}

// New returns a sugared zap logger. Production mode gives sampled
// JSON output, anything else the human-readable development config.
func New(p NewParams) (*Logger, error) {
	var l *zap.Logger
	var err error
	if p.IsProd {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, err
	}

	return &Logger{l.Sugar()}, nil
}

// Named returns a copy of the logger with the given name segment
// appended, for per-tool prefixes.
func (l *Logger) Named(name string) *Logger {
	return &Logger{l.SugaredLogger.Named(name)}
}
