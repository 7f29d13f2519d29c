package services

import "log/slog"

// LoggerInterface is the logging surface the services depend on, kept
// small so tests can substitute their own implementation.
type LoggerInterface interface {
	Info(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
}

// defaultLogger forwards to the process-wide slog logger.
type defaultLogger struct {
	logger *slog.Logger
}

func newDefaultLogger() *defaultLogger {
	return &defaultLogger{
		logger: slog.Default(),
	}
}

func (l *defaultLogger) Info(msg string, args ...interface{}) {
	l.logger.Info(msg, pairArgs(args)...)
}

func (l *defaultLogger) Error(msg string, args ...interface{}) {
	l.logger.Error(msg, pairArgs(args)...)
}

func (l *defaultLogger) Warn(msg string, args ...interface{}) {
	l.logger.Warn(msg, pairArgs(args)...)
}

// pairArgs keeps variadic args usable as slog key-value pairs; a
// trailing odd argument is passed through and slog renders it as
// !BADKEY rather than dropping it.
func pairArgs(args []interface{}) []interface{} {
	if len(args) == 0 {
		return nil
	}
	attrs := make([]interface{}, 0, len(args))
	for i := 0; i < len(args); i += 2 {
		if i+1 < len(args) {
			attrs = append(attrs, args[i], args[i+1])
		} else {
			attrs = append(attrs, args[i])
		}
	}
	return attrs
}
