package core

import "github.com/hupe1980/skcontext/logging"

// loggerAdapter guarantees a non-nil logger for contexts and builders by
// substituting a NoOpLogger when given nil.
type loggerAdapter struct {
	logger logging.Logger
}

func newLoggerAdapter(l logging.Logger) *loggerAdapter {
	if l == nil {
		l = logging.NoOpLogger{}
	}
	return &loggerAdapter{logger: l}
}

// Logger returns the underlying logger.
func (l *loggerAdapter) Logger() logging.Logger {
	return l.logger
}

func (l *loggerAdapter) logDebug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}
