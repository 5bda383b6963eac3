package cache

import (
	"strings"

	"github.com/rs/zerolog"
)

// badgerLogger routes badger's printf-style logging onto zerolog.
type badgerLogger struct {
	log zerolog.Logger
}

func newBadgerLogger(log zerolog.Logger) *badgerLogger {
	return &badgerLogger{log: log.With().Str("component", "badger").Logger()}
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Error().Msgf(trimNewline(format), args...)
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Warn().Msgf(trimNewline(format), args...)
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.log.Debug().Msgf(trimNewline(format), args...)
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.Trace().Msgf(trimNewline(format), args...)
}

func trimNewline(s string) string {
	return strings.TrimSuffix(s, "\n")
}
