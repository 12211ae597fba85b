// File: cmd/logger.go
package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Logger interface for structured logging
type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
}

// logrusLogger adapts key/value pairs onto logrus fields.
type logrusLogger struct {
	log *logrus.Logger
}

// NewLogger returns a logger writing to w. Only warnings and errors are
// emitted unless debug is set.
func NewLogger(w io.Writer, debug bool) Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	log.SetLevel(logrus.WarnLevel)
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}
	return &logrusLogger{log: log}
}

func (l *logrusLogger) Debug(msg string, fields ...interface{}) {
	l.log.WithFields(toFields(fields)).Debug(msg)
}

func (l *logrusLogger) Info(msg string, fields ...interface{}) {
	l.log.WithFields(toFields(fields)).Info(msg)
}

func (l *logrusLogger) Warn(msg string, fields ...interface{}) {
	l.log.WithFields(toFields(fields)).Warn(msg)
}

func (l *logrusLogger) Error(msg string, fields ...interface{}) {
	l.log.WithFields(toFields(fields)).Error(msg)
}

// toFields pairs up keyvals. A trailing key without a value is kept under
// "!BADKEY" so nothing is dropped silently.
func toFields(keyvals []interface{}) logrus.Fields {
	fields := make(logrus.Fields, len(keyvals)/2)
	for i := 0; i < len(keyvals); i += 2 {
		if i+1 >= len(keyvals) {
			fields["!BADKEY"] = keyvals[i]
			break
		}
		fields[fmt.Sprint(keyvals[i])] = keyvals[i+1]
	}
	return fields
}
