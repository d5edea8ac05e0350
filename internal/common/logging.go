// Package common holds small helpers shared across layers.
package common

import (
	"io"
	"log"

	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Logger provides a simple logging interface with minimal print function(s)
type Logger interface {
	Printf(format string, v ...interface{})
}

// NullLogger implements the Logger interface with no-op functions
type NullLogger struct{}

var _ Logger = NullLogger{}

// Printf is a no-op print function
func (n NullLogger) Printf(_ string, _ ...interface{}) {}

// MaskLogger takes a Logger and returns the Logger if not nil, or a NullLogger
// if it is nil.
func MaskLogger(logger Logger) Logger {
	if logger != nil {
		return logger
	}
	return NullLogger{}
}

// NewLogger returns a logger writing to a rotating file at path. An empty
// path yields a logger that discards everything.
func NewLogger(path, prefix string) *log.Logger {
	var out io.Writer = io.Discard
	if path != "" {
		out = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    50, // megabytes
			MaxBackups: 30,
			MaxAge:     1, //days
		}
	}

	return log.New(out, prefix+" > ", log.Ldate|log.Ltime|log.Lmicroseconds|log.Lshortfile)
}
