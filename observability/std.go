package observability

import (
	"fmt"
	"io"
	"log"
	"strings"
)

// StdLogger writes log messages through the standard library's log
// package. Fields are appended as key=value pairs.
type StdLogger struct {
	logger *log.Logger
	debug  bool
	fields []Field
}

// NewStdLogger returns a StdLogger writing to w. When debug is false,
// Debug messages are suppressed.
func NewStdLogger(w io.Writer, debug bool) *StdLogger {
	return &StdLogger{
		logger: log.New(w, "", log.LstdFlags),
		debug:  debug,
	}
}

func (l *StdLogger) emit(level, msg string, fields []Field) {
	var b strings.Builder
	b.WriteString(level)
	b.WriteString(" ")
	b.WriteString(msg)
	for _, f := range append(l.fields, fields...) {
		fmt.Fprintf(&b, " %s=%v", f.Key(), f.Value())
	}
	l.logger.Print(b.String())
}

func (l *StdLogger) Debug(msg string, fields ...Field) {
	if l.debug {
		l.emit("DEBUG", msg, fields)
	}
}

func (l *StdLogger) Info(msg string, fields ...Field)  { l.emit("INFO", msg, fields) }
func (l *StdLogger) Warn(msg string, fields ...Field)  { l.emit("WARN", msg, fields) }
func (l *StdLogger) Error(msg string, fields ...Field) { l.emit("ERROR", msg, fields) }

// With returns a logger that attaches fields to every message.
func (l *StdLogger) With(fields ...Field) Logger {
	return &StdLogger{
		logger: l.logger,
		debug:  l.debug,
		fields: append(append([]Field(nil), l.fields...), fields...),
	}
}
