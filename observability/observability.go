// Package observability provides logging hooks for library operations.
//
// The paginator core is silent by default: every component accepts a
// [Logger] and falls back to [NopLogger]. Binaries that want progress
// output wire in [NewStdLogger], which writes through the standard
// library's log package.
package observability

// Logger is the logging interface consumed by the library.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

// Field is a typed key/value pair attached to a log message.
type Field interface {
	Key() string
	Value() interface{}
}

type stringField struct{ key, val string }

func (f stringField) Key() string        { return f.key }
func (f stringField) Value() interface{} { return f.val }

type intField struct {
	key string
	val int
}

func (f intField) Key() string        { return f.key }
func (f intField) Value() interface{} { return f.val }

type float64Field struct {
	key string
	val float64
}

func (f float64Field) Key() string        { return f.key }
func (f float64Field) Value() interface{} { return f.val }

type errorField struct {
	key string
	err error
}

func (f errorField) Key() string        { return f.key }
func (f errorField) Value() interface{} { return f.err }

// String returns a string-valued field.
func String(key, value string) Field { return stringField{key, value} }

// Int returns an int-valued field.
func Int(key string, value int) Field { return intField{key, value} }

// Float64 returns a float64-valued field.
func Float64(key string, value float64) Field { return float64Field{key, value} }

// Error returns an error-valued field.
func Error(key string, err error) Field { return errorField{key, err} }

// NopLogger discards all log messages. It is the default for every
// component in this module.
type NopLogger struct{}

func (NopLogger) Debug(string, ...Field) {}
func (NopLogger) Info(string, ...Field)  {}
func (NopLogger) Warn(string, ...Field)  {}
func (NopLogger) Error(string, ...Field) {}
func (NopLogger) With(...Field) Logger   { return NopLogger{} }
