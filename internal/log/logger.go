// Package log provides leveled, structured logging for formkit, backed
// by logrus. The package-level functions log through a process-wide
// logger that Configure replaces.
package log

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	ferrors "formkit/internal/errors"

	"github.com/sirupsen/logrus"
)

var logger = NewLogger()

// Field is a single structured logging field.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a structured logging field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger wraps a logrus logger with the formkit option surface.
type Logger struct {
	log  *logrus.Logger
	file *os.File
}

// Option configures a Logger.
type Option func(*Logger)

// WithOutput directs log output to w.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.log.SetOutput(w)
	}
}

// WithJSON switches the logger to JSON output.
func WithJSON() Option {
	return func(l *Logger) {
		l.log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	}
}

// WithFile mirrors log output to the named file in addition to stdout.
func WithFile(path string) Option {
	return func(l *Logger) {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			l.log.Warnf("could not open log file %s: %v", path, err)
			return
		}
		l.file = f
		l.log.SetOutput(io.MultiWriter(os.Stdout, f))
	}
}

// NewLogger creates a logger writing plain text to stdout.
func NewLogger(opts ...Option) *Logger {
	l := &Logger{log: logrus.New()}
	l.log.SetOutput(os.Stdout)
	l.log.SetFormatter(&textFormatter{})
	l.log.SetLevel(logrus.InfoLevel)
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Configure replaces the process-wide logger.
func Configure(opts ...Option) {
	logger = NewLogger(opts...)
}

// SetDebug toggles debug-level logging on the process-wide logger.
func SetDebug(debug bool) {
	if debug {
		logger.log.SetLevel(logrus.DebugLevel)
	} else {
		logger.log.SetLevel(logrus.InfoLevel)
	}
}

// Entry is a logger with attached fields.
type Entry struct {
	entry *logrus.Entry
}

// With attaches structured fields to the logger.
func (l *Logger) With(fields ...Field) *Entry {
	return &Entry{entry: l.log.WithFields(toLogrus(fields))}
}

// With attaches further fields to the entry.
func (e *Entry) With(fields ...Field) *Entry {
	return &Entry{entry: e.entry.WithFields(toLogrus(fields))}
}

func (e *Entry) Info(args ...interface{})                  { e.entry.Info(args...) }
func (e *Entry) Infof(format string, args ...interface{})  { e.entry.Infof(format, args...) }
func (e *Entry) Warn(args ...interface{})                  { e.entry.Warn(args...) }
func (e *Entry) Warnf(format string, args ...interface{})  { e.entry.Warnf(format, args...) }
func (e *Entry) Error(args ...interface{})                 { e.entry.Error(args...) }
func (e *Entry) Errorf(format string, args ...interface{}) { e.entry.Errorf(format, args...) }
func (e *Entry) Debug(args ...interface{})                 { e.entry.Debug(args...) }
func (e *Entry) Debugf(format string, args ...interface{}) { e.entry.Debugf(format, args...) }

func (l *Logger) Info(args ...interface{})                  { l.log.Info(args...) }
func (l *Logger) Infof(format string, args ...interface{})  { l.log.Infof(format, args...) }
func (l *Logger) Warn(args ...interface{})                  { l.log.Warn(args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.log.Warnf(format, args...) }
func (l *Logger) Error(args ...interface{})                 { l.log.Error(args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.log.Errorf(format, args...) }
func (l *Logger) Debug(args ...interface{})                 { l.log.Debug(args...) }
func (l *Logger) Debugf(format string, args ...interface{}) { l.log.Debugf(format, args...) }

// Package-level functions logging through the process-wide logger.

func Info(args ...interface{})                  { logger.Info(args...) }
func Infof(format string, args ...interface{})  { logger.Infof(format, args...) }
func Warn(args ...interface{})                  { logger.Warn(args...) }
func Warnf(format string, args ...interface{})  { logger.Warnf(format, args...) }
func Error(args ...interface{})                 { logger.Error(args...) }
func Errorf(format string, args ...interface{}) { logger.Errorf(format, args...) }
func Debug(args ...interface{})                 { logger.Debug(args...) }
func Debugf(format string, args ...interface{}) { logger.Debugf(format, args...) }

// LogWithFields attaches fields to the process-wide logger.
func LogWithFields(fields ...Field) *Entry {
	return logger.With(fields...)
}

// LogWithError attaches an error and its formkit metadata (kind,
// offending parameter) to the process-wide logger.
func LogWithError(err error) *Entry {
	e := logger.With(F("error", fmt.Sprintf("%v", err)))
	if err == nil {
		return e
	}

	var appErr *ferrors.ApplicationError
	if ferrors.As(err, &appErr) {
		e = e.With(F("error_kind", int(appErr.Kind())))
	}

	var cfgErr *ferrors.ConfigurationError
	if ferrors.As(err, &cfgErr) {
		e = e.With(F("error_kind", int(cfgErr.Kind())), F("param", cfgErr.Param()))
	}

	return e
}

// LogError logs err at error level with the given message.
func LogError(err error, msg string) {
	LogWithError(err).Error(msg)
}

func toLogrus(fields []Field) logrus.Fields {
	out := make(logrus.Fields, len(fields))
	for _, f := range fields {
		out[f.Key] = f.Value
	}
	return out
}

// textFormatter renders "[timestamp] LEVEL: message key=value" lines with
// deterministic field order.
type textFormatter struct{}

func (f *textFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var buf bytes.Buffer

	level := strings.ToUpper(e.Level.String())
	if level == "WARNING" {
		level = "WARN"
	}
	fmt.Fprintf(&buf, "[%s] %s: %s",
		e.Time.Format("2006-01-02 15:04:05"),
		level,
		e.Message)

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&buf, " %s=%v", k, e.Data[k])
	}

	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
