package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type LogLevel string

const (
	DEBUG LogLevel = "DEBUG"
	INFO  LogLevel = "INFO"
	WARN  LogLevel = "WARN"
	ERROR LogLevel = "ERROR"
)

// Logger writes structured events as alternating key/value pairs:
//
//	log.Info("rating_submitted", "rating", 4, "model_id", id)
type Logger struct {
	entry *logrus.Entry
}

var (
	mu            sync.RWMutex
	defaultLogger = New(INFO, false, os.Stdout)
)

func (l LogLevel) logrusLevel() logrus.Level {
	switch LogLevel(strings.ToUpper(string(l))) {
	case DEBUG:
		return logrus.DebugLevel
	case WARN, "WARNING":
		return logrus.WarnLevel
	case ERROR:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// New builds a standalone logger. A nil writer discards output.
func New(level LogLevel, jsonFormat bool, w io.Writer) *Logger {
	base := logrus.New()
	base.SetLevel(level.logrusLevel())

	if jsonFormat {
		base.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		base.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: time.RFC3339,
			FullTimestamp:   true,
		})
	}

	if w == nil {
		w = io.Discard
	}
	base.SetOutput(w)

	return &Logger{entry: logrus.NewEntry(base)}
}

// Init replaces the process-wide logger.
func Init(level LogLevel, jsonFormat bool, w io.Writer) {
	l := New(level, jsonFormat, w)
	mu.Lock()
	defaultLogger = l
	mu.Unlock()
}

func GetLogger() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// WithContext returns a child logger that always carries the given pairs.
func (l *Logger) WithContext(keyvals ...interface{}) *Logger {
	return &Logger{entry: l.entry.WithFields(toFields(keyvals))}
}

func (l *Logger) Debug(msg string, keyvals ...interface{}) {
	l.entry.WithFields(toFields(keyvals)).Debug(msg)
}

func (l *Logger) Info(msg string, keyvals ...interface{}) {
	l.entry.WithFields(toFields(keyvals)).Info(msg)
}

func (l *Logger) Warn(msg string, keyvals ...interface{}) {
	l.entry.WithFields(toFields(keyvals)).Warn(msg)
}

func (l *Logger) Error(msg string, keyvals ...interface{}) {
	l.entry.WithFields(toFields(keyvals)).Error(msg)
}

func toFields(keyvals []interface{}) logrus.Fields {
	fields := logrus.Fields{}
	for i := 0; i < len(keyvals); i += 2 {
		key := fmt.Sprint(keyvals[i])
		if i+1 >= len(keyvals) {
			fields[key] = "(missing)"
			break
		}
		fields[key] = keyvals[i+1]
	}
	return fields
}

func WithContext(keyvals ...interface{}) *Logger {
	return GetLogger().WithContext(keyvals...)
}

func Debug(msg string, keyvals ...interface{}) { GetLogger().Debug(msg, keyvals...) }
func Info(msg string, keyvals ...interface{})  { GetLogger().Info(msg, keyvals...) }
func Warn(msg string, keyvals ...interface{})  { GetLogger().Warn(msg, keyvals...) }
func Error(msg string, keyvals ...interface{}) { GetLogger().Error(msg, keyvals...) }
