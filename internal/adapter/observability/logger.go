package observability

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"
)

// Logger provides structured logging for the commit workflow.
type Logger interface {
	Debug(ctx context.Context, message string, fields map[string]interface{})
	Info(ctx context.Context, message string, fields map[string]interface{})
	Warn(ctx context.Context, message string, fields map[string]interface{})
	Error(ctx context.Context, message string, fields map[string]interface{})
}

// LogLevel defines the logging verbosity level.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// ParseLevel maps a config string to a level, defaulting to info.
func ParseLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "debug":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// LogFormat defines the output format for logs.
type LogFormat int

const (
	LogFormatHuman LogFormat = iota
	LogFormatJSON
)

// ParseFormat maps a config string to a format, defaulting to human.
func ParseFormat(s string) LogFormat {
	if strings.EqualFold(s, "json") {
		return LogFormatJSON
	}
	return LogFormatHuman
}

// DefaultLogger writes leveled logs to the given writer.
type DefaultLogger struct {
	level  LogLevel
	format LogFormat
	out    *log.Logger
}

// NewDefaultLogger creates a logger with the specified level and format.
func NewDefaultLogger(level LogLevel, format LogFormat, w io.Writer) *DefaultLogger {
	return &DefaultLogger{
		level:  level,
		format: format,
		out:    log.New(w, "", log.LstdFlags),
	}
}

// Debug logs a debug message with structured fields.
func (l *DefaultLogger) Debug(ctx context.Context, message string, fields map[string]interface{}) {
	l.write(LogLevelDebug, "debug", message, fields)
}

// Info logs an informational message with structured fields.
func (l *DefaultLogger) Info(ctx context.Context, message string, fields map[string]interface{}) {
	l.write(LogLevelInfo, "info", message, fields)
}

// Warn logs a warning message with structured fields.
func (l *DefaultLogger) Warn(ctx context.Context, message string, fields map[string]interface{}) {
	l.write(LogLevelWarn, "warn", message, fields)
}

// Error logs an error message with structured fields.
func (l *DefaultLogger) Error(ctx context.Context, message string, fields map[string]interface{}) {
	l.write(LogLevelError, "error", message, fields)
}

func (l *DefaultLogger) write(level LogLevel, name, message string, fields map[string]interface{}) {
	if level < l.level {
		return
	}

	if l.format == LogFormatJSON {
		entry := map[string]interface{}{
			"level":   name,
			"message": message,
		}
		for k, v := range fields {
			entry[k] = v
		}
		if encoded, err := json.Marshal(entry); err == nil {
			l.out.Print(string(encoded))
			return
		}
	}

	l.out.Printf("[%s] %s%s", strings.ToUpper(name), message, formatFields(fields))
}

// formatFields renders fields as " (k1=v1, k2=v2)" in stable key order.
func formatFields(fields map[string]interface{}) string {
	if len(fields) == 0 {
		return ""
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	return " (" + strings.Join(parts, ", ") + ")"
}
