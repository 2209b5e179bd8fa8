// Package jsonlog implements structured JSON log entries with different severity levels.
// Only entries at or above a minimum severity level are logged.
package jsonlog

import (
	"encoding/json"
	"io"
	"maps"
	"os"
	"runtime/debug"
	"sync"
	"time"
)

// Level represents the type for the severity of a log entry.
type Level int8

// The severity type is one of these levels.
const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
	LevelFatal
	LevelOff
)

// String returns a human-friendly string for the severity level.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return ""
	}
}

// ParseLevel maps a level name to a Level. Unknown names yield LevelInfo.
func ParseLevel(name string) Level {
	switch name {
	case "WARN", "warn":
		return LevelWarn
	case "ERROR", "error":
		return LevelError
	case "FATAL", "fatal":
		return LevelFatal
	case "OFF", "off":
		return LevelOff
	default:
		return LevelInfo
	}
}

// sink is shared between a logger and the children derived from it so that
// all of them serialise writes to the same destination.
type sink struct {
	mu  sync.Mutex
	out io.Writer
}

// Logger writes JSON log lines at or above minLevel. A Logger may carry
// base properties that are attached to every entry it writes.
type Logger struct {
	sink     *sink
	minLevel Level
	base     map[string]string
	exit     func(int)
}

// New returns a new logger instance which writes logs at or above a severity level
// to a specific output destination.
func New(out io.Writer, minLevel Level) *Logger {
	return &Logger{
		sink:     &sink{out: out},
		minLevel: minLevel,
		exit:     os.Exit,
	}
}

// With returns a child logger that adds properties to every entry. Properties
// passed at the call site win over the inherited ones.
func (l *Logger) With(properties map[string]string) *Logger {
	base := make(map[string]string, len(l.base)+len(properties))
	maps.Copy(base, l.base)
	maps.Copy(base, properties)
	return &Logger{
		sink:     l.sink,
		minLevel: l.minLevel,
		base:     base,
		exit:     l.exit,
	}
}

func (l *Logger) print(level Level, message string, properties map[string]string) (int, error) {
	if level < l.minLevel {
		return 0, nil
	}
	if len(l.base) > 0 {
		merged := make(map[string]string, len(l.base)+len(properties))
		maps.Copy(merged, l.base)
		maps.Copy(merged, properties)
		properties = merged
	}
	aux := struct {
		Level      string            `json:"level"`
		Time       string            `json:"time"`
		Message    string            `json:"message"`
		Properties map[string]string `json:"properties,omitempty"`
		Trace      string            `json:"trace,omitempty"`
	}{
		Level:      level.String(),
		Time:       time.Now().UTC().Format(time.RFC3339),
		Message:    message,
		Properties: properties,
	}
	if level >= LevelError {
		aux.Trace = string(debug.Stack())
	}
	line, err := json.Marshal(aux)
	if err != nil {
		line = []byte(LevelError.String() + ": unable to marshal log message: " + err.Error())
	}
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	return l.sink.out.Write(append(line, '\n'))
}

// Write satisfies io.Writer so the logger can back http.Server.ErrorLog.
// Entries are written at the ERROR level with no additional properties.
func (l *Logger) Write(message []byte) (n int, err error) {
	return l.print(LevelError, string(message), nil)
}

// PrintInfo writes log entries at the INFO level.
func (l *Logger) PrintInfo(message string, properties map[string]string) {
	l.print(LevelInfo, message, properties)
}

// PrintWarn writes log entries at the WARN level.
func (l *Logger) PrintWarn(message string, properties map[string]string) {
	l.print(LevelWarn, message, properties)
}

// PrintError writes log entries at the ERROR level.
func (l *Logger) PrintError(err error, properties map[string]string) {
	l.print(LevelError, err.Error(), properties)
}

// PrintFatal writes log entries at the FATAL level and terminates the process.
func (l *Logger) PrintFatal(err error, properties map[string]string) {
	l.print(LevelFatal, err.Error(), properties)
	l.exit(1)
}
