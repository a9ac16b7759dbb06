package models

import (
	"fmt"
	"time"
)

// LogType categorizes a log entry.
type LogType string

const (
	LogTypeInfo  LogType = "INFO"
	LogTypeTool  LogType = "TOOL"
	LogTypeError LogType = "ERROR"
	LogTypeDebug LogType = "DEBUG"
)

// AllLogTypes lists every log type in display order.
var AllLogTypes = []LogType{LogTypeInfo, LogTypeTool, LogTypeError, LogTypeDebug}

// ParseLogType validates a log type read from an external source.
func ParseLogType(s string) (LogType, error) {
	switch LogType(s) {
	case LogTypeInfo, LogTypeTool, LogTypeError, LogTypeDebug:
		return LogType(s), nil
	}
	return "", fmt.Errorf("models: invalid log type %q", s)
}

// LogEntry is a single timestamped diagnostic message for a run.
// Entries are immutable once loaded.
type LogEntry struct {
	ID        string
	RunID     string
	Timestamp time.Time
	Type      LogType
	Message   string
	Metadata  string // opaque JSON string, empty when absent
}
