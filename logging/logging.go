package logging

import "log"

const (
	// TraceLevel indicates a log message's level of criticality
	TraceLevel = iota
	// DebugLevel indicates a log message's level of criticality
	DebugLevel
	// InfoLevel indicates a log message's level of criticality
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
	// FatalLevel indicates a log message's level of criticality
	FatalLevel
)

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "TRACE"
	}
}

// Logger writes leveled messages to the standard logger, discarding
// anything below its configured level
type Logger struct {
	level int
}

// NewLogger returns a Logger which discards messages below the given level
func NewLogger(level int) *Logger {
	return &Logger{level: level}
}

// Logf logs a formatted message at the given level
func (l *Logger) Logf(level int, format string, v ...interface{}) {
	if level < l.level {
		return
	}
	log.Printf("["+LogLevelToString(level)+"] "+format, v...)
}
