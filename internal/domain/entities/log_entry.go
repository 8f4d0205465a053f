package entities

import "time"

type LogLevel string

const (
	LogLevelInfo    LogLevel = "INFO"
	LogLevelWarning LogLevel = "WARNING"
	LogLevelError   LogLevel = "ERROR"
)

// LogEntry is an operational audit row kept in the store's Logs table.
type LogEntry struct {
	ID        string
	Timestamp time.Time
	Level     LogLevel
	Source    string
	Message   string
	RelatedID string
	Details   string
}
