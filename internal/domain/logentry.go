package domain

import "time"

// LogEntry is an append-only audit record, ordered by time.
type LogEntry struct {
	Timestamp time.Time
	Message   string
}
