package audit

import (
	"context"
	"sync"

	"github.com/Sathvikar01/Event-Management-System/internal/clock"
	"github.com/Sathvikar01/Event-Management-System/internal/domain"
	"github.com/rs/zerolog"
)

// maxEntries caps the in-memory window; older records stay in storage only.
const maxEntries = 100

// Store persists audit records and rehydrates the recent window at startup.
type Store interface {
	InsertLog(ctx context.Context, message string) error
	LoadRecentLogs(ctx context.Context, limit int) ([]domain.LogEntry, error)
}

// Log records operational milestones, newest first. Appends always land in
// memory; persistence is best effort so an unreachable store never blocks the
// operation being recorded.
type Log struct {
	store Store
	clk   clock.Clock
	log   zerolog.Logger

	mu      sync.Mutex
	entries []domain.LogEntry
}

func NewLog(store Store, clk clock.Clock, log zerolog.Logger) *Log {
	return &Log{
		store: store,
		clk:   clk,
		log:   log.With().Str("component", "audit").Logger(),
	}
}

// Load seeds the in-memory window from storage. Called once at startup.
func (l *Log) Load(ctx context.Context) error {
	entries, err := l.store.LoadRecentLogs(ctx, maxEntries)
	if err != nil {
		return err
	}
	l.mu.Lock()
	l.entries = entries
	l.mu.Unlock()
	return nil
}

// Append records a message. A failed persist is logged and swallowed; the
// entry still enters the in-memory window.
func (l *Log) Append(ctx context.Context, message string) {
	if err := l.store.InsertLog(ctx, message); err != nil {
		l.log.Warn().Err(err).Str("message", message).Msg("audit persist failed, keeping in-memory copy")
	}

	entry := domain.LogEntry{Timestamp: l.clk.Now(), Message: message}

	l.mu.Lock()
	l.entries = append([]domain.LogEntry{entry}, l.entries...)
	if len(l.entries) > maxEntries {
		l.entries = l.entries[:maxEntries]
	}
	l.mu.Unlock()
}

// Recent returns a copy of the in-memory window, newest first.
func (l *Log) Recent() []domain.LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}
