// Package history implements the bounded, mutex-guarded cross-tool
// command ring buffer from spec.md §4.3.
package history

import (
	"sync"
	"time"

	"murmur/internal/protocol"
)

// Store is a bounded FIFO with insertion at the front (newest first).
type Store struct {
	mu         sync.Mutex
	entries    []protocol.HistoryEntry
	maxEntries int
}

// New creates a Store that retains at most maxEntries records. A
// non-positive maxEntries is treated as 1.
func New(maxEntries int) *Store {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &Store{maxEntries: maxEntries}
}

// Record prepends a new entry, stamping it with the current Unix time,
// and trims the tail so the store never exceeds maxEntries.
func (s *Store) Record(command, cwd, source string, exitCode int) protocol.HistoryEntry {
	entry := protocol.HistoryEntry{
		Command:   command,
		Cwd:       cwd,
		Source:    source,
		ExitCode:  exitCode,
		Timestamp: time.Now().Unix(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append([]protocol.HistoryEntry{entry}, s.entries...)
	if len(s.entries) > s.maxEntries {
		s.entries = s.entries[:s.maxEntries]
	}
	return entry
}

// List walks front-to-back (newest first), keeping only entries whose
// Cwd matches cwd when cwd is non-empty, and returns at most limit of
// them.
func (s *Store) List(cwd string, limit uint) []protocol.HistoryEntry {
	if limit == 0 {
		return []protocol.HistoryEntry{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]protocol.HistoryEntry, 0, limit)
	for _, e := range s.entries {
		if cwd != "" && e.Cwd != cwd {
			continue
		}
		out = append(out, e)
		if uint(len(out)) >= limit {
			break
		}
	}
	return out
}

// Len returns the current number of stored entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
