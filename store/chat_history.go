package store

import (
	"time"
)

// HistoryEntry is one exchanged message pair. Entries are immutable once
// appended; a history only grows, except for a whole-history clear.
// The JSON field names preserve the existing API wire format.
type HistoryEntry struct {
	UserMessage    string    `json:"userMessage"`
	AIResponse     string    `json:"aiResponse"`
	Provider       string    `json:"model"`
	Language       string    `json:"language"`
	Timestamp      time.Time `json:"timestamp"`
	ResponseTimeMs int64     `json:"responseTime,omitempty"`
}

// AppendHistory appends entry to the user's chat history in insertion
// order. The history slice is created lazily if missing, though CreateUser
// normally sets it up.
func (s *Store) AppendHistory(email string, entry HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[email]; !ok {
		return ErrUserNotFound
	}
	s.histories[email] = append(s.histories[email], entry)
	return nil
}

// ListHistory returns the user's entries in insertion order. A user with no
// entries yields an empty slice, not an error. The returned slice is a copy;
// mutating it does not affect the store.
func (s *Store) ListHistory(email string) ([]HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.users[email]; !ok {
		return nil, ErrUserNotFound
	}
	entries := s.histories[email]
	out := make([]HistoryEntry, len(entries))
	copy(out, entries)
	return out, nil
}

// ClearHistory replaces the user's history with an empty sequence.
func (s *Store) ClearHistory(email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[email]; !ok {
		return ErrUserNotFound
	}
	s.histories[email] = []HistoryEntry{}
	return nil
}
