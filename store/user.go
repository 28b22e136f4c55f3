package store

import (
	"time"
)

// User is one registered account, keyed by email.
// Password is an opaque string compared by equality at the auth boundary;
// nothing in the core interprets it.
type User struct {
	Email     string
	Password  string
	CreatedAt time.Time
	LastLogin *time.Time
}

// CreateUser registers a new user and its empty chat history.
func (s *Store) CreateUser(user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Email]; ok {
		return ErrUserAlreadyExists
	}

	u := *user
	s.users[user.Email] = &u
	// Every user owns a chat history from the moment it exists.
	s.histories[user.Email] = []HistoryEntry{}
	return nil
}

// GetUser returns a copy of the user for email, or ErrUserNotFound.
func (s *Store) GetUser(email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

// UpdateLastLogin stamps the user's last successful login time.
func (s *Store) UpdateLastLogin(email string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[email]
	if !ok {
		return ErrUserNotFound
	}
	u.LastLogin = &at
	return nil
}
