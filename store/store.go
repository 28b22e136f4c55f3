// Package store holds all gateway state: the user table and the per-user
// chat histories. State lives only in process memory for the lifetime of
// the process; there is no persisted format.
package store

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/scalexhq/chatgate/internal/profile"
)

// ErrUserNotFound is returned by any operation addressing an email that has
// no registered user. Callers translate it into a not-found response.
var ErrUserNotFound = errors.New("user not found")

// ErrUserAlreadyExists is returned by CreateUser for a taken email.
var ErrUserAlreadyExists = errors.New("user already exists")

// Store provides access to all in-memory state. It is constructed once at
// startup and passed by handle to the request handlers, so tests isolate
// themselves with fresh instances.
type Store struct {
	profile *profile.Profile

	// mu guards both tables. The check-then-mutate sequences below
	// (user exists → append) must be observed atomically per request.
	mu        sync.RWMutex
	users     map[string]*User
	histories map[string][]HistoryEntry
}

// New creates a new instance of Store.
func New(profile *profile.Profile) *Store {
	return &Store{
		profile:   profile,
		users:     make(map[string]*User),
		histories: make(map[string][]HistoryEntry),
	}
}
