package params

import (
	"errors"
	"sync"
)

// ErrNotConfigured is returned when a decode is attempted before any ABI
// text has been stored.
var ErrNotConfigured = errors.New("abi parameters have not been set")

// Store holds the configured ABI text. It may be written by a
// configuration call while decode calls read it concurrently, so access
// goes through a read/write lock: readers see either the prior value or
// the fully written new one, never a partial write.
type Store struct {
	mu         sync.RWMutex
	abiText    string
	configured bool
}

func NewStore() *Store {
	return &Store{}
}

// Set stores the ABI text, replacing any previous value. The text is not
// validated here; parse failures degrade to pass-through at decode time.
func (s *Store) Set(abiText string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.abiText = abiText
	s.configured = true
}

// Get returns the stored ABI text, or ErrNotConfigured if Set has never
// been called.
func (s *Store) Get() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.configured {
		return "", ErrNotConfigured
	}
	return s.abiText, nil
}
