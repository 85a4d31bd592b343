package content

import (
	"sync"
	"sync/atomic"
)

// Store holds the current content snapshot. Readers never block; reloads are
// serialised and only replace the snapshot when the new content is valid.
type Store struct {
	path    string
	current atomic.Pointer[Site]
	mu      sync.Mutex
}

// NewStore loads content from path and wraps it in a Store.
func NewStore(path string) (*Store, error) {
	site, err := Load(path)
	if err != nil {
		return nil, err
	}
	return NewStoreFromSite(path, site), nil
}

// NewStoreFromSite wraps an already loaded snapshot.
func NewStoreFromSite(path string, site *Site) *Store {
	s := &Store{path: path}
	s.current.Store(site)
	return s
}

// Current returns the active snapshot.
func (s *Store) Current() *Site {
	return s.current.Load()
}

// Reload re-reads the content source. On failure the previous snapshot stays active.
func (s *Store) Reload() (*Site, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	site, err := Load(s.path)
	if err != nil {
		return nil, err
	}
	s.current.Store(site)
	return site, nil
}

// Path reports the content source; empty means the embedded default.
func (s *Store) Path() string {
	return s.path
}
