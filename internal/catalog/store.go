package catalog

import "sync/atomic"

// Store holds the active catalog behind an atomic pointer so readers on
// the request path never take a lock. Replace swaps the whole snapshot;
// in-flight requests keep the version they started with.
type Store struct {
	cur atomic.Pointer[Catalog]
}

// NewStore validates c and publishes it as the initial snapshot.
func NewStore(c *Catalog) (*Store, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s := &Store{}
	s.cur.Store(c)
	return s, nil
}

// Current returns the active snapshot. The returned catalog must be
// treated as read-only.
func (s *Store) Current() *Catalog {
	return s.cur.Load()
}

// Replace validates c and installs it atomically. On failure the previous
// snapshot stays active.
func (s *Store) Replace(c *Catalog) error {
	if err := c.Validate(); err != nil {
		return err
	}
	s.cur.Store(c)
	return nil
}
