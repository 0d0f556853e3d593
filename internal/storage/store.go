package storage

import (
	"sync"

	"portal-beacon/internal/types"
)

// ContentStore is the local content repository. Get reports absence via the
// ok flag; the error return is reserved for real store faults.
type ContentStore interface {
	Get(key types.ContentKey) (value []byte, ok bool, err error)
	Put(key types.ContentKey, value []byte) error
	Paginate(offset, limit uint64) (types.PaginateInfo, error)
}

// GuardedStore wraps a ContentStore with a reader-writer lock. Callers get
// the minimal lock per operation (read for Get/Paginate, write for Put) and
// the lock is released before the caller can await any network I/O.
type GuardedStore struct {
	mu    sync.RWMutex
	inner ContentStore
}

func NewGuardedStore(inner ContentStore) *GuardedStore {
	return &GuardedStore{inner: inner}
}

func (g *GuardedStore) Get(key types.ContentKey) ([]byte, bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.inner.Get(key)
}

func (g *GuardedStore) Put(key types.ContentKey, value []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.inner.Put(key, value)
}

func (g *GuardedStore) Paginate(offset, limit uint64) (types.PaginateInfo, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.inner.Paginate(offset, limit)
}
