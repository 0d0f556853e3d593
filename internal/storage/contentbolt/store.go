package contentbolt

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"portal-beacon/internal/storage"
	"portal-beacon/internal/types"
)

const (
	bContent = "content" // encoded content key -> value bytes

	defaultTO = 2 * time.Second
)

// Store is a BoltDB-backed implementation of storage.ContentStore.
// Keys are stored under their wire encoding, so the cursor walks pages in
// encoded-key byte order.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) a BoltDB database at path.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: defaultTO})
	if err != nil {
		return nil, err
	}

	s := &Store{db: db}
	if err := s.db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bContent))
		return err
	}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Get(key types.ContentKey) ([]byte, bool, error) {
	var out []byte
	var found bool
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket([]byte(bContent)).Get(key.Encode())
		if raw == nil {
			return nil
		}
		found = true
		out = append([]byte(nil), raw...)
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, found, nil
}

func (s *Store) Put(key types.ContentKey, value []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bContent)).Put(key.Encode(), value)
	})
}

func (s *Store) Paginate(offset, limit uint64) (types.PaginateInfo, error) {
	info := types.PaginateInfo{ContentKeys: []types.ContentKey{}}
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bContent))
		info.TotalEntries = uint64(b.Stats().KeyN)

		c := b.Cursor()
		var i uint64
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			if i < offset {
				i++
				continue
			}
			if uint64(len(info.ContentKeys)) == limit {
				break
			}
			ck, err := types.DecodeContentKey(k)
			if err != nil {
				// Unknown selector in an old database: skip, don't brick paging.
				i++
				continue
			}
			info.ContentKeys = append(info.ContentKeys, ck)
			i++
		}
		return nil
	})
	if err != nil {
		return types.PaginateInfo{}, err
	}
	return info, nil
}

// Compile-time check that Store satisfies the interface.
var _ storage.ContentStore = (*Store)(nil)
