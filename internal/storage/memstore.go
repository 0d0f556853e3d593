package storage

import (
	"sort"

	"portal-beacon/internal/types"
)

// MemStore is a map-backed ContentStore for tests and ephemeral nodes.
// Pagination walks keys in encoded-key byte order, matching the persistent
// store's cursor order.
type MemStore struct {
	data map[string][]byte // keyed by encoded content key, hex
}

func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

func (m *MemStore) Get(key types.ContentKey) ([]byte, bool, error) {
	val, ok := m.data[key.Hex()]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), val...), true, nil
}

func (m *MemStore) Put(key types.ContentKey, value []byte) error {
	m.data[key.Hex()] = append([]byte(nil), value...)
	return nil
}

func (m *MemStore) Paginate(offset, limit uint64) (types.PaginateInfo, error) {
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	info := types.PaginateInfo{
		ContentKeys:  []types.ContentKey{},
		TotalEntries: uint64(len(keys)),
	}
	for i := offset; i < uint64(len(keys)) && uint64(len(info.ContentKeys)) < limit; i++ {
		var ck types.ContentKey
		if err := ck.UnmarshalText([]byte(keys[i])); err != nil {
			return types.PaginateInfo{}, err
		}
		info.ContentKeys = append(info.ContentKeys, ck)
	}
	return info, nil
}

var _ ContentStore = (*MemStore)(nil)
