package cas

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/tsconf/internal/core/domain"
	"go.trai.ch/tsconf/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultMemoryStoreSize bounds the in-memory store. A process rarely juggles
// more than a handful of configs, so the bound only matters for misuse.
const DefaultMemoryStoreSize = 128

var _ ports.Store = (*MemoryStore)(nil)

// MemoryStore implements ports.Store with a bounded in-memory LRU.
// It is safe for concurrent use and loses all entries on process exit.
type MemoryStore struct {
	entries *lru.Cache[domain.CacheKey, domain.StoredConfig]
}

// NewMemoryStore creates a MemoryStore holding at most size entries.
func NewMemoryStore(size int) (*MemoryStore, error) {
	entries, err := lru.New[domain.CacheKey, domain.StoredConfig](size)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create in-memory store")
	}
	return &MemoryStore{entries: entries}, nil
}

// Get retrieves the stored config for the given key.
// Returns nil, nil if not found.
func (s *MemoryStore) Get(key domain.CacheKey) (*domain.StoredConfig, error) {
	cfg, ok := s.entries.Get(key)
	if !ok {
		return nil, nil
	}
	return &cfg, nil
}

// Set stores the config under the given key, evicting the least recently
// used entry when full.
func (s *MemoryStore) Set(key domain.CacheKey, cfg domain.StoredConfig) error {
	s.entries.Add(key, cfg)
	return nil
}
