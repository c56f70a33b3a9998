// Package ports defines the collaborator interfaces for the parse pipeline.
package ports

import "go.trai.ch/tsconf/internal/core/domain"

// Store is the external cache collaborator. Entries are addressed purely by
// key identity; there is no TTL and no invalidation beyond a key change.
// Any conforming implementation (in-memory, file-backed, remote) can be
// substituted without changing the orchestrator.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type Store interface {
	// Get retrieves the stored config for the given key.
	// Returns nil, nil if not found.
	Get(key domain.CacheKey) (*domain.StoredConfig, error)

	// Set stores the config under the given key, creating the underlying
	// medium on first use if necessary.
	Set(key domain.CacheKey, cfg domain.StoredConfig) error
}
