// Package cas implements content-addressed storage for parsed configs.
package cas

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/tsconf/internal/core/domain"
	"go.trai.ch/tsconf/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Store = (*Store)(nil)

// Store implements ports.Store using a file-per-key strategy below a cache
// directory. The directory is created lazily on the first write, so a cache
// folder only appears on disk once a config has actually been validated.
type Store struct {
	dir string
}

// NewStore creates a Store backed by the directory at the given path.
// No I/O happens until the first Get or Set.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Get retrieves the stored config for the given key.
// Returns nil, nil when the entry is absent or was written by an older
// envelope version.
func (s *Store) Get(key domain.CacheKey) (*domain.StoredConfig, error) {
	filename := s.filename(key)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", filename)
	}

	var cfg domain.StoredConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", filename)
	}

	if cfg.Version != domain.StoreVersion {
		return nil, nil
	}

	return &cfg, nil
}

// Set stores the config under the given key.
func (s *Store) Set(key domain.CacheKey, cfg domain.StoredConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "dir", s.dir)
	}

	filename := s.filename(key)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", filename)
	}

	return nil
}

// filename derives the entry filename from the key. Path, content, and
// extension are digested with NUL separators so that no two distinct keys
// alias the same entry.
func (s *Store) filename(key domain.CacheKey) string {
	digest := xxhash.New()
	_, _ = digest.WriteString(key.FilePath)
	_, _ = digest.Write([]byte{0})
	_, _ = digest.WriteString(key.FileContent)
	_, _ = digest.Write([]byte{0})
	_, _ = digest.WriteString(key.FileExtension)

	return filepath.Join(s.dir, fmt.Sprintf("%016x", digest.Sum64())+".json")
}
