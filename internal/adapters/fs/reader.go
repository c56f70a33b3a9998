package fs

import (
	"errors"
	iofs "io/fs"
	"path/filepath"

	"github.com/tidwall/gjson"
	"go.trai.ch/tsconf/internal/core/domain"
	"go.trai.ch/zerr"
)

// Reader resolves a configured relative path against the project root and
// reads the raw config text.
type Reader struct {
	fsys FileSystem
}

// NewReader creates a new Reader.
func NewReader(fsys FileSystem) *Reader {
	return &Reader{fsys: fsys}
}

// ResolveAndRead resolves configPath against projectRoot, reads the file, and
// checks that the text is syntactically valid JSON. The resolved absolute path
// is returned alongside the raw content so callers can build cache keys and
// error messages from it.
//
// A missing file maps to domain.ErrConfigNotFound with the resolved path in
// the message. A syntactically broken file maps to domain.ErrInvalidJSON.
// Any other read failure propagates wrapped but unclassified.
func (r *Reader) ResolveAndRead(configPath, projectRoot string) (string, []byte, error) {
	resolved := r.Resolve(configPath, projectRoot)

	raw, err := r.fsys.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return resolved, nil, zerr.With(
				zerr.Wrap(domain.ErrConfigNotFound, "config file not found at "+resolved),
				"path", resolved,
			)
		}
		return resolved, nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", resolved)
	}

	if !gjson.ValidBytes(raw) {
		return resolved, nil, zerr.With(
			zerr.Wrap(domain.ErrInvalidJSON, "malformed JSON in "+resolved),
			"path", resolved,
		)
	}

	return resolved, raw, nil
}

// Resolve turns configPath into an absolute path below projectRoot.
// Pure path arithmetic, no I/O.
func (r *Reader) Resolve(configPath, projectRoot string) string {
	if filepath.IsAbs(configPath) {
		return filepath.Clean(configPath)
	}
	return filepath.Join(projectRoot, configPath)
}
