package fs

import (
	"path/filepath"

	"go.trai.ch/tsconf/internal/core/domain"
	"go.trai.ch/tsconf/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RootLocator = (*Locator)(nil)

// Locator implements ports.RootLocator by walking up from the working
// directory until it finds a directory containing the marker file.
type Locator struct {
	fsys  FileSystem
	start string
}

// NewLocator creates a Locator that starts at the filesystem's working directory.
func NewLocator(fsys FileSystem) *Locator {
	return &Locator{fsys: fsys}
}

// NewLocatorFrom creates a Locator that starts at the given directory.
func NewLocatorFrom(fsys FileSystem, start string) *Locator {
	return &Locator{fsys: fsys, start: start}
}

// Locate returns the first ancestor directory containing markerFileName.
func (l *Locator) Locate(markerFileName string) (string, error) {
	currentDir := l.start
	if currentDir == "" {
		cwd, err := l.fsys.Getwd()
		if err != nil {
			return "", zerr.Wrap(err, "failed to get working directory")
		}
		currentDir = cwd
	}

	for {
		markerPath := filepath.Join(currentDir, markerFileName)
		if _, err := l.fsys.Stat(markerPath); err == nil {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrRootNotFound, "marker", markerFileName)
}
