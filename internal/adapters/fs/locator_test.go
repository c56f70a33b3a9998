package fs_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tsconf/internal/adapters/fs"
	"go.trai.ch/tsconf/internal/core/domain"
)

func TestLocator_Locate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		files   fstest.MapFS
		cwd     string
		marker  string
		wantDir string
		wantErr error
	}{
		{
			name: "marker in working directory",
			files: fstest.MapFS{
				"project/package.json": {Data: []byte("{}")},
			},
			cwd:     "/work/project",
			marker:  "package.json",
			wantDir: "/work/project",
		},
		{
			name: "marker in ancestor directory",
			files: fstest.MapFS{
				"project/package.json":         {Data: []byte("{}")},
				"project/src/deep/nested/a.ts": {Data: []byte("")},
			},
			cwd:     "/work/project/src/deep/nested",
			marker:  "package.json",
			wantDir: "/work/project",
		},
		{
			name: "nearest ancestor wins",
			files: fstest.MapFS{
				"package.json":             {Data: []byte("{}")},
				"outer/package.json":       {Data: []byte("{}")},
				"outer/inner/package.json": {Data: []byte("{}")},
			},
			cwd:     "/work/outer/inner",
			marker:  "package.json",
			wantDir: "/work/outer/inner",
		},
		{
			name: "marker absent everywhere",
			files: fstest.MapFS{
				"project/src/a.ts": {Data: []byte("")},
			},
			cwd:     "/work/project/src",
			marker:  "package.json",
			wantErr: domain.ErrRootNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fsys := fs.NewMapFSAdapter("/work", tt.cwd, tt.files)
			locator := fs.NewLocator(fsys)

			dir, err := locator.Locate(tt.marker)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDir, dir)
		})
	}
}

func TestLocator_LocateFrom(t *testing.T) {
	t.Parallel()

	fsys := fs.NewMapFSAdapter("/work", "/work", fstest.MapFS{
		"project/package.json": {Data: []byte("{}")},
	})
	locator := fs.NewLocatorFrom(fsys, "/work/project/sub")

	// The start directory overrides the filesystem's working directory.
	dir, err := locator.Locate("package.json")
	require.NoError(t, err)
	assert.Equal(t, "/work/project", dir)
}
