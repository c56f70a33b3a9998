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

func TestReader_Resolve(t *testing.T) {
	t.Parallel()

	reader := fs.NewReader(fs.NewOSFS())

	tests := []struct {
		name       string
		configPath string
		root       string
		want       string
	}{
		{
			name:       "relative path with dot prefix",
			configPath: "./tsconfig.json",
			root:       "/proj",
			want:       "/proj/tsconfig.json",
		},
		{
			name:       "nested relative path",
			configPath: "configs/tsconfig.build.json",
			root:       "/proj",
			want:       "/proj/configs/tsconfig.build.json",
		},
		{
			name:       "absolute path ignores root",
			configPath: "/etc/tsconfig.json",
			root:       "/proj",
			want:       "/etc/tsconfig.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, reader.Resolve(tt.configPath, tt.root))
		})
	}
}

func TestReader_ResolveAndRead(t *testing.T) {
	t.Parallel()

	fsys := fs.NewMapFSAdapter("/proj", "/proj", fstest.MapFS{
		"tsconfig.json":        {Data: []byte(`{"compilerOptions":{"strict":true}}`)},
		"tsconfig.broken.json": {Data: []byte(`{"compilerOptions":`)},
	})
	reader := fs.NewReader(fsys)

	t.Run("valid file", func(t *testing.T) {
		t.Parallel()

		resolved, raw, err := reader.ResolveAndRead("./tsconfig.json", "/proj")
		require.NoError(t, err)
		assert.Equal(t, "/proj/tsconfig.json", resolved)
		assert.Equal(t, `{"compilerOptions":{"strict":true}}`, string(raw))
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		resolved, _, err := reader.ResolveAndRead("./tsconfig.missing.json", "/proj")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrConfigNotFound))
		// Operators locate the missing file from the message alone.
		assert.Contains(t, err.Error(), "/proj/tsconfig.missing.json")
		assert.Equal(t, "/proj/tsconfig.missing.json", resolved)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		t.Parallel()

		_, _, err := reader.ResolveAndRead("./tsconfig.broken.json", "/proj")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidJSON))
		assert.False(t, errors.Is(err, domain.ErrConfigNotFound))
	})

	t.Run("plain text is not JSON", func(t *testing.T) {
		t.Parallel()

		fsys := fs.NewMapFSAdapter("/proj", "/proj", fstest.MapFS{
			"tsconfig.json": {Data: []byte("not json at all")},
		})
		_, _, err := fs.NewReader(fsys).ResolveAndRead("./tsconfig.json", "/proj")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidJSON))
	})
}
