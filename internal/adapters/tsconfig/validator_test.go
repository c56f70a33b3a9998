package tsconfig_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tsconf/internal/adapters/fs"
	"go.trai.ch/tsconf/internal/adapters/tsconfig"
	"go.trai.ch/tsconf/internal/core/domain"
)

func newValidator(files fstest.MapFS) *tsconfig.Validator {
	return tsconfig.NewValidator(fs.NewMapFSAdapter("/proj", "/proj", files))
}

func TestValidator_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		raw       string
		wantOpts  domain.Options
		wantCodes []string
		// wantInMessage is checked against the concatenated diagnostics.
		wantInMessage []string
	}{
		{
			name:     "empty object is valid",
			raw:      `{}`,
			wantOpts: domain.Options{},
		},
		{
			name: "recognized options normalize",
			raw:  `{"compilerOptions":{"strict":true,"module":"CommonJS","target":"ES2020","maxNodeModuleJsDepth":2}}`,
			wantOpts: domain.Options{
				"strict":               true,
				"module":               "commonjs",
				"target":               "es2020",
				"maxNodeModuleJsDepth": float64(2),
			},
		},
		{
			name: "path options become absolute",
			raw:  `{"compilerOptions":{"outDir":"./dist","rootDirs":["src","generated"]}}`,
			wantOpts: domain.Options{
				"outDir":   "/proj/dist",
				"rootDirs": []any{"/proj/src", "/proj/generated"},
			},
		},
		{
			name: "paths mapping keeps patterns, values stay verbatim",
			raw:  `{"compilerOptions":{"paths":{"@app/*":["src/app/*"]}}}`,
			wantOpts: domain.Options{
				"paths": map[string]any{"@app/*": []any{"src/app/*"}},
			},
		},
		{
			name:          "document must be an object",
			raw:           `[1,2,3]`,
			wantCodes:     []string{"TS5014"},
			wantInMessage: []string{"JSON object"},
		},
		{
			name:          "unknown top-level key",
			raw:           `{"compilerOption":{"strict":true}}`,
			wantCodes:     []string{"TS5023"},
			wantInMessage: []string{"compilerOption"},
		},
		{
			name:          "unknown compiler option names the key",
			raw:           `{"compilerOptions":{"stirct":true}}`,
			wantCodes:     []string{"TS5023"},
			wantInMessage: []string{"stirct"},
		},
		{
			name:          "wrong value type",
			raw:           `{"compilerOptions":{"strict":"yes"}}`,
			wantCodes:     []string{"TS5024"},
			wantInMessage: []string{"strict", "boolean"},
		},
		{
			name:          "bad enum value",
			raw:           `{"compilerOptions":{"module":"require"}}`,
			wantCodes:     []string{"TS6046"},
			wantInMessage: []string{"module", "commonjs"},
		},
		{
			name:          "include must be a string list",
			raw:           `{"include":"src"}`,
			wantCodes:     []string{"TS5024"},
			wantInMessage: []string{"include"},
		},
		{
			name:          "multiple failures are all reported in key order",
			raw:           `{"compilerOptions":{"modul":"commonjs","strict":1,"zzz":0}}`,
			wantCodes:     []string{"TS5023", "TS5024", "TS5023"},
			wantInMessage: []string{"modul", "strict", "zzz"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := newValidator(fstest.MapFS{})
			opts, diags, err := v.Validate([]byte(tt.raw), "/proj")
			require.NoError(t, err)

			if len(tt.wantCodes) > 0 {
				require.Len(t, diags, len(tt.wantCodes))
				var all string
				for i, d := range diags {
					assert.Equal(t, tt.wantCodes[i], d.Code)
					all += d.Message + "\n"
				}
				for _, want := range tt.wantInMessage {
					assert.Contains(t, all, want)
				}
				assert.Nil(t, opts)
				return
			}

			require.Empty(t, diags)
			assert.Equal(t, tt.wantOpts, opts)
		})
	}
}

func TestValidator_Extends(t *testing.T) {
	t.Parallel()

	t.Run("parent options merge, child overrides", func(t *testing.T) {
		t.Parallel()

		v := newValidator(fstest.MapFS{
			"tsconfig.base.json": {Data: []byte(`{"compilerOptions":{"strict":true,"target":"es5","outDir":"./build"}}`)},
		})

		raw := `{"extends":"./tsconfig.base","compilerOptions":{"target":"es2022"}}`
		opts, diags, err := v.Validate([]byte(raw), "/proj")
		require.NoError(t, err)
		require.Empty(t, diags)

		assert.Equal(t, domain.Options{
			"strict": true,
			"target": "es2022",
			// Parent paths resolve against the parent's own directory.
			"outDir": "/proj/build",
		}, opts)
	})

	t.Run("parent in subdirectory resolves its own paths", func(t *testing.T) {
		t.Parallel()

		v := newValidator(fstest.MapFS{
			"configs/base.json": {Data: []byte(`{"compilerOptions":{"outDir":"./out"}}`)},
		})

		opts, diags, err := v.Validate([]byte(`{"extends":"./configs/base.json"}`), "/proj")
		require.NoError(t, err)
		require.Empty(t, diags)
		assert.Equal(t, "/proj/configs/out", opts["outDir"])
	})

	t.Run("missing parent", func(t *testing.T) {
		t.Parallel()

		v := newValidator(fstest.MapFS{})
		_, diags, err := v.Validate([]byte(`{"extends":"./nope"}`), "/proj")
		require.NoError(t, err)
		require.Len(t, diags, 1)
		assert.Equal(t, "TS5083", diags[0].Code)
		assert.Contains(t, diags[0].Message, "/proj/nope.json")
	})

	t.Run("diagnostics in the parent carry the parent path", func(t *testing.T) {
		t.Parallel()

		v := newValidator(fstest.MapFS{
			"tsconfig.base.json": {Data: []byte(`{"compilerOptions":{"bogus":1}}`)},
		})

		_, diags, err := v.Validate([]byte(`{"extends":"./tsconfig.base"}`), "/proj")
		require.NoError(t, err)
		require.Len(t, diags, 1)
		assert.Equal(t, "/proj/tsconfig.base.json", diags[0].SourcePath)
	})

	t.Run("circular chain", func(t *testing.T) {
		t.Parallel()

		v := newValidator(fstest.MapFS{
			"a.json": {Data: []byte(`{"extends":"./b.json"}`)},
			"b.json": {Data: []byte(`{"extends":"./a.json"}`)},
		})

		_, diags, err := v.Validate([]byte(`{"extends":"./a.json"}`), "/proj")
		require.NoError(t, err)
		require.NotEmpty(t, diags)
		assert.Equal(t, "TS18000", diags[len(diags)-1].Code)
	})

	t.Run("extends must be a string", func(t *testing.T) {
		t.Parallel()

		v := newValidator(fstest.MapFS{})
		_, diags, err := v.Validate([]byte(`{"extends":["./a.json"]}`), "/proj")
		require.NoError(t, err)
		require.Len(t, diags, 1)
		assert.Equal(t, "TS5024", diags[0].Code)
	})
}
