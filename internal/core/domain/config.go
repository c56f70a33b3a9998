// Package domain contains the core types for config resolution and caching.
package domain

const (
	// DefaultConfigPath is the config file resolved when none is configured.
	DefaultConfigPath = "./tsconfig.json"

	// DefaultMarkerFile is the manifest file that marks the project root.
	DefaultMarkerFile = "package.json"

	// ConfigExtension is the file extension recorded in every cache key.
	ConfigExtension = ".json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// StoreVersion is the envelope version written to the cache. Bumping it
// invalidates every previously stored entry.
const StoreVersion = 1

// Options is a normalized, semantically validated mapping of compiler-option
// names to values. Parse never returns Options the validator rejected.
type Options map[string]any

// CacheKey addresses one cached parse result. Two keys are equal exactly when
// the resolved path, the raw file content, and the extension are all equal;
// any byte-level difference in path or content yields a distinct entry.
type CacheKey struct {
	// FilePath is the resolved absolute path of the config file.
	FilePath string
	// FileContent is the exact text of the config file at read time.
	FileContent string
	// FileExtension is the config file extension, fixed to ConfigExtension.
	FileExtension string
}

// StoredConfig is the envelope persisted in the cache for one key.
type StoredConfig struct {
	// Version is the envelope format version, compared against StoreVersion on read.
	Version int `json:"version"`
	// Options is the normalized option set produced by the validator.
	Options Options `json:"options"`
}

// Diagnostic describes a single semantic validation failure.
type Diagnostic struct {
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
	// Code is an opaque identifier for the failure category.
	Code string `json:"code"`
	// SourcePath is the resolved path of the config file that produced it.
	SourcePath string `json:"sourcePath"`
}
