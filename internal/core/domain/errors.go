package domain

import "go.trai.ch/zerr"

var (
	// ErrRootNotFound is returned when no ancestor directory contains the marker file.
	ErrRootNotFound = zerr.New("project root not found")

	// ErrConfigNotFound is returned when the resolved config path does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrInvalidJSON is returned when the config text is not syntactically valid JSON.
	ErrInvalidJSON = zerr.New("config file is not valid JSON")

	// ErrConfigValidation is returned when the semantic validator reports diagnostics.
	ErrConfigValidation = zerr.New("config validation failed")

	// ErrConfigReadFailed is returned when the config file cannot be read for
	// a reason other than absence. The underlying cause is not reinterpreted.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrStoreCreateFailed is returned when the cache directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create cache directory")

	// ErrStoreReadFailed is returned when a cache entry cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read cache entry")

	// ErrStoreUnmarshalFailed is returned when a cache entry cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal cache entry")

	// ErrStoreMarshalFailed is returned when a cache entry cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal cache entry")

	// ErrStoreWriteFailed is returned when a cache entry cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write cache entry")

	// ErrCacheDirRequired is returned when a parser is constructed without a cache directory.
	ErrCacheDirRequired = zerr.New("cache directory is required")
)
