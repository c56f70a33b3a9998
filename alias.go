package tsconf

import (
	"go.trai.ch/tsconf/internal/adapters/fs"
	"go.trai.ch/tsconf/internal/core/domain"
	"go.trai.ch/tsconf/internal/core/ports"
)

// Aliases re-export the internal contract types so callers can name them.
type (
	// Options is the normalized compiler-option mapping returned by Parse.
	Options = domain.Options
	// CacheKey addresses one cached parse result.
	CacheKey = domain.CacheKey
	// StoredConfig is the envelope persisted in the cache.
	StoredConfig = domain.StoredConfig
	// Diagnostic describes a single semantic validation failure.
	Diagnostic = domain.Diagnostic
	// ValidationError carries the diagnostics of one failed validation.
	ValidationError = domain.ValidationError

	// Store is the cache collaborator contract.
	Store = ports.Store
	// Validator is the semantic validator collaborator contract.
	Validator = ports.Validator
	// RootLocator is the project-root discovery collaborator contract.
	RootLocator = ports.RootLocator
	// Logger is the logging contract.
	Logger = ports.Logger
	// Tracer is the tracing contract.
	Tracer = ports.Tracer
	// Span is the unit of tracing a Tracer hands out.
	Span = ports.Span
	// FileSystem abstracts filesystem access for collaborators.
	FileSystem = fs.FileSystem
)

// Re-exported error kinds; match with errors.Is.
var (
	// ErrRootNotFound reports that no ancestor directory contains the marker file.
	ErrRootNotFound = domain.ErrRootNotFound
	// ErrConfigNotFound reports that the resolved config path does not exist.
	ErrConfigNotFound = domain.ErrConfigNotFound
	// ErrInvalidJSON reports that the config text is not syntactically valid JSON.
	ErrInvalidJSON = domain.ErrInvalidJSON
	// ErrConfigValidation reports that the semantic validator rejected the config.
	ErrConfigValidation = domain.ErrConfigValidation
	// ErrCacheDirRequired reports that New received neither a cache directory nor a Store.
	ErrCacheDirRequired = domain.ErrCacheDirRequired
)
