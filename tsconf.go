// Package tsconf resolves, validates, and caches a project's
// compiler-configuration file. Repeated Parse calls pay for locating and
// semantically validating the file only when its resolved path or exact
// content changes; unchanged configs are served from an external cache
// keyed by (path, content, extension).
package tsconf

import (
	"context"
	"path/filepath"
	"sync"

	"go.trai.ch/tsconf/internal/adapters/cas"
	"go.trai.ch/tsconf/internal/adapters/fs"
	"go.trai.ch/tsconf/internal/adapters/logger"
	"go.trai.ch/tsconf/internal/adapters/telemetry"
	"go.trai.ch/tsconf/internal/adapters/tsconfig"
	"go.trai.ch/tsconf/internal/core/domain"
	"go.trai.ch/tsconf/internal/core/ports"
)

// Opts configures a Parser. The zero values of ConfigPath and Marker are
// replaced with defaults at construction; CacheDir has no default.
type Opts struct {
	// ConfigPath is the config file path, resolved against the project root
	// when relative. Defaults to "./tsconfig.json".
	ConfigPath string

	// CacheDir is the directory holding the persistent cache. Required unless
	// a Store collaborator is supplied.
	CacheDir string

	// Marker is the manifest filename whose directory is the project root.
	// Defaults to "package.json".
	Marker string
}

// Collaborators are the external capabilities a Parser delegates to.
// Every nil field is replaced with the default implementation at construction.
type Collaborators struct {
	// FS is the filesystem used for reading configs and locating the root.
	FS fs.FileSystem

	// Locator discovers the project root by marker file.
	Locator ports.RootLocator

	// Validator turns raw config JSON into a normalized option set.
	Validator ports.Validator

	// Store is the cache. When nil, a file-backed store is constructed
	// lazily against Opts.CacheDir on the first Parse.
	Store ports.Store

	// Logger receives debug/warn output.
	Logger ports.Logger

	// Tracer receives one span per Parse call.
	Tracer ports.Tracer
}

// Parser is the parse/cache orchestrator. It is constructed once per config
// and reused; its configuration is immutable after New. The memoized project
// root and the lazily built store are its only mutable state, each written
// at most once.
//
// Concurrent Parse calls are individually safe, but two overlapping cache
// misses for the same key are not coordinated: both invoke the validator and
// both write the same entry. The result is deterministic for identical input,
// so the duplicate work is benign.
type Parser struct {
	opts   Opts
	reader *fs.Reader

	locator   ports.RootLocator
	validator ports.Validator
	logger    ports.Logger
	tracer    ports.Tracer

	rootOnce sync.Once
	root     string
	rootErr  error

	storeOnce sync.Once
	store     ports.Store
}

// New creates a Parser from opts, filling in default collaborators for every
// nil field of c. It returns domain.ErrCacheDirRequired when neither a cache
// directory nor a Store is provided.
func New(opts Opts, c Collaborators) (*Parser, error) {
	if opts.CacheDir == "" && c.Store == nil {
		return nil, domain.ErrCacheDirRequired
	}
	if opts.ConfigPath == "" {
		opts.ConfigPath = domain.DefaultConfigPath
	}
	if opts.Marker == "" {
		opts.Marker = domain.DefaultMarkerFile
	}

	if c.FS == nil {
		c.FS = fs.NewOSFS()
	}
	if c.Locator == nil {
		c.Locator = fs.NewLocator(c.FS)
	}
	if c.Validator == nil {
		c.Validator = tsconfig.NewValidator(c.FS)
	}
	if c.Logger == nil {
		c.Logger = logger.New()
	}
	if c.Tracer == nil {
		c.Tracer = telemetry.NewNoop()
	}

	return &Parser{
		opts:      opts,
		reader:    fs.NewReader(c.FS),
		locator:   c.Locator,
		validator: c.Validator,
		logger:    c.Logger,
		tracer:    c.Tracer,
		store:     c.Store,
	}, nil
}

// Parse resolves the config file, returns the cached normalized options when
// the resolved path and exact content match a previous call, and otherwise
// validates the raw JSON and stores the result before returning it.
//
// The file is re-read on every call; the content doubles as the cache key, so
// any byte-level change invalidates the entry. Parse never returns options
// the validator rejected, and never retries: every error is terminal for the
// call. Failures are classified as domain.ErrConfigNotFound,
// domain.ErrInvalidJSON, or *domain.ValidationError (matching
// domain.ErrConfigValidation); other I/O faults propagate unclassified.
func (p *Parser) Parse(ctx context.Context) (domain.Options, error) {
	_, span := p.tracer.Start(ctx, "tsconf.parse")
	defer span.End()

	store := p.cacheStore()

	root, err := p.projectRoot()
	if err != nil {
		return nil, p.fail(span, err)
	}

	resolved, raw, err := p.reader.ResolveAndRead(p.opts.ConfigPath, root)
	if err != nil {
		return nil, p.fail(span, err)
	}
	span.SetAttribute("path", resolved)

	key := domain.CacheKey{
		FilePath:      resolved,
		FileContent:   string(raw),
		FileExtension: domain.ConfigExtension,
	}

	cached, err := store.Get(key)
	if err != nil {
		return nil, p.fail(span, err)
	}
	if cached != nil {
		span.SetAttribute("cache_hit", true)
		p.logger.Debug("config cache hit")
		return cached.Options, nil
	}
	span.SetAttribute("cache_hit", false)
	p.logger.Debug("config cache miss, validating")

	options, diags, err := p.validator.Validate(raw, filepath.Dir(resolved))
	if err != nil {
		return nil, p.fail(span, err)
	}
	if len(diags) > 0 {
		for i := range diags {
			if diags[i].SourcePath == "" {
				diags[i].SourcePath = resolved
			}
		}
		span.SetAttribute("diagnostics", len(diags))
		return nil, p.fail(span, domain.NewValidationError(resolved, diags))
	}

	if err := store.Set(key, domain.StoredConfig{Version: domain.StoreVersion, Options: options}); err != nil {
		return nil, p.fail(span, err)
	}

	return options, nil
}

// cacheStore returns the cache, building the default file-backed store
// against CacheDir on first use. A second Parse call reuses the same store.
func (p *Parser) cacheStore() ports.Store {
	p.storeOnce.Do(func() {
		if p.store == nil {
			p.store = cas.NewStore(p.opts.CacheDir)
		}
	})
	return p.store
}

// projectRoot memoizes the root lookup for the lifetime of the Parser.
func (p *Parser) projectRoot() (string, error) {
	p.rootOnce.Do(func() {
		p.root, p.rootErr = p.locator.Locate(p.opts.Marker)
	})
	return p.root, p.rootErr
}

func (p *Parser) fail(span ports.Span, err error) error {
	span.RecordError(err)
	return err
}
