package presets

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"
)

// Loader fetches presets documents from different sources (filesystem, fs.FS,
// HTTP). The implementation lives under internal/presets/loader.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions configures how a Loader resolves sources.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS lookups. Nil disables fs sources.
	FileSystem fs.FS

	// HTTPClient allows callers to inject custom HTTP behaviour (timeouts,
	// proxies). Nil means URL sources are disabled unless AllowHTTPFallback is
	// true.
	HTTPClient *http.Client

	// AllowHTTPFallback toggles a default HTTP client when none is supplied.
	AllowHTTPFallback bool

	// RequestTimeout caps remote fetch durations.
	RequestTimeout time.Duration
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS implementation for SourceFromFS lookups.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithHTTPClient injects a custom HTTP client for remote catalogs.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithHTTPFallback enables HTTP loading with a default client and assigns an
// optional timeout.
func WithHTTPFallback(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.AllowHTTPFallback = true
		opts.RequestTimeout = timeout
	}
}

// NewLoaderOptions applies a set of LoaderOption values and returns the
// resulting configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// Load fetches the document behind src and parses it into a Config. Fetch and
// parse failures are returned wrapped; there are no retries.
func Load(ctx context.Context, loader Loader, src Source, logger *slog.Logger) (*Config, error) {
	if loader == nil {
		return nil, fmt.Errorf("presets: loader is required")
	}
	doc, err := loader.Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("presets: load: %w", err)
	}
	cfg, err := Parse(doc)
	if err != nil {
		return nil, err
	}
	if logger != nil {
		logger.Debug("presets loaded",
			slog.String("source", doc.Location()),
			slog.Int("styles", len(cfg.Styles)),
			slog.Int("templates", len(cfg.Templates)),
		)
	}
	return cfg, nil
}
