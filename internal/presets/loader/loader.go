package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-deckgen/pkg/presets"
)

// Loader implements presets.Loader by delegating to file, fs.FS, or HTTP
// strategies.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

var _ presets.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options presets.LoaderOptions) presets.Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches a document from the provided source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src presets.Source) (presets.Document, error) {
	if src == nil {
		return presets.Document{}, errors.New("presets loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case presets.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case presets.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case presets.SourceKindURL:
		if !l.allowHTTP {
			return presets.Document{}, errors.New("presets loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("presets loader: unsupported source kind")
	}
	if err != nil {
		return presets.Document{}, err
	}

	return presets.NewDocument(src, data)
}
