package presets

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
)

// Source identifies where a presets document originated so loaders can operate
// on files, fs.FS entries, or URLs without leaking implementation details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// DefaultLocation is the catalog path the CLI and HTTP server read when no
// other source is configured.
const DefaultLocation = "config/presets.yaml"

type fileSource struct {
	path string
}

func (s fileSource) Location() string { return s.path }

func (s fileSource) Kind() SourceKind { return SourceKindFile }

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Location() string { return s.name }

func (s fsSource) Kind() SourceKind { return SourceKindFS }

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

type urlSource struct {
	raw string
}

func (s urlSource) Location() string { return s.raw }

func (s urlSource) Kind() SourceKind { return SourceKindURL }

// ParseSourceURL validates raw as an absolute URL and returns a Source.
func ParseSourceURL(raw string) (Source, error) {
	if raw == "" {
		return nil, errors.New("presets: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		return nil, fmt.Errorf("presets: invalid URL %q: %w", raw, err)
	}
	return urlSource{raw: raw}, nil
}

// SourceFromURL is ParseSourceURL for URLs known at compile time. It panics
// on an invalid URL.
func SourceFromURL(raw string) Source {
	src, err := ParseSourceURL(raw)
	if err != nil {
		panic(err.Error())
	}
	return src
}
