package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/goliatone/go-deckgen/pkg/content"
)

// Transformer rewrites deck content after parsing and before layout.
type Transformer interface {
	Transform(ctx context.Context, schema *content.Schema) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, schema *content.Schema) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, schema *content.Schema) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, schema)
}

// StripMarkup returns a Transformer that removes HTML markup from every text
// field through content.Sanitize.
func StripMarkup() Transformer {
	return TransformerFunc(func(ctx context.Context, schema *content.Schema) error {
		if schema == nil {
			return errors.New("strip markup: content is nil")
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		*schema = content.Sanitize(*schema)
		return nil
	})
}

// JSONPresetTransformer applies declarative content overrides loaded from a
// JSON file. The document shape supports deck defaults, per-slide patches
// keyed by position, and slides appended to every deck:
//
//	{
//	  "defaults": {"subtitle": "Acme Corp", "fileName": "acme-deck"},
//	  "slides": {"0": {"title": "Welcome"}},
//	  "append": [{"type": "closing", "cta": "hello@acme.test"}]
//	}
//
// Defaults only fill empty fields.
type JSONPresetTransformer struct {
	document jsonTransformDocument
	appended []content.Slide
}

type jsonTransformDocument struct {
	Defaults jsonDeckDefaults          `json:"defaults"`
	Slides   map[string]jsonSlidePatch `json:"slides"`
	Append   []any                     `json:"append"`
}

type jsonDeckDefaults struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	FileName string `json:"fileName"`
}

type jsonSlidePatch struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	CTA    string `json:"cta"`
}

// NewJSONPresetTransformer constructs a transformer from raw JSON bytes.
func NewJSONPresetTransformer(data []byte) (*JSONPresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("json preset transformer: document is empty")
	}
	var document jsonTransformDocument
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("json preset transformer: parse document: %w", err)
	}

	var appended []content.Slide
	if len(document.Append) > 0 {
		schema, err := content.Decode(map[string]any{"slides": document.Append})
		if err != nil {
			return nil, fmt.Errorf("json preset transformer: append slides: %w", err)
		}
		appended = schema.Slides
	}
	for key := range document.Slides {
		if _, err := strconv.Atoi(key); err != nil {
			return nil, fmt.Errorf("json preset transformer: slide key %q is not an index", key)
		}
	}
	return &JSONPresetTransformer{document: document, appended: appended}, nil
}

// NewJSONPresetTransformerFromFS loads a JSON transformer document from the
// provided filesystem path.
func NewJSONPresetTransformerFromFS(fsys fs.FS, path string) (*JSONPresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("json preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("json preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("json preset transformer: read %s: %w", path, err)
	}
	return NewJSONPresetTransformer(data)
}

// Transform applies the declarative patches onto schema.
func (t *JSONPresetTransformer) Transform(ctx context.Context, schema *content.Schema) error {
	if schema == nil {
		return errors.New("json preset transformer: content is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	defaults := t.document.Defaults
	schema.Title = fillEmpty(schema.Title, defaults.Title)
	schema.Subtitle = fillEmpty(schema.Subtitle, defaults.Subtitle)
	schema.FileName = fillEmpty(schema.FileName, defaults.FileName)

	for key, patch := range t.document.Slides {
		idx, _ := strconv.Atoi(key)
		if idx < 0 || idx >= len(schema.Slides) {
			return fmt.Errorf("json preset transformer: slide %d not found", idx)
		}
		applySlidePatch(&schema.Slides[idx], patch)
	}

	schema.Slides = append(schema.Slides, t.appended...)
	return nil
}

func applySlidePatch(slide *content.Slide, patch jsonSlidePatch) {
	if patch.Title != "" {
		slide.Title = patch.Title
	}
	if patch.Author != "" {
		slide.Author = patch.Author
	}
	if patch.CTA != "" {
		slide.CTA = patch.CTA
	}
}

func fillEmpty(current, fallback string) string {
	if strings.TrimSpace(current) != "" {
		return current
	}
	return fallback
}
