// Package deckgen picks presentation templates from a YAML presets catalog and
// renders structured deck content into .pptx files.
//
// The root package re-exports the common entry points; the building blocks
// live under pkg/ (presets, content, deck, render, renderers, orchestrator,
// prompt, server).
package deckgen

import (
	"context"
	"io/fs"

	theme "github.com/goliatone/go-theme"

	internalLoader "github.com/goliatone/go-deckgen/internal/presets/loader"
	"github.com/goliatone/go-deckgen/pkg/content"
	"github.com/goliatone/go-deckgen/pkg/orchestrator"
	"github.com/goliatone/go-deckgen/pkg/presets"
	"github.com/goliatone/go-deckgen/pkg/render"
	"github.com/goliatone/go-deckgen/pkg/renderers/pptx"
)

// RenderOptions describes per-request document metadata.
type RenderOptions = render.RenderOptions

// Request aliases orchestrator.Request.
type Request = orchestrator.Request

// Result aliases orchestrator.Result.
type Result = orchestrator.Result

// Criteria aliases presets.Criteria.
type Criteria = presets.Criteria

// Content aliases content.Schema.
type Content = content.Schema

// NewGenerator exposes the generator constructor from the top-level module.
func NewGenerator(options ...orchestrator.Option) *orchestrator.Generator {
	return orchestrator.New(options...)
}

// NewLoader constructs a presets loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...presets.LoaderOption) presets.Loader {
	return internalLoader.New(presets.NewLoaderOptions(options...))
}

// LoadPresets fetches and parses the catalog behind src.
func LoadPresets(ctx context.Context, src presets.Source, options ...presets.LoaderOption) (*presets.Config, error) {
	return presets.Load(ctx, NewLoader(options...), src, nil)
}

// LoadEmbeddedPresets parses the catalog compiled into the module.
func LoadEmbeddedPresets(ctx context.Context) (*presets.Config, error) {
	return LoadPresets(ctx, presets.SourceFromFS(presets.EmbeddedName), presets.WithFileSystem(presets.EmbeddedFS()))
}

// FindTemplates returns up to three catalog templates matching criteria.
func FindTemplates(cfg *presets.Config, criteria Criteria) []presets.Template {
	return presets.FindTemplates(cfg, criteria)
}

// GeneratePPTX renders content with the named catalog style and returns the
// .pptx bytes together with the suggested file name.
func GeneratePPTX(ctx context.Context, cfg *presets.Config, styleKey string, deck Content, options ...orchestrator.Option) (Result, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Config:   cfg,
		StyleKey: styleKey,
		Content:  deck,
		Renderer: pptx.Name,
	})
}

// WithThemeSelector passes a go-theme selector through to the generator so
// style keys can be resolved outside the catalog.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// EmbeddedTemplates exposes the built-in OOXML part templates so callers can
// reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return pptx.TemplatesFS()
}
