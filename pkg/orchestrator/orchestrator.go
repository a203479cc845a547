package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	theme "github.com/goliatone/go-theme"
	"github.com/natefinch/atomic"

	internalLoader "github.com/goliatone/go-deckgen/internal/presets/loader"
	"github.com/goliatone/go-deckgen/pkg/content"
	"github.com/goliatone/go-deckgen/pkg/deck"
	"github.com/goliatone/go-deckgen/pkg/presets"
	"github.com/goliatone/go-deckgen/pkg/render"
	"github.com/goliatone/go-deckgen/pkg/renderers/markdown"
	"github.com/goliatone/go-deckgen/pkg/renderers/pptx"
)

const defaultRendererName = pptx.Name

// DefaultFileName is used when the content does not name its output file.
const DefaultFileName = "presentation"

// Option customises the generator configuration.
type Option func(*Generator)

// WithLoader injects a custom presets loader used for Request.Source.
func WithLoader(loader presets.Loader) Option {
	return func(g *Generator) {
		g.loader = loader
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(g *Generator) {
		g.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(g *Generator) {
		g.defaultRenderer = name
	}
}

// WithThemeSelector resolves style keys through selector instead of the
// request catalog. The selected manifest is read with
// presets.StyleFromManifest.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(g *Generator) {
		g.selector = selector
	}
}

// WithTransformer registers a Transformer that rewrites content before
// layout.
func WithTransformer(t Transformer) Option {
	return func(g *Generator) {
		g.transformer = t
	}
}

// WithLogger sets the structured logger. Nil keeps the discard logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithAlerter sets where GenerateFromJSON reports failures.
func WithAlerter(alerter Alerter) Option {
	return func(g *Generator) {
		g.alerter = alerter
	}
}

// Generator runs the style resolution → layout → render sequence. Defaults
// (pptx and markdown renderers, file/fs/HTTP loader) are applied by New so a
// zero-option call is usable.
type Generator struct {
	loader          presets.Loader
	registry        *render.Registry
	defaultRenderer string
	selector        theme.ThemeSelector
	transformer     Transformer
	logger          *slog.Logger
	alerter         Alerter
	initialiseErr   error
}

// New constructs a Generator applying any provided options.
func New(options ...Option) *Generator {
	g := &Generator{
		defaultRenderer: defaultRendererName,
		logger:          slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	g.applyDefaults()
	return g
}

// Request describes one deck to generate.
type Request struct {
	// Config is the presets catalog. When nil, Source is loaded instead; when
	// both are nil styles resolve to the built-in fallbacks.
	Config *presets.Config

	// Source locates a presets document to load when Config is nil.
	Source presets.Source

	// StyleKey names the style to apply. When empty the style of Template is
	// used.
	StyleKey string

	// Template is a template id or name from the catalog.
	Template string

	// Content is the deck description.
	Content content.Schema

	// Renderer names the renderer to use. If empty, the generator falls back to
	// the configured default renderer.
	Renderer string

	RenderOptions render.RenderOptions

	// Alerter overrides the generator alerter for this request.
	Alerter Alerter
}

// Result is a rendered deck.
type Result struct {
	Data        []byte
	ContentType string
	FileName    string
	Style       presets.Style
	Slides      int
}

// Generate resolves the style, lays out the content and renders it.
func (g *Generator) Generate(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := g.initialiseErr; err != nil {
		return Result{}, err
	}

	cfg, err := g.resolveConfig(ctx, req)
	if err != nil {
		return Result{}, err
	}

	style, err := g.resolveStyle(cfg, req)
	if err != nil {
		return Result{}, err
	}

	schema := req.Content
	if err := g.applyTransformer(ctx, &schema); err != nil {
		return Result{}, err
	}

	renderer, err := g.rendererFor(req.Renderer)
	if err != nil {
		return Result{}, err
	}

	presentation := deck.Build(schema, style)

	started := time.Now()
	output, err := renderer.Render(ctx, presentation, req.RenderOptions)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: render output: %w", err)
	}

	g.logger.Debug("deck rendered",
		slog.String("renderer", renderer.Name()),
		slog.String("style", style.Key),
		slog.Int("slides", len(presentation.Slides)),
		slog.Int("bytes", len(output)),
		slog.Duration("elapsed", time.Since(started)),
	)

	return Result{
		Data:        output,
		ContentType: renderer.ContentType(),
		FileName:    FileName(schema.FileName, renderer.Extension()),
		Style:       style,
		Slides:      len(presentation.Slides),
	}, nil
}

// WriteFile generates the deck and writes it into dir under Result.FileName.
func (g *Generator) WriteFile(ctx context.Context, dir string, req Request) (string, error) {
	result, err := g.Generate(ctx, req)
	if err != nil {
		return "", err
	}
	return g.WriteResult(dir, result)
}

// WriteResult writes an already generated deck into dir, creating it when
// missing. The file is replaced atomically; the returned path is the written
// file.
func (g *Generator) WriteResult(dir string, result Result) (string, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("orchestrator: create output dir: %w", err)
	}
	name := FileName(result.FileName, "")
	path := filepath.Join(dir, name)
	if err := atomic.WriteFile(path, bytes.NewReader(result.Data)); err != nil {
		return "", fmt.Errorf("orchestrator: write %s: %w", path, err)
	}
	g.logger.Info("deck written", slog.String("path", path), slog.Int("slides", result.Slides))
	return path, nil
}

// GenerateFromJSON parses raw as deck content and generates it. Invalid JSON
// and generation failures are reported through the Alerter and signalled by
// ok == false. The returned error is reserved for loading req.Source: a
// catalog that cannot be fetched or parsed is not a content problem and is
// never alerted.
func (g *Generator) GenerateFromJSON(ctx context.Context, req Request, raw []byte) (Result, bool, error) {
	if req.Config == nil && req.Source != nil {
		cfg, err := g.resolveConfig(ctx, req)
		if err != nil {
			return Result{}, false, err
		}
		req.Config = cfg
	}

	schema, err := content.Parse(raw)
	if err != nil {
		g.alert(req, ContentErrorMessage(err))
		return Result{}, false, nil
	}
	req.Content = schema

	result, err := g.Generate(ctx, req)
	if err != nil {
		g.alert(req, GenerationErrorMessage(err))
		return Result{}, false, nil
	}
	return result, true, nil
}

// FileName returns name, or DefaultFileName, with ext appended unless the
// name already ends with it. Directory components are dropped.
func FileName(name, ext string) string {
	name = strings.TrimSpace(name)
	if name != "" {
		name = filepath.Base(filepath.FromSlash(name))
	}
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = DefaultFileName
	}
	if ext != "" && !strings.HasSuffix(strings.ToLower(name), strings.ToLower(ext)) {
		name += ext
	}
	return name
}

// Registry exposes the renderer registry so callers can list renderers.
func (g *Generator) Registry() *render.Registry {
	return g.registry
}

func (g *Generator) resolveConfig(ctx context.Context, req Request) (*presets.Config, error) {
	if req.Config != nil {
		return req.Config, nil
	}
	if req.Source == nil {
		return nil, nil
	}
	cfg, err := presets.Load(ctx, g.loader, req.Source, g.logger)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return cfg, nil
}

func (g *Generator) resolveStyle(cfg *presets.Config, req Request) (presets.Style, error) {
	key := strings.TrimSpace(req.StyleKey)
	if key == "" && strings.TrimSpace(req.Template) != "" {
		tpl, ok := cfg.Template(req.Template)
		if !ok {
			return presets.Style{}, fmt.Errorf("orchestrator: template %q not found", req.Template)
		}
		key = tpl.Style
	}

	if g.selector == nil {
		return presets.ResolveStyle(cfg, key), nil
	}

	selection, err := g.selector.Select(key, "")
	if err != nil {
		return presets.Style{}, fmt.Errorf("orchestrator: select style %q: %w", key, err)
	}
	if selection == nil {
		return presets.ResolveStyle(cfg, key), nil
	}
	style := presets.StyleFromManifest(selection.Manifest)
	if style.Key == "" {
		style.Key = key
	}
	return style, nil
}

func (g *Generator) rendererFor(name string) (render.Renderer, error) {
	if g.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = g.defaultRenderer
	}

	if target != "" {
		renderer, err := g.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := g.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := g.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (g *Generator) applyTransformer(ctx context.Context, schema *content.Schema) error {
	if g.transformer == nil {
		return nil
	}
	if err := g.transformer.Transform(ctx, schema); err != nil {
		return fmt.Errorf("orchestrator: transform content: %w", err)
	}
	return nil
}

func (g *Generator) alert(req Request, message string) {
	if req.Alerter != nil {
		req.Alerter.Alert(message)
		return
	}
	g.alerter.Alert(message)
}

func (g *Generator) applyDefaults() {
	if g.loader == nil {
		g.loader = internalLoader.New(presets.NewLoaderOptions(
			presets.WithFileSystem(presets.EmbeddedFS()),
			presets.WithHTTPFallback(30*time.Second),
		))
	}
	if g.registry == nil {
		g.registry = render.NewRegistry()
		renderer, err := pptx.New()
		if err != nil {
			g.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			g.registry.MustRegister(renderer)
		}
		g.registry.MustRegister(markdown.New())
	}
	if g.defaultRenderer == "" {
		g.defaultRenderer = defaultRendererName
	}
	if g.alerter == nil {
		g.alerter = LogAlerter(g.logger)
	}
}
