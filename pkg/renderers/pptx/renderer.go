package pptx

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/goliatone/go-deckgen/pkg/deck"
	"github.com/goliatone/go-deckgen/pkg/render"
	rendertemplate "github.com/goliatone/go-deckgen/pkg/render/template"
	gotemplate "github.com/goliatone/go-deckgen/pkg/render/template/gotemplate"
)

// Name is the registry key of the renderer.
const Name = "pptx"

// ContentType of a PresentationML package.
const ContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

// DefaultAuthor is written to the document properties when RenderOptions
// leaves Author empty.
const DefaultAuthor = "deckgen"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	author           string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must provide every part template found in TemplatesFS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer. It must understand
// the filters returned by Filters.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithDefaultAuthor overrides DefaultAuthor.
func WithDefaultAuthor(author string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(author); trimmed != "" {
			cfg.author = trimmed
		}
	}
}

type Renderer struct {
	templates rendertemplate.TemplateRenderer
	author    string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the pptx renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS(), author: DefaultAuthor}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tpl"),
			gotemplate.WithFilters(Filters()),
		)
		if err != nil {
			return nil, fmt.Errorf("pptx renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, author: cfg.author}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return ContentType
}

func (r *Renderer) Extension() string {
	return ".pptx"
}

// Render fills every package part and zips them. Parts are written in a fixed
// order with the creation time as their modification stamp, so identical
// input and options produce identical bytes.
func (r *Renderer) Render(ctx context.Context, presentation deck.Presentation, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("pptx renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	created := options.CreatedOrNow()
	data := r.documentData(presentation, options, created)

	var buf bytes.Buffer
	archive := zip.NewWriter(&buf)

	for _, part := range packageParts {
		if err := r.writePart(archive, part.name, part.template, data, created); err != nil {
			return nil, err
		}
	}

	for idx, slide := range presentation.Slides {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		slideData := map[string]any{
			"slide":  slide,
			"number": idx + 1,
		}
		name := fmt.Sprintf("ppt/slides/slide%d.xml", idx+1)
		if err := r.writePart(archive, name, "templates/slide.xml", slideData, created); err != nil {
			return nil, err
		}
		rels := fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", idx+1)
		if err := r.writePart(archive, rels, "templates/slide_rels.xml", slideData, created); err != nil {
			return nil, err
		}
	}

	if err := archive.Close(); err != nil {
		return nil, fmt.Errorf("pptx renderer: close archive: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) writePart(archive *zip.Writer, name, templateName string, data any, modified time.Time) error {
	rendered, err := r.templates.RenderTemplate(templateName, data)
	if err != nil {
		return fmt.Errorf("pptx renderer: render %s: %w", name, err)
	}
	w, err := archive.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: modified,
	})
	if err != nil {
		return fmt.Errorf("pptx renderer: create %s: %w", name, err)
	}
	if _, err := w.Write([]byte(rendered)); err != nil {
		return fmt.Errorf("pptx renderer: write %s: %w", name, err)
	}
	return nil
}

func (r *Renderer) documentData(presentation deck.Presentation, options render.RenderOptions, created time.Time) map[string]any {
	author := strings.TrimSpace(options.Author)
	if author == "" {
		author = r.author
	}
	title := presentation.Title
	if title == "" {
		title = deck.DefaultTitle
	}
	name := presentation.Theme.Name
	if name == "" {
		name = "deckgen"
	}

	keywords := make([]string, 0, len(options.Keywords))
	for _, keyword := range options.Keywords {
		if trimmed := strings.TrimSpace(keyword); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}

	return map[string]any{
		"presentation": map[string]any{
			"title":  title,
			"width":  presentation.Width,
			"height": presentation.Height,
		},
		"slides": presentation.Slides,
		"theme": map[string]any{
			"name":        name,
			"headingFont": fontOrDefault(presentation.Theme.HeadingFont),
			"bodyFont":    fontOrDefault(presentation.Theme.BodyFont),
		},
		"colors": themeColors(presentation.Theme.Palette),
		"options": map[string]any{
			"application": DefaultAuthor,
			"author":      author,
			"subject":     strings.TrimSpace(options.Subject),
			"keywords":    strings.Join(keywords, "; "),
			"created":     created.UTC().Format(time.RFC3339),
		},
	}
}

type packagePart struct {
	name     string
	template string
}

// packageParts are the document level parts; slides are appended after them.
var packageParts = []packagePart{
	{"[Content_Types].xml", "templates/content_types.xml"},
	{"_rels/.rels", "templates/package_rels.xml"},
	{"docProps/core.xml", "templates/core.xml"},
	{"docProps/app.xml", "templates/app.xml"},
	{"ppt/presentation.xml", "templates/presentation.xml"},
	{"ppt/_rels/presentation.xml.rels", "templates/presentation_rels.xml"},
	{"ppt/presProps.xml", "templates/pres_props.xml"},
	{"ppt/viewProps.xml", "templates/view_props.xml"},
	{"ppt/tableStyles.xml", "templates/table_styles.xml"},
	{"ppt/slideMasters/slideMaster1.xml", "templates/slide_master.xml"},
	{"ppt/slideMasters/_rels/slideMaster1.xml.rels", "templates/slide_master_rels.xml"},
	{"ppt/slideLayouts/slideLayout1.xml", "templates/slide_layout.xml"},
	{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", "templates/slide_layout_rels.xml"},
	{"ppt/theme/theme1.xml", "templates/theme.xml"},
}

func fontOrDefault(font string) string {
	if strings.TrimSpace(font) == "" {
		return "Inter"
	}
	return font
}

// themeColors maps a palette onto the twelve theme color slots. dk1 is the
// primary color, lt2 the background and the accents cycle from the third
// palette entry.
func themeColors(palette []string) map[string]string {
	colors := make([]string, 0, len(palette))
	for _, value := range palette {
		if normalized := deck.NormalizeColor(value, ""); normalized != "" {
			colors = append(colors, normalized)
		}
	}
	if len(colors) == 0 {
		colors = []string{deck.NormalizeColor(deck.DefaultPrimary, "111217")}
	}
	at := func(idx int, fallback string) string {
		if idx < len(colors) {
			return colors[idx]
		}
		return fallback
	}

	out := map[string]string{
		"dk1": colors[0],
		"lt1": deck.NormalizeColor(deck.White, "FFFFFF"),
		"dk2": at(2, colors[0]),
		"lt2": at(3, deck.NormalizeColor(deck.DefaultBackground, "EAF2FF")),
	}
	for i := 0; i < 6; i++ {
		out[fmt.Sprintf("accent%d", i+1)] = colors[(i+2)%len(colors)]
	}
	out["hlink"] = out["accent1"]
	out["folHlink"] = out["dk2"]
	return out
}
