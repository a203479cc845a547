package markdown

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-deckgen/pkg/deck"
	"github.com/goliatone/go-deckgen/pkg/render"
)

// Name is the registry key of the renderer.
const Name = "markdown"

// textEscaper keeps slide text literal when the outline is read as markdown,
// where "<Ctrl>" would otherwise parse as inline HTML.
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

type Option func(*Renderer)

// WithSlideNumbers prefixes every slide heading with its position.
func WithSlideNumbers(enabled bool) Option {
	return func(r *Renderer) {
		r.numbered = enabled
	}
}

// Renderer writes a plain markdown outline of a deck: one heading per slide
// and the text boxes below it. Shapes without text are skipped.
type Renderer struct {
	numbered bool
}

var _ render.Renderer = (*Renderer)(nil)

func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/markdown; charset=utf-8"
}

func (r *Renderer) Extension() string {
	return ".md"
}

func (r *Renderer) Render(ctx context.Context, presentation deck.Presentation, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var b strings.Builder
	for idx, slide := range presentation.Slides {
		if idx > 0 {
			b.WriteString("\n---\n\n")
		}
		r.writeSlide(&b, idx, slide)
	}
	return []byte(b.String()), nil
}

func (r *Renderer) writeSlide(b *strings.Builder, idx int, slide deck.Slide) {
	level := "##"
	if slide.Kind == "cover" {
		level = "#"
	}
	heading := slide.Title
	if heading == "" {
		heading = "(untitled)"
	}
	if r.numbered {
		heading = fmt.Sprintf("%d. %s", idx+1, heading)
	}
	fmt.Fprintf(b, "%s %s\n", level, textEscaper.Replace(heading))

	titleSkipped := false
	for _, el := range slide.Texts() {
		// The header text repeats the heading once per slide.
		if !titleSkipped && el.Text() == slide.Title {
			titleSkipped = true
			continue
		}
		b.WriteString("\n")
		writeParagraphs(b, el)
	}
}

func writeParagraphs(b *strings.Builder, el deck.Element) {
	for _, para := range el.Paragraphs {
		if bullet, ok := strings.CutPrefix(para, "• "); ok {
			fmt.Fprintf(b, "- %s\n", textEscaper.Replace(bullet))
			continue
		}
		para = textEscaper.Replace(para)
		switch {
		case el.Italic:
			fmt.Fprintf(b, "> %s\n", para)
		case el.Bold:
			fmt.Fprintf(b, "**%s**\n", para)
		default:
			fmt.Fprintf(b, "%s\n", para)
		}
	}
}
