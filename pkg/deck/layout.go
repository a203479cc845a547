package deck

import (
	"strings"

	"github.com/goliatone/go-deckgen/pkg/content"
	"github.com/goliatone/go-deckgen/pkg/presets"
)

// Fallbacks applied when content or style leave a value unset.
const (
	DefaultTitle        = "Presentation"
	DefaultClosingTitle = "Thank you!"
	DefaultPrimary      = "#111217"
	DefaultBackground   = "#EAF2FF"
	White               = "#FFFFFF"
)

// Fixed font sizes in points.
const (
	sizeCoverTitle    = 36
	sizeCoverSubtitle = 20
	sizeHeader        = 22
	sizeDisplay       = 40
	sizeBullets       = 18
	sizeColumn        = 16
	sizeQuote         = 28
	sizeAuthor        = 16
	sizeCTA           = 18
)

type palette struct {
	primary    string
	background string
	text       string
	heading    string
	body       string
}

// Build lays out schema with style: a cover slide followed by one slide per
// descriptor. Unknown descriptor types produce a slide carrying only the
// title band.
func Build(schema content.Schema, style presets.Style) Presentation {
	pal := palette{
		primary:    NormalizeColor(style.Color(0, DefaultPrimary), DefaultPrimary),
		background: NormalizeColor(style.Color(3, DefaultBackground), DefaultBackground),
		text:       NormalizeColor(style.Color(0, DefaultPrimary), DefaultPrimary),
		heading:    style.HeadingFont(),
		body:       style.BodyFont(),
	}

	title := schema.Title
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}

	p := Presentation{
		Layout: LayoutWide,
		Width:  SlideWidth,
		Height: SlideHeight,
		Title:  title,
		Theme:  buildTheme(style, pal),
	}

	p.Slides = append(p.Slides, coverSlide(title, schema.Subtitle, pal))
	for _, descriptor := range schema.Slides {
		p.Slides = append(p.Slides, contentSlide(descriptor, pal))
	}
	return p
}

func buildTheme(style presets.Style, pal palette) Theme {
	colors := make([]string, 0, len(style.Palette))
	for _, c := range style.Palette {
		if hex, ok := parseHex(c); ok {
			colors = append(colors, hex)
		}
	}
	if len(colors) == 0 {
		colors = []string{pal.primary}
	}
	return Theme{
		Name:        style.Key,
		HeadingFont: pal.heading,
		BodyFont:    pal.body,
		Palette:     colors,
	}
}

func coverSlide(title, subtitle string, pal palette) Slide {
	slide := Slide{
		Kind:       "cover",
		Title:      title,
		Background: pal.background,
	}
	slide.Elements = append(slide.Elements, Element{
		Kind:       ElementText,
		Box:        Box{X: 0.7, Y: 1.5, W: 9, H: 1.2},
		Paragraphs: splitLines(title),
		Font:       pal.heading,
		Size:       sizeCoverTitle,
		Bold:       true,
		Color:      pal.primary,
		Align:      AlignLeft,
	})
	if subtitle != "" {
		slide.Elements = append(slide.Elements, Element{
			Kind:       ElementText,
			Box:        Box{X: 0.7, Y: 2.6, W: 9, H: 0.8},
			Paragraphs: splitLines(subtitle),
			Font:       pal.body,
			Size:       sizeCoverSubtitle,
			Color:      pal.text,
			Align:      AlignLeft,
		})
	}
	return slide
}

func contentSlide(d content.Slide, pal palette) Slide {
	slide := Slide{
		Kind:       string(d.Type),
		Title:      d.Title,
		Background: NormalizeColor(White, White),
	}

	if d.Title != "" {
		slide.Elements = append(slide.Elements,
			Element{
				Kind: ElementRect,
				Box:  Box{X: 0, Y: 0, W: 10, H: 0.9},
				Fill: pal.background,
			},
			Element{
				Kind:       ElementText,
				Box:        Box{X: 0.6, Y: 0.2, W: 8.8, H: 0.6},
				Paragraphs: splitLines(d.Title),
				Font:       pal.heading,
				Size:       sizeHeader,
				Bold:       true,
				Color:      pal.primary,
				Align:      AlignLeft,
			},
		)
	}

	switch d.Type {
	case content.SlideSection:
		slide.Elements = append(slide.Elements, display(d.Title, Box{X: 0.7, Y: 2.5, W: 8.6, H: 1}, pal))
	case content.SlideBullets:
		slide.Elements = append(slide.Elements, bullets(d.Bullets, pal))
	case content.SlideTwoColumn:
		slide.Elements = append(slide.Elements,
			column(d.ColLeft, Box{X: 0.8, Y: 1.4, W: 4.0, H: 4.8}, pal),
			column(d.ColRight, Box{X: 5.2, Y: 1.4, W: 4.0, H: 4.8}, pal),
		)
	case content.SlideQuote:
		slide.Elements = append(slide.Elements, quote(d.QuoteText, pal))
		if d.Author != "" {
			slide.Elements = append(slide.Elements, Element{
				Kind:       ElementText,
				Box:        Box{X: 0.9, Y: 4.2, W: 8.2, H: 0.6},
				Paragraphs: splitLines("— " + d.Author),
				Font:       pal.body,
				Size:       sizeAuthor,
				Color:      pal.text,
				Align:      AlignCenter,
			})
		}
	case content.SlideClosing:
		title := d.Title
		if title == "" {
			title = DefaultClosingTitle
		}
		slide.Elements = append(slide.Elements, display(title, Box{X: 0.7, Y: 2.3, W: 8.6, H: 1}, pal))
		if d.CTA != "" {
			slide.Elements = append(slide.Elements, Element{
				Kind:       ElementText,
				Box:        Box{X: 0.7, Y: 3.5, W: 8.6, H: 0.8},
				Paragraphs: splitLines(d.CTA),
				Font:       pal.body,
				Size:       sizeCTA,
				Color:      pal.text,
				Align:      AlignCenter,
			})
		}
	}
	return slide
}

func display(text string, box Box, pal palette) Element {
	return Element{
		Kind:       ElementText,
		Box:        box,
		Paragraphs: splitLines(text),
		Font:       pal.heading,
		Size:       sizeDisplay,
		Bold:       true,
		Color:      pal.primary,
		Align:      AlignCenter,
	}
}

func bullets(items []string, pal palette) Element {
	paragraphs := make([]string, 0, len(items))
	for _, item := range items {
		paragraphs = append(paragraphs, splitLines("• "+item)...)
	}
	return Element{
		Kind:        ElementText,
		Box:         Box{X: 1.0, Y: 1.4, W: 8.4, H: 4.5},
		Paragraphs:  paragraphs,
		Font:        pal.body,
		Size:        sizeBullets,
		Color:       pal.text,
		Align:       AlignLeft,
		LineSpacing: 1.1,
	}
}

func column(text string, box Box, pal palette) Element {
	return Element{
		Kind:       ElementText,
		Box:        box,
		Paragraphs: splitLines(text),
		Font:       pal.body,
		Size:       sizeColumn,
		Color:      pal.text,
		Align:      AlignLeft,
	}
}

func quote(text string, pal palette) Element {
	return Element{
		Kind:       ElementText,
		Box:        Box{X: 0.9, Y: 2.1, W: 8.2, H: 2.5},
		Paragraphs: splitLines("“" + text + "”"),
		Font:       pal.heading,
		Size:       sizeQuote,
		Italic:     true,
		Color:      pal.primary,
		Align:      AlignCenter,
	}
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}
