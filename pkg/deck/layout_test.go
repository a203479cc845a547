package deck_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-deckgen/pkg/content"
	"github.com/goliatone/go-deckgen/pkg/deck"
	"github.com/goliatone/go-deckgen/pkg/presets"
)

func oceanStyle() presets.Style {
	return presets.Style{
		Key:     "ocean",
		Palette: []string{"#0b1f3a", "#ffffff", "#1e88e5", "#eaf2ff"},
		Fonts:   presets.FontPair{Heading: "Playfair Display", Body: "Lora"},
	}
}

func TestBuild_TitleOnly(t *testing.T) {
	p := deck.Build(content.Schema{Title: "Quarterly"}, oceanStyle())

	if p.Layout != deck.LayoutWide || p.Width != 10 || p.Height != 5.625 {
		t.Fatalf("unexpected page: %s %vx%v", p.Layout, p.Width, p.Height)
	}
	if len(p.Slides) != 1 {
		t.Fatalf("expected only the cover slide, got %d", len(p.Slides))
	}

	cover := p.Slides[0]
	want := deck.Slide{
		Kind:       "cover",
		Title:      "Quarterly",
		Background: "EAF2FF",
		Elements: []deck.Element{{
			Kind:       deck.ElementText,
			Box:        deck.Box{X: 0.7, Y: 1.5, W: 9, H: 1.2},
			Paragraphs: []string{"Quarterly"},
			Font:       "Playfair Display",
			Size:       36,
			Bold:       true,
			Color:      "0B1F3A",
			Align:      deck.AlignLeft,
		}},
	}
	if diff := cmp.Diff(want, cover); diff != "" {
		t.Fatalf("cover mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_CoverDefaults(t *testing.T) {
	p := deck.Build(content.Schema{Subtitle: "Sub"}, presets.ResolveStyle(nil, "missing"))

	cover := p.Slides[0]
	if cover.Title != deck.DefaultTitle || p.Title != deck.DefaultTitle {
		t.Fatalf("expected default title, got %q", cover.Title)
	}
	if cover.Background != "EAF2FF" {
		t.Fatalf("expected fallback background, got %s", cover.Background)
	}
	texts := cover.Texts()
	if len(texts) != 2 {
		t.Fatalf("expected title and subtitle, got %d elements", len(texts))
	}
	sub := texts[1]
	if sub.Text() != "Sub" || sub.Font != presets.DefaultFont || sub.Size != 20 || sub.Color != "111217" {
		t.Fatalf("unexpected subtitle element: %#v", sub)
	}
}

func TestBuild_SlideTypes(t *testing.T) {
	schema := content.Schema{
		Title: "Deck",
		Slides: []content.Slide{
			{Type: content.SlideSection, Title: "Part one"},
			{Type: content.SlideBullets, Title: "Facts", Bullets: []string{"a", "b"}},
			{Type: content.SlideTwoColumn, ColLeft: "left\nmore", ColRight: "right"},
			{Type: content.SlideQuote, QuoteText: "Be brief", Author: "Anon"},
			{Type: content.SlideClosing, CTA: "Questions?"},
		},
	}
	p := deck.Build(schema, oceanStyle())
	if len(p.Slides) != 6 {
		t.Fatalf("expected 6 slides, got %d", len(p.Slides))
	}

	section := p.Slides[1]
	if section.Background != "FFFFFF" {
		t.Fatalf("content slides should be white, got %s", section.Background)
	}
	if got := len(section.Elements); got != 3 {
		t.Fatalf("section: expected band, header and display text, got %d", got)
	}
	band := section.Elements[0]
	if band.Kind != deck.ElementRect || band.Fill != "EAF2FF" || band.Box != (deck.Box{W: 10, H: 0.9}) {
		t.Fatalf("unexpected title band: %#v", band)
	}
	display := section.Elements[2]
	if display.Size != 40 || display.Align != deck.AlignCenter || display.Text() != "Part one" {
		t.Fatalf("unexpected section display: %#v", display)
	}

	body := p.Slides[2].Elements[2]
	if diff := cmp.Diff([]string{"• a", "• b"}, body.Paragraphs); diff != "" {
		t.Fatalf("bullets mismatch (-want +got):\n%s", diff)
	}
	if body.LineSpacing != 1.1 || body.Size != 18 || body.Font != "Lora" {
		t.Fatalf("unexpected bullets element: %#v", body)
	}

	columns := p.Slides[3].Elements
	if len(columns) != 2 {
		t.Fatalf("untitled two_column should have only columns, got %d", len(columns))
	}
	if columns[0].Box.X != 0.8 || columns[1].Box.X != 5.2 {
		t.Fatalf("unexpected column geometry: %#v %#v", columns[0].Box, columns[1].Box)
	}
	if diff := cmp.Diff([]string{"left", "more"}, columns[0].Paragraphs); diff != "" {
		t.Fatalf("column paragraphs mismatch (-want +got):\n%s", diff)
	}

	quote := p.Slides[4].Texts()
	if len(quote) != 2 || quote[0].Text() != "“Be brief”" || !quote[0].Italic || quote[1].Text() != "— Anon" {
		t.Fatalf("unexpected quote slide: %#v", quote)
	}

	closing := p.Slides[5].Texts()
	if len(closing) != 2 || closing[0].Text() != deck.DefaultClosingTitle || closing[1].Text() != "Questions?" {
		t.Fatalf("unexpected closing slide: %#v", closing)
	}
}

func TestBuild_UnknownTypeIsTitleOnly(t *testing.T) {
	p := deck.Build(content.Schema{
		Slides: []content.Slide{{Type: "timeline", Title: "Roadmap", Bullets: []string{"ignored"}}},
	}, oceanStyle())

	slide := p.Slides[1]
	if slide.Kind != "timeline" {
		t.Fatalf("kind should carry the descriptor type, got %s", slide.Kind)
	}
	if len(slide.Elements) != 2 {
		t.Fatalf("expected only title band and header, got %d elements", len(slide.Elements))
	}
	if slide.Elements[1].Text() != "Roadmap" {
		t.Fatalf("unexpected header text: %q", slide.Elements[1].Text())
	}
}

func TestBuild_ShortPaletteFallsBack(t *testing.T) {
	p := deck.Build(content.Schema{Title: "x"}, presets.Style{Palette: []string{"not-a-color"}})

	if p.Slides[0].Background != "EAF2FF" {
		t.Fatalf("expected fallback background, got %s", p.Slides[0].Background)
	}
	if p.Slides[0].Elements[0].Color != "111217" {
		t.Fatalf("expected fallback primary, got %s", p.Slides[0].Elements[0].Color)
	}
	if diff := cmp.Diff([]string{"111217"}, p.Theme.Palette); diff != "" {
		t.Fatalf("theme palette mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeColor(t *testing.T) {
	cases := map[string]string{
		"#1e88e5": "1E88E5",
		"1E88E5":  "1E88E5",
		"#fff":    "FFFFFF",
		"purple":  "111217",
		"":        "111217",
	}
	for in, want := range cases {
		if got := deck.NormalizeColor(in, "#111217"); got != want {
			t.Fatalf("NormalizeColor(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEMU(t *testing.T) {
	if got := deck.EMU(1); got != 914400 {
		t.Fatalf("EMU(1) = %d", got)
	}
	if got := deck.EMU(0.7); got != 640080 {
		t.Fatalf("EMU(0.7) = %d", got)
	}
	if got := deck.EMU(5.625); got != 5143500 {
		t.Fatalf("EMU(5.625) = %d", got)
	}
}
