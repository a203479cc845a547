package orchestrator_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-deckgen/pkg/content"
	"github.com/goliatone/go-deckgen/pkg/orchestrator"
	"github.com/goliatone/go-deckgen/pkg/presets"
	"github.com/goliatone/go-deckgen/pkg/render"
	"github.com/goliatone/go-deckgen/pkg/testsupport"
)

const catalogPath = "../presets/testdata/catalog.yaml"

var fixedOptions = render.RenderOptions{Created: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}

type alerts struct {
	messages []string
}

func (a *alerts) Alert(message string) {
	a.messages = append(a.messages, message)
}

func TestGenerator_GeneratePPTX(t *testing.T) {
	cfg := testsupport.LoadConfig(t, catalogPath)
	gen := orchestrator.New()

	result, err := gen.Generate(context.Background(), orchestrator.Request{
		Config:        cfg,
		StyleKey:      "blue",
		Content:       content.Schema{Title: "Quarterly"},
		RenderOptions: fixedOptions,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if result.FileName != "presentation.pptx" {
		t.Fatalf("unexpected file name %q", result.FileName)
	}
	if result.ContentType != "application/vnd.openxmlformats-officedocument.presentationml.presentation" {
		t.Fatalf("unexpected content type %q", result.ContentType)
	}
	if result.Slides != 1 || result.Style.Key != "blue" {
		t.Fatalf("unexpected result summary: %d slides, style %q", result.Slides, result.Style.Key)
	}

	parts := testsupport.ZipParts(t, result.Data)
	if !strings.Contains(parts["ppt/slides/slide1.xml"], "<a:t>Quarterly</a:t>") {
		t.Fatalf("cover slide missing title")
	}
	if !strings.Contains(parts["ppt/theme/theme1.xml"], `typeface="Playfair Display"`) {
		t.Fatalf("theme missing heading font")
	}
}

func TestGenerator_TemplateSelectsStyle(t *testing.T) {
	cfg := testsupport.LoadConfig(t, catalogPath)
	gen := orchestrator.New()

	result, err := gen.Generate(context.Background(), orchestrator.Request{
		Config:   cfg,
		Template: "t2",
		Content:  content.Schema{Title: "ESG", FileName: "esg.PPTX"},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.Style.Key != "green" {
		t.Fatalf("expected template style green, got %q", result.Style.Key)
	}
	if result.FileName != "esg.PPTX" {
		t.Fatalf("extension should not be doubled, got %q", result.FileName)
	}

	_, err = gen.Generate(context.Background(), orchestrator.Request{Config: cfg, Template: "missing"})
	if err == nil || !strings.Contains(err.Error(), `template "missing" not found`) {
		t.Fatalf("expected missing template error, got %v", err)
	}
}

func TestGenerator_MarkdownRenderer(t *testing.T) {
	gen := orchestrator.New()

	result, err := gen.Generate(context.Background(), orchestrator.Request{
		Content:  content.Schema{Title: "Outline", FileName: "notes"},
		Renderer: "markdown",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.FileName != "notes.md" {
		t.Fatalf("unexpected file name %q", result.FileName)
	}
	if string(result.Data) != "# Outline\n" {
		t.Fatalf("unexpected outline %q", result.Data)
	}

	if _, err := gen.Generate(context.Background(), orchestrator.Request{Renderer: "pdf"}); err == nil {
		t.Fatalf("expected unknown renderer error")
	}
}

func TestGenerator_LoadsSource(t *testing.T) {
	gen := orchestrator.New()

	result, err := gen.Generate(context.Background(), orchestrator.Request{
		Source:   presets.SourceFromFS(presets.EmbeddedName),
		Template: "investor-pitch",
		Content:  content.Schema{Title: "Seed"},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.Style.Key != "pitch" {
		t.Fatalf("expected pitch style, got %q", result.Style.Key)
	}

	_, err = gen.Generate(context.Background(), orchestrator.Request{
		Source: presets.SourceFromFile(filepath.Join(t.TempDir(), "missing.yaml")),
	})
	if err == nil {
		t.Fatalf("expected load error")
	}
}

func TestGenerator_ThemeSelector(t *testing.T) {
	selector := &stubSelector{manifest: &theme.Manifest{
		Name:    "remote",
		Version: "1.0.0",
		Tokens: map[string]string{
			"palette.0":    "#123456",
			"font.heading": "Futura",
			"font.body":    "Helvetica",
		},
	}}
	gen := orchestrator.New(orchestrator.WithThemeSelector(selector))

	result, err := gen.Generate(context.Background(), orchestrator.Request{
		StyleKey: "brand",
		Content:  content.Schema{Title: "Remote"},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(selector.names) != 1 || selector.names[0] != "brand" {
		t.Fatalf("unexpected selector calls %v", selector.names)
	}
	if result.Style.Fonts.Heading != "Futura" || result.Style.Palette[0] != "#123456" {
		t.Fatalf("selected manifest not applied: %+v", result.Style)
	}

	failing := orchestrator.New(orchestrator.WithThemeSelector(&stubSelector{err: errors.New("boom")}))
	if _, err := failing.Generate(context.Background(), orchestrator.Request{StyleKey: "brand"}); err == nil {
		t.Fatalf("expected selector error")
	}
}

func TestGenerator_GenerateFromJSONAlerts(t *testing.T) {
	collected := &alerts{}
	gen := orchestrator.New(orchestrator.WithAlerter(collected))

	result, ok, err := gen.GenerateFromJSON(context.Background(), orchestrator.Request{}, []byte(`{"title": `))
	if err != nil {
		t.Fatalf("alert path returned error: %v", err)
	}
	if ok {
		t.Fatalf("expected failure for invalid JSON")
	}
	if result.Data != nil {
		t.Fatalf("expected empty result")
	}
	if len(collected.messages) != 1 || !strings.HasPrefix(collected.messages[0], "Content JSON error: ") {
		t.Fatalf("unexpected alerts %v", collected.messages)
	}
	if strings.Contains(collected.messages[0], "invalid content") {
		t.Fatalf("alert should carry only the detail: %q", collected.messages[0])
	}

	_, ok, _ = gen.GenerateFromJSON(context.Background(), orchestrator.Request{Renderer: "pdf"}, []byte(`{"title": "x"}`))
	if ok || len(collected.messages) != 2 || !strings.HasPrefix(collected.messages[1], "Deck generation error: ") {
		t.Fatalf("expected generation alert, got %v", collected.messages)
	}

	result, ok, _ = gen.GenerateFromJSON(context.Background(), orchestrator.Request{}, []byte(`{"title": "Fine", "slides": [{"type": "mystery"}]}`))
	if !ok || result.Slides != 2 {
		t.Fatalf("expected success with two slides, got ok=%v slides=%d", ok, result.Slides)
	}
}

type failingLoader struct {
	err error
}

func (l failingLoader) Load(context.Context, presets.Source) (presets.Document, error) {
	return presets.Document{}, l.err
}

func TestGenerator_GenerateFromJSONConfigErrorIsReturned(t *testing.T) {
	loadErr := errors.New("catalog unreachable")
	collected := &alerts{}
	gen := orchestrator.New(
		orchestrator.WithLoader(failingLoader{err: loadErr}),
		orchestrator.WithAlerter(collected),
	)

	_, ok, err := gen.GenerateFromJSON(context.Background(), orchestrator.Request{
		Source: presets.SourceFromFile("missing.yaml"),
	}, []byte(`{"title": "x"}`))
	if ok {
		t.Fatalf("expected failure")
	}
	if !errors.Is(err, loadErr) {
		t.Fatalf("expected loader error, got %v", err)
	}
	if len(collected.messages) != 0 {
		t.Fatalf("config failure must not be alerted, got %v", collected.messages)
	}

	// Invalid content with a broken catalog still reports the catalog.
	_, _, err = gen.GenerateFromJSON(context.Background(), orchestrator.Request{
		Source: presets.SourceFromFile("missing.yaml"),
	}, []byte(`{"title": `))
	if !errors.Is(err, loadErr) || len(collected.messages) != 0 {
		t.Fatalf("expected loader error without alerts, got %v %v", err, collected.messages)
	}
}

func TestGenerator_WriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	gen := orchestrator.New()

	path, err := gen.WriteFile(context.Background(), dir, orchestrator.Request{
		Content: content.Schema{Title: "Saved", FileName: "../escape/report"},
	})
	if err != nil {
		t.Fatalf("write file: %v", err)
	}
	if path != filepath.Join(dir, "report.pptx") {
		t.Fatalf("unexpected path %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if _, ok := testsupport.ZipParts(t, data)["ppt/presentation.xml"]; !ok {
		t.Fatalf("written file is not a presentation package")
	}
}

func TestFileName(t *testing.T) {
	cases := map[string]struct {
		name string
		ext  string
		want string
	}{
		"default":      {"", ".pptx", "presentation.pptx"},
		"blank":        {"   ", ".pptx", "presentation.pptx"},
		"plain":        {"deck", ".pptx", "deck.pptx"},
		"has ext":      {"deck.pptx", ".pptx", "deck.pptx"},
		"other ext":    {"deck.key", ".pptx", "deck.key.pptx"},
		"nested":       {"a/b/deck", ".pptx", "deck.pptx"},
		"no extension": {"deck", "", "deck"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := orchestrator.FileName(tc.name, tc.ext); got != tc.want {
				t.Fatalf("FileName(%q, %q) = %q, want %q", tc.name, tc.ext, got, tc.want)
			}
		})
	}
}

type stubSelector struct {
	manifest *theme.Manifest
	err      error
	names    []string
}

func (s *stubSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.names = append(s.names, name)
	if s.err != nil {
		return nil, s.err
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: s.manifest}, nil
}
