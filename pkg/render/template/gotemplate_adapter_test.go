package template_test

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-deckgen/pkg/render/template/gotemplate"
	"github.com/goliatone/go-deckgen/pkg/testsupport"
)

func templatesFS() fstest.MapFS {
	return fstest.MapFS{
		"hello.tpl":      {Data: []byte("Hello {{ name }}!")},
		"use-global.tpl": {Data: []byte("env={{ settings.env }}")},
		"use-filter.tpl": {Data: []byte("{{ name|shout }}")},
		"escape.tpl":     {Data: []byte("<a:t>{{ text }}</a:t>")},
		"struct.tpl":     {Data: []byte("{% for s in slides %}[{{ s.kind }}:{{ s.title|trim }}]{% endfor %}")},
		"inches.tpl":     {Data: []byte(`{{ w|inches }}`)},
	}
}

func newEngine(t *testing.T, options ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()

	options = append([]gotemplate.Option{gotemplate.WithFS(templatesFS())}, options...)
	engine, err := gotemplate.New(options...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})

	if result != "Hello Ada!" {
		t.Fatalf("render template mismatch: %q", result)
	}
	if written != result {
		t.Fatalf("writer mismatch\nwant: %q\n got: %q", result, written)
	}
}

func TestGoTemplateEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t, gotemplate.WithGlobalData(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}))

	result, err := engine.RenderTemplate("use-global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "env=staging" {
		t.Fatalf("global context not applied: %q", result)
	}
}

func TestGoTemplateEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("shout", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}

	result, err := engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "ADA!" {
		t.Fatalf("filter not applied: %q", result)
	}
}

func TestGoTemplateEngine_WithFiltersIsIdempotent(t *testing.T) {
	inches := map[string]gotemplate.FilterFunc{
		"inches": func(input any, _ any) (any, error) {
			return fmt.Sprintf("%vin", input), nil
		},
	}
	newEngine(t, gotemplate.WithFilters(inches))
	engine := newEngine(t, gotemplate.WithFilters(inches))

	result, err := engine.RenderTemplate("inches", map[string]any{"w": 2.5})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "2.5in" {
		t.Fatalf("filter output mismatch: %q", result)
	}
}

func TestGoTemplateEngine_EscapesMarkup(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderTemplate("escape", map[string]any{"text": `R&D <"core">`})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "<a:t>R&amp;D &lt;&quot;core&quot;&gt;</a:t>" {
		t.Fatalf("text not escaped: %q", result)
	}
}

func TestGoTemplateEngine_StructsUseJSONNames(t *testing.T) {
	type slide struct {
		Kind  string `json:"kind"`
		Title string `json:"title"`
	}
	engine := newEngine(t)

	result, err := engine.RenderTemplate("struct", map[string]any{
		"slides": []slide{{Kind: "cover", Title: " Hi "}, {Kind: "quote"}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "[cover:Hi][quote:]" {
		t.Fatalf("unexpected output: %q", result)
	}
}

func TestGoTemplateEngine_RenderString(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.Render("{{ a }}-{{ b }}", map[string]any{"a": "x", "b": "y"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if result != "x-y" {
		t.Fatalf("unexpected output: %q", result)
	}
}

func TestGoTemplateEngine_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without templates")
	}
}

func TestGoTemplateEngine_BaseDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "slide.xml.tpl"), []byte(`<p:sld name="{{ title }}"/>`), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	engine, err := gotemplate.New(gotemplate.WithBaseDir(dir))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	result, err := engine.RenderTemplate("slide.xml", map[string]any{"title": "Intro"})
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	if result != `<p:sld name="Intro"/>` {
		t.Fatalf("unexpected output: %q", result)
	}
}
