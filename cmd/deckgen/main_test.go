package main

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-deckgen/pkg/content"
	"github.com/goliatone/go-deckgen/pkg/testsupport"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()

	var out, errOut bytes.Buffer
	code := run(args, strings.NewReader(stdin), &out, &errOut)
	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

func writeContent(t *testing.T, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "content.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write content: %v", err)
	}
	return path
}

func TestMatchCommand(t *testing.T) {
	res := execute(t, "", "--config", "embedded", "match", "--audience", "investors")
	if res.code != 0 {
		t.Fatalf("exit %d: %s", res.code, res.stderr)
	}
	if !strings.Contains(res.stdout, "Investor pitch") {
		t.Fatalf("expected investor pitch template:\n%s", res.stdout)
	}

	res = execute(t, "", "--config", "embedded", "match")
	if res.code != 0 || !strings.Contains(res.stdout, "No templates match.") {
		t.Fatalf("expected empty match message, got %d:\n%s", res.code, res.stdout)
	}
}

func TestStylesCommand(t *testing.T) {
	res := execute(t, "", "--config", "embedded", "styles", "--strict")
	if res.code != 0 {
		t.Fatalf("exit %d: %s", res.code, res.stderr)
	}
	for _, want := range []string{"corporate", "sustainability", "#111217", "Georgia"} {
		if !strings.Contains(res.stdout, want) {
			t.Fatalf("styles output missing %q:\n%s", want, res.stdout)
		}
	}
}

func TestStylesCommand_StrictFailsOnBrokenCatalog(t *testing.T) {
	res := execute(t, "", "--config", "../../pkg/presets/testdata/catalog.yaml", "styles", "--strict")
	if res.code != 1 {
		t.Fatalf("expected strict failure, got %d", res.code)
	}

	res = execute(t, "", "--config", "../../pkg/presets/testdata/catalog.yaml", "styles")
	if res.code != 0 || !strings.Contains(res.stderr, "catalog warnings:") {
		t.Fatalf("expected warnings without --strict, got %d:\n%s", res.code, res.stderr)
	}
}

func TestGenerateCommand(t *testing.T) {
	outDir := t.TempDir()
	res := execute(t, "",
		"--config", "embedded",
		"generate",
		"--template", "investor-pitch",
		"--content", writeContent(t, content.ExampleJSON()),
		"--out", outDir,
	)
	if res.code != 0 {
		t.Fatalf("exit %d: %s", res.code, res.stderr)
	}
	if !strings.Contains(res.stdout, "style pitch") {
		t.Fatalf("unexpected output:\n%s", res.stdout)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "quarterly-review.pptx"))
	if err != nil {
		t.Fatalf("read deck: %v", err)
	}
	parts := testsupport.ZipParts(t, data)
	if _, ok := parts["ppt/slides/slide6.xml"]; !ok {
		t.Fatalf("expected cover plus five slides")
	}
}

func TestGenerateCommand_StdinMarkdown(t *testing.T) {
	outDir := t.TempDir()
	res := execute(t, `{"title": "Piped"}`,
		"--config", "embedded",
		"generate", "--content", "-", "--renderer", "markdown", "--out", outDir,
	)
	if res.code != 0 {
		t.Fatalf("exit %d: %s", res.code, res.stderr)
	}
	data, err := os.ReadFile(filepath.Join(outDir, "presentation.md"))
	if err != nil {
		t.Fatalf("read outline: %v", err)
	}
	if string(data) != "# Piped\n" {
		t.Fatalf("unexpected outline %q", data)
	}
}

func TestGenerateCommand_InvalidJSONAlerts(t *testing.T) {
	outDir := t.TempDir()
	res := execute(t, "",
		"--config", "embedded",
		"generate", "--content", writeContent(t, []byte(`{"title": "x",}`)), "--out", outDir,
	)
	if res.code != 1 {
		t.Fatalf("expected exit 1, got %d", res.code)
	}
	if !strings.Contains(res.stderr, "Content JSON error: ") {
		t.Fatalf("expected alert, got:\n%s", res.stderr)
	}
	if strings.Contains(res.stderr, "Error: ") {
		t.Fatalf("alert should not be repeated as an error:\n%s", res.stderr)
	}
	entries, _ := os.ReadDir(outDir)
	if len(entries) != 0 {
		t.Fatalf("no file should be written, found %d", len(entries))
	}
}

func TestPreviewCommand_Raw(t *testing.T) {
	res := execute(t, "",
		"--config", "embedded",
		"preview", "--raw", "--content", writeContent(t, content.ExampleJSON()),
	)
	if res.code != 0 {
		t.Fatalf("exit %d: %s", res.code, res.stderr)
	}
	for _, want := range []string{"# 1. Quarterly review", "## 3. What shipped", "- Usage based billing"} {
		if !strings.Contains(res.stdout, want) {
			t.Fatalf("outline missing %q:\n%s", want, res.stdout)
		}
	}
}

func TestMissingConfigFails(t *testing.T) {
	res := execute(t, "", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "match")
	if res.code != 1 || !strings.Contains(res.stderr, "Error: ") {
		t.Fatalf("expected load error, got %d:\n%s", res.code, res.stderr)
	}
}

func TestMalformedConfigURLFails(t *testing.T) {
	res := execute(t, "", "--config", "http://exa mple.com/presets.yaml", "match")
	if res.code != 1 {
		t.Fatalf("expected exit 1, got %d", res.code)
	}
	if !strings.Contains(res.stderr, "Error: ") || !strings.Contains(res.stderr, "invalid URL") {
		t.Fatalf("expected invalid URL error, got:\n%s", res.stderr)
	}
}

func TestPreviewCommand_KeepsAndStripsMarkup(t *testing.T) {
	path := writeContent(t, []byte(`{"title": "Deck", "slides": [{"type": "bullets", "title": "Keys", "bullets": ["use <Ctrl>+C", "<b>bold</b> move"]}]}`))

	res := execute(t, "", "--config", "embedded", "preview", "--raw", "--content", path)
	if res.code != 0 {
		t.Fatalf("exit %d: %s", res.code, res.stderr)
	}
	if !strings.Contains(res.stdout, "- use &lt;Ctrl&gt;+C") {
		t.Fatalf("expected escaped text kept:\n%s", res.stdout)
	}

	res = execute(t, "", "--config", "embedded", "preview", "--raw", "--strip-markup", "--content", path)
	if res.code != 0 {
		t.Fatalf("exit %d: %s", res.code, res.stderr)
	}
	if !strings.Contains(res.stdout, "- bold move") || strings.Contains(res.stdout, "&lt;b&gt;") {
		t.Fatalf("expected markup stripped:\n%s", res.stdout)
	}
}

func TestServeHTTP_StopsOnCancel(t *testing.T) {
	var out bytes.Buffer
	a := &app{out: &out, errOut: &out, logger: newLogger(&out, false)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	httpServer := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}
	if err := a.serveHTTP(ctx, httpServer); err != nil {
		t.Fatalf("serve: %v", err)
	}

	want := "Serving deckgen API on 127.0.0.1:0\nShutting down...\nServer stopped\n"
	if out.String() != want {
		t.Fatalf("unexpected output:\n%q", out.String())
	}
}
