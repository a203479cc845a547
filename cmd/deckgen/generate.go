package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-deckgen/pkg/orchestrator"
	"github.com/goliatone/go-deckgen/pkg/presets"
	"github.com/goliatone/go-deckgen/pkg/render"
)

type generateFlags struct {
	style       string
	template    string
	contentPath string
	outDir      string
	renderer    string
	author      string
	subject     string
	stripMarkup bool
}

func newGenerateCommand(a *app) *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render deck content into a .pptx file",
		Example: `  deckgen generate --style corporate --content deck.json --out build/
  cat deck.json | deckgen generate --template investor-pitch --content -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			raw, err := a.readContent(flags.contentPath)
			if err != nil {
				return err
			}
			_, err = a.generate(cmd.Context(), cfg, flags, raw)
			return err
		},
	}
	addGenerateFlags(cmd, &flags)
	cmd.Flags().StringVar(&flags.style, "style", "", "style key from the catalog")
	cmd.Flags().StringVar(&flags.template, "template", "", "template id or name; its style is used when --style is empty")
	cmd.Flags().StringVar(&flags.contentPath, "content", "", `content JSON file, "-" for stdin`)
	_ = cmd.MarkFlagRequired("content")
	return cmd
}

func addGenerateFlags(cmd *cobra.Command, flags *generateFlags) {
	cmd.Flags().StringVarP(&flags.outDir, "out", "o", ".", "output directory")
	cmd.Flags().StringVar(&flags.renderer, "renderer", "", "renderer name (pptx, markdown)")
	cmd.Flags().StringVar(&flags.author, "author", "", "author written to the document properties")
	cmd.Flags().StringVar(&flags.subject, "subject", "", "subject written to the document properties")
	cmd.Flags().BoolVar(&flags.stripMarkup, "strip-markup", false, "remove HTML tags from content text before layout")
}

func (a *app) readContent(path string) ([]byte, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("content path is required")
	}
	if path == "-" {
		data, err := io.ReadAll(a.in)
		if err != nil {
			return nil, fmt.Errorf("read content from stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return data, nil
}

// generate renders raw and writes the result into flags.outDir. Invalid
// content is printed as an alert and reported as errAlerted.
func (a *app) generate(ctx context.Context, cfg *presets.Config, flags generateFlags, raw []byte) (string, error) {
	options := []orchestrator.Option{
		orchestrator.WithLogger(a.logger),
		orchestrator.WithAlerter(orchestrator.AlertFunc(func(message string) {
			fmt.Fprintln(a.errOut, alertStyle.Render(message))
		})),
	}
	if flags.stripMarkup {
		options = append(options, orchestrator.WithTransformer(orchestrator.StripMarkup()))
	}
	gen := orchestrator.New(options...)

	result, ok, err := gen.GenerateFromJSON(ctx, orchestrator.Request{
		Config:   cfg,
		StyleKey: flags.style,
		Template: flags.template,
		Renderer: flags.renderer,
		RenderOptions: render.RenderOptions{
			Author:  flags.author,
			Subject: flags.subject,
		},
	}, raw)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errAlerted
	}

	path, err := gen.WriteResult(flags.outDir, result)
	if err != nil {
		return "", err
	}
	fmt.Fprintln(a.out, successStyle.Render(fmt.Sprintf("Wrote %s (%d slides, style %s)", path, result.Slides, styleLabel(result.Style))))
	return path, nil
}

func styleLabel(style presets.Style) string {
	if style.Key == "" {
		return "default"
	}
	return style.Key
}

func contentAlert(err error) string {
	return orchestrator.ContentErrorMessage(err)
}
