package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-deckgen/pkg/content"
	"github.com/goliatone/go-deckgen/pkg/deck"
	"github.com/goliatone/go-deckgen/pkg/presets"
	"github.com/goliatone/go-deckgen/pkg/render"
	"github.com/goliatone/go-deckgen/pkg/renderers/markdown"
)

func newPreviewCommand(a *app) *cobra.Command {
	var (
		styleKey    string
		contentPath string
		raw         bool
		stripMarkup bool
		width       int
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print a slide by slide outline of deck content",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			data, err := a.readContent(contentPath)
			if err != nil {
				return err
			}
			schema, err := content.Parse(data)
			if err != nil {
				fmt.Fprintln(a.errOut, alertStyle.Render(contentAlert(err)))
				return errAlerted
			}
			if stripMarkup {
				schema = content.Sanitize(schema)
			}

			presentation := deck.Build(schema, presets.ResolveStyle(cfg, styleKey))
			outline, err := markdown.New(markdown.WithSlideNumbers(true)).Render(cmd.Context(), presentation, render.RenderOptions{})
			if err != nil {
				return err
			}
			if raw {
				_, err = a.out.Write(outline)
				return err
			}

			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(width),
			)
			if err != nil {
				return fmt.Errorf("configure markdown renderer: %w", err)
			}
			rendered, err := renderer.Render(string(outline))
			if err != nil {
				return fmt.Errorf("render outline: %w", err)
			}
			_, err = fmt.Fprint(a.out, rendered)
			return err
		},
	}
	cmd.Flags().StringVar(&styleKey, "style", "", "style key from the catalog")
	cmd.Flags().StringVar(&contentPath, "content", "", `content JSON file, "-" for stdin`)
	cmd.Flags().BoolVar(&raw, "raw", false, "print the markdown outline without terminal styling")
	cmd.Flags().BoolVar(&stripMarkup, "strip-markup", false, "remove HTML tags from content text")
	cmd.Flags().IntVar(&width, "width", 80, "word wrap width")
	_ = cmd.MarkFlagRequired("content")
	return cmd
}
