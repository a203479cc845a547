package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-deckgen/pkg/presets"
)

func newMatchCommand(a *app) *cobra.Command {
	var criteria presets.Criteria

	cmd := &cobra.Command{
		Use:   "match",
		Short: "List templates matching audience, purpose or tags",
		Example: `  deckgen match --audience investors --purpose "seed pitch"
  deckgen match --tag ESG --tag water`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			criteria.Purpose = strings.TrimSpace(criteria.Purpose)
			printMatches(a.out, cfg, criteria, presets.FindTemplates(cfg, criteria))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&criteria.Audience, "audience", nil, "audience to match (repeatable)")
	cmd.Flags().StringVar(&criteria.Purpose, "purpose", "", "free text purpose; keywords suggest styles")
	cmd.Flags().StringSliceVar(&criteria.Tags, "tag", nil, "tag to match (repeatable)")
	return cmd
}

func printMatches(w io.Writer, cfg *presets.Config, criteria presets.Criteria, matches []presets.Template) {
	if len(matches) == 0 {
		fmt.Fprintln(w, labelStyle.Render("No templates match."))
		return
	}
	if suggested := cfg.SuggestedStyles(criteria.Purpose); len(suggested) > 0 {
		fmt.Fprintln(w, labelStyle.Render("Suggested styles: "+strings.Join(suggested, ", ")))
	}
	for _, tpl := range matches {
		lines := []string{titleStyle.Render(tpl.Label())}
		if tpl.Description != "" {
			lines = append(lines, tpl.Description)
		}
		lines = append(lines, labelStyle.Render("style: ")+tpl.Style)
		if tpl.ID != "" {
			lines = append(lines, labelStyle.Render("id: ")+tpl.ID)
		}
		if len(tpl.Audience) > 0 {
			lines = append(lines, labelStyle.Render("audience: ")+strings.Join(tpl.Audience, ", "))
		}
		if len(tpl.Tags) > 0 {
			lines = append(lines, labelStyle.Render("tags: ")+strings.Join(tpl.Tags, ", "))
		}
		fmt.Fprintln(w, cardStyle.Render(strings.Join(lines, "\n")))
	}
}
