package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newStylesCommand(a *app) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "styles",
		Short: "List catalog styles with their palettes and fonts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			if _, err := cfg.ThemeProvider(); err != nil {
				return fmt.Errorf("register styles: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				if strict {
					return err
				}
				fmt.Fprintln(a.errOut, alertStyle.Render("catalog warnings:"))
				for _, line := range strings.Split(err.Error(), "\n") {
					fmt.Fprintln(a.errOut, "  "+line)
				}
			}

			for _, style := range cfg.ResolveAll() {
				lines := []string{
					titleStyle.Render(style.Key),
					labelStyle.Render("fonts: ") + style.Fonts.Heading + " / " + style.Fonts.Body,
				}
				if len(style.Tone) > 0 {
					lines = append(lines, labelStyle.Render("tone: ")+strings.Join(style.Tone, ", "))
				}
				for _, color := range style.Palette {
					lines = append(lines, swatch(color))
				}
				fmt.Fprintln(a.out, cardStyle.Render(strings.Join(lines, "\n")))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when the catalog references unknown palettes, fonts or styles")
	return cmd
}
