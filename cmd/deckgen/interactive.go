package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-deckgen/pkg/content"
	"github.com/goliatone/go-deckgen/pkg/prompt"
)

func newInteractiveCommand(a *app) *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Pick a template with prompts, then generate the deck",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := a.loadConfig(ctx)
			if err != nil {
				return err
			}

			wizard := prompt.New(
				prompt.WithPromptDriver(prompt.NewSurveyDriver(a.out)),
				prompt.WithTheme(prompt.Theme{InfoPrefix: "» "}),
			)
			selection, err := wizard.Run(ctx, cfg)
			switch {
			case errors.Is(err, prompt.ErrAborted):
				fmt.Fprintln(a.errOut, labelStyle.Render("Aborted."))
				return errAlerted
			case errors.Is(err, prompt.ErrNoMatches):
				return errAlerted
			case err != nil:
				return err
			}
			fmt.Fprintln(a.out, successStyle.Render("Template: "+selection.Template.Label()))

			var raw []byte
			if flags.contentPath != "" {
				raw, err = a.readContent(flags.contentPath)
				if err != nil {
					return err
				}
			} else {
				answer, err := wizard.AskContent(ctx, string(content.ExampleJSON()))
				if errors.Is(err, prompt.ErrAborted) {
					fmt.Fprintln(a.errOut, labelStyle.Render("Aborted."))
					return errAlerted
				}
				if err != nil {
					return err
				}
				raw = []byte(answer)
			}

			flags.style = selection.Template.Style
			_, err = a.generate(ctx, cfg, flags, raw)
			return err
		},
	}
	addGenerateFlags(cmd, &flags)
	cmd.Flags().StringVar(&flags.contentPath, "content", "", `content JSON file, "-" for stdin; prompts when empty`)
	return cmd
}
