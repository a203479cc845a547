package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-deckgen/pkg/presets"
)

// Theme captures optional message prefixes the wizard applies when printing.
type Theme struct {
	InfoPrefix string
}

// Option configures the wizard.
type Option func(*Wizard)

// WithPromptDriver overrides the prompt driver used by the wizard.
func WithPromptDriver(driver PromptDriver) Option {
	return func(w *Wizard) {
		if driver != nil {
			w.driver = driver
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(w *Wizard) {
		w.theme = theme
	}
}

// Wizard walks a user through template selection: audiences, purpose and
// tags are collected, matched against the catalog and one result is picked.
type Wizard struct {
	driver PromptDriver
	theme  Theme
}

// Selection is the outcome of a wizard run.
type Selection struct {
	Criteria presets.Criteria
	Matches  []presets.Template
	Template presets.Template
}

// New constructs a wizard. Without WithPromptDriver the survey driver writing
// to stdout is used.
func New(options ...Option) *Wizard {
	w := &Wizard{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	if w.driver == nil {
		w.driver = NewSurveyDriver(nil)
	}
	return w
}

// Run asks for the selection criteria and lets the user pick one of the
// matching templates. It returns ErrNoMatches when nothing matches and
// ErrAborted when the user interrupts a prompt.
func (w *Wizard) Run(ctx context.Context, cfg *presets.Config) (Selection, error) {
	if cfg == nil || len(cfg.Templates) == 0 {
		return Selection{}, ErrEmptyCatalog
	}

	criteria, err := w.askCriteria(ctx, cfg)
	if err != nil {
		return Selection{}, err
	}

	matches := presets.FindTemplates(cfg, criteria)
	if len(matches) == 0 {
		if err := w.info(ctx, "No templates match the selected criteria."); err != nil {
			return Selection{}, err
		}
		return Selection{Criteria: criteria}, ErrNoMatches
	}

	if suggested := cfg.SuggestedStyles(criteria.Purpose); len(suggested) > 0 {
		if err := w.info(ctx, "Suggested styles: "+strings.Join(suggested, ", ")); err != nil {
			return Selection{}, err
		}
	}

	options := make([]string, len(matches))
	for i, tpl := range matches {
		options[i] = optionLabel(tpl)
	}
	idx, err := w.driver.Select(ctx, SelectConfig{
		Message: "Template",
		Options: options,
		Help:    "Up to three templates are shown in catalog order.",
	})
	if err != nil {
		return Selection{}, fmt.Errorf("prompt: select template: %w", wrapAbort(err))
	}
	if idx < 0 || idx >= len(matches) {
		return Selection{}, fmt.Errorf("prompt: template index %d out of range", idx)
	}

	return Selection{Criteria: criteria, Matches: matches, Template: matches[idx]}, nil
}

// AskContent collects deck content JSON from a multi-line prompt. An empty
// answer falls back to defaultJSON.
func (w *Wizard) AskContent(ctx context.Context, defaultJSON string) (string, error) {
	raw, err := w.driver.TextArea(ctx, TextAreaConfig{
		Message: "Deck content (JSON)",
		Default: defaultJSON,
		Help:    `An object with "title", "subtitle", "fileName" and a "slides" list.`,
	})
	if err != nil {
		return "", fmt.Errorf("prompt: content: %w", wrapAbort(err))
	}
	if strings.TrimSpace(raw) == "" {
		return defaultJSON, nil
	}
	return raw, nil
}

func (w *Wizard) askCriteria(ctx context.Context, cfg *presets.Config) (presets.Criteria, error) {
	var criteria presets.Criteria

	if audiences := cfg.Audiences(); len(audiences) > 0 {
		picked, err := w.driver.MultiSelect(ctx, SelectConfig{
			Message: "Audience",
			Options: audiences,
			Help:    "Templates written for any selected audience match.",
		})
		if err != nil {
			return criteria, fmt.Errorf("prompt: audience: %w", wrapAbort(err))
		}
		criteria.Audience = pick(audiences, picked)
	}

	purpose, err := w.driver.Input(ctx, InputConfig{
		Message: "Purpose",
		Help:    "Free text; keywords such as \"pitch\" suggest styles.",
	})
	if err != nil {
		return criteria, fmt.Errorf("prompt: purpose: %w", wrapAbort(err))
	}
	criteria.Purpose = strings.TrimSpace(purpose)

	if tags := cfg.Tags(); len(tags) > 0 {
		picked, err := w.driver.MultiSelect(ctx, SelectConfig{
			Message: "Tags",
			Options: tags,
		})
		if err != nil {
			return criteria, fmt.Errorf("prompt: tags: %w", wrapAbort(err))
		}
		criteria.Tags = pick(tags, picked)
	}
	return criteria, nil
}

func (w *Wizard) info(ctx context.Context, msg string) error {
	return w.driver.Info(ctx, w.theme.InfoPrefix+msg)
}

func optionLabel(tpl presets.Template) string {
	label := tpl.Label()
	if tpl.Style != "" && tpl.Style != label {
		label += " (" + tpl.Style + ")"
	}
	if tpl.Description != "" {
		label += " - " + tpl.Description
	}
	return label
}

func pick(options []string, indices []int) []string {
	var out []string
	for _, idx := range indices {
		if idx >= 0 && idx < len(options) {
			out = append(out, options[idx])
		}
	}
	return out
}

// wrapAbort keeps ErrAborted identifiable however a driver reports it.
func wrapAbort(err error) error {
	if errors.Is(err, ErrAborted) {
		return ErrAborted
	}
	return err
}
