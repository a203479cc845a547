package orchestrator

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/goliatone/go-deckgen/pkg/content"
)

// Alerter surfaces a user facing failure message. It stands in for a blocking
// dialog: implementations print, log or collect the message.
type Alerter interface {
	Alert(message string)
}

// AlertFunc adapts plain functions to the Alerter interface.
type AlertFunc func(message string)

// Alert executes the wrapped function when non-nil.
func (fn AlertFunc) Alert(message string) {
	if fn == nil {
		return
	}
	fn(message)
}

// LogAlerter writes alerts to logger at warn level.
func LogAlerter(logger *slog.Logger) Alerter {
	return AlertFunc(func(message string) {
		if logger == nil {
			return
		}
		logger.Warn("alert", slog.String("message", message))
	})
}

// Alert message prefixes.
const (
	ContentErrorPrefix    = "Content JSON error: "
	GenerationErrorPrefix = "Deck generation error: "
)

// ContentErrorMessage formats a content parse failure the way it is shown to
// users: "Content JSON error: <detail>".
func ContentErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	detail := err.Error()
	if errors.Is(err, content.ErrInvalidContent) {
		detail = strings.TrimPrefix(detail, content.ErrInvalidContent.Error()+": ")
	}
	return ContentErrorPrefix + detail
}

// GenerationErrorMessage formats a failure after the content parsed.
func GenerationErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	return GenerationErrorPrefix + err.Error()
}
