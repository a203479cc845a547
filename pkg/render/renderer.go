package render

import (
	"context"

	"github.com/goliatone/go-deckgen/pkg/deck"
)

// Renderer converts a laid out Presentation into a byte representation
// (a .pptx archive, a markdown outline, ...).
type Renderer interface {
	Name() string
	ContentType() string
	// Extension is the file suffix, including the dot, of rendered output.
	Extension() string
	Render(ctx context.Context, presentation deck.Presentation, options RenderOptions) ([]byte, error)
}
