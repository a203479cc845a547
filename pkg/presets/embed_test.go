package presets_test

import (
	"io/fs"

	"github.com/goliatone/go-deckgen/pkg/presets"
)

func readEmbedded() ([]byte, error) {
	return fs.ReadFile(presets.EmbeddedFS(), presets.EmbeddedName)
}
