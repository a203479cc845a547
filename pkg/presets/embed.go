package presets

import (
	"embed"
	"io/fs"
)

//go:embed defaults/presets.yaml
var embeddedPresets embed.FS

// EmbeddedName is the entry name of the built-in catalog inside EmbeddedFS.
const EmbeddedName = "presets.yaml"

// EmbeddedFS returns the bundled default catalog. Pair it with
// SourceFromFS(EmbeddedName) and WithFileSystem.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedPresets, "defaults")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}
