package pptx

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.xml.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded OOXML part templates so callers can copy
// and customise them before passing them back through WithTemplatesFS.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
