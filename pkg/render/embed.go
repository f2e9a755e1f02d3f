package render

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// ElementTemplate is the template used for every element.
const ElementTemplate = "element"

// TemplatesFS exposes the bundled templates so callers can extend or
// override them.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}
