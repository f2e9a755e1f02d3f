package template

import (
	"io"
)

// TemplateRenderer is the contract the XML writer relies on: execute a named
// template with data, optionally copying the output to writers. The bundled
// implementation lives in the gotemplate subpackage.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
}
