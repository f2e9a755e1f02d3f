// Package template defines the template rendering seam used by the XML
// writer, so callers can swap the bundled pongo2 engine for their own.
package template
