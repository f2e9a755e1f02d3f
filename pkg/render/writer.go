// Package render serializes the element representation to notification XML.
// It stands in for the platform serializer: models never emit XML
// themselves, they hand element values to a Writer.
package render

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-notifygen/pkg/element"
	rendertemplate "github.com/goliatone/go-notifygen/pkg/render/template"
	"github.com/goliatone/go-notifygen/pkg/render/template/gotemplate"
)

var (
	// ErrNilElement is returned when a nil element is rendered.
	ErrNilElement = errors.New("render: element is nil")
	// ErrMissingSource is returned for image elements without src.
	ErrMissingSource = errors.New("render: image element requires src")
	// ErrInvalidCharacter is returned for content or attribute values that
	// are not valid UTF-8 or hold characters XML 1.0 does not allow.
	ErrInvalidCharacter = errors.New("render: invalid XML character")
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Writer turns elements into XML fragments. It is safe for concurrent use
// when the underlying template renderer is.
type Writer struct {
	templates rendertemplate.TemplateRenderer
}

// New constructs a Writer applying any provided options.
func New(options ...Option) (*Writer, error) {
	cfg := config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("render: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Writer{templates: renderer}, nil
}

// Render serializes a single element.
func (w *Writer) Render(el element.Element) (string, error) {
	if el == nil {
		return "", ErrNilElement
	}
	if rv := reflect.ValueOf(el); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "", ErrNilElement
	}
	switch img := el.(type) {
	case element.Image:
		if img.Src == "" {
			return "", ErrMissingSource
		}
	case *element.Image:
		if img.Src == "" {
			return "", ErrMissingSource
		}
	}

	content, hasContent := el.Content()
	if hasContent {
		if err := checkXMLText(content); err != nil {
			return "", fmt.Errorf("render: %s content: %w", el.ElementName(), err)
		}
	}
	attrs := el.Attributes()
	for _, attr := range attrs {
		if err := checkXMLText(attr.Value); err != nil {
			return "", fmt.Errorf("render: %s attribute %s: %w", el.ElementName(), attr.Name, err)
		}
	}
	if attrs == nil {
		attrs = []element.Attr{}
	}
	data := map[string]any{
		"name":        el.ElementName(),
		"attributes":  attrs,
		"has_content": hasContent,
		"content":     content,
	}

	out, err := w.templates.RenderTemplate(ElementTemplate, data)
	if err != nil {
		return "", fmt.Errorf("render: %s element: %w", el.ElementName(), err)
	}
	return strings.TrimRight(out, "\r\n"), nil
}

// RenderAll serializes elements in order, one per line.
func (w *Writer) RenderAll(elements ...element.Element) (string, error) {
	lines := make([]string, 0, len(elements))
	for i, el := range elements {
		out, err := w.Render(el)
		if err != nil {
			return "", fmt.Errorf("render: element %d: %w", i, err)
		}
		lines = append(lines, out)
	}
	return strings.Join(lines, "\n"), nil
}

func checkXMLText(value string) error {
	if !utf8.ValidString(value) {
		return fmt.Errorf("%w: invalid UTF-8 in %q", ErrInvalidCharacter, value)
	}
	for i, r := range value {
		if !isXMLChar(r) {
			return fmt.Errorf("%w: U+%04X at byte %d", ErrInvalidCharacter, r, i)
		}
	}
	return nil
}

// isXMLChar reports whether r is in the XML 1.0 Char production.
func isXMLChar(r rune) bool {
	switch {
	case r == 0x09, r == 0x0A, r == 0x0D:
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	default:
		return false
	}
}
