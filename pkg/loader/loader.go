package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-notifygen/pkg/adaptive"
	"github.com/goliatone/go-notifygen/pkg/binding"
	"github.com/goliatone/go-notifygen/pkg/element"
	"github.com/goliatone/go-notifygen/pkg/tiles"
)

// Option configures document loading.
type Option func(*config)

type config struct {
	logger   zerolog.Logger
	sanitize bool
}

// WithLogger routes load diagnostics to logger. The default discards them.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithoutSanitize keeps literal text exactly as written.
func WithoutSanitize() Option {
	return func(cfg *config) {
		cfg.sanitize = false
	}
}

// Document is a loaded notification definition.
type Document struct {
	Source     string
	Texts      []*adaptive.Text
	Background *tiles.BackgroundImage
	Peek       *tiles.PeekImage
}

// Elements converts the document into elements: the peek image first, then
// the background image, then texts in document order.
func (d Document) Elements() ([]element.Element, error) {
	out := make([]element.Element, 0, len(d.Texts)+2)
	if d.Peek != nil {
		el, err := d.Peek.ConvertToElement()
		if err != nil {
			return nil, fmt.Errorf("loader: %s: %w", d.Source, err)
		}
		out = append(out, el)
	}
	if d.Background != nil {
		el, err := d.Background.ConvertToElement()
		if err != nil {
			return nil, fmt.Errorf("loader: %s: %w", d.Source, err)
		}
		out = append(out, el)
	}
	for _, text := range d.Texts {
		out = append(out, text.ConvertToElement())
	}
	return out, nil
}

// LoadFile reads and parses the document at path.
func LoadFile(path string, options ...Option) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("loader: read %s: %w", path, err)
	}
	return Load(data, path, options...)
}

// Load parses a JSON or YAML document. source names the document in errors.
func Load(data []byte, source string, options ...Option) (Document, error) {
	cfg := config{logger: zerolog.Nop(), sanitize: true}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	raw, err := parseDocument(data, source)
	if err != nil {
		return Document{}, err
	}

	doc := Document{Source: source}
	for i, entry := range raw.Texts {
		text, err := buildText(entry, cfg)
		if err != nil {
			return Document{}, fmt.Errorf("loader: %s: texts[%d]: %w", source, i, err)
		}
		doc.Texts = append(doc.Texts, text)
	}
	if raw.Background != nil {
		img, err := buildBackground(*raw.Background)
		if err != nil {
			return Document{}, fmt.Errorf("loader: %s: backgroundImage: %w", source, err)
		}
		doc.Background = img
	}
	if raw.Peek != nil {
		img, err := buildPeek(*raw.Peek)
		if err != nil {
			return Document{}, fmt.Errorf("loader: %s: peekImage: %w", source, err)
		}
		doc.Peek = img
	}

	cfg.logger.Debug().
		Str("source", source).
		Int("texts", len(doc.Texts)).
		Bool("background", doc.Background != nil).
		Bool("peek", doc.Peek != nil).
		Msg("notification document loaded")

	return doc, nil
}

type documentFile struct {
	Texts      []textFile `json:"texts" yaml:"texts"`
	Background *imageFile `json:"backgroundImage" yaml:"backgroundImage"`
	Peek       *imageFile `json:"peekImage" yaml:"peekImage"`
}

type textFile struct {
	Text     *string `json:"text" yaml:"text"`
	Binding  string  `json:"binding" yaml:"binding"`
	Lang     string  `json:"lang" yaml:"lang"`
	Style    string  `json:"style" yaml:"style"`
	Wrap     *bool   `json:"wrap" yaml:"wrap"`
	MaxLines *int    `json:"maxLines" yaml:"maxLines"`
	MinLines *int    `json:"minLines" yaml:"minLines"`
	Align    string  `json:"align" yaml:"align"`
}

type imageFile struct {
	Src           string `json:"src" yaml:"src"`
	Alt           string `json:"alt" yaml:"alt"`
	AddImageQuery *bool  `json:"addImageQuery" yaml:"addImageQuery"`
	Crop          string `json:"crop" yaml:"crop"`
	Overlay       *int   `json:"overlay" yaml:"overlay"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("loader: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("loader: parse %s: invalid JSON or YAML", source)
}

func buildText(raw textFile, cfg config) (*adaptive.Text, error) {
	text := &adaptive.Text{
		Language: strings.TrimSpace(raw.Lang),
		HintWrap: raw.Wrap,
	}

	name := strings.TrimSpace(raw.Binding)
	switch {
	case raw.Text != nil && name != "":
		return nil, fmt.Errorf("%w: text and binding are mutually exclusive", adaptive.ErrInvalidArgument)
	case name != "":
		text.Text = binding.Reference(name)
	case raw.Text != nil:
		value := *raw.Text
		if cfg.sanitize {
			value = sanitizeText(value)
		}
		text.Text = binding.Literal(value)
	}

	style, err := adaptive.ParseTextStyle(raw.Style)
	if err != nil {
		return nil, err
	}
	text.HintStyle = style

	align, err := adaptive.ParseTextAlign(raw.Align)
	if err != nil {
		return nil, err
	}
	text.HintAlign = align

	if err := text.SetHintMaxLines(raw.MaxLines); err != nil {
		return nil, err
	}
	if err := text.SetHintMinLines(raw.MinLines); err != nil {
		return nil, err
	}
	return text, nil
}

func buildBackground(raw imageFile) (*tiles.BackgroundImage, error) {
	img := &tiles.BackgroundImage{}
	if err := img.SetSource(raw.Src); err != nil {
		return nil, err
	}
	img.AlternateText = raw.Alt
	img.AddImageQuery = raw.AddImageQuery

	crop, err := tiles.ParseBackgroundImageCrop(raw.Crop)
	if err != nil {
		return nil, err
	}
	img.HintCrop = crop

	if err := img.SetHintOverlay(raw.Overlay); err != nil {
		return nil, err
	}
	return img, nil
}

func buildPeek(raw imageFile) (*tiles.PeekImage, error) {
	img := &tiles.PeekImage{}
	if err := img.SetSource(raw.Src); err != nil {
		return nil, err
	}
	img.AlternateText = raw.Alt
	img.AddImageQuery = raw.AddImageQuery

	crop, err := tiles.ParsePeekImageCrop(raw.Crop)
	if err != nil {
		return nil, err
	}
	img.HintCrop = crop

	if err := img.SetHintOverlay(raw.Overlay); err != nil {
		return nil, err
	}
	return img, nil
}
