package element

import "strconv"

// Element names used by the notification schema.
const (
	NameText  = "text"
	NameImage = "image"
)

// Attr is a single serialized attribute.
type Attr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Element is implemented by every node of the intermediate representation.
type Element interface {
	ElementName() string
	Attributes() []Attr
	// Content returns the inner text of the element; ok is false for
	// elements without text content.
	Content() (text string, ok bool)
}

// Text mirrors the <text> element.
type Text struct {
	Text     *string
	Lang     string
	Style    string
	Wrap     *bool
	MaxLines *int
	MinLines *int
	Align    string
}

var _ Element = Text{}

func (Text) ElementName() string { return NameText }

func (t Text) Attributes() []Attr {
	var attrs []Attr
	attrs = appendString(attrs, "lang", t.Lang)
	attrs = appendString(attrs, "hint-style", t.Style)
	attrs = appendBool(attrs, "hint-wrap", t.Wrap)
	attrs = appendInt(attrs, "hint-maxLines", t.MaxLines)
	attrs = appendInt(attrs, "hint-minLines", t.MinLines)
	attrs = appendString(attrs, "hint-align", t.Align)
	return attrs
}

func (t Text) Content() (string, bool) {
	if t.Text == nil {
		return "", false
	}
	return *t.Text, true
}

// Image mirrors the <image> element. Src is required; the models refuse to
// produce an Image without it.
type Image struct {
	Src           string
	Alt           string
	AddImageQuery *bool
	Placement     string
	HintCrop      string
	HintOverlay   *int
}

var _ Element = Image{}

func (Image) ElementName() string { return NameImage }

func (i Image) Attributes() []Attr {
	attrs := []Attr{{Name: "src", Value: i.Src}}
	attrs = appendString(attrs, "alt", i.Alt)
	attrs = appendBool(attrs, "addImageQuery", i.AddImageQuery)
	attrs = appendString(attrs, "placement", i.Placement)
	attrs = appendString(attrs, "hint-crop", i.HintCrop)
	attrs = appendInt(attrs, "hint-overlay", i.HintOverlay)
	return attrs
}

func (Image) Content() (string, bool) { return "", false }

func appendString(attrs []Attr, name, value string) []Attr {
	if value == "" {
		return attrs
	}
	return append(attrs, Attr{Name: name, Value: value})
}

func appendBool(attrs []Attr, name string, value *bool) []Attr {
	if value == nil {
		return attrs
	}
	return append(attrs, Attr{Name: name, Value: strconv.FormatBool(*value)})
}

func appendInt(attrs []Attr, name string, value *int) []Attr {
	if value == nil {
		return attrs
	}
	return append(attrs, Attr{Name: name, Value: strconv.Itoa(*value)})
}
