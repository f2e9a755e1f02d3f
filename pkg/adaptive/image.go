package adaptive

import (
	"fmt"

	"github.com/goliatone/go-notifygen/pkg/element"
)

// ImageAttrs groups the attributes every image element carries. Embed it in
// concrete image types to satisfy BaseImage.
type ImageAttrs struct {
	// Source is the image URI (ms-appx, ms-appdata or http/https). Required.
	Source string
	// AlternateText describes the image for accessibility.
	AlternateText string
	// AddImageQuery appends the scale, contrast and language query string to
	// the source URI. Nil inherits the value from the visual or binding.
	AddImageQuery *bool
}

// BaseImage is implemented by image models that can be projected onto the
// shared image element.
type BaseImage interface {
	Attrs() ImageAttrs
}

func (a ImageAttrs) Attrs() ImageAttrs { return a }

// SetSource assigns the image source, rejecting an empty value.
func (a *ImageAttrs) SetSource(value string) error {
	return SetSource(&a.Source, value)
}

// SetSource writes value into dst. The empty string stands for an absent
// source and fails with ErrInvalidArgument, leaving dst untouched. Any other
// value, whitespace included, is stored as given.
func SetSource(dst *string, value string) error {
	if value == "" {
		return fmt.Errorf("%w: image source is required", ErrInvalidArgument)
	}
	*dst = value
	return nil
}

// CreateBaseElement copies the shared image attributes into a new element.
// Images built without SetSource and left without a source fail with
// ErrMissingField.
func CreateBaseElement(image BaseImage) (element.Image, error) {
	if image == nil {
		return element.Image{}, fmt.Errorf("%w: image is nil", ErrMissingField)
	}
	attrs := image.Attrs()
	if attrs.Source == "" {
		return element.Image{}, fmt.Errorf("%w: image source is required", ErrMissingField)
	}
	return element.Image{
		Src:           attrs.Source,
		Alt:           attrs.AlternateText,
		AddImageQuery: copyBool(attrs.AddImageQuery),
	}, nil
}
