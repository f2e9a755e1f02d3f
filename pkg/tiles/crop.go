package tiles

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-notifygen/pkg/adaptive"
)

// BackgroundImageCrop is the cropping applied to a tile background image.
type BackgroundImageCrop string

const (
	// BackgroundImageCropDefault lets the renderer pick the cropping.
	BackgroundImageCropDefault BackgroundImageCrop = ""
	BackgroundImageCropNone    BackgroundImageCrop = "none"
	BackgroundImageCropCircle  BackgroundImageCrop = "circle"
)

// ParseBackgroundImageCrop resolves a crop name, ignoring case.
func ParseBackgroundImageCrop(raw string) (BackgroundImageCrop, error) {
	crop, err := parseCrop(raw)
	return BackgroundImageCrop(crop), err
}

// PeekImageCrop is the cropping applied to a tile peek image.
type PeekImageCrop string

const (
	// PeekImageCropDefault lets the renderer pick the cropping.
	PeekImageCropDefault PeekImageCrop = ""
	PeekImageCropNone    PeekImageCrop = "none"
	PeekImageCropCircle  PeekImageCrop = "circle"
)

// ParsePeekImageCrop resolves a crop name, ignoring case.
func ParsePeekImageCrop(raw string) (PeekImageCrop, error) {
	crop, err := parseCrop(raw)
	return PeekImageCrop(crop), err
}

func parseCrop(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "default":
		return "", nil
	case "none":
		return "none", nil
	case "circle":
		return "circle", nil
	default:
		return "", fmt.Errorf("%w: unknown image crop %q", adaptive.ErrInvalidArgument, raw)
	}
}
