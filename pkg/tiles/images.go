// Package tiles provides the tile image elements and their crop options.
package tiles

import (
	"fmt"

	"github.com/goliatone/go-notifygen/pkg/adaptive"
	"github.com/goliatone/go-notifygen/pkg/element"
)

// Placement values written on tile images.
const (
	PlacementBackground = "background"
	PlacementPeek       = "peek"
)

// BackgroundImage is displayed full-bleed behind the tile content.
type BackgroundImage struct {
	adaptive.ImageAttrs

	HintCrop    BackgroundImageCrop
	hintOverlay *int
}

// HintOverlay returns the black overlay opacity, or nil when unset.
func (b *BackgroundImage) HintOverlay() *int {
	return copyInt(b.hintOverlay)
}

// SetHintOverlay sets the overlay opacity between 0 and 100. Nil clears it.
func (b *BackgroundImage) SetHintOverlay(overlay *int) error {
	if err := checkOverlay(overlay); err != nil {
		return err
	}
	b.hintOverlay = copyInt(overlay)
	return nil
}

// ConvertToElement returns the <image placement="background"> element.
func (b *BackgroundImage) ConvertToElement() (element.Image, error) {
	el, err := adaptive.CreateBaseElement(b)
	if err != nil {
		return element.Image{}, fmt.Errorf("tiles: background image: %w", err)
	}
	el.Placement = PlacementBackground
	el.HintCrop = string(b.HintCrop)
	el.HintOverlay = copyInt(b.hintOverlay)
	return el, nil
}

// PeekImage slides in from the top of the tile.
type PeekImage struct {
	adaptive.ImageAttrs

	HintCrop    PeekImageCrop
	hintOverlay *int
}

// HintOverlay returns the black overlay opacity, or nil when unset.
func (p *PeekImage) HintOverlay() *int {
	return copyInt(p.hintOverlay)
}

// SetHintOverlay sets the overlay opacity between 0 and 100. Nil clears it.
func (p *PeekImage) SetHintOverlay(overlay *int) error {
	if err := checkOverlay(overlay); err != nil {
		return err
	}
	p.hintOverlay = copyInt(overlay)
	return nil
}

// ConvertToElement returns the <image placement="peek"> element.
func (p *PeekImage) ConvertToElement() (element.Image, error) {
	el, err := adaptive.CreateBaseElement(p)
	if err != nil {
		return element.Image{}, fmt.Errorf("tiles: peek image: %w", err)
	}
	el.Placement = PlacementPeek
	el.HintCrop = string(p.HintCrop)
	el.HintOverlay = copyInt(p.hintOverlay)
	return el, nil
}

func checkOverlay(overlay *int) error {
	if overlay == nil {
		return nil
	}
	if *overlay < 0 || *overlay > 100 {
		return fmt.Errorf("%w: hint-overlay must be between 0 and 100, got %d", adaptive.ErrInvalidArgument, *overlay)
	}
	return nil
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
