package adaptive

import (
	"fmt"

	"github.com/goliatone/go-notifygen/pkg/binding"
	"github.com/goliatone/go-notifygen/pkg/element"
)

// Text is an adaptive text element.
//
// Line-count hints are only reachable through their setters so out-of-range
// values are rejected before they are stored. MinLines greater than MaxLines
// is accepted; the renderer decides what to do with it.
type Text struct {
	// Text is the displayed value. Binding references only take effect on
	// top-level toast text.
	Text binding.String
	// Language is a BCP-47 tag such as "en-US" overriding the locale of the
	// binding or visual. It is not validated.
	Language string
	// HintStyle only applies to toast text placed inside a subgroup.
	HintStyle TextStyle
	// HintWrap enables wrapping. Nil lets the container decide.
	HintWrap *bool
	// HintAlign only applies to toast text placed inside a subgroup.
	HintAlign TextAlign

	hintMaxLines *int
	hintMinLines *int
}

// NewText returns a text element holding a literal value.
func NewText(value string) *Text {
	return &Text{Text: binding.Literal(value)}
}

// HintMaxLines returns the maximum number of lines, or nil when unset.
func (t *Text) HintMaxLines() *int {
	return copyInt(t.hintMaxLines)
}

// SetHintMaxLines stores the maximum number of lines. Nil clears the hint.
func (t *Text) SetHintMaxLines(n *int) error {
	if err := checkLines("hint-maxLines", n); err != nil {
		return err
	}
	t.hintMaxLines = copyInt(n)
	return nil
}

// HintMinLines returns the minimum number of lines, or nil when unset.
func (t *Text) HintMinLines() *int {
	return copyInt(t.hintMinLines)
}

// SetHintMinLines stores the minimum number of lines. Nil clears the hint.
func (t *Text) SetHintMinLines(n *int) error {
	if err := checkLines("hint-minLines", n); err != nil {
		return err
	}
	t.hintMinLines = copyInt(n)
	return nil
}

// ConvertToElement projects the model onto its schema element. The result
// shares no memory with t.
func (t *Text) ConvertToElement() element.Text {
	el := element.Text{
		Lang:     t.Language,
		Style:    string(t.HintStyle),
		Wrap:     copyBool(t.HintWrap),
		MaxLines: copyInt(t.hintMaxLines),
		MinLines: copyInt(t.hintMinLines),
		Align:    string(t.HintAlign),
	}
	if t.Text.IsSet() {
		value := t.Text.ToXMLString()
		el.Text = &value
	}
	return el
}

// String returns the current text value.
func (t *Text) String() string {
	return t.Text.String()
}

func checkLines(attr string, n *int) error {
	if n == nil {
		return nil
	}
	if *n < 1 {
		return fmt.Errorf("%w: %s must be at least 1, got %d", ErrInvalidArgument, attr, *n)
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

func copyBool(v *bool) *bool {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
