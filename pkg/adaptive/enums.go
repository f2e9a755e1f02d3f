package adaptive

import (
	"fmt"
	"strings"
)

// TextStyle controls font size, weight and opacity of a text element. Values
// are the names the notification schema expects on the wire.
type TextStyle string

const (
	TextStyleDefault          TextStyle = ""
	TextStyleCaption          TextStyle = "caption"
	TextStyleCaptionSubtle    TextStyle = "captionSubtle"
	TextStyleBody             TextStyle = "body"
	TextStyleBodySubtle       TextStyle = "bodySubtle"
	TextStyleBase             TextStyle = "base"
	TextStyleBaseSubtle       TextStyle = "baseSubtle"
	TextStyleSubtitle         TextStyle = "subtitle"
	TextStyleSubtitleSubtle   TextStyle = "subtitleSubtle"
	TextStyleTitle            TextStyle = "title"
	TextStyleTitleSubtle      TextStyle = "titleSubtle"
	TextStyleTitleNumeral     TextStyle = "titleNumeral"
	TextStyleSubheader        TextStyle = "subheader"
	TextStyleSubheaderSubtle  TextStyle = "subheaderSubtle"
	TextStyleSubheaderNumeral TextStyle = "subheaderNumeral"
	TextStyleHeader           TextStyle = "header"
	TextStyleHeaderSubtle     TextStyle = "headerSubtle"
	TextStyleHeaderNumeral    TextStyle = "headerNumeral"
)

var textStyles = []TextStyle{
	TextStyleDefault,
	TextStyleCaption, TextStyleCaptionSubtle,
	TextStyleBody, TextStyleBodySubtle,
	TextStyleBase, TextStyleBaseSubtle,
	TextStyleSubtitle, TextStyleSubtitleSubtle,
	TextStyleTitle, TextStyleTitleSubtle, TextStyleTitleNumeral,
	TextStyleSubheader, TextStyleSubheaderSubtle, TextStyleSubheaderNumeral,
	TextStyleHeader, TextStyleHeaderSubtle, TextStyleHeaderNumeral,
}

// TextStyles lists every supported style in declaration order, starting with
// the default.
func TextStyles() []TextStyle {
	return append([]TextStyle(nil), textStyles...)
}

// ParseTextStyle resolves a style name, ignoring case. "" and "default" map
// to TextStyleDefault.
func ParseTextStyle(raw string) (TextStyle, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.EqualFold(trimmed, "default") {
		return TextStyleDefault, nil
	}
	for _, style := range textStyles {
		if strings.EqualFold(string(style), trimmed) {
			return style, nil
		}
	}
	return TextStyleDefault, fmt.Errorf("%w: unknown text style %q", ErrInvalidArgument, raw)
}

// TextAlign is the horizontal alignment of a text element.
type TextAlign string

const (
	TextAlignDefault TextAlign = ""
	TextAlignAuto    TextAlign = "auto"
	TextAlignLeft    TextAlign = "left"
	TextAlignCenter  TextAlign = "center"
	TextAlignRight   TextAlign = "right"
)

var textAligns = []TextAlign{
	TextAlignDefault, TextAlignAuto, TextAlignLeft, TextAlignCenter, TextAlignRight,
}

// TextAligns lists every supported alignment, starting with the default.
func TextAligns() []TextAlign {
	return append([]TextAlign(nil), textAligns...)
}

// ParseTextAlign resolves an alignment name, ignoring case.
func ParseTextAlign(raw string) (TextAlign, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.EqualFold(trimmed, "default") {
		return TextAlignDefault, nil
	}
	for _, align := range textAligns {
		if strings.EqualFold(string(align), trimmed) {
			return align, nil
		}
	}
	return TextAlignDefault, fmt.Errorf("%w: unknown text alignment %q", ErrInvalidArgument, raw)
}

// Int returns a pointer to n, for optional integer hints.
func Int(n int) *int { return &n }

// Bool returns a pointer to b, for optional boolean hints.
func Bool(b bool) *bool { return &b }
