// Package binding models text values that are either literal strings or
// references to platform data-binding names resolved at render time.
package binding

// Kind distinguishes the variants of String.
type Kind uint8

const (
	KindUnset Kind = iota
	KindLiteral
	KindReference
)

// String is a bindable string. The zero value is unset.
type String struct {
	kind  Kind
	value string
}

// Literal wraps a literal text value.
func Literal(value string) String {
	return String{kind: KindLiteral, value: value}
}

// Reference wraps a data-binding name. The renderer substitutes the bound
// value when the notification is shown.
func Reference(name string) String {
	return String{kind: KindReference, value: name}
}

func (s String) Kind() Kind { return s.kind }

func (s String) IsSet() bool { return s.kind != KindUnset }

func (s String) IsReference() bool { return s.kind == KindReference }

// Value returns the literal text or the binding name, depending on the kind.
func (s String) Value() string { return s.value }

// ToXMLString returns the final payload form: the literal itself, or the
// `{name}` placeholder for references. Unset values yield "".
func (s String) ToXMLString() string {
	switch s.kind {
	case KindLiteral:
		return s.value
	case KindReference:
		return "{" + s.value + "}"
	default:
		return ""
	}
}

func (s String) String() string {
	return s.ToXMLString()
}
